// Package openweather implements the weather and geocoding providers against
// the OpenWeather One Call 3.0 and Geocoding 1.0 APIs.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/skycast/skycast/internal/domain"
)

// Client implements domain.WeatherProvider and domain.Geocoder.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger

	// onResponse, when set, receives the raw body of every successful
	// response. Used to persist the most recent payload to disk.
	onResponse func(body []byte)
}

// NewClient creates an OpenWeather client.
func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://api.openweathermap.org",
		logger:  logger,
	}
}

// SetResponseHook registers a callback invoked with the raw body of each
// successful response.
func (c *Client) SetResponseHook(fn func(body []byte)) {
	c.onResponse = fn
}

// OneCall fetches a weather report, excluding the named blocks.
func (c *Client) OneCall(ctx context.Context, lat, lon float64, exclude []string) (domain.WeatherReport, error) {
	params := url.Values{
		"lat":   {formatCoord(lat)},
		"lon":   {formatCoord(lon)},
		"units": {"imperial"},
	}
	if len(exclude) > 0 {
		params.Set("exclude", strings.Join(exclude, ","))
	}

	var resp oneCallResponse
	if err := c.get(ctx, "/data/3.0/onecall", params, &resp); err != nil {
		return domain.WeatherReport{}, fmt.Errorf("one call: %w", err)
	}

	report := domain.WeatherReport{}
	if resp.Current != nil {
		cur := mapConditions(*resp.Current)
		report.Current = &cur
	}
	for _, d := range resp.Daily {
		report.Daily = append(report.Daily, mapDaily(d))
	}
	for _, h := range resp.Hourly {
		report.Hourly = append(report.Hourly, mapHourly(h))
	}
	for _, m := range resp.Minutely {
		report.Minutely = append(report.Minutely, domain.MinutePrecip{
			At:       time.Unix(m.Dt, 0),
			PrecipMm: m.Precipitation,
		})
	}
	for _, a := range resp.Alerts {
		report.Alerts = append(report.Alerts, domain.Alert{
			Sender:      a.SenderName,
			Event:       a.Event,
			Start:       time.Unix(a.Start, 0),
			End:         time.Unix(a.End, 0),
			Description: a.Description,
		})
	}
	return report, nil
}

// TimeMachine fetches the observation at one past or near-future instant.
func (c *Client) TimeMachine(ctx context.Context, lat, lon float64, ts int64) (domain.Observation, error) {
	params := url.Values{
		"lat":   {formatCoord(lat)},
		"lon":   {formatCoord(lon)},
		"units": {"imperial"},
		"dt":    {strconv.FormatInt(ts, 10)},
	}

	var resp timeMachineResponse
	if err := c.get(ctx, "/data/3.0/onecall/timemachine", params, &resp); err != nil {
		return domain.Observation{}, fmt.Errorf("time machine: %w", err)
	}
	if len(resp.Data) == 0 {
		return domain.Observation{}, fmt.Errorf("time machine: empty response for dt=%d", ts)
	}

	return domain.Observation{CurrentConditions: mapConditions(resp.Data[0])}, nil
}

// DaySummary fetches aggregate statistics for one calendar day.
func (c *Client) DaySummary(ctx context.Context, lat, lon float64, date string) (domain.DaySummary, error) {
	params := url.Values{
		"lat":   {formatCoord(lat)},
		"lon":   {formatCoord(lon)},
		"units": {"imperial"},
		"date":  {date},
	}

	var resp daySummaryResponse
	if err := c.get(ctx, "/data/3.0/onecall/day_summary", params, &resp); err != nil {
		return domain.DaySummary{}, fmt.Errorf("day summary: %w", err)
	}

	return domain.DaySummary{
		Date:        resp.Date,
		CloudCover:  resp.CloudCover.Afternoon,
		Humidity:    resp.Humidity.Afternoon,
		PrecipMm:    resp.Precipitation.Total,
		PressureHPa: resp.Pressure.Afternoon,
		TempF:       resp.Temperature.Afternoon,
		TempMinF:    resp.Temperature.Min,
		TempMaxF:    resp.Temperature.Max,
		MaxWindMPH:  resp.Wind.Max.Speed,
		MaxWindDeg:  resp.Wind.Max.Direction,
	}, nil
}

// ReverseGeocode resolves coordinates to a city and state.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (domain.Place, error) {
	params := url.Values{
		"lat":   {formatCoord(lat)},
		"lon":   {formatCoord(lon)},
		"limit": {"5"},
	}

	var resp []geoPayload
	if err := c.get(ctx, "/geo/1.0/reverse", params, &resp); err != nil {
		return domain.Place{}, fmt.Errorf("reverse geocode: %w", err)
	}
	if len(resp) == 0 {
		return domain.Place{}, fmt.Errorf("reverse geocode: no place found at %.5f, %.5f", lat, lon)
	}

	g := resp[0]
	return domain.Place{City: g.Name, State: g.State, Lat: lat, Lon: lon}, nil
}

// ForwardGeocode resolves a city and state to coordinates. With several
// candidate cities of the same name, the one in the requested state wins.
func (c *Client) ForwardGeocode(ctx context.Context, city, state string) (domain.Place, error) {
	params := url.Values{
		"q":     {fmt.Sprintf("%s,%s", city, state)},
		"limit": {"2"},
	}

	var resp []geoPayload
	if err := c.get(ctx, "/geo/1.0/direct", params, &resp); err != nil {
		return domain.Place{}, fmt.Errorf("forward geocode: %w", err)
	}

	for _, g := range resp {
		if strings.EqualFold(g.State, state) {
			return domain.Place{City: g.Name, State: g.State, Lat: g.Lat, Lon: g.Lon}, nil
		}
	}
	return domain.Place{}, fmt.Errorf("forward geocode: no match for %s, %s", city, state)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("appid", c.apiKey)
	fullURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openweather API error: status %d: %s", resp.StatusCode, body)
	}

	if c.onResponse != nil {
		c.onResponse(body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mapConditions(p conditionsPayload) domain.CurrentConditions {
	out := domain.CurrentConditions{
		At:          time.Unix(p.Dt, 0),
		Description: p.description(),
		TempF:       p.Temp,
		FeelsLikeF:  p.FeelsLike,
		DewPointF:   p.DewPoint,
		Humidity:    p.Humidity,
		PressureHPa: p.Pressure,
		UVIndex:     p.UVI,
		VisibilityM: p.Visibility,
		WindDeg:     p.WindDeg,
		WindMPH:     p.WindSpeed,
		GustMPH:     p.WindGust,
		RainMm:      p.Rain.ptr(),
		SnowMm:      p.Snow.ptr(),
	}
	if p.Sunrise != nil {
		t := time.Unix(*p.Sunrise, 0)
		out.Sunrise = &t
	}
	if p.Sunset != nil {
		t := time.Unix(*p.Sunset, 0)
		out.Sunset = &t
	}
	return out
}

func mapDaily(p dailyPayload) domain.DailyForecast {
	return domain.DailyForecast{
		Date:       time.Unix(p.Dt, 0),
		Summary:    p.Summary,
		LowF:       p.Temp.Min,
		HighF:      p.Temp.Max,
		Humidity:   p.Humidity,
		WindMPH:    p.WindSpeed,
		RainChance: p.Pop,
		RainMm:     p.Rain.ptr(),
		SnowMm:     p.Snow.ptr(),
	}
}

func mapHourly(p hourlyPayload) domain.HourlyConditions {
	return domain.HourlyConditions{
		At:          time.Unix(p.Dt, 0),
		Description: p.description(),
		TempF:       p.Temp,
		RainChance:  p.Pop,
		UVIndex:     p.UVI,
		RainMm:      p.Rain.ptr(),
		SnowMm:      p.Snow.ptr(),
	}
}

// OpenWeather API response types.

type oneCallResponse struct {
	Timezone string              `json:"timezone"`
	Current  *conditionsPayload  `json:"current"`
	Minutely []minutePayload     `json:"minutely"`
	Hourly   []hourlyPayload     `json:"hourly"`
	Daily    []dailyPayload      `json:"daily"`
	Alerts   []alertPayload      `json:"alerts"`
}

type timeMachineResponse struct {
	Data []conditionsPayload `json:"data"`
}

type conditionsPayload struct {
	Dt         int64          `json:"dt"`
	Sunrise    *int64         `json:"sunrise"`
	Sunset     *int64         `json:"sunset"`
	Temp       float64        `json:"temp"`
	FeelsLike  float64        `json:"feels_like"`
	Pressure   float64        `json:"pressure"`
	Humidity   float64        `json:"humidity"`
	DewPoint   float64        `json:"dew_point"`
	UVI        *float64       `json:"uvi"`
	Visibility *float64       `json:"visibility"`
	WindSpeed  float64        `json:"wind_speed"`
	WindDeg    *float64       `json:"wind_deg"`
	WindGust   *float64       `json:"wind_gust"`
	Weather    []weatherEntry `json:"weather"`
	Rain       precip         `json:"rain"`
	Snow       precip         `json:"snow"`
}

func (p conditionsPayload) description() string {
	if len(p.Weather) == 0 {
		return ""
	}
	return p.Weather[0].Description
}

type hourlyPayload struct {
	Dt      int64          `json:"dt"`
	Temp    float64        `json:"temp"`
	UVI     *float64       `json:"uvi"`
	Pop     float64        `json:"pop"`
	Weather []weatherEntry `json:"weather"`
	Rain    precip         `json:"rain"`
	Snow    precip         `json:"snow"`
}

func (p hourlyPayload) description() string {
	if len(p.Weather) == 0 {
		return ""
	}
	return p.Weather[0].Description
}

type dailyPayload struct {
	Dt        int64   `json:"dt"`
	Summary   string  `json:"summary"`
	Temp      tempSet `json:"temp"`
	Humidity  float64 `json:"humidity"`
	WindSpeed float64 `json:"wind_speed"`
	Pop       float64 `json:"pop"`
	Rain      precip  `json:"rain"`
	Snow      precip  `json:"snow"`
}

type tempSet struct {
	Day   float64 `json:"day"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Night float64 `json:"night"`
}

type minutePayload struct {
	Dt            int64   `json:"dt"`
	Precipitation float64 `json:"precipitation"`
}

type alertPayload struct {
	SenderName  string `json:"sender_name"`
	Event       string `json:"event"`
	Start       int64  `json:"start"`
	End         int64  `json:"end"`
	Description string `json:"description"`
}

type weatherEntry struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type daySummaryResponse struct {
	Date          string `json:"date"`
	CloudCover    struct {
		Afternoon float64 `json:"afternoon"`
	} `json:"cloud_cover"`
	Humidity struct {
		Afternoon float64 `json:"afternoon"`
	} `json:"humidity"`
	Precipitation struct {
		Total float64 `json:"total"`
	} `json:"precipitation"`
	Pressure struct {
		Afternoon float64 `json:"afternoon"`
	} `json:"pressure"`
	Temperature struct {
		Min       float64 `json:"min"`
		Max       float64 `json:"max"`
		Afternoon float64 `json:"afternoon"`
	} `json:"temperature"`
	Wind struct {
		Max struct {
			Speed     float64 `json:"speed"`
			Direction float64 `json:"direction"`
		} `json:"max"`
	} `json:"wind"`
}

type geoPayload struct {
	Name  string  `json:"name"`
	State string  `json:"state"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// precip absorbs the API's three spellings of a precipitation amount: the
// key absent, a bare number, or an object keyed "1h". Set distinguishes a
// reported zero from no report.
type precip struct {
	Set bool
	Mm  float64
}

func (p *precip) UnmarshalJSON(b []byte) error {
	var scalar float64
	if err := json.Unmarshal(b, &scalar); err == nil {
		p.Set, p.Mm = true, scalar
		return nil
	}
	var obj struct {
		OneHour float64 `json:"1h"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("decode precipitation: %w", err)
	}
	p.Set, p.Mm = true, obj.OneHour
	return nil
}

func (p precip) ptr() *float64 {
	if !p.Set {
		return nil
	}
	v := p.Mm
	return &v
}
