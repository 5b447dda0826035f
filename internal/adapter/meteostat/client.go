// Package meteostat implements the climate-station provider against the
// Meteostat JSON API (station lookup) and its bulk endpoints, which serve
// full per-station history as gzipped CSV without a header row.
package meteostat

import (
	"compress/gzip"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/skycast/skycast/internal/domain"
)

// Client implements domain.StationProvider.
type Client struct {
	apiKey      string
	httpClient  *http.Client
	apiBaseURL  string
	bulkBaseURL string
	logger      *slog.Logger
}

// NewClient creates a Meteostat client. The API key authenticates station
// lookups; the bulk endpoints are unauthenticated.
func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiBaseURL:  "https://meteostat.p.rapidapi.com",
		bulkBaseURL: "https://bulk.meteostat.net/v2",
		logger:      logger,
	}
}

// NearbyStations returns up to limit stations ordered by ascending distance
// from the query point. Sparse regions may return fewer.
func (c *Client) NearbyStations(ctx context.Context, lat, lon float64, limit int) ([]domain.Station, error) {
	params := url.Values{
		"lat":   {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":   {strconv.FormatFloat(lon, 'f', -1, 64)},
		"limit": {strconv.Itoa(limit)},
	}
	fullURL := c.apiBaseURL + "/stations/nearby?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nearby stations request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("meteostat API error: status %d: %s", resp.StatusCode, body)
	}

	var payload nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	stations := make([]domain.Station, 0, len(payload.Data))
	for _, s := range payload.Data {
		stations = append(stations, domain.Station{
			ID:           s.ID,
			Name:         s.Name.En,
			Lat:          s.Latitude,
			Lon:          s.Longitude,
			ElevationM:   s.Elevation,
			DistanceM:    s.Distance,
			HourlyStart:  parseDay(s.Inventory.Hourly.Start),
			HourlyEnd:    parseDay(s.Inventory.Hourly.End),
			DailyStart:   parseDay(s.Inventory.Daily.Start),
			DailyEnd:     parseDay(s.Inventory.Daily.End),
			MonthlyStart: parseDay(s.Inventory.Monthly.Start),
			MonthlyEnd:   parseDay(s.Inventory.Monthly.End),
		})
	}
	return stations, nil
}

// DailySeries fetches a station's daily records between start and end,
// inclusive. The bulk file carries the station's full history; rows outside
// the range are dropped locally.
func (c *Client) DailySeries(ctx context.Context, stationID string, start, end time.Time) ([]domain.DailyRecord, error) {
	rows, err := c.bulkCSV(ctx, "daily", stationID)
	if err != nil {
		return nil, err
	}

	var out []domain.DailyRecord
	for _, row := range rows {
		if len(row) < 11 {
			continue
		}
		date, err := time.Parse("2006-01-02", row[0])
		if err != nil {
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		out = append(out, domain.DailyRecord{
			Date:        date,
			TempAvgC:    nullable(row[1]),
			TempMinC:    nullable(row[2]),
			TempMaxC:    nullable(row[3]),
			PrecipMm:    nullable(row[4]),
			SnowMm:      nullable(row[5]),
			WindDirDeg:  nullable(row[6]),
			WindSpdKmh:  nullable(row[7]),
			WindGustKmh: nullable(row[8]),
			PressureHPa: nullable(row[9]),
			SunshineMin: nullable(row[10]),
		})
	}
	return out, nil
}

// HourlySeries fetches a station's hourly records between start and end,
// inclusive.
func (c *Client) HourlySeries(ctx context.Context, stationID string, start, end time.Time) ([]domain.HourlyRecord, error) {
	rows, err := c.bulkCSV(ctx, "hourly", stationID)
	if err != nil {
		return nil, err
	}

	var out []domain.HourlyRecord
	for _, row := range rows {
		if len(row) < 13 {
			continue
		}
		hour, err := strconv.Atoi(row[1])
		if err != nil {
			continue
		}
		ts, err := time.Parse("2006-01-02", row[0])
		if err != nil {
			continue
		}
		ts = ts.Add(time.Duration(hour) * time.Hour)
		if ts.Before(start) || ts.After(end) {
			continue
		}
		out = append(out, domain.HourlyRecord{
			Time:        ts,
			TempC:       nullable(row[2]),
			DewPointC:   nullable(row[3]),
			HumidityPct: nullable(row[4]),
			PrecipMm:    nullable(row[5]),
			SnowMm:      nullable(row[6]),
			WindDirDeg:  nullable(row[7]),
			WindSpdKmh:  nullable(row[8]),
			WindGustKmh: nullable(row[9]),
			PressureHPa: nullable(row[10]),
			SunshineMin: nullable(row[11]),
			Condition:   nullable(row[12]),
		})
	}
	return out, nil
}

// MonthlySeries fetches a station's monthly records between start and end,
// inclusive of the months containing them.
func (c *Client) MonthlySeries(ctx context.Context, stationID string, start, end time.Time) ([]domain.MonthlyRecord, error) {
	rows, err := c.bulkCSV(ctx, "monthly", stationID)
	if err != nil {
		return nil, err
	}

	firstMonth := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)

	var out []domain.MonthlyRecord
	for _, row := range rows {
		if len(row) < 9 {
			continue
		}
		year, err := strconv.Atoi(row[0])
		if err != nil {
			continue
		}
		month, err := strconv.Atoi(row[1])
		if err != nil {
			continue
		}
		m := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		if m.Before(firstMonth) || m.After(lastMonth) {
			continue
		}
		out = append(out, domain.MonthlyRecord{
			Month:       m,
			TempAvgC:    nullable(row[2]),
			TempMinC:    nullable(row[3]),
			TempMaxC:    nullable(row[4]),
			PrecipMm:    nullable(row[5]),
			WindSpdKmh:  nullable(row[6]),
			PressureHPa: nullable(row[7]),
			SunshineMin: nullable(row[8]),
		})
	}
	return out, nil
}

// Normals fetches a station's 30-year climate normals for the named
// reference period.
func (c *Client) Normals(ctx context.Context, stationID string, startYear, endYear int) ([]domain.NormalsRecord, error) {
	rows, err := c.bulkCSV(ctx, "normals", stationID)
	if err != nil {
		return nil, err
	}

	var out []domain.NormalsRecord
	for _, row := range rows {
		if len(row) < 10 {
			continue
		}
		sy, err := strconv.Atoi(row[0])
		if err != nil {
			continue
		}
		ey, err := strconv.Atoi(row[1])
		if err != nil {
			continue
		}
		if sy != startYear || ey != endYear {
			continue
		}
		month, err := strconv.Atoi(row[2])
		if err != nil {
			continue
		}
		out = append(out, domain.NormalsRecord{
			StartYear:   sy,
			EndYear:     ey,
			Month:       time.Month(month),
			TempAvgC:    nullable(row[3]),
			TempMinC:    nullable(row[4]),
			TempMaxC:    nullable(row[5]),
			PrecipMm:    nullable(row[6]),
			WindSpdKmh:  nullable(row[7]),
			PressureHPa: nullable(row[8]),
			SunshineMin: nullable(row[9]),
		})
	}
	return out, nil
}

// bulkCSV downloads and decompresses one station's bulk file at the named
// resolution, returning its raw rows.
func (c *Client) bulkCSV(ctx context.Context, resolution, stationID string) ([][]string, error) {
	fullURL := fmt.Sprintf("%s/%s/%s.csv.gz", c.bulkBaseURL, resolution, url.PathEscape(stationID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s bulk request: %w", resolution, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("station %s has no %s data", stationID, resolution)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("meteostat bulk error: status %d", resp.StatusCode)
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decompress %s bulk: %w", resolution, err)
	}
	defer gz.Close()

	reader := csv.NewReader(gz)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s bulk: %w", resolution, err)
	}
	return rows, nil
}

func nullable(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// Meteostat API response types.

type nearbyResponse struct {
	Data []stationPayload `json:"data"`
}

type stationPayload struct {
	ID   string `json:"id"`
	Name struct {
		En string `json:"en"`
	} `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
	Distance  float64 `json:"distance"`
	Inventory struct {
		Hourly  inventoryRange `json:"hourly"`
		Daily   inventoryRange `json:"daily"`
		Monthly inventoryRange `json:"monthly"`
	} `json:"inventory"`
}

type inventoryRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
