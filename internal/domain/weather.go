package domain

import "time"

// Place is a named coordinate pair. Either half may be derived from the
// other via geocoding; nothing is cached or persisted.
type Place struct {
	City  string
	State string
	Lat   float64
	Lon   float64
}

// CurrentConditions is one observed weather snapshot. Times are instants;
// the report layer decides the display timezone.
type CurrentConditions struct {
	At          time.Time
	Description string
	TempF       float64
	FeelsLikeF  float64
	DewPointF   float64
	Humidity    float64
	PressureHPa float64

	UVIndex     *float64
	VisibilityM *float64
	WindDeg     *float64
	WindMPH     float64
	GustMPH     *float64
	Sunrise     *time.Time
	Sunset      *time.Time
	RainMm      *float64
	SnowMm      *float64
}

// Observation is a point-in-time historical snapshot from the time-machine
// endpoint. Identical to CurrentConditions plus the day's extremes, which
// the endpoint does not always supply.
type Observation struct {
	CurrentConditions
	TempMinF *float64
	TempMaxF *float64
}

// DailyForecast is one day of the daily forecast block.
type DailyForecast struct {
	Date       time.Time
	Summary    string
	LowF       float64
	HighF      float64
	Humidity   float64
	WindMPH    float64
	RainChance float64 // probability of precipitation, 0..1
	RainMm     *float64
	SnowMm     *float64
}

// HourlyConditions is one hour of the hourly forecast block.
type HourlyConditions struct {
	At          time.Time
	Description string
	TempF       float64
	RainChance  float64
	UVIndex     *float64
	RainMm      *float64
	SnowMm      *float64
}

// MinutePrecip is one minute of the minutely precipitation block.
type MinutePrecip struct {
	At       time.Time
	PrecipMm float64
}

// Alert is an active weather alert issued for a location.
type Alert struct {
	Sender      string
	Event       string
	Start       time.Time
	End         time.Time
	Description string
}

// DaySummary aggregates a whole day's weather. "Afternoon" values are the
// provider's representative reading for the day.
type DaySummary struct {
	Date        string
	CloudCover  float64
	Humidity    float64
	PrecipMm    float64
	PressureHPa float64
	TempF       float64
	TempMinF    float64
	TempMaxF    float64
	MaxWindMPH  float64
	MaxWindDeg  float64
}

// WeatherReport bundles the blocks of a one-call response. Blocks excluded
// from the request are nil.
type WeatherReport struct {
	Current  *CurrentConditions
	Daily    []DailyForecast
	Hourly   []HourlyConditions
	Minutely []MinutePrecip
	Alerts   []Alert
}

// Value returns *p, or def when p is nil. The display-edge default for
// optional fields.
func Value(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// Float returns a pointer to v. Convenience for building records and fixtures.
func Float(v float64) *float64 { return &v }
