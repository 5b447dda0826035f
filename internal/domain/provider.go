package domain

import (
	"context"
	"time"
)

// One-call block names, as the weather provider spells them in the
// "exclude" query parameter.
const (
	BlockCurrent  = "current"
	BlockMinutely = "minutely"
	BlockHourly   = "hourly"
	BlockDaily    = "daily"
	BlockAlerts   = "alerts"
)

// WeatherProvider is the current/forecast/historical weather API.
type WeatherProvider interface {
	// OneCall fetches a weather report, excluding the named blocks.
	OneCall(ctx context.Context, lat, lon float64, exclude []string) (WeatherReport, error)

	// TimeMachine fetches the observation at a single past or near-future
	// instant, given as UTC epoch seconds.
	TimeMachine(ctx context.Context, lat, lon float64, ts int64) (Observation, error)

	// DaySummary fetches aggregate statistics for one calendar day
	// (date in YYYY-MM-DD form).
	DaySummary(ctx context.Context, lat, lon float64, date string) (DaySummary, error)
}

// Geocoder converts between place names and coordinates.
type Geocoder interface {
	// ReverseGeocode resolves coordinates to a city and state.
	ReverseGeocode(ctx context.Context, lat, lon float64) (Place, error)

	// ForwardGeocode resolves a city and state to coordinates.
	ForwardGeocode(ctx context.Context, city, state string) (Place, error)
}

// StationProvider is the historical climate-station API.
type StationProvider interface {
	// NearbyStations returns up to limit stations ordered by ascending
	// provider-computed distance from the query point.
	NearbyStations(ctx context.Context, lat, lon float64, limit int) ([]Station, error)

	DailySeries(ctx context.Context, stationID string, start, end time.Time) ([]DailyRecord, error)
	HourlySeries(ctx context.Context, stationID string, start, end time.Time) ([]HourlyRecord, error)
	MonthlySeries(ctx context.Context, stationID string, start, end time.Time) ([]MonthlyRecord, error)
	Normals(ctx context.Context, stationID string, startYear, endYear int) ([]NormalsRecord, error)
}
