package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	t.Setenv("OUTPUT_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testAPIKey, cfg.WeatherAPIKey)
	assert.InDelta(t, 38.95669, cfg.DefaultLat, 1e-9)
	assert.InDelta(t, -77.41006, cfg.DefaultLon, 1e-9)
	assert.Equal(t, "Herndon", cfg.DefaultCity)
	assert.Equal(t, "Virginia", cfg.DefaultState)
	assert.Equal(t, "America/New_York", cfg.Timezone)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.QuotesEnabled)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	t.Setenv("METEOSTAT_API_KEY", "station-key")
	t.Setenv("DEFAULT_LAT", "42.4372")
	t.Setenv("DEFAULT_LON", "-76.5484")
	t.Setenv("DEFAULT_CITY", "Ithaca")
	t.Setenv("DEFAULT_STATE", "New York")
	t.Setenv("TIMEZONE", "America/Chicago")
	t.Setenv("HTTP_TIMEOUT", "30s")
	t.Setenv("OUTPUT_DIR", "/tmp/skycast-test")
	t.Setenv("QUOTES_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "station-key", cfg.StationAPIKey)
	assert.InDelta(t, 42.4372, cfg.DefaultLat, 1e-9)
	assert.InDelta(t, -76.5484, cfg.DefaultLon, 1e-9)
	assert.Equal(t, "Ithaca", cfg.DefaultCity)
	assert.Equal(t, "New York", cfg.DefaultState)
	assert.Equal(t, "America/Chicago", cfg.Timezone)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "/tmp/skycast-test", cfg.OutputDir)
	assert.False(t, cfg.QuotesEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENWEATHER_API_KEY")
}

func TestLoad_InvalidLatitude(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	t.Setenv("DEFAULT_LAT", "not-a-number")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_LAT")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	t.Setenv("HTTP_TIMEOUT", "-5s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestLoad_InvalidTimezone(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TIMEZONE")
}

func TestLocation(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", testAPIKey)
	cfg, err := Load()
	require.NoError(t, err)

	loc := cfg.Location()
	require.NotNil(t, loc)
	assert.Equal(t, "America/New_York", loc.String())
}
