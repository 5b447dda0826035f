package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all tool settings, populated from a .env file and
// environment variables. Constructed once at process start and passed
// explicitly into every component that needs it.
type Config struct {
	WeatherAPIKey string
	StationAPIKey string

	DefaultLat   float64
	DefaultLon   float64
	DefaultCity  string
	DefaultState string

	// Timezone is the IANA zone that naive date input and displayed clock
	// times are interpreted in.
	Timezone string

	HTTPTimeout time.Duration

	// OutputDir receives the CSV/JSON dumps and the daily quote cache.
	OutputDir string

	// QuotesEnabled toggles the best-effort quote-of-the-day postscript.
	QuotesEnabled bool

	LogLevel  string
	LogFormat string
}

// Load reads configuration from a .env file (if present) and the
// environment, applying defaults where unset.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment alone may be complete.
	_ = godotenv.Load()

	lat, err := parseFloat("DEFAULT_LAT", "38.95669")
	if err != nil {
		return nil, err
	}
	lon, err := parseFloat("DEFAULT_LON", "-77.41006")
	if err != nil {
		return nil, err
	}

	timeoutStr := envOrDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid HTTP_TIMEOUT")
	}

	cfg := &Config{
		WeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		StationAPIKey: os.Getenv("METEOSTAT_API_KEY"),
		DefaultLat:    lat,
		DefaultLon:    lon,
		DefaultCity:   envOrDefault("DEFAULT_CITY", "Herndon"),
		DefaultState:  envOrDefault("DEFAULT_STATE", "Virginia"),
		Timezone:      envOrDefault("TIMEZONE", "America/New_York"),
		HTTPTimeout:   timeout,
		OutputDir:     envOrDefault("OUTPUT_DIR", defaultOutputDir()),
		QuotesEnabled: envOrDefault("QUOTES_ENABLED", "true") == "true",
		LogLevel:      envOrDefault("LOG_LEVEL", "warn"),
		LogFormat:     envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.WeatherAPIKey == "" {
		return nil, errors.New("OPENWEATHER_API_KEY is required")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	return cfg, nil
}

// Location resolves the configured timezone. Load has already validated it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseFloat(key, def string) (float64, error) {
	s := envOrDefault(key, def)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// defaultOutputDir prefers the user's Downloads folder when it exists,
// falling back to the working directory.
func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	downloads := filepath.Join(home, "Downloads")
	if info, err := os.Stat(downloads); err == nil && info.IsDir() {
		return downloads
	}
	return "."
}
