// Package cli dispatches subcommands, parses their flags, and drives the
// fetch/convert/print pipeline for each report.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/pflag"

	"github.com/skycast/skycast/internal/config"
	"github.com/skycast/skycast/internal/dates"
	"github.com/skycast/skycast/internal/domain"
	"github.com/skycast/skycast/internal/export"
	"github.com/skycast/skycast/internal/manual"
	"github.com/skycast/skycast/internal/report"
)

// App holds the wired dependencies for one invocation.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	out      io.Writer
	weather  domain.WeatherProvider
	geocoder domain.Geocoder
	stations domain.StationProvider
	exporter *export.Exporter
	clock    clockwork.Clock
	loc      *time.Location
}

// New assembles an App.
func New(cfg *config.Config, logger *slog.Logger, out io.Writer,
	weather domain.WeatherProvider, geocoder domain.Geocoder, stations domain.StationProvider,
	exporter *export.Exporter, clock clockwork.Clock) *App {
	return &App{
		cfg:      cfg,
		logger:   logger,
		out:      out,
		weather:  weather,
		geocoder: geocoder,
		stations: stations,
		exporter: exporter,
		clock:    clock,
		loc:      cfg.Location(),
	}
}

// Run dispatches one command line. With no arguments it prints the default
// two-day forecast for the configured home coordinates.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		place, err := a.geocoder.ReverseGeocode(ctx, a.cfg.DefaultLat, a.cfg.DefaultLon)
		if err != nil {
			return err
		}
		return a.weatherReport(ctx, "forecast", place, 2)
	}

	switch args[0] {
	case "coords":
		return a.runCoords(ctx, args[1:])
	case "location":
		return a.runLocation(ctx, args[1:])
	case "hourly-forecast":
		return a.runHourlyForecast(ctx, args[1:])
	case "rain-forecast":
		return a.runRainForecast(ctx, args[1:])
	case "alerts":
		return a.runAlerts(ctx, args[1:])
	case "daily-summary":
		return a.runDailySummary(ctx, args[1:])
	case "meteostat":
		return a.runMeteostat(ctx, args[1:])
	case "manual", "man", "help", "h":
		return a.runManual(args[1:])
	default:
		return fmt.Errorf("unknown command %q: try \"manual -c man\"", args[0])
	}
}

// locationFlags are the shared location options. Commands taking both
// coordinates and city/state prefer city/state when the user changed both
// from their defaults.
type locationFlags struct {
	lat, lon    float64
	city, state string
}

func (a *App) addLocationFlags(fs *pflag.FlagSet) *locationFlags {
	f := &locationFlags{}
	fs.Float64Var(&f.lat, "lat", a.cfg.DefaultLat, "latitude for location")
	fs.Float64Var(&f.lon, "lon", a.cfg.DefaultLon, "longitude for location")
	fs.StringVarP(&f.city, "city", "c", a.cfg.DefaultCity, "city of interest")
	fs.StringVarP(&f.state, "state", "s", a.cfg.DefaultState, "the city's state")
	return f
}

// resolvePlace turns the location flags into a named coordinate pair,
// geocoding in whichever direction the input requires. Coordinates are
// range-checked before any network call.
func (a *App) resolvePlace(ctx context.Context, f *locationFlags) (domain.Place, error) {
	if f.city != a.cfg.DefaultCity && f.state != a.cfg.DefaultState {
		return a.geocoder.ForwardGeocode(ctx, f.city, f.state)
	}
	if err := domain.CheckCoordinates(f.lat, f.lon); err != nil {
		return domain.Place{}, err
	}
	return a.geocoder.ReverseGeocode(ctx, f.lat, f.lon)
}

func (a *App) runCoords(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("coords", pflag.ContinueOnError)
	period := fs.StringP("period", "p", "forecast", "current or forecast")
	days := fs.IntP("days", "d", 2, "forecast days")
	lat := fs.Float64("lat", a.cfg.DefaultLat, "latitude for location")
	lon := fs.Float64("lon", a.cfg.DefaultLon, "longitude for location")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := domain.CheckCoordinates(*lat, *lon); err != nil {
		return err
	}
	place, err := a.geocoder.ReverseGeocode(ctx, *lat, *lon)
	if err != nil {
		return err
	}
	return a.weatherReport(ctx, *period, place, *days)
}

func (a *App) runLocation(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("location", pflag.ContinueOnError)
	period := fs.StringP("period", "p", "forecast", "current or forecast")
	days := fs.IntP("days", "d", 2, "forecast days")
	city := fs.StringP("city", "c", a.cfg.DefaultCity, "city of interest")
	state := fs.StringP("state", "s", a.cfg.DefaultState, "the city's state")
	if err := fs.Parse(args); err != nil {
		return err
	}

	place, err := a.geocoder.ForwardGeocode(ctx, *city, *state)
	if err != nil {
		return err
	}
	return a.weatherReport(ctx, *period, place, *days)
}

// weatherReport fetches and prints either the current conditions or the
// daily forecast, with any active alerts appended.
func (a *App) weatherReport(ctx context.Context, period string, place domain.Place, days int) error {
	switch period {
	case "current":
		rep, err := a.weather.OneCall(ctx, place.Lat, place.Lon,
			[]string{domain.BlockHourly, domain.BlockMinutely, domain.BlockDaily})
		if err != nil {
			return err
		}
		if rep.Current == nil {
			return fmt.Errorf("no current conditions reported for %s, %s", place.City, place.State)
		}
		report.Current(a.out, place, *rep.Current, rep.Alerts, a.loc)
		return nil

	case "forecast":
		rep, err := a.weather.OneCall(ctx, place.Lat, place.Lon,
			[]string{domain.BlockCurrent, domain.BlockMinutely, domain.BlockHourly})
		if err != nil {
			return err
		}
		forecast := rep.Daily
		if days < len(forecast) {
			forecast = forecast[:days]
		}
		report.Forecast(a.out, place, forecast, rep.Alerts, dates.Today(a.clock, a.loc), a.loc)
		return nil

	default:
		return fmt.Errorf("invalid period %q: must be \"current\" or \"forecast\"", period)
	}
}

func (a *App) runHourlyForecast(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("hourly-forecast", pflag.ContinueOnError)
	f := a.addLocationFlags(fs)
	hours := fs.IntP("hours", "h", 8, "number of hours to report")
	if err := fs.Parse(args); err != nil {
		return err
	}

	place, err := a.resolvePlace(ctx, f)
	if err != nil {
		return err
	}

	rep, err := a.weather.OneCall(ctx, place.Lat, place.Lon,
		[]string{domain.BlockCurrent, domain.BlockMinutely, domain.BlockDaily, domain.BlockAlerts})
	if err != nil {
		return err
	}
	hourly := rep.Hourly
	if *hours < len(hourly) {
		hourly = hourly[:*hours]
	}
	report.Hourly(a.out, place, hourly, a.loc)
	return nil
}

func (a *App) runRainForecast(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("rain-forecast", pflag.ContinueOnError)
	f := a.addLocationFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	place, err := a.resolvePlace(ctx, f)
	if err != nil {
		return err
	}

	rep, err := a.weather.OneCall(ctx, place.Lat, place.Lon,
		[]string{domain.BlockCurrent, domain.BlockHourly, domain.BlockDaily, domain.BlockAlerts})
	if err != nil {
		return err
	}
	report.Rain(a.out, place, rep.Minutely, a.loc)
	return nil
}

func (a *App) runAlerts(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("alerts", pflag.ContinueOnError)
	f := a.addLocationFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	place, err := a.resolvePlace(ctx, f)
	if err != nil {
		return err
	}

	rep, err := a.weather.OneCall(ctx, place.Lat, place.Lon,
		[]string{domain.BlockCurrent, domain.BlockMinutely, domain.BlockHourly, domain.BlockDaily})
	if err != nil {
		return err
	}
	if len(rep.Alerts) == 0 {
		report.NoAlerts(a.out, place)
		return nil
	}
	report.Alerts(a.out, place, rep.Alerts, a.loc)
	return nil
}

func (a *App) runDailySummary(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("daily-summary", pflag.ContinueOnError)
	f := a.addLocationFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// The aggregate covers the whole day, so any time-of-day input is
	// discarded during normalization.
	date := dates.Today(a.clock, a.loc)
	if rest := fs.Args(); len(rest) > 0 {
		parsed, err := dates.Parse(rest[0], a.loc)
		if err != nil {
			return err
		}
		date = dates.DayString(parsed)
	}

	place, err := a.resolvePlace(ctx, f)
	if err != nil {
		return err
	}

	sum, err := a.weather.DaySummary(ctx, place.Lat, place.Lon, date)
	if err != nil {
		return err
	}
	report.DaySummary(a.out, place, sum)
	return nil
}

func (a *App) runManual(args []string) error {
	fs := pflag.NewFlagSet("manual", pflag.ContinueOnError)
	command := fs.StringP("command", "c", "manual", "command to look up")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text, err := manual.Lookup(*command)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "\n%s\n", text)
	return nil
}
