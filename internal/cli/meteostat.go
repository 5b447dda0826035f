package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/skycast/skycast/internal/dates"
	"github.com/skycast/skycast/internal/domain"
	"github.com/skycast/skycast/internal/report"
)

// The station network keys everything off the nearest station, so the
// default query point is the region's flagship station rather than the
// home coordinates.
const (
	dullesLat = 38.93485
	dullesLon = -77.44728
)

// Normals are published for fixed 30-year reference periods.
const (
	normalsStartYear = 1991
	normalsEndYear   = 2020
)

// Default range starts per resolution. Hourly coverage begins later than
// daily and monthly in the bulk archive.
const (
	dailyEpoch   = "1960-01-01"
	hourlyEpoch  = "1973-01-01"
	monthlyEpoch = "1960-01-01"
)

func (a *App) runMeteostat(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("meteostat requires a subcommand: try \"manual -c meteostat\"")
	}

	switch args[0] {
	case "single-day":
		return a.runSingleDay(ctx, args[1:])
	case "daily":
		return a.runSeries(ctx, "daily", dailyEpoch, args[1:])
	case "hourly":
		return a.runSeries(ctx, "hourly", hourlyEpoch, args[1:])
	case "monthly":
		return a.runSeries(ctx, "monthly", monthlyEpoch, args[1:])
	case "normals":
		return a.runNormals(ctx, args[1:])
	case "summary":
		return a.runSummary(ctx, args[1:])
	case "stations":
		return a.runStations(ctx, args[1:])
	default:
		return fmt.Errorf("unknown meteostat subcommand %q: try \"manual -c meteostat\"", args[0])
	}
}

func (a *App) stationFlags(fs *pflag.FlagSet) (lat, lon *float64) {
	lat = fs.Float64("lat", dullesLat, "latitude for station search")
	lon = fs.Float64("lon", dullesLon, "longitude for station search")
	return lat, lon
}

// nearestStation finds the closest station to the coordinates along with
// the place name used in report headers.
func (a *App) nearestStation(ctx context.Context, lat, lon float64) (domain.Station, domain.Place, error) {
	if err := domain.CheckCoordinates(lat, lon); err != nil {
		return domain.Station{}, domain.Place{}, err
	}
	found, err := a.stations.NearbyStations(ctx, lat, lon, 5)
	if err != nil {
		return domain.Station{}, domain.Place{}, err
	}
	if len(found) == 0 {
		return domain.Station{}, domain.Place{}, fmt.Errorf("no stations found near %.5f, %.5f", lat, lon)
	}
	station := found[0]
	place, err := a.geocoder.ReverseGeocode(ctx, station.Lat, station.Lon)
	if err != nil {
		return domain.Station{}, domain.Place{}, err
	}
	return station, place, nil
}

// runSingleDay reports the observation at one instant. Dates without a
// time of day mean noon. The supported window is validated before any
// network call.
func (a *App) runSingleDay(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("single-day", pflag.ContinueOnError)
	lat, lon := a.stationFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := dates.Today(a.clock, a.loc)
	if rest := fs.Args(); len(rest) > 0 {
		input = rest[0]
	}
	instant, err := dates.ParseNoon(input, a.loc)
	if err != nil {
		return err
	}
	ts := dates.Timestamp(instant)
	if !dates.InTimeMachineWindow(ts, a.clock, a.loc) {
		return fmt.Errorf("date %q is outside the supported range: on or after 1979-01-01 and no more than 4 days from today", input)
	}

	if err := domain.CheckCoordinates(*lat, *lon); err != nil {
		return err
	}
	place, err := a.geocoder.ReverseGeocode(ctx, *lat, *lon)
	if err != nil {
		return err
	}

	obs, err := a.weather.TimeMachine(ctx, *lat, *lon, ts)
	if err != nil {
		return err
	}
	report.SingleDay(a.out, place, obs, a.loc)
	return nil
}

// runSeries fetches one bulk series, dumps it to CSV, and prints the
// aggregate report.
func (a *App) runSeries(ctx context.Context, resolution, epoch string, args []string) error {
	fs := pflag.NewFlagSet("meteostat "+resolution, pflag.ContinueOnError)
	lat, lon := a.stationFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	start, end, err := a.parseRange(fs.Args(), epoch)
	if err != nil {
		return err
	}

	station, place, err := a.nearestStation(ctx, *lat, *lon)
	if err != nil {
		return err
	}

	startStr, endStr := dates.DayString(start), dates.DayString(end)
	switch resolution {
	case "daily":
		records, err := a.stations.DailySeries(ctx, station.ID, start, end)
		if err != nil {
			return err
		}
		if err := a.exporter.SaveDailySeries(records); err != nil {
			a.logger.Warn("csv export failed", "error", err)
		}
		report.DailySeries(a.out, place, station, startStr, endStr, records)

	case "hourly":
		records, err := a.stations.HourlySeries(ctx, station.ID, start, end)
		if err != nil {
			return err
		}
		if err := a.exporter.SaveHourlySeries(records); err != nil {
			a.logger.Warn("csv export failed", "error", err)
		}
		report.HourlySeries(a.out, place, station, startStr, endStr, records)

	case "monthly":
		records, err := a.stations.MonthlySeries(ctx, station.ID, start, end)
		if err != nil {
			return err
		}
		if err := a.exporter.SaveMonthlySeries(records); err != nil {
			a.logger.Warn("csv export failed", "error", err)
		}
		report.MonthlySeries(a.out, place, station, startStr, endStr, records)
	}
	return nil
}

func (a *App) runNormals(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("normals", pflag.ContinueOnError)
	lat, lon := a.stationFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	station, _, err := a.nearestStation(ctx, *lat, *lon)
	if err != nil {
		return err
	}

	records, err := a.stations.Normals(ctx, station.ID, normalsStartYear, normalsEndYear)
	if err != nil {
		return err
	}
	if err := a.exporter.SaveNormals(records); err != nil {
		a.logger.Warn("csv export failed", "error", err)
	}
	report.Normals(a.out, normalsStartYear, normalsEndYear, records)
	return nil
}

// runSummary prints descriptive statistics over the daily series,
// defaulting to the trailing year.
func (a *App) runSummary(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("summary", pflag.ContinueOnError)
	lat, lon := a.stationFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	yearAgo := dates.DayString(a.clock.Now().In(a.loc).AddDate(-1, 0, 0))
	start, end, err := a.parseRange(fs.Args(), yearAgo)
	if err != nil {
		return err
	}

	station, place, err := a.nearestStation(ctx, *lat, *lon)
	if err != nil {
		return err
	}

	records, err := a.stations.DailySeries(ctx, station.ID, start, end)
	if err != nil {
		return err
	}
	if err := a.exporter.SaveDailySeries(records); err != nil {
		a.logger.Warn("csv export failed", "error", err)
	}
	report.SummaryStats(a.out, place, dates.DayString(start), dates.DayString(end), records)
	return nil
}

func (a *App) runStations(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("stations", pflag.ContinueOnError)
	lat, lon := a.stationFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := domain.CheckCoordinates(*lat, *lon); err != nil {
		return err
	}
	found, err := a.stations.NearbyStations(ctx, *lat, *lon, 5)
	if err != nil {
		return err
	}
	report.Stations(a.out, found)
	return nil
}

// parseRange resolves the optional [STARTDATE] [ENDDATE] positionals,
// defaulting to the given epoch through today.
func (a *App) parseRange(positionals []string, epoch string) (start, end time.Time, err error) {
	startStr, endStr := epoch, dates.Today(a.clock, a.loc)
	if len(positionals) > 0 {
		startStr = positionals[0]
	}
	if len(positionals) > 1 {
		endStr = positionals[1]
	}

	start, err = dates.Parse(startStr, a.loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = dates.Parse(endStr, a.loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s is before start date %s", dates.DayString(end), dates.DayString(start))
	}
	return start, end, nil
}
