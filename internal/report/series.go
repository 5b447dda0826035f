package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/skycast/skycast/internal/domain"
)

// Stations renders nearby climate stations with distance, elevation, and
// per-resolution inventory ranges.
func Stations(w io.Writer, stations []domain.Station) {
	fmt.Fprintln(w)
	for i, s := range stations {
		fmt.Fprintf(w, "%d %s: %s, %s, %.2f ft\n", i, s.Name, coord(s.Lat), coord(s.Lon), domain.MetersToFeet(s.ElevationM))
		fmt.Fprintf(w, "   distance: %.2f miles\n", domain.StationDistanceMiles(s.DistanceM))
		fmt.Fprintf(w, "     hourly: %s - %s\n", dayOrDash(s.HourlyStart), dayOrDash(s.HourlyEnd))
		fmt.Fprintf(w, "      daily: %s - %s\n", dayOrDash(s.DailyStart), dayOrDash(s.DailyEnd))
		fmt.Fprintf(w, "    monthly: %s - %s\n", dayOrDash(s.MonthlyStart), dayOrDash(s.MonthlyEnd))
		fmt.Fprintln(w)
	}
}

func dayOrDash(t *time.Time) string {
	if t == nil {
		return "--"
	}
	return t.Format(dayLayout)
}

// seriesHeader is the location/station/date-range block above every bulk
// series report.
func seriesHeader(w io.Writer, place domain.Place, station domain.Station, start, end string, withCoords bool) {
	fmt.Fprintf(w, "\n%s, %s\n", place.City, place.State)
	fmt.Fprintf(w, "Station: %s\n", station.Name)
	fmt.Fprintf(w, "Weather data for %s to %s\n", start, end)
	if withCoords {
		fmt.Fprintf(w, "Latitude: %s, Longitude: %s\n", coord(station.Lat), coord(station.Lon))
	}
	fmt.Fprintln(w)
}

// DailySeries renders period aggregates followed by a day-per-row table, all
// converted to imperial units.
func DailySeries(w io.Writer, place domain.Place, station domain.Station, start, end string, records []domain.DailyRecord) {
	seriesHeader(w, place, station, start, end, false)

	avgs := column(records, func(r domain.DailyRecord) *float64 { return optCToF(r.TempAvgC) })
	mins := column(records, func(r domain.DailyRecord) *float64 { return optCToF(r.TempMinC) })
	maxs := column(records, func(r domain.DailyRecord) *float64 { return optCToF(r.TempMaxC) })
	rain := column(records, func(r domain.DailyRecord) *float64 { return optMmToIn(r.PrecipMm) })
	snow := column(records, func(r domain.DailyRecord) *float64 { return optMmToIn(r.SnowMm) })
	wind := column(records, func(r domain.DailyRecord) *float64 { return optKmhToMph(r.WindSpdKmh) })

	fmt.Fprintf(w, "       Mean temp: %.1f °F\n", domain.Mean(avgs))
	fmt.Fprintf(w, "Highest max temp: %.1f °F\n", domain.Max(maxs))
	fmt.Fprintf(w, " Lowest min temp: %.1f °F\n", domain.Min(mins))
	fmt.Fprintf(w, "   Mean Wind Spd: %.0f mph\n", domain.Mean(wind))
	fmt.Fprintf(w, "    Max Wind Spd: %.0f mph\n", domain.Max(wind))
	fmt.Fprintf(w, "    Min Wind Spd: %.0f mph\n", domain.Min(wind))
	fmt.Fprintf(w, "  Total rainfall: %.2f in.\n", domain.Sum(rain))
	fmt.Fprintf(w, "  Total snowfall: %.2f in.\n", domain.Sum(snow))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Date\tAvg temp\tMin temp\tMax temp\tRain\tSnow\tWind Dir\tWind Spd\tPressure\t")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Date.Format(dayLayout),
			cell(optCToF(r.TempAvgC), 1),
			cell(optCToF(r.TempMinC), 1),
			cell(optCToF(r.TempMaxC), 1),
			cell(optMmToIn(r.PrecipMm), 2),
			cell(optMmToIn(r.SnowMm), 2),
			cell(r.WindDirDeg, 0),
			cell(optKmhToMph(r.WindSpdKmh), 0),
			cell(optHPaToMmHg(r.PressureHPa), 1),
		)
	}
	tw.Flush()
}

// HourlySeries renders period aggregates followed by an hour-per-row table.
func HourlySeries(w io.Writer, place domain.Place, station domain.Station, start, end string, records []domain.HourlyRecord) {
	seriesHeader(w, place, station, start, end, true)

	temps := column(records, func(r domain.HourlyRecord) *float64 { return optCToF(r.TempC) })
	dews := column(records, func(r domain.HourlyRecord) *float64 { return optCToF(r.DewPointC) })
	hum := column(records, func(r domain.HourlyRecord) *float64 { return r.HumidityPct })
	rain := column(records, func(r domain.HourlyRecord) *float64 { return optMmToIn(r.PrecipMm) })
	snow := column(records, func(r domain.HourlyRecord) *float64 { return optMmToIn(r.SnowMm) })
	wind := column(records, func(r domain.HourlyRecord) *float64 { return optKmhToMph(r.WindSpdKmh) })

	fmt.Fprintf(w, "     Mean Temp: %.1f °F\n", domain.Mean(temps))
	fmt.Fprintf(w, "      Max Temp: %.1f °F\n", domain.Max(temps))
	fmt.Fprintf(w, "      Min Temp: %.1f °F\n", domain.Min(temps))
	fmt.Fprintf(w, "Mean Dew Point: %.1f °F\n", domain.Mean(dews))
	fmt.Fprintf(w, " Mean Humidity: %.0f%%\n", domain.Mean(hum))
	fmt.Fprintf(w, " Mean Wind Spd: %.0f\n", domain.Mean(wind))
	fmt.Fprintf(w, "  Max Wind Spd: %.0f\n", domain.Max(wind))
	fmt.Fprintf(w, "  Min Wind Spd: %.0f\n", domain.Min(wind))
	fmt.Fprintf(w, "Total rainfall: %.2f in.\n", domain.Sum(rain))
	fmt.Fprintf(w, "Total snowfall: %.2f in.\n", domain.Sum(snow))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Time\tTemp\tDew Point\tHumidity\tRain\tSnow\tWind Dir\tWind Spd\tPressure\t")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Time.Format("2006-01-02 15:04"),
			cell(optCToF(r.TempC), 1),
			cell(optCToF(r.DewPointC), 1),
			cell(r.HumidityPct, 0),
			cell(optMmToIn(r.PrecipMm), 2),
			cell(optMmToIn(r.SnowMm), 2),
			cell(r.WindDirDeg, 0),
			cell(optKmhToMph(r.WindSpdKmh), 0),
			cell(optHPaToMmHg(r.PressureHPa), 1),
		)
	}
	tw.Flush()
}

// MonthlySeries renders period aggregates followed by a month-per-row table.
func MonthlySeries(w io.Writer, place domain.Place, station domain.Station, start, end string, records []domain.MonthlyRecord) {
	seriesHeader(w, place, station, start, end, true)

	avgs := column(records, func(r domain.MonthlyRecord) *float64 { return optCToF(r.TempAvgC) })
	mins := column(records, func(r domain.MonthlyRecord) *float64 { return optCToF(r.TempMinC) })
	maxs := column(records, func(r domain.MonthlyRecord) *float64 { return optCToF(r.TempMaxC) })
	rain := column(records, func(r domain.MonthlyRecord) *float64 { return optMmToIn(r.PrecipMm) })
	wind := column(records, func(r domain.MonthlyRecord) *float64 { return optKmhToMph(r.WindSpdKmh) })
	pres := column(records, func(r domain.MonthlyRecord) *float64 { return optHPaToMmHg(r.PressureHPa) })

	fmt.Fprintf(w, "            Mean Temp: %.2f °F\n", domain.Mean(avgs))
	fmt.Fprintf(w, "     Highest max Temp: %.2f °F\n", domain.Max(maxs))
	fmt.Fprintf(w, "      Lowest min Temp: %.2f °F\n", domain.Min(mins))
	fmt.Fprintf(w, "        Mean Wind Spd: %.0f mph\n", domain.Mean(wind))
	fmt.Fprintf(w, "         Max Wind Spd: %.0f mph\n", domain.Max(wind))
	fmt.Fprintf(w, "         Min Wind Spd: %.0f mph\n", domain.Min(wind))
	fmt.Fprintf(w, "        Mean pressure: %.2f mmHg\n", domain.Mean(pres))
	fmt.Fprintf(w, "Mean monthly rainfall: %.2f in.\n", domain.Mean(rain))
	fmt.Fprintf(w, "       Total rainfall: %.2f in.\n", domain.Sum(rain))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Month\tAvg Temp\tMin Temp\tMax Temp\tPrecipitation\tWind spd\tPressure\t")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Month.Format("2006-01"),
			cell(optCToF(r.TempAvgC), 1),
			cell(optCToF(r.TempMinC), 1),
			cell(optCToF(r.TempMaxC), 1),
			cell(optMmToIn(r.PrecipMm), 2),
			cell(optKmhToMph(r.WindSpdKmh), 0),
			cell(optHPaToMmHg(r.PressureHPa), 1),
		)
	}
	tw.Flush()
}

// Normals renders 30-year monthly climate normals: annual means first, then
// a month-per-row table.
func Normals(w io.Writer, startYear, endYear int, records []domain.NormalsRecord) {
	fmt.Fprintf(w, "\nNORMALS CALCULATED MONTHLY FROM %d TO %d\n\n", startYear, endYear)

	avgs := column(records, func(r domain.NormalsRecord) *float64 { return optCToF(r.TempAvgC) })
	mins := column(records, func(r domain.NormalsRecord) *float64 { return optCToF(r.TempMinC) })
	maxs := column(records, func(r domain.NormalsRecord) *float64 { return optCToF(r.TempMaxC) })
	rain := column(records, func(r domain.NormalsRecord) *float64 { return optMmToIn(r.PrecipMm) })
	wind := column(records, func(r domain.NormalsRecord) *float64 { return optKmhToMph(r.WindSpdKmh) })
	pres := column(records, func(r domain.NormalsRecord) *float64 { return optHPaToMmHg(r.PressureHPa) })
	sun := column(records, func(r domain.NormalsRecord) *float64 { return r.SunshineMin })

	fmt.Fprintln(w, "Annual values:")
	fmt.Fprintf(w, "  Temperature: %.1f °F\n", domain.Mean(avgs))
	fmt.Fprintf(w, "     Min Temp: %.1f °F\n", domain.Mean(mins))
	fmt.Fprintf(w, "     Max Temp: %.1f °F\n", domain.Mean(maxs))
	fmt.Fprintf(w, "   Wind speed: %.1f mph\n", domain.Mean(wind))
	fmt.Fprintf(w, "     Pressure: %.1f mmHg\n", domain.Mean(pres))
	fmt.Fprintf(w, "    Total sun: %.1f min\n", domain.Mean(sun))
	fmt.Fprintf(w, "  Mean precip: %.1f in.\n", domain.Mean(rain))
	fmt.Fprintf(w, " Total precip: %.1f in.\n", domain.Sum(rain))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Month\tAvg Temp\tMin temp\tMax temp\tPrecip\tWind Spd\tPressure\tTotal Sun\t")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			int(r.Month),
			cell(optCToF(r.TempAvgC), 1),
			cell(optCToF(r.TempMinC), 1),
			cell(optCToF(r.TempMaxC), 1),
			cell(optMmToIn(r.PrecipMm), 2),
			cell(optKmhToMph(r.WindSpdKmh), 0),
			cell(optHPaToMmHg(r.PressureHPa), 1),
			cell(r.SunshineMin, 0),
		)
	}
	tw.Flush()
}

// SummaryStats renders count/mean/std/min/max rows over the daily series
// columns for the given range.
func SummaryStats(w io.Writer, place domain.Place, start, end string, records []domain.DailyRecord) {
	fmt.Fprintf(w, "\nSummary for %s, %s from %s to %s\n\n", place.City, place.State, start, end)

	cols := []struct {
		name string
		prec int
		vals []*float64
	}{
		{"Avg Temp", 1, column(records, func(r domain.DailyRecord) *float64 { return optCToF(r.TempAvgC) })},
		{"Min temp", 1, column(records, func(r domain.DailyRecord) *float64 { return optCToF(r.TempMinC) })},
		{"Max temp", 1, column(records, func(r domain.DailyRecord) *float64 { return optCToF(r.TempMaxC) })},
		{"Rain", 2, column(records, func(r domain.DailyRecord) *float64 { return optMmToIn(r.PrecipMm) })},
		{"Snow", 2, column(records, func(r domain.DailyRecord) *float64 { return optMmToIn(r.SnowMm) })},
		{"Wind Dir", 0, column(records, func(r domain.DailyRecord) *float64 { return r.WindDirDeg })},
		{"Wind Spd", 0, column(records, func(r domain.DailyRecord) *float64 { return optKmhToMph(r.WindSpdKmh) })},
		{"Pressure", 1, column(records, func(r domain.DailyRecord) *float64 { return optHPaToMmHg(r.PressureHPa) })},
	}

	stats := make([]domain.Stats, len(cols))
	for i, c := range cols {
		stats[i] = domain.Describe(c.vals)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, c := range cols {
		fmt.Fprintf(tw, "%s\t", c.name)
	}
	fmt.Fprintln(tw)

	rows := []struct {
		name string
		pick func(domain.Stats) float64
	}{
		{"count", func(s domain.Stats) float64 { return float64(s.Count) }},
		{"mean", func(s domain.Stats) float64 { return s.Mean }},
		{"std", func(s domain.Stats) float64 { return s.Std }},
		{"min", func(s domain.Stats) float64 { return s.Min }},
		{"max", func(s domain.Stats) float64 { return s.Max }},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t", row.name)
		for i, c := range cols {
			prec := c.prec
			if row.name == "count" {
				prec = 0
			}
			fmt.Fprintf(tw, "%s\t", formatStat(row.pick(stats[i]), prec))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func formatStat(v float64, prec int) string {
	if math.IsNaN(v) {
		return "--"
	}
	return fmt.Sprintf("%.*f", prec, v)
}

// cell renders an optional value for a table cell, "--" when absent.
func cell(p *float64, prec int) string {
	if p == nil {
		return "--"
	}
	return fmt.Sprintf("%.*f", prec, *p)
}

func column[T any](items []T, pick func(T) *float64) []*float64 {
	out := make([]*float64, len(items))
	for i, item := range items {
		out[i] = pick(item)
	}
	return out
}

func optConv(p *float64, conv func(float64) float64) *float64 {
	if p == nil {
		return nil
	}
	v := conv(*p)
	return &v
}

func optCToF(p *float64) *float64     { return optConv(p, domain.CToF) }
func optMmToIn(p *float64) *float64   { return optConv(p, domain.MmToInches) }
func optKmhToMph(p *float64) *float64 { return optConv(p, domain.KmhToMph) }
func optHPaToMmHg(p *float64) *float64 {
	return optConv(p, domain.HPaToMmHg)
}
