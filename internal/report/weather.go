// Package report renders weather and climate records as aligned terminal
// text. Formatters are pure: they take already-fetched records, convert units
// for display, and write to an io.Writer. No formatter performs I/O beyond
// the writer it is handed.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/skycast/skycast/internal/domain"
)

const (
	dateTimeLayout = "Monday, January 02, 2006, 03:04 PM"
	clockLayout    = "03:04 PM"
	dayLayout      = "2006-01-02"
)

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Current renders the current-conditions report followed by any active
// alerts, or a "no alerts" line.
func Current(w io.Writer, place domain.Place, cur domain.CurrentConditions, alerts []domain.Alert, loc *time.Location) {
	fmt.Fprintf(w, "\nCURRENT WEATHER for\n%s\n", cur.At.In(loc).Format(dateTimeLayout))
	fmt.Fprintf(w, "%s, %s: %s, %s\n", place.City, place.State, coord(place.Lat), coord(place.Lon))
	writeConditions(w, cur, loc)

	if len(alerts) > 0 {
		Alerts(w, place, alerts, loc)
	} else {
		NoAlerts(w, place)
	}
}

// SingleDay renders a point-in-time historical observation.
func SingleDay(w io.Writer, place domain.Place, obs domain.Observation, loc *time.Location) {
	fmt.Fprintf(w, "\nWEATHER for %s\n", obs.At.In(loc).Format(dateTimeLayout))
	fmt.Fprintf(w, "%s, %s: %s, %s\n", place.City, place.State, coord(place.Lat), coord(place.Lon))
	writeConditions(w, obs.CurrentConditions, loc)
}

// writeConditions renders the labeled field block shared by the current and
// single-day reports.
func writeConditions(w io.Writer, cur domain.CurrentConditions, loc *time.Location) {
	fmt.Fprintf(w, "           weather: %s\n", cur.Description)
	fmt.Fprintf(w, "       temperature: %.1f °F\n", cur.TempF)
	fmt.Fprintf(w, "        feels like: %.1f °F\n", cur.FeelsLikeF)
	fmt.Fprintf(w, "         dew point: %.1f °F\n", cur.DewPointF)
	fmt.Fprintf(w, "          humidity: %.0f%%\n", cur.Humidity)

	mmhg := domain.HPaToMmHg(cur.PressureHPa)
	fmt.Fprintf(w, "          pressure: %.1f mmHg / %.1f ins\n", mmhg, domain.MmHgToInHg(mmhg))

	uv := domain.Value(cur.UVIndex, 0)
	fmt.Fprintf(w, "          UV index: %.1f -- %s\n", uv, domain.UVRisk(uv))
	fmt.Fprintf(w, "        visibility: %.1f miles\n", domain.MetersToMiles(domain.Value(cur.VisibilityM, 0)))

	if snow := domain.Value(cur.SnowMm, 0); snow > 0 {
		fmt.Fprintf(w, "              snow: %.2f in.\n", domain.MmToInches(snow))
	}
	if rain := domain.Value(cur.RainMm, 0); rain > 0 {
		fmt.Fprintf(w, "              rain: %.2f in.\n", domain.MmToInches(rain))
	}

	fmt.Fprintf(w, "    wind direction: %s\n", windDirection(cur.WindDeg))
	fmt.Fprintf(w, "        wind speed: %.1f mph\n", cur.WindMPH)
	fmt.Fprintf(w, "              gust: %.1f\n", domain.Value(cur.GustMPH, 0))
	fmt.Fprintf(w, "           sunrise: %s\n", clockOrDash(cur.Sunrise, loc))
	fmt.Fprintf(w, "            sunset: %s\n", clockOrDash(cur.Sunset, loc))
}

func windDirection(deg *float64) string {
	if deg == nil {
		return "X"
	}
	return domain.CompassText(*deg)
}

func clockOrDash(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "--"
	}
	return t.In(loc).Format(clockLayout)
}

// Forecast renders the daily forecast for the given days, then any active
// alerts. today is the current calendar date (YYYY-MM-DD) in loc; the
// matching day is headed "Today".
func Forecast(w io.Writer, place domain.Place, days []domain.DailyForecast, alerts []domain.Alert, today string, loc *time.Location) {
	fmt.Fprintf(w, "\nFORECAST for %s, %s\n", place.City, place.State)

	for _, day := range days {
		local := day.Date.In(loc)
		if local.Format(dayLayout) == today {
			fmt.Fprintf(w, "Today: %s, %s:\n", local.Weekday(), local.Format("January 02"))
		} else {
			fmt.Fprintf(w, "%s:\n", local.Weekday())
		}
		fmt.Fprintf(w, "   %s.\n", day.Summary)
		fmt.Fprintf(w, "    Temperature low: %.0f °F\n", day.LowF)
		fmt.Fprintf(w, "   Temperature high: %.0f °F\n", day.HighF)
		fmt.Fprintf(w, "           Humidity: %.0f%%\n", day.Humidity)
		fmt.Fprintf(w, "         Wind speed: %.0f mph\n", day.WindMPH)
		fmt.Fprintf(w, "     Chance of rain: %.0f%%\n", day.RainChance*100)
		fmt.Fprintf(w, " Expected rain fall: %.2f in.\n", domain.MmToInches(domain.Value(day.RainMm, 0)))
		if snow := domain.MmToInches(domain.Value(day.SnowMm, 0)); snow > 0 {
			fmt.Fprintf(w, " Expected snow fall: %.2f in.\n", snow)
		}
	}

	if len(alerts) > 0 {
		Alerts(w, place, alerts, loc)
	} else {
		NoAlerts(w, place)
	}
}

// Hourly renders the hourly forecast three hours across per row group.
func Hourly(w io.Writer, place domain.Place, hours []domain.HourlyConditions, loc *time.Location) {
	fmt.Fprintf(w, "\nHourly forecast for %s, %s\n", place.City, place.State)
	if len(hours) == 0 {
		return
	}
	fmt.Fprintf(w, "%s\n", hours[0].At.In(loc).Format("Monday, Jan 02, 2006"))

	const perRow = 3
	for i := 0; i < len(hours); i += perRow {
		group := hours[i:min(i+perRow, len(hours))]

		for _, h := range group {
			fmt.Fprint(w, center(h.At.In(loc).Format(clockLayout), 30))
		}
		fmt.Fprintln(w)
		for _, h := range group {
			fmt.Fprint(w, center(h.Description, 30))
		}
		fmt.Fprintln(w)
		for _, h := range group {
			fmt.Fprintf(w, "%-30s", fmt.Sprintf("     Temperature: %.0f °F", h.TempF))
		}
		fmt.Fprintln(w)
		for _, h := range group {
			rain := domain.MmToInches(domain.Value(h.RainMm, 0))
			fmt.Fprintf(w, "%-30s", fmt.Sprintf("            rain: %.2f in.", rain))
		}
		fmt.Fprintln(w)
		if groupHasSnow(group) {
			for _, h := range group {
				snow := domain.MmToInches(domain.Value(h.SnowMm, 0))
				fmt.Fprintf(w, "%-30s", fmt.Sprintf("            snow: %.2f in.", snow))
			}
			fmt.Fprintln(w)
		}
		for _, h := range group {
			fmt.Fprintf(w, "%-30s", fmt.Sprintf("             UVI: %s", trimFloat(domain.Value(h.UVIndex, 0))))
		}
		fmt.Fprintln(w)
		for _, h := range group {
			fmt.Fprintf(w, "%-30s", fmt.Sprintf("  Chance of rain: %.0f %%", h.RainChance*100))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w)
	}
}

func groupHasSnow(group []domain.HourlyConditions) bool {
	for _, h := range group {
		if domain.Value(h.SnowMm, 0) > 0 {
			return true
		}
	}
	return false
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return fmt.Sprintf("%*s%s%*s", left, "", s, right, "")
}

// Rain renders the next hour's expected rainfall at five-minute intervals
// with a summed total.
func Rain(w io.Writer, place domain.Place, minutes []domain.MinutePrecip, loc *time.Location) {
	fmt.Fprintf(w, "\nExpected rainfall in the next hour\n")
	if len(minutes) == 0 {
		fmt.Fprintf(w, "No precipitation data for %s, %s\n", place.City, place.State)
		return
	}
	fmt.Fprintf(w, "%s -- %s, %s\n", minutes[0].At.In(loc).Format(dayLayout), place.City, place.State)

	total := 0.0
	for i := 0; i < len(minutes); i += 5 {
		in := domain.MmToInches(minutes[i].PrecipMm)
		total += in
		fmt.Fprintf(w, "%s: %.4f in.\n", minutes[i].At.In(loc).Format("03:04"), in)
	}
	fmt.Fprintf(w, "Total expected precipitation: %.4f in.\n", total)
}

// Alerts renders every active alert in full.
func Alerts(w io.Writer, place domain.Place, alerts []domain.Alert, loc *time.Location) {
	fmt.Fprintln(w)
	for _, a := range alerts {
		start := a.Start.In(loc)
		end := a.End.In(loc)
		fmt.Fprintf(w, "\nALERT from %s\n", a.Sender)
		fmt.Fprintf(w, "for %s, %s\n", place.City, place.State)
		fmt.Fprintf(w, "starts: %s, %s\n", start.Weekday(), start.Format(clockLayout))
		fmt.Fprintf(w, "   end: %s, %s\n\n", end.Weekday(), end.Format(clockLayout))
		fmt.Fprintf(w, "%s\n", a.Event)
		fmt.Fprintf(w, "%s\n\n", a.Description)
	}
}

// NoAlerts renders the line shown when no alerts are active.
func NoAlerts(w io.Writer, place domain.Place) {
	fmt.Fprintf(w, "\nNo alerts have been issued for %s, %s\n", place.City, place.State)
}

// DaySummary renders aggregate statistics for one calendar day.
func DaySummary(w io.Writer, place domain.Place, sum domain.DaySummary) {
	fmt.Fprintf(w, "\nDAILY SUMMARY OF WEATHER for %s\n", sum.Date)
	fmt.Fprintf(w, "%s, %s: %s, %s\n", place.City, place.State, coord(place.Lat), coord(place.Lon))
	fmt.Fprintf(w, "    temperature: %.1f °F\n", sum.TempF)
	fmt.Fprintf(w, "min temperature: %.1f °F\n", sum.TempMinF)
	fmt.Fprintf(w, "max temperature: %.1f °F\n", sum.TempMaxF)
	fmt.Fprintf(w, "       humidity: %.0f%%\n", sum.Humidity)
	fmt.Fprintf(w, "  precipitation: %.2f in.\n", domain.MmToInches(sum.PrecipMm))
	fmt.Fprintf(w, "       pressure: %.1f mmHg\n", domain.HPaToMmHg(sum.PressureHPa))
	fmt.Fprintf(w, "    cloud cover: %.0f%%\n", sum.CloudCover)
	fmt.Fprintf(w, " max wind speed: %.0f mph\n", sum.MaxWindMPH)
	fmt.Fprintf(w, " wind direction: %s\n", domain.CompassText(sum.MaxWindDeg))
}

// Quote renders the post-report quotation.
func Quote(w io.Writer, text, author string) {
	fmt.Fprintf(w, "\n%s -- %s\n", text, author)
}
