// Package dates converts between free-form date strings, timezone-aware
// instants, and UNIX timestamps. Every function that resolves a wall-clock
// string takes an explicit *time.Location; the configured default zone is
// supplied by the caller, never read from ambient state.
package dates

import (
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// ErrUnparseable marks input with no recognizable date content. There is no
// recovery: callers report it to the user and stop.
var ErrUnparseable = errors.New("unparseable date")

// DayLayout is the canonical date-only form used across reports and exports.
const DayLayout = "2006-01-02"

// layouts are tried in order. hasClock tells the normalizer whether the
// string carried a time-of-day component.
var layouts = []struct {
	layout   string
	hasClock bool
	hasZone  bool
}{
	{time.RFC3339, true, true},
	{"2006-01-02 15:04:05", true, false},
	{"2006-01-02 15:04", true, false},
	{"2006-01-02T15:04:05", true, false},
	{"2006-01-02 3:04 PM", true, false},
	{"2006-01-02 3:04PM", true, false},
	{DayLayout, false, false},
	{"2006/01/02", false, false},
	{"01-02-2006 15:04", true, false},
	{"01-02-2006", false, false},
	{"01/02/2006 15:04", true, false},
	{"01/02/2006", false, false},
	{"January 2, 2006", false, false},
	{"Jan 2, 2006", false, false},
	{"2 January 2006", false, false},
}

// Parse interprets a free-form date string as an instant in loc. A string
// without a time-of-day component means midnight of that date, the default
// for range boundaries.
func Parse(s string, loc *time.Location) (time.Time, error) {
	t, _, err := parse(s, loc)
	return t, err
}

// ParseNoon interprets a free-form date string as an instant in loc, but a
// string without a time-of-day component means noon of that date. Used for
// point-in-time queries, where midday is the representative moment.
func ParseNoon(s string, loc *time.Location) (time.Time, error) {
	t, hasClock, err := parse(s, loc)
	if err != nil {
		return time.Time{}, err
	}
	if !hasClock {
		t = time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, loc)
	}
	return t, nil
}

func parse(s string, loc *time.Location) (time.Time, bool, error) {
	for _, l := range layouts {
		var t time.Time
		var err error
		if l.hasZone {
			t, err = time.Parse(l.layout, s)
			if err == nil {
				t = t.In(loc)
			}
		} else {
			t, err = time.ParseInLocation(l.layout, s, loc)
		}
		if err == nil {
			return t, l.hasClock, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("%w: %q", ErrUnparseable, s)
}

// Timestamp converts an instant to UTC epoch seconds. The result is
// independent of the instant's display zone.
func Timestamp(t time.Time) int64 { return t.Unix() }

// FromTimestamp converts UTC epoch seconds to an instant displayed in loc.
func FromTimestamp(ts int64, loc *time.Location) time.Time {
	return time.Unix(ts, 0).In(loc)
}

// Format renders UTC epoch seconds as a wall-clock string in an explicit
// zone. The same timestamp renders differently per zone while naming the
// same instant.
func Format(ts int64, loc *time.Location, layout string) string {
	return FromTimestamp(ts, loc).Format(layout)
}

// DayString renders an instant's calendar date.
func DayString(t time.Time) string { return t.Format(DayLayout) }

// Today is the current calendar date in loc, per the injected clock.
func Today(clock clockwork.Clock, loc *time.Location) string {
	return DayString(clock.Now().In(loc))
}

// Point-in-time queries are only served for dates from Jan 1 1979 up to
// four days past the current date.
var timeMachineEarliest = time.Date(1979, time.January, 1, 0, 0, 0, 0, time.UTC)

// InTimeMachineWindow reports whether a timestamp's calendar date falls
// inside the provider's supported historical range. Checked locally before
// any network call.
func InTimeMachineWindow(ts int64, clock clockwork.Clock, loc *time.Location) bool {
	t := FromTimestamp(ts, loc)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	latest := clock.Now().In(loc).AddDate(0, 0, 4)
	latestDay := time.Date(latest.Year(), latest.Month(), latest.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(timeMachineEarliest) && !day.After(latestDay)
}
