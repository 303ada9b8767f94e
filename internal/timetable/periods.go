package timetable

import (
	"time"

	"github.com/okulops/dashboard/internal/model"
)

// ResolveCurrentPeriod maps a wall-clock time ("HH:MM") to the catalog period
// whose interval contains it, both ends inclusive. Input periods do not have
// to be sorted.
//
// Returns nil when no period contains the time — before first bell, after
// last, or inside an unmodeled break. That is a valid "outside class hours"
// state, not an error. If a malformed catalog has overlapping periods, the
// match with the lowest Order wins; the tie-break is deliberate, not an
// accident of input order.
func ResolveCurrentPeriod(periods []*model.Period, clock string) *model.Period {
	var current *model.Period
	for _, p := range periods {
		if !p.Contains(clock) {
			continue
		}
		if current == nil || p.Order < current.Order {
			current = p
		}
	}
	return current
}

// DayOfWeek converts a calendar date to the 1=Monday..7=Sunday numbering used
// throughout the engine. This is the single place the Go Sunday=0 convention
// is remapped; callers reading a wall clock go through here once.
func DayOfWeek(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}

// ClockTime formats a wall-clock instant as the zero-padded "HH:MM" value the
// period catalog compares against.
func ClockTime(t time.Time) string {
	return t.Format("15:04")
}
