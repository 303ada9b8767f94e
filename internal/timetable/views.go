package timetable

import (
	"iter"
	"sort"

	"github.com/okulops/dashboard/internal/model"
)

// ActiveLesson is one row of the active-lesson-per-class view. Schedule is
// nil when the class has a free period right now — the row is still emitted,
// "no lesson" is a renderable state.
type ActiveLesson struct {
	Class    *model.ClassRoom `json:"class"`
	Schedule *model.Schedule  `json:"schedule"` // nil = no lesson
}

// ActiveLessons projects, for the resolved current period, one row per known
// class: the lesson occupying that class right now, or an explicit empty row.
// Every class appears exactly once, in input order. current may be nil
// (outside class hours); every row is then an empty one.
func ActiveLessons(ix Index, classes []*model.ClassRoom, dayOfWeek int, current *model.Period) []ActiveLesson {
	byClass := make(map[int64]*model.Schedule)
	if current != nil {
		for key, commitments := range ix {
			if key.DayOfWeek != dayOfWeek || key.PeriodID != current.ID {
				continue
			}
			for _, c := range commitments {
				if c.Kind == KindLesson {
					byClass[c.Schedule.ClassID] = c.Schedule
				}
			}
		}
	}

	rows := make([]ActiveLesson, 0, len(classes))
	for _, class := range classes {
		rows = append(rows, ActiveLesson{Class: class, Schedule: byClass[class.ID]})
	}
	return rows
}

// RosterEntry is one duty assignment inside a location's roster for a day.
type RosterEntry struct {
	TeacherID int64       `json:"teacher_id"`
	Duty      *model.Duty `json:"duty"`
}

// ActiveAt reports whether the duty is active during the given period:
// an all-day duty always is, a period duty only during its own period.
// A nil current period means "outside class hours" and matches nothing
// but all-day duties.
func (e RosterEntry) ActiveAt(current *model.Period) bool {
	if e.Duty.AllDay() {
		return true
	}
	return current != nil && *e.Duty.PeriodID == current.ID
}

// DutyRoster groups the day's duty commitments by location. Each duty record
// appears once per location even when the index expanded it across every
// period. Entries within a location are unordered.
func DutyRoster(ix Index, dayOfWeek int) map[int64][]RosterEntry {
	roster := make(map[int64][]RosterEntry)
	seen := make(map[int64]bool)

	for key, commitments := range ix {
		if key.DayOfWeek != dayOfWeek {
			continue
		}
		for _, c := range commitments {
			if c.Kind != KindDuty || seen[c.Duty.ID] {
				continue
			}
			seen[c.Duty.ID] = true
			roster[c.Duty.LocationID] = append(roster[c.Duty.LocationID], RosterEntry{
				TeacherID: c.Duty.TeacherID,
				Duty:      c.Duty,
			})
		}
	}

	return roster
}

// ItineraryStop is one lesson on a teacher's daily itinerary.
type ItineraryStop struct {
	Period   *model.Period   `json:"period"`
	Schedule *model.Schedule `json:"schedule"`
}

// DailyItinerary yields one teacher's lessons for a day in period order.
// The sequence is finite and restartable; an empty sequence is a valid
// result ("free all day"). Duties are not itinerary stops.
func DailyItinerary(ix Index, periods []*model.Period, teacherID int64, dayOfWeek int) iter.Seq[ItineraryStop] {
	ordered := make([]*model.Period, len(periods))
	copy(ordered, periods)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	return func(yield func(ItineraryStop) bool) {
		for _, p := range ordered {
			commitments := ix[Key{TeacherID: teacherID, DayOfWeek: dayOfWeek, PeriodID: p.ID}]
			for _, c := range commitments {
				if c.Kind != KindLesson {
					continue
				}
				if !yield(ItineraryStop{Period: p, Schedule: c.Schedule}) {
					return
				}
			}
		}
	}
}
