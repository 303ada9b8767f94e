package timetable

import (
	"sort"
	"time"

	"github.com/okulops/dashboard/internal/model"
)

// Reason says why a teacher is unavailable for a slot.
type Reason string

const (
	ReasonLesson Reason = "lesson"
	ReasonDuty   Reason = "duty"
	ReasonAbsent Reason = "absent"
)

// Availability is the answer to "is teacher X free at period P on day D".
type Availability struct {
	Available bool   `json:"available"`
	Reason    Reason `json:"reason,omitempty"` // empty when available
}

// Availability reports whether a teacher is free in the given slot.
//
// Precedence when several reasons apply: lesson, then duty, then absence.
// A teacher standing in a classroom is reported as teaching even if they are
// also nominally on duty that period, and both outrank a same-day absence
// record that may not have been reconciled with the timetable yet. refDate is
// the calendar date the absence interval is checked against; absence is
// date-based and applies uniformly to every period of a matched date.
func (ix Index) Availability(teacherID int64, dayOfWeek int, periodID int64, absences []*model.Absence, refDate time.Time) Availability {
	commitments := ix[Key{TeacherID: teacherID, DayOfWeek: dayOfWeek, PeriodID: periodID}]

	for _, c := range commitments {
		if c.Kind == KindLesson {
			return Availability{Available: false, Reason: ReasonLesson}
		}
	}
	for _, c := range commitments {
		if c.Kind == KindDuty {
			return Availability{Available: false, Reason: ReasonDuty}
		}
	}

	for _, a := range absences {
		if a.TeacherID == teacherID && a.Covers(refDate) {
			return Availability{Available: false, Reason: ReasonAbsent}
		}
	}

	return Availability{Available: true}
}

// Conflict is a slot with more than one commitment for the same teacher.
type Conflict struct {
	TeacherID   int64        `json:"teacher_id"`
	DayOfWeek   int          `json:"day_of_week"`
	PeriodID    int64        `json:"period_id"`
	Commitments []Commitment `json:"commitments"`
}

// Conflicts enumerates every slot holding two or more commitments. Conflicts
// are reported as data, never raised as errors: the records are taken as
// given, and remediation is a data-entry problem, not a query failure.
// Output is sorted by teacher, day, period so repeated runs compare equal.
func (ix Index) Conflicts() []Conflict {
	var conflicts []Conflict
	for key, commitments := range ix {
		if len(commitments) < 2 {
			continue
		}
		conflicts = append(conflicts, Conflict{
			TeacherID:   key.TeacherID,
			DayOfWeek:   key.DayOfWeek,
			PeriodID:    key.PeriodID,
			Commitments: commitments,
		})
	}

	sort.Slice(conflicts, func(i, j int) bool {
		a, b := conflicts[i], conflicts[j]
		if a.TeacherID != b.TeacherID {
			return a.TeacherID < b.TeacherID
		}
		if a.DayOfWeek != b.DayOfWeek {
			return a.DayOfWeek < b.DayOfWeek
		}
		return a.PeriodID < b.PeriodID
	})

	return conflicts
}
