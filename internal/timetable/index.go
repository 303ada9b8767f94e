package timetable

import (
	"github.com/okulops/dashboard/internal/model"
)

type CommitmentKind string

const (
	KindLesson CommitmentKind = "lesson"
	KindDuty   CommitmentKind = "duty"
)

// Commitment is one obligation of a teacher in a single slot of the week.
type Commitment struct {
	Kind     CommitmentKind  `json:"kind"`
	Schedule *model.Schedule `json:"schedule,omitempty"` // set when Kind == KindLesson
	Duty     *model.Duty     `json:"duty,omitempty"`     // set when Kind == KindDuty
}

// Key identifies a single slot of a teacher's week.
type Key struct {
	TeacherID int64
	DayOfWeek int
	PeriodID  int64
}

// Index maps each slot to every commitment registered for it.
// A slot with more than one entry is a scheduling conflict.
type Index map[Key][]Commitment

// BuildIndex builds the per-teacher, per-day, per-period commitment lookup
// from raw schedule and duty records. An all-day duty (nil PeriodID) is
// expanded into one commitment per catalog period, so consumers never have
// to special-case it.
//
// Pure function: no validation, no mutation of inputs. Records with unknown
// day or period values land under keys no query will ever ask for.
func BuildIndex(periods []*model.Period, schedules []*model.Schedule, duties []*model.Duty) Index {
	ix := make(Index, len(schedules)+len(duties))

	for _, sch := range schedules {
		key := Key{TeacherID: sch.TeacherID, DayOfWeek: sch.DayOfWeek, PeriodID: sch.PeriodID}
		ix[key] = append(ix[key], Commitment{Kind: KindLesson, Schedule: sch})
	}

	for _, duty := range duties {
		if duty.AllDay() {
			for _, p := range periods {
				key := Key{TeacherID: duty.TeacherID, DayOfWeek: duty.DayOfWeek, PeriodID: p.ID}
				ix[key] = append(ix[key], Commitment{Kind: KindDuty, Duty: duty})
			}
			continue
		}

		key := Key{TeacherID: duty.TeacherID, DayOfWeek: duty.DayOfWeek, PeriodID: *duty.PeriodID}
		ix[key] = append(ix[key], Commitment{Kind: KindDuty, Duty: duty})
	}

	return ix
}
