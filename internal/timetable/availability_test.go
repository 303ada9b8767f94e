package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulops/dashboard/internal/model"
)

var monday = time.Date(2024, 9, 2, 9, 0, 0, 0, time.UTC)

func TestAvailability_Free(t *testing.T) {
	ix := BuildIndex(testPeriods(), nil, nil)

	got := ix.Availability(10, 1, 1, nil, monday)

	assert.True(t, got.Available)
	assert.Empty(t, got.Reason)
}

func TestAvailability_Lesson(t *testing.T) {
	schedules := []*model.Schedule{
		{ID: 1, DayOfWeek: 1, PeriodID: 1, TeacherID: 10, ClassID: 100, SubjectID: 7},
	}
	ix := BuildIndex(testPeriods(), schedules, nil)

	got := ix.Availability(10, 1, 1, nil, monday)

	assert.Equal(t, Availability{Available: false, Reason: ReasonLesson}, got)
	// Same teacher, different period: free.
	assert.True(t, ix.Availability(10, 1, 2, nil, monday).Available)
}

func TestAvailability_LessonOutranksDuty(t *testing.T) {
	schedules := []*model.Schedule{
		{ID: 1, DayOfWeek: 1, PeriodID: 1, TeacherID: 10, ClassID: 100, SubjectID: 7},
	}
	duties := []*model.Duty{
		{ID: 2, DayOfWeek: 1, TeacherID: 10, LocationID: 5, PeriodID: periodRef(1)},
	}
	ix := BuildIndex(testPeriods(), schedules, duties)

	got := ix.Availability(10, 1, 1, nil, monday)

	assert.Equal(t, ReasonLesson, got.Reason)
}

func TestAvailability_AllDayDutyCoversEveryPeriod(t *testing.T) {
	duties := []*model.Duty{
		{ID: 1, DayOfWeek: 1, TeacherID: 10, LocationID: 5, PeriodID: nil},
	}
	ix := BuildIndex(testPeriods(), nil, duties)

	for _, p := range testPeriods() {
		got := ix.Availability(10, 1, p.ID, nil, monday)
		assert.Equal(t, Availability{Available: false, Reason: ReasonDuty}, got, "period %d", p.ID)
	}
}

func TestAvailability_CommitmentOutranksAbsence(t *testing.T) {
	schedules := []*model.Schedule{
		{ID: 1, DayOfWeek: 1, PeriodID: 1, TeacherID: 10, ClassID: 100, SubjectID: 7},
	}
	absences := []*model.Absence{
		{ID: 1, TeacherID: 10, Reason: "sick leave", StartDate: monday, EndDate: monday},
	}
	ix := BuildIndex(testPeriods(), schedules, nil)

	// Scheduled slot: the lesson is the displayed reason.
	assert.Equal(t, ReasonLesson, ix.Availability(10, 1, 1, absences, monday).Reason)
	// Free slot on the same day: absence shows through.
	assert.Equal(t, ReasonAbsent, ix.Availability(10, 1, 2, absences, monday).Reason)
}

func TestAvailability_AbsenceDates(t *testing.T) {
	absences := []*model.Absence{
		{
			ID:        1,
			TeacherID: 10,
			Reason:    "conference",
			StartDate: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 9, 4, 0, 0, 0, 0, time.UTC),
		},
	}
	ix := BuildIndex(testPeriods(), nil, nil)

	tests := []struct {
		name       string
		refDate    time.Time
		wantAbsent bool
	}{
		{name: "day before interval", refDate: time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC), wantAbsent: false},
		{name: "first day inclusive", refDate: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC), wantAbsent: true},
		{name: "middle of interval", refDate: time.Date(2024, 9, 3, 23, 59, 0, 0, time.UTC), wantAbsent: true},
		{name: "last day inclusive", refDate: time.Date(2024, 9, 4, 8, 0, 0, 0, time.UTC), wantAbsent: true},
		{name: "day after interval", refDate: time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC), wantAbsent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ix.Availability(10, int(tt.refDate.Weekday()), 1, absences, tt.refDate)
			if tt.wantAbsent {
				assert.Equal(t, ReasonAbsent, got.Reason)
			} else {
				assert.True(t, got.Available)
			}
		})
	}
}

func TestAvailability_AbsenceOfOtherTeacher(t *testing.T) {
	absences := []*model.Absence{
		{ID: 1, TeacherID: 99, Reason: "sick leave", StartDate: monday, EndDate: monday},
	}
	ix := BuildIndex(testPeriods(), nil, nil)

	assert.True(t, ix.Availability(10, 1, 1, absences, monday).Available)
}

func TestConflicts(t *testing.T) {
	schedules := []*model.Schedule{
		// Teacher 10 double-booked in (day 1, period 1).
		{ID: 1, DayOfWeek: 1, PeriodID: 1, TeacherID: 10, ClassID: 100, SubjectID: 7},
		{ID: 2, DayOfWeek: 1, PeriodID: 1, TeacherID: 10, ClassID: 101, SubjectID: 8},
		// Teacher 20 has exactly one commitment: no conflict.
		{ID: 3, DayOfWeek: 1, PeriodID: 1, TeacherID: 20, ClassID: 102, SubjectID: 7},
	}
	duties := []*model.Duty{
		// Lesson + duty overlap for teacher 20 on day 2.
		{ID: 4, DayOfWeek: 2, TeacherID: 20, LocationID: 5, PeriodID: periodRef(3)},
	}
	schedules = append(schedules, &model.Schedule{ID: 5, DayOfWeek: 2, PeriodID: 3, TeacherID: 20, ClassID: 102, SubjectID: 7})

	ix := BuildIndex(testPeriods(), schedules, duties)
	conflicts := ix.Conflicts()

	require.Len(t, conflicts, 2)
	// Sorted by teacher, day, period.
	assert.Equal(t, int64(10), conflicts[0].TeacherID)
	assert.Equal(t, 1, conflicts[0].DayOfWeek)
	assert.Len(t, conflicts[0].Commitments, 2)
	assert.Equal(t, int64(20), conflicts[1].TeacherID)
	assert.Equal(t, 2, conflicts[1].DayOfWeek)
	assert.Len(t, conflicts[1].Commitments, 2)
}

func TestConflicts_SingleCommitmentIsNotAConflict(t *testing.T) {
	schedules := []*model.Schedule{
		{ID: 1, DayOfWeek: 1, PeriodID: 1, TeacherID: 10, ClassID: 100, SubjectID: 7},
	}
	ix := BuildIndex(testPeriods(), schedules, nil)

	assert.Empty(t, ix.Conflicts())
}

func TestConflicts_AllDayDutyAgainstLessons(t *testing.T) {
	// An all-day duty overlapping a lesson conflicts in that lesson's period
	// only; the remaining expanded slots hold a single commitment each.
	schedules := []*model.Schedule{
		{ID: 1, DayOfWeek: 1, PeriodID: 2, TeacherID: 10, ClassID: 100, SubjectID: 7},
	}
	duties := []*model.Duty{
		{ID: 2, DayOfWeek: 1, TeacherID: 10, LocationID: 5, PeriodID: nil},
	}
	ix := BuildIndex(testPeriods(), schedules, duties)

	conflicts := ix.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(2), conflicts[0].PeriodID)
}
