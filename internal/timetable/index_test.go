package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulops/dashboard/internal/model"
)

func periodRef(id int64) *int64 { return &id }

func TestBuildIndex_Lessons(t *testing.T) {
	schedules := []*model.Schedule{
		{ID: 1, DayOfWeek: 1, PeriodID: 1, TeacherID: 10, ClassID: 100, SubjectID: 7},
		{ID: 2, DayOfWeek: 2, PeriodID: 1, TeacherID: 10, ClassID: 101, SubjectID: 7},
	}

	ix := BuildIndex(testPeriods(), schedules, nil)

	require.Len(t, ix, 2)
	got := ix[Key{TeacherID: 10, DayOfWeek: 1, PeriodID: 1}]
	require.Len(t, got, 1)
	assert.Equal(t, KindLesson, got[0].Kind)
	assert.Equal(t, int64(1), got[0].Schedule.ID)
	assert.Nil(t, got[0].Duty)
}

func TestBuildIndex_PeriodDuty(t *testing.T) {
	duties := []*model.Duty{
		{ID: 1, DayOfWeek: 3, TeacherID: 20, LocationID: 5, PeriodID: periodRef(2)},
	}

	ix := BuildIndex(testPeriods(), nil, duties)

	require.Len(t, ix, 1)
	got := ix[Key{TeacherID: 20, DayOfWeek: 3, PeriodID: 2}]
	require.Len(t, got, 1)
	assert.Equal(t, KindDuty, got[0].Kind)
	assert.Equal(t, int64(1), got[0].Duty.ID)
}

func TestBuildIndex_AllDayDutyExpandsToEveryPeriod(t *testing.T) {
	periods := testPeriods()
	duties := []*model.Duty{
		{ID: 1, DayOfWeek: 1, TeacherID: 20, LocationID: 5, PeriodID: nil},
	}

	ix := BuildIndex(periods, nil, duties)

	require.Len(t, ix, len(periods))
	for _, p := range periods {
		got := ix[Key{TeacherID: 20, DayOfWeek: 1, PeriodID: p.ID}]
		require.Len(t, got, 1, "period %d", p.ID)
		assert.Equal(t, KindDuty, got[0].Kind)
	}
}

func TestBuildIndex_OverlapKeepsBothCommitments(t *testing.T) {
	// A lesson and a duty in the same slot must both be registered;
	// detecting the overlap is Conflicts' job, dropping it is nobody's.
	schedules := []*model.Schedule{
		{ID: 1, DayOfWeek: 1, PeriodID: 1, TeacherID: 10, ClassID: 100, SubjectID: 7},
	}
	duties := []*model.Duty{
		{ID: 2, DayOfWeek: 1, TeacherID: 10, LocationID: 5, PeriodID: periodRef(1)},
	}

	ix := BuildIndex(testPeriods(), schedules, duties)

	got := ix[Key{TeacherID: 10, DayOfWeek: 1, PeriodID: 1}]
	assert.Len(t, got, 2)
}

func TestBuildIndex_EmptyInputs(t *testing.T) {
	ix := BuildIndex(nil, nil, nil)
	assert.Empty(t, ix)
}
