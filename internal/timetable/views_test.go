package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulops/dashboard/internal/model"
)

func testClasses() []*model.ClassRoom {
	return []*model.ClassRoom{
		{ID: 100, Name: "5-A"},
		{ID: 101, Name: "5-B"},
		{ID: 102, Name: "6-A"},
	}
}

func TestActiveLessons_OneRowPerClass(t *testing.T) {
	periods := testPeriods()
	schedules := []*model.Schedule{
		{ID: 1, DayOfWeek: 1, PeriodID: 1, TeacherID: 10, ClassID: 100, SubjectID: 7},
		{ID: 2, DayOfWeek: 1, PeriodID: 1, TeacherID: 20, ClassID: 102, SubjectID: 8},
		// Different period: must not show up.
		{ID: 3, DayOfWeek: 1, PeriodID: 2, TeacherID: 30, ClassID: 101, SubjectID: 9},
	}
	ix := BuildIndex(periods, schedules, nil)

	rows := ActiveLessons(ix, testClasses(), 1, periods[0])

	require.Len(t, rows, 3)
	assert.Equal(t, int64(100), rows[0].Class.ID)
	require.NotNil(t, rows[0].Schedule)
	assert.Equal(t, int64(1), rows[0].Schedule.ID)

	// 5-B has a free first period: explicit empty row, not a missing one.
	assert.Equal(t, int64(101), rows[1].Class.ID)
	assert.Nil(t, rows[1].Schedule)

	require.NotNil(t, rows[2].Schedule)
	assert.Equal(t, int64(2), rows[2].Schedule.ID)
}

func TestActiveLessons_OutsideClassHours(t *testing.T) {
	schedules := []*model.Schedule{
		{ID: 1, DayOfWeek: 1, PeriodID: 1, TeacherID: 10, ClassID: 100, SubjectID: 7},
	}
	ix := BuildIndex(testPeriods(), schedules, nil)

	rows := ActiveLessons(ix, testClasses(), 1, nil)

	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Nil(t, row.Schedule)
	}
}

func TestDutyRoster_GroupsByLocation(t *testing.T) {
	duties := []*model.Duty{
		{ID: 1, DayOfWeek: 1, TeacherID: 10, LocationID: 5, PeriodID: periodRef(1)},
		{ID: 2, DayOfWeek: 1, TeacherID: 20, LocationID: 5, PeriodID: periodRef(2)},
		{ID: 3, DayOfWeek: 1, TeacherID: 30, LocationID: 6, PeriodID: nil},
		// Other day: excluded.
		{ID: 4, DayOfWeek: 2, TeacherID: 10, LocationID: 5, PeriodID: periodRef(1)},
	}
	ix := BuildIndex(testPeriods(), nil, duties)

	roster := DutyRoster(ix, 1)

	require.Len(t, roster, 2)
	assert.Len(t, roster[5], 2)
	require.Len(t, roster[6], 1)
	assert.Equal(t, int64(30), roster[6][0].TeacherID)
}

func TestDutyRoster_AllDayDutyListedOnce(t *testing.T) {
	// The index holds one commitment per period for an all-day duty; the
	// roster must collapse them back to a single entry.
	duties := []*model.Duty{
		{ID: 1, DayOfWeek: 1, TeacherID: 10, LocationID: 5, PeriodID: nil},
	}
	ix := BuildIndex(testPeriods(), nil, duties)

	roster := DutyRoster(ix, 1)

	require.Len(t, roster[5], 1)
	assert.True(t, roster[5][0].Duty.AllDay())
}

func TestRosterEntryActiveAt(t *testing.T) {
	periods := testPeriods()
	allDay := RosterEntry{TeacherID: 10, Duty: &model.Duty{ID: 1, PeriodID: nil}}
	firstPeriod := RosterEntry{TeacherID: 20, Duty: &model.Duty{ID: 2, PeriodID: periodRef(1)}}

	assert.True(t, allDay.ActiveAt(periods[0]))
	assert.True(t, allDay.ActiveAt(nil))

	assert.True(t, firstPeriod.ActiveAt(periods[0]))
	assert.False(t, firstPeriod.ActiveAt(periods[1]))
	assert.False(t, firstPeriod.ActiveAt(nil))
}

func TestDailyItinerary_OrderedByPeriod(t *testing.T) {
	// Periods passed out of order on purpose: the itinerary sorts by Order.
	periods := []*model.Period{
		{ID: 3, Order: 3, StartTime: "09:40", EndTime: "10:20"},
		{ID: 1, Order: 1, StartTime: "08:00", EndTime: "08:40"},
		{ID: 2, Order: 2, StartTime: "08:50", EndTime: "09:30"},
	}
	schedules := []*model.Schedule{
		{ID: 1, DayOfWeek: 1, PeriodID: 3, TeacherID: 10, ClassID: 100, SubjectID: 7},
		{ID: 2, DayOfWeek: 1, PeriodID: 1, TeacherID: 10, ClassID: 101, SubjectID: 8},
		// Another teacher's lesson: excluded.
		{ID: 3, DayOfWeek: 1, PeriodID: 2, TeacherID: 20, ClassID: 102, SubjectID: 9},
	}
	duties := []*model.Duty{
		// Duties are not itinerary stops.
		{ID: 4, DayOfWeek: 1, TeacherID: 10, LocationID: 5, PeriodID: periodRef(2)},
	}
	ix := BuildIndex(periods, schedules, duties)

	var got []ItineraryStop
	for stop := range DailyItinerary(ix, periods, 10, 1) {
		got = append(got, stop)
	}

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Period.Order)
	assert.Equal(t, int64(2), got[0].Schedule.ID)
	assert.Equal(t, 3, got[1].Period.Order)
	assert.Equal(t, int64(1), got[1].Schedule.ID)
}

func TestDailyItinerary_Restartable(t *testing.T) {
	schedules := []*model.Schedule{
		{ID: 1, DayOfWeek: 1, PeriodID: 1, TeacherID: 10, ClassID: 100, SubjectID: 7},
		{ID: 2, DayOfWeek: 1, PeriodID: 2, TeacherID: 10, ClassID: 100, SubjectID: 8},
	}
	ix := BuildIndex(testPeriods(), schedules, nil)
	seq := DailyItinerary(ix, testPeriods(), 10, 1)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}

	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count(), "second pass over the same sequence")
}

func TestDailyItinerary_FreeAllDay(t *testing.T) {
	ix := BuildIndex(testPeriods(), nil, nil)

	for range DailyItinerary(ix, testPeriods(), 10, 1) {
		t.Fatal("expected an empty itinerary")
	}
}

func TestDailyItinerary_EarlyBreak(t *testing.T) {
	schedules := []*model.Schedule{
		{ID: 1, DayOfWeek: 1, PeriodID: 1, TeacherID: 10, ClassID: 100, SubjectID: 7},
		{ID: 2, DayOfWeek: 1, PeriodID: 2, TeacherID: 10, ClassID: 100, SubjectID: 8},
	}
	ix := BuildIndex(testPeriods(), schedules, nil)

	n := 0
	for range DailyItinerary(ix, testPeriods(), 10, 1) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}
