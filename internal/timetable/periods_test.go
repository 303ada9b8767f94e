package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulops/dashboard/internal/model"
)

func testPeriods() []*model.Period {
	return []*model.Period{
		{ID: 1, Order: 1, StartTime: "08:00", EndTime: "08:40"},
		{ID: 2, Order: 2, StartTime: "08:50", EndTime: "09:30"},
		{ID: 3, Order: 3, StartTime: "09:40", EndTime: "10:20"},
	}
}

func TestResolveCurrentPeriod(t *testing.T) {
	periods := testPeriods()

	tests := []struct {
		name   string
		clock  string
		wantID int64 // 0 = no active period
	}{
		{name: "inside first period", clock: "08:10", wantID: 1},
		{name: "start is inclusive", clock: "08:50", wantID: 2},
		{name: "end is inclusive", clock: "09:30", wantID: 2},
		{name: "before first bell", clock: "07:59", wantID: 0},
		{name: "inside the break", clock: "08:45", wantID: 0},
		{name: "after last period", clock: "10:21", wantID: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCurrentPeriod(periods, tt.clock)
			if tt.wantID == 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestResolveCurrentPeriod_UnsortedInput(t *testing.T) {
	periods := []*model.Period{
		{ID: 3, Order: 3, StartTime: "09:40", EndTime: "10:20"},
		{ID: 1, Order: 1, StartTime: "08:00", EndTime: "08:40"},
		{ID: 2, Order: 2, StartTime: "08:50", EndTime: "09:30"},
	}

	got := ResolveCurrentPeriod(periods, "08:55")
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ID)
}

func TestResolveCurrentPeriod_OverlapTieBreak(t *testing.T) {
	// Malformed catalog: two periods contain 09:00. The lower order wins
	// regardless of slice position.
	periods := []*model.Period{
		{ID: 9, Order: 5, StartTime: "08:30", EndTime: "09:30"},
		{ID: 4, Order: 2, StartTime: "08:45", EndTime: "09:15"},
	}

	got := ResolveCurrentPeriod(periods, "09:00")
	require.NotNil(t, got)
	assert.Equal(t, int64(4), got.ID)
}

func TestResolveCurrentPeriod_EmptyCatalog(t *testing.T) {
	assert.Nil(t, ResolveCurrentPeriod(nil, "08:00"))
}

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{date: time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC), want: 1},  // Monday
		{date: time.Date(2024, 9, 6, 0, 0, 0, 0, time.UTC), want: 5},  // Friday
		{date: time.Date(2024, 9, 7, 0, 0, 0, 0, time.UTC), want: 6},  // Saturday
		{date: time.Date(2024, 9, 8, 0, 0, 0, 0, time.UTC), want: 7},  // Sunday remaps 0 -> 7
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DayOfWeek(tt.date), "date %s", tt.date)
	}
}

func TestClockTime(t *testing.T) {
	at := time.Date(2024, 9, 2, 8, 5, 59, 0, time.UTC)
	assert.Equal(t, "08:05", ClockTime(at))
}
