package handlers

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRequestValidation(t *testing.T) {
	validate := validator.New()

	valid := scheduleRequest{DayOfWeek: 1, PeriodID: 1, TeacherID: 1, ClassID: 1, SubjectID: 1}
	assert.NoError(t, validate.Struct(valid))

	tests := []struct {
		name string
		req  scheduleRequest
	}{
		{name: "day zero", req: scheduleRequest{DayOfWeek: 0, PeriodID: 1, TeacherID: 1, ClassID: 1, SubjectID: 1}},
		{name: "day eight", req: scheduleRequest{DayOfWeek: 8, PeriodID: 1, TeacherID: 1, ClassID: 1, SubjectID: 1}},
		{name: "missing teacher", req: scheduleRequest{DayOfWeek: 1, PeriodID: 1, ClassID: 1, SubjectID: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, validate.Struct(tt.req))
		})
	}
}

func TestPeriodRequestValidation(t *testing.T) {
	validate := validator.New()

	assert.NoError(t, validate.Struct(periodRequest{Order: 1, StartTime: "08:00", EndTime: "08:40"}))
	assert.Error(t, validate.Struct(periodRequest{Order: 1, StartTime: "8:00", EndTime: "08:40"}), "unpadded hour")
	assert.Error(t, validate.Struct(periodRequest{Order: 0, StartTime: "08:00", EndTime: "08:40"}))
}

func TestDutyRequestValidation(t *testing.T) {
	validate := validator.New()

	// nil period id = all-day duty, perfectly valid
	assert.NoError(t, validate.Struct(dutyRequest{DayOfWeek: 1, TeacherID: 1, LocationID: 1}))

	bad := int64(0)
	assert.Error(t, validate.Struct(dutyRequest{DayOfWeek: 1, TeacherID: 1, LocationID: 1, PeriodID: &bad}))
}

func TestAbsenceRequestToModel(t *testing.T) {
	req := absenceRequest{TeacherID: 1, Reason: "sick leave", StartDate: "2024-09-02", EndDate: "2024-09-04"}

	absence, err := req.toModel()
	require.NoError(t, err)
	assert.Equal(t, 2024, absence.StartDate.Year())
	assert.True(t, absence.EndDate.After(absence.StartDate))

	req.EndDate = "not-a-date"
	_, err = req.toModel()
	assert.Error(t, err)
}
