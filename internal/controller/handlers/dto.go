package handlers

import (
	"fmt"
	"time"

	"github.com/okulops/dashboard/internal/model"
)

// Request bodies. Validation here is data-shape only; referential checks
// happen in the services at data-entry time.

type periodRequest struct {
	Order     int    `json:"order" validate:"required,min=1"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

func (r *periodRequest) toModel() *model.Period {
	return &model.Period{Order: r.Order, StartTime: r.StartTime, EndTime: r.EndTime}
}

type teacherRequest struct {
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
	Branch  string `json:"branch"`
}

func (r *teacherRequest) toModel() *model.Teacher {
	return &model.Teacher{Name: r.Name, Surname: r.Surname, Branch: r.Branch}
}

// nameRequest covers the {id, name} reference entities.
type nameRequest struct {
	Name string `json:"name" validate:"required"`
}

type scheduleRequest struct {
	DayOfWeek int   `json:"day_of_week" validate:"required,min=1,max=7"`
	PeriodID  int64 `json:"period_id" validate:"required,min=1"`
	TeacherID int64 `json:"teacher_id" validate:"required,min=1"`
	ClassID   int64 `json:"class_id" validate:"required,min=1"`
	SubjectID int64 `json:"subject_id" validate:"required,min=1"`
}

func (r *scheduleRequest) toModel() *model.Schedule {
	return &model.Schedule{
		DayOfWeek: r.DayOfWeek,
		PeriodID:  r.PeriodID,
		TeacherID: r.TeacherID,
		ClassID:   r.ClassID,
		SubjectID: r.SubjectID,
	}
}

type dutyRequest struct {
	DayOfWeek  int    `json:"day_of_week" validate:"required,min=1,max=7"`
	TeacherID  int64  `json:"teacher_id" validate:"required,min=1"`
	LocationID int64  `json:"location_id" validate:"required,min=1"`
	PeriodID   *int64 `json:"period_id" validate:"omitempty,min=1"` // null = all-day duty
}

func (r *dutyRequest) toModel() *model.Duty {
	return &model.Duty{
		DayOfWeek:  r.DayOfWeek,
		TeacherID:  r.TeacherID,
		LocationID: r.LocationID,
		PeriodID:   r.PeriodID,
	}
}

type absenceRequest struct {
	TeacherID int64  `json:"teacher_id" validate:"required,min=1"`
	Reason    string `json:"reason" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func (r *absenceRequest) toModel() (*model.Absence, error) {
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start_date: %w", err)
	}
	end, err := time.Parse("2006-01-02", r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parse end_date: %w", err)
	}

	return &model.Absence{
		TeacherID: r.TeacherID,
		Reason:    r.Reason,
		StartDate: start,
		EndDate:   end,
	}, nil
}
