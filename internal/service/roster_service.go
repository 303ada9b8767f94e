package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/okulops/dashboard/internal/model"
	"github.com/okulops/dashboard/internal/repository"
)

// RosterService handles the commitment records: lesson schedules, duty
// assignments and absences. Foreign keys are checked here, at data-entry
// time — downstream the timetable engine takes the records as given and
// never re-validates.
type RosterService struct {
	scheduleRepo *repository.ScheduleRepository
	dutyRepo     *repository.DutyRepository
	absenceRepo  *repository.AbsenceRepository
	periodRepo   *repository.PeriodRepository
	teacherRepo  *repository.TeacherRepository
	classRepo    *repository.ClassRepository
	subjectRepo  *repository.SubjectRepository
	locationRepo *repository.LocationRepository
	logger       *zap.Logger
}

func NewRosterService(
	scheduleRepo *repository.ScheduleRepository,
	dutyRepo *repository.DutyRepository,
	absenceRepo *repository.AbsenceRepository,
	periodRepo *repository.PeriodRepository,
	teacherRepo *repository.TeacherRepository,
	classRepo *repository.ClassRepository,
	subjectRepo *repository.SubjectRepository,
	locationRepo *repository.LocationRepository,
	logger *zap.Logger,
) *RosterService {
	return &RosterService{
		scheduleRepo: scheduleRepo,
		dutyRepo:     dutyRepo,
		absenceRepo:  absenceRepo,
		periodRepo:   periodRepo,
		teacherRepo:  teacherRepo,
		classRepo:    classRepo,
		subjectRepo:  subjectRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// requireTeacher checks that the referenced teacher exists
func (s *RosterService) requireTeacher(ctx context.Context, teacherID int64) error {
	teacher, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return fmt.Errorf("get teacher: %w", err)
	}
	if teacher == nil {
		return fmt.Errorf("teacher %d not found", teacherID)
	}
	return nil
}

// requirePeriod checks that the referenced period exists
func (s *RosterService) requirePeriod(ctx context.Context, periodID int64) error {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return fmt.Errorf("get period: %w", err)
	}
	if period == nil {
		return fmt.Errorf("period %d not found", periodID)
	}
	return nil
}

// --- schedules ---

// CreateSchedule registers a lesson commitment after checking its references
func (s *RosterService) CreateSchedule(ctx context.Context, schedule *model.Schedule) error {
	if err := s.requireTeacher(ctx, schedule.TeacherID); err != nil {
		return err
	}
	if err := s.requirePeriod(ctx, schedule.PeriodID); err != nil {
		return err
	}

	class, err := s.classRepo.GetByID(ctx, schedule.ClassID)
	if err != nil {
		return fmt.Errorf("get class: %w", err)
	}
	if class == nil {
		return fmt.Errorf("class %d not found", schedule.ClassID)
	}

	subject, err := s.subjectRepo.GetByID(ctx, schedule.SubjectID)
	if err != nil {
		return fmt.Errorf("get subject: %w", err)
	}
	if subject == nil {
		return fmt.Errorf("subject %d not found", schedule.SubjectID)
	}

	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}

	s.logger.Info("Schedule created",
		zap.Int64("schedule_id", schedule.ID),
		zap.Int("day_of_week", schedule.DayOfWeek),
		zap.Int64("period_id", schedule.PeriodID),
		zap.Int64("teacher_id", schedule.TeacherID),
		zap.Int64("class_id", schedule.ClassID))

	return nil
}

func (s *RosterService) GetSchedule(ctx context.Context, id int64) (*model.Schedule, error) {
	return s.scheduleRepo.GetByID(ctx, id)
}

// ListSchedules lists lesson assignments, optionally narrowed to one
// teacher or one weekday. Zero means no filter.
func (s *RosterService) ListSchedules(ctx context.Context, teacherID int64, dayOfWeek int) ([]*model.Schedule, error) {
	switch {
	case teacherID != 0:
		return s.scheduleRepo.ListByTeacher(ctx, teacherID)
	case dayOfWeek != 0:
		return s.scheduleRepo.ListByDay(ctx, dayOfWeek)
	default:
		return s.scheduleRepo.List(ctx)
	}
}

func (s *RosterService) UpdateSchedule(ctx context.Context, schedule *model.Schedule) error {
	if err := s.requireTeacher(ctx, schedule.TeacherID); err != nil {
		return err
	}
	if err := s.requirePeriod(ctx, schedule.PeriodID); err != nil {
		return err
	}
	return s.scheduleRepo.Update(ctx, schedule)
}

func (s *RosterService) DeleteSchedule(ctx context.Context, id int64) error {
	return s.scheduleRepo.Delete(ctx, id)
}

// --- duties ---

// CreateDuty registers a supervision commitment. A nil PeriodID means the
// duty covers every period of its day.
func (s *RosterService) CreateDuty(ctx context.Context, duty *model.Duty) error {
	if err := s.requireTeacher(ctx, duty.TeacherID); err != nil {
		return err
	}
	if duty.PeriodID != nil {
		if err := s.requirePeriod(ctx, *duty.PeriodID); err != nil {
			return err
		}
	}

	location, err := s.locationRepo.GetByID(ctx, duty.LocationID)
	if err != nil {
		return fmt.Errorf("get location: %w", err)
	}
	if location == nil {
		return fmt.Errorf("location %d not found", duty.LocationID)
	}

	if err := s.dutyRepo.Create(ctx, duty); err != nil {
		return fmt.Errorf("create duty: %w", err)
	}

	s.logger.Info("Duty created",
		zap.Int64("duty_id", duty.ID),
		zap.Int("day_of_week", duty.DayOfWeek),
		zap.Int64("teacher_id", duty.TeacherID),
		zap.Int64("location_id", duty.LocationID),
		zap.Bool("all_day", duty.AllDay()))

	return nil
}

func (s *RosterService) GetDuty(ctx context.Context, id int64) (*model.Duty, error) {
	return s.dutyRepo.GetByID(ctx, id)
}

// ListDuties lists duty assignments, optionally narrowed to one weekday.
func (s *RosterService) ListDuties(ctx context.Context, dayOfWeek int) ([]*model.Duty, error) {
	if dayOfWeek != 0 {
		return s.dutyRepo.ListByDay(ctx, dayOfWeek)
	}
	return s.dutyRepo.List(ctx)
}

func (s *RosterService) UpdateDuty(ctx context.Context, duty *model.Duty) error {
	if err := s.requireTeacher(ctx, duty.TeacherID); err != nil {
		return err
	}
	if duty.PeriodID != nil {
		if err := s.requirePeriod(ctx, *duty.PeriodID); err != nil {
			return err
		}
	}
	return s.dutyRepo.Update(ctx, duty)
}

func (s *RosterService) DeleteDuty(ctx context.Context, id int64) error {
	return s.dutyRepo.Delete(ctx, id)
}

// --- absences ---

// CreateAbsence registers a leave record over a closed date interval
func (s *RosterService) CreateAbsence(ctx context.Context, absence *model.Absence) error {
	if err := s.requireTeacher(ctx, absence.TeacherID); err != nil {
		return err
	}
	if absence.EndDate.Before(absence.StartDate) {
		return fmt.Errorf("absence end date before start date")
	}

	if err := s.absenceRepo.Create(ctx, absence); err != nil {
		return fmt.Errorf("create absence: %w", err)
	}

	s.logger.Info("Absence created",
		zap.Int64("absence_id", absence.ID),
		zap.Int64("teacher_id", absence.TeacherID),
		zap.String("reason", absence.Reason),
		zap.Time("start_date", absence.StartDate),
		zap.Time("end_date", absence.EndDate))

	return nil
}

func (s *RosterService) GetAbsence(ctx context.Context, id int64) (*model.Absence, error) {
	return s.absenceRepo.GetByID(ctx, id)
}

func (s *RosterService) ListAbsences(ctx context.Context) ([]*model.Absence, error) {
	return s.absenceRepo.List(ctx)
}

func (s *RosterService) UpdateAbsence(ctx context.Context, absence *model.Absence) error {
	if err := s.requireTeacher(ctx, absence.TeacherID); err != nil {
		return err
	}
	if absence.EndDate.Before(absence.StartDate) {
		return fmt.Errorf("absence end date before start date")
	}
	return s.absenceRepo.Update(ctx, absence)
}

func (s *RosterService) DeleteAbsence(ctx context.Context, id int64) error {
	return s.absenceRepo.Delete(ctx, id)
}
