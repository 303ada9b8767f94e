package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/okulops/dashboard/internal/model"
	"github.com/okulops/dashboard/internal/repository"
	"github.com/okulops/dashboard/internal/timetable"
)

// DashboardService answers the dashboard queries: current period, teacher
// availability, conflicts, and the aggregated views. Every query loads a
// fresh snapshot, builds the commitment index and hands it to the engine —
// the engine itself never touches the database. The reference time is always
// a parameter, never read from a global clock, so results are deterministic.
type DashboardService struct {
	periodRepo   *repository.PeriodRepository
	classRepo    *repository.ClassRepository
	scheduleRepo *repository.ScheduleRepository
	dutyRepo     *repository.DutyRepository
	absenceRepo  *repository.AbsenceRepository
	logger       *zap.Logger
}

func NewDashboardService(
	periodRepo *repository.PeriodRepository,
	classRepo *repository.ClassRepository,
	scheduleRepo *repository.ScheduleRepository,
	dutyRepo *repository.DutyRepository,
	absenceRepo *repository.AbsenceRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		periodRepo:   periodRepo,
		classRepo:    classRepo,
		scheduleRepo: scheduleRepo,
		dutyRepo:     dutyRepo,
		absenceRepo:  absenceRepo,
		logger:       logger,
	}
}

// snapshot is one fully materialized set of engine inputs.
type snapshot struct {
	periods   []*model.Period
	classes   []*model.ClassRoom
	schedules []*model.Schedule
	duties    []*model.Duty
	absences  []*model.Absence
}

func (sn *snapshot) index() timetable.Index {
	return timetable.BuildIndex(sn.periods, sn.schedules, sn.duties)
}

// loadSnapshot fetches every collection the engine needs
func (s *DashboardService) loadSnapshot(ctx context.Context) (*snapshot, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load periods: %w", err)
	}
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load classes: %w", err)
	}
	schedules, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load schedules: %w", err)
	}
	duties, err := s.dutyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load duties: %w", err)
	}
	absences, err := s.absenceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load absences: %w", err)
	}

	return &snapshot{
		periods:   periods,
		classes:   classes,
		schedules: schedules,
		duties:    duties,
		absences:  absences,
	}, nil
}

// CurrentPeriod resolves the bell period containing the given instant.
// A nil period is a valid answer: outside class hours.
func (s *DashboardService) CurrentPeriod(ctx context.Context, at time.Time) (*model.Period, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load periods: %w", err)
	}
	return timetable.ResolveCurrentPeriod(periods, timetable.ClockTime(at)), nil
}

// Availability answers "is this teacher free in slot (day, period)", with
// absences checked against the date of refDate.
func (s *DashboardService) Availability(ctx context.Context, teacherID int64, dayOfWeek int, periodID int64, refDate time.Time) (timetable.Availability, error) {
	sn, err := s.loadSnapshot(ctx)
	if err != nil {
		return timetable.Availability{}, err
	}
	absences, err := s.absenceRepo.ListActiveOn(ctx, refDate)
	if err != nil {
		return timetable.Availability{}, fmt.Errorf("load absences: %w", err)
	}
	return sn.index().Availability(teacherID, dayOfWeek, periodID, absences, refDate), nil
}

// AvailabilityNow answers availability for the slot the given instant falls
// into. Outside class hours no lesson or duty can apply, so only an absence
// can make the teacher unavailable.
func (s *DashboardService) AvailabilityNow(ctx context.Context, teacherID int64, at time.Time) (timetable.Availability, error) {
	sn, err := s.loadSnapshot(ctx)
	if err != nil {
		return timetable.Availability{}, err
	}
	absences, err := s.absenceRepo.ListActiveOn(ctx, at)
	if err != nil {
		return timetable.Availability{}, fmt.Errorf("load absences: %w", err)
	}

	var periodID int64
	if current := timetable.ResolveCurrentPeriod(sn.periods, timetable.ClockTime(at)); current != nil {
		periodID = current.ID
	}

	return sn.index().Availability(teacherID, timetable.DayOfWeek(at), periodID, absences, at), nil
}

// Conflicts enumerates every double-booked slot in the whole timetable
func (s *DashboardService) Conflicts(ctx context.Context) ([]timetable.Conflict, error) {
	sn, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	conflicts := sn.index().Conflicts()
	if len(conflicts) > 0 {
		s.logger.Warn("Timetable has conflicts", zap.Int("count", len(conflicts)))
	}

	return conflicts, nil
}

// ActiveLessons returns the active-lesson-per-class view for the given
// instant, along with the resolved current period (nil outside class hours).
func (s *DashboardService) ActiveLessons(ctx context.Context, at time.Time) ([]timetable.ActiveLesson, *model.Period, error) {
	sn, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	current := timetable.ResolveCurrentPeriod(sn.periods, timetable.ClockTime(at))
	rows := timetable.ActiveLessons(sn.index(), sn.classes, timetable.DayOfWeek(at), current)
	return rows, current, nil
}

// DutyRoster returns the day's duty assignments grouped by location,
// along with the resolved current period for "active now" computation.
func (s *DashboardService) DutyRoster(ctx context.Context, at time.Time) (map[int64][]timetable.RosterEntry, *model.Period, error) {
	sn, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	current := timetable.ResolveCurrentPeriod(sn.periods, timetable.ClockTime(at))
	roster := timetable.DutyRoster(sn.index(), timetable.DayOfWeek(at))
	return roster, current, nil
}

// TeacherItinerary returns one teacher's lessons for a weekday in period
// order. An empty result is valid: free all day.
func (s *DashboardService) TeacherItinerary(ctx context.Context, teacherID int64, dayOfWeek int) ([]timetable.ItineraryStop, error) {
	sn, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	var stops []timetable.ItineraryStop
	for stop := range timetable.DailyItinerary(sn.index(), sn.periods, teacherID, dayOfWeek) {
		stops = append(stops, stop)
	}
	return stops, nil
}
