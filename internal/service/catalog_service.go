package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/okulops/dashboard/internal/model"
	"github.com/okulops/dashboard/internal/repository"
)

// CatalogService handles the reference entities every other record points at:
// bell periods, teachers, classes, subjects and duty locations.
type CatalogService struct {
	periodRepo   *repository.PeriodRepository
	teacherRepo  *repository.TeacherRepository
	classRepo    *repository.ClassRepository
	subjectRepo  *repository.SubjectRepository
	locationRepo *repository.LocationRepository
	logger       *zap.Logger
}

func NewCatalogService(
	periodRepo *repository.PeriodRepository,
	teacherRepo *repository.TeacherRepository,
	classRepo *repository.ClassRepository,
	subjectRepo *repository.SubjectRepository,
	locationRepo *repository.LocationRepository,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		periodRepo:   periodRepo,
		teacherRepo:  teacherRepo,
		classRepo:    classRepo,
		subjectRepo:  subjectRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// --- periods ---

// CreatePeriod adds a bell period to the catalog
func (s *CatalogService) CreatePeriod(ctx context.Context, period *model.Period) error {
	if err := s.periodRepo.Create(ctx, period); err != nil {
		return fmt.Errorf("create period: %w", err)
	}

	s.logger.Info("Period created",
		zap.Int64("period_id", period.ID),
		zap.Int("order", period.Order),
		zap.String("start", period.StartTime),
		zap.String("end", period.EndTime))

	return nil
}

func (s *CatalogService) GetPeriod(ctx context.Context, id int64) (*model.Period, error) {
	return s.periodRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListPeriods(ctx context.Context) ([]*model.Period, error) {
	return s.periodRepo.List(ctx)
}

func (s *CatalogService) UpdatePeriod(ctx context.Context, period *model.Period) error {
	return s.periodRepo.Update(ctx, period)
}

func (s *CatalogService) DeletePeriod(ctx context.Context, id int64) error {
	return s.periodRepo.Delete(ctx, id)
}

// --- teachers ---

// CreateTeacher registers a new teacher
func (s *CatalogService) CreateTeacher(ctx context.Context, teacher *model.Teacher) error {
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}

	s.logger.Info("Teacher created",
		zap.Int64("teacher_id", teacher.ID),
		zap.String("full_name", teacher.FullName()),
		zap.String("branch", teacher.Branch))

	return nil
}

func (s *CatalogService) GetTeacher(ctx context.Context, id int64) (*model.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListTeachers(ctx context.Context) ([]*model.Teacher, error) {
	return s.teacherRepo.List(ctx)
}

func (s *CatalogService) UpdateTeacher(ctx context.Context, teacher *model.Teacher) error {
	return s.teacherRepo.Update(ctx, teacher)
}

func (s *CatalogService) DeleteTeacher(ctx context.Context, id int64) error {
	return s.teacherRepo.Delete(ctx, id)
}

// --- classes ---

func (s *CatalogService) CreateClass(ctx context.Context, class *model.ClassRoom) error {
	if err := s.classRepo.Create(ctx, class); err != nil {
		return fmt.Errorf("create class: %w", err)
	}

	s.logger.Info("Class created", zap.Int64("class_id", class.ID), zap.String("name", class.Name))
	return nil
}

func (s *CatalogService) GetClass(ctx context.Context, id int64) (*model.ClassRoom, error) {
	return s.classRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListClasses(ctx context.Context) ([]*model.ClassRoom, error) {
	return s.classRepo.List(ctx)
}

func (s *CatalogService) UpdateClass(ctx context.Context, class *model.ClassRoom) error {
	return s.classRepo.Update(ctx, class)
}

func (s *CatalogService) DeleteClass(ctx context.Context, id int64) error {
	return s.classRepo.Delete(ctx, id)
}

// --- subjects ---

func (s *CatalogService) CreateSubject(ctx context.Context, subject *model.Subject) error {
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return fmt.Errorf("create subject: %w", err)
	}

	s.logger.Info("Subject created", zap.Int64("subject_id", subject.ID), zap.String("name", subject.Name))
	return nil
}

func (s *CatalogService) GetSubject(ctx context.Context, id int64) (*model.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListSubjects(ctx context.Context) ([]*model.Subject, error) {
	return s.subjectRepo.List(ctx)
}

func (s *CatalogService) UpdateSubject(ctx context.Context, subject *model.Subject) error {
	return s.subjectRepo.Update(ctx, subject)
}

func (s *CatalogService) DeleteSubject(ctx context.Context, id int64) error {
	return s.subjectRepo.Delete(ctx, id)
}

// --- duty locations ---

func (s *CatalogService) CreateLocation(ctx context.Context, location *model.DutyLocation) error {
	if err := s.locationRepo.Create(ctx, location); err != nil {
		return fmt.Errorf("create location: %w", err)
	}

	s.logger.Info("Duty location created", zap.Int64("location_id", location.ID), zap.String("name", location.Name))
	return nil
}

func (s *CatalogService) GetLocation(ctx context.Context, id int64) (*model.DutyLocation, error) {
	return s.locationRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListLocations(ctx context.Context) ([]*model.DutyLocation, error) {
	return s.locationRepo.List(ctx)
}

func (s *CatalogService) UpdateLocation(ctx context.Context, location *model.DutyLocation) error {
	return s.locationRepo.Update(ctx, location)
}

func (s *CatalogService) DeleteLocation(ctx context.Context, id int64) error {
	return s.locationRepo.Delete(ctx, id)
}
