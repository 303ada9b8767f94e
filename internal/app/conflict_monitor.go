package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/okulops/dashboard/internal/service"
)

// ConflictMonitor periodically scans the timetable for double-booked slots
// and logs them. It only reports — conflicts are data-entry problems and
// fixing them is a human decision, so nothing is ever mutated here.
type ConflictMonitor struct {
	dashboard *service.DashboardService
	interval  time.Duration
	logger    *zap.Logger
	stopChan  chan struct{}
}

// NewConflictMonitor creates a monitor with the given scan interval
func NewConflictMonitor(dashboard *service.DashboardService, interval time.Duration, logger *zap.Logger) *ConflictMonitor {
	return &ConflictMonitor{
		dashboard: dashboard,
		interval:  interval,
		logger:    logger,
		stopChan:  make(chan struct{}),
	}
}

// Start launches the scan loop in the background
func (m *ConflictMonitor) Start(ctx context.Context) {
	m.logger.Info("Starting conflict monitor", zap.Duration("interval", m.interval))
	go m.run(ctx)
}

// Stop stops the scan loop
func (m *ConflictMonitor) Stop() {
	m.logger.Info("Stopping conflict monitor")
	close(m.stopChan)
}

func (m *ConflictMonitor) run(ctx context.Context) {
	// First scan right away, then on every tick.
	m.scan(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.scan(ctx)
		case <-m.stopChan:
			m.logger.Info("Conflict monitor stopped")
			return
		case <-ctx.Done():
			m.logger.Info("Conflict monitor cancelled")
			return
		}
	}
}

func (m *ConflictMonitor) scan(ctx context.Context) {
	conflicts, err := m.dashboard.Conflicts(ctx)
	if err != nil {
		m.logger.Error("Conflict scan failed", zap.Error(err))
		return
	}

	if len(conflicts) == 0 {
		m.logger.Info("Conflict scan completed, timetable is clean")
		return
	}

	for _, c := range conflicts {
		m.logger.Warn("Scheduling conflict",
			zap.Int64("teacher_id", c.TeacherID),
			zap.Int("day_of_week", c.DayOfWeek),
			zap.Int64("period_id", c.PeriodID),
			zap.Int("commitments", len(c.Commitments)))
	}
}
