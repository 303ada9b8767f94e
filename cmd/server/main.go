package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/okulops/dashboard/internal/app"
	"github.com/okulops/dashboard/internal/config"
	"github.com/okulops/dashboard/internal/controller"
	"github.com/okulops/dashboard/internal/controller/handlers"
	"github.com/okulops/dashboard/internal/repository"
	"github.com/okulops/dashboard/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting okulops dashboard",
		zap.String("environment", cfg.Environment),
		zap.String("http_addr", cfg.HTTPAddr))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Repositories
	periodRepo := repository.NewPeriodRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	locationRepo := repository.NewLocationRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(pool)
	dutyRepo := repository.NewDutyRepository(pool)
	absenceRepo := repository.NewAbsenceRepository(pool)

	// Services
	catalogService := service.NewCatalogService(periodRepo, teacherRepo, classRepo, subjectRepo, locationRepo, logger)
	rosterService := service.NewRosterService(scheduleRepo, dutyRepo, absenceRepo, periodRepo, teacherRepo, classRepo, subjectRepo, locationRepo, logger)
	dashboardService := service.NewDashboardService(periodRepo, classRepo, scheduleRepo, dutyRepo, absenceRepo, logger)

	// Background conflict monitor
	monitor := app.NewConflictMonitor(dashboardService, cfg.ConflictScanInterval, logger)
	monitor.Start(ctx)
	defer monitor.Stop()

	// HTTP
	h := handlers.New(catalogService, rosterService, dashboardService, logger)
	router := controller.NewRouter(h, logger)

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := router.Listen(cfg.HTTPAddr); err != nil {
			logger.Fatal("HTTP server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := router.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}
