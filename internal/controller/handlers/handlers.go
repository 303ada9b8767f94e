package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/okulops/dashboard/internal/service"
)

// Handlers bundles the HTTP handlers with the services they call.
type Handlers struct {
	catalog   *service.CatalogService
	roster    *service.RosterService
	dashboard *service.DashboardService
	validate  *validator.Validate
	logger    *zap.Logger
}

func New(
	catalog *service.CatalogService,
	roster *service.RosterService,
	dashboard *service.DashboardService,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		catalog:   catalog,
		roster:    roster,
		dashboard: dashboard,
		validate:  validator.New(),
		logger:    logger,
	}
}
