// Package leads provides the lead intake bounded context module.
// Call handling, verification, and attorney assignment mutate these records
// through external workflows; this module covers intake and read access.
package leads

import (
	apphttp "github.com/umarallure/lawyeronboarding-sub002/internal/http"
	"github.com/umarallure/lawyeronboarding-sub002/internal/leads/handler"
	"github.com/umarallure/lawyeronboarding-sub002/internal/leads/repository"
	"github.com/umarallure/lawyeronboarding-sub002/internal/leads/service"
	"github.com/umarallure/lawyeronboarding-sub002/platform/logger"
	"github.com/umarallure/lawyeronboarding-sub002/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Repository returns the repository for use by other modules.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts lead routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	leadsGroup := ctx.Protected.Group("/leads")
	m.handler.RegisterRoutes(leadsGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
