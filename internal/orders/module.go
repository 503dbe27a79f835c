// Package orders provides the purchase-order bounded context module.
// Orders are created and filled by external purchase and assignment
// workflows; this module exposes read access and expiry transitions.
package orders

import (
	apphttp "github.com/umarallure/lawyeronboarding-sub002/internal/http"
	"github.com/umarallure/lawyeronboarding-sub002/internal/orders/handler"
	"github.com/umarallure/lawyeronboarding-sub002/internal/orders/repository"
	"github.com/umarallure/lawyeronboarding-sub002/internal/orders/service"
	"github.com/umarallure/lawyeronboarding-sub002/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the orders bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the orders module with all its dependencies.
func NewModule(pool *pgxpool.Pool, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "orders"
}

// Repository returns the repository for use by other modules.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts order routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ordersGroup := ctx.Protected.Group("/orders")
	m.handler.RegisterRoutes(ordersGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
