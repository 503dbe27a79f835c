// Package recommend provides the lead-to-order matching endpoints.
// Both directions of the matcher are exposed here: ranking unassigned deals
// for one order, and ranking open orders for one lead.
package recommend

import (
	apphttp "github.com/umarallure/lawyeronboarding-sub002/internal/http"
	"github.com/umarallure/lawyeronboarding-sub002/internal/leads"
	"github.com/umarallure/lawyeronboarding-sub002/internal/orders"
	"github.com/umarallure/lawyeronboarding-sub002/internal/recommend/handler"
	"github.com/umarallure/lawyeronboarding-sub002/internal/recommend/service"
	"github.com/umarallure/lawyeronboarding-sub002/platform/config"
	"github.com/umarallure/lawyeronboarding-sub002/platform/logger"
	"github.com/umarallure/lawyeronboarding-sub002/platform/validator"
)

// Module is the recommendation bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the recommendation module. It reads
// through the orders and leads modules' repositories and owns no tables.
func NewModule(ordersModule *orders.Module, leadsModule *leads.Module, cfg config.MatchingConfig, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(ordersModule.Repository(), leadsModule.Repository(), cfg, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "recommend"
}

// RegisterRoutes mounts the recommendation routes. These live at the engine
// root rather than the versioned API group: the portal's call consoles call
// them at fixed paths.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Engine.Group(""))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
