package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/umarallure/lawyeronboarding-sub002/internal/recommend/service"
	"github.com/umarallure/lawyeronboarding-sub002/internal/recommend/transport"
	"github.com/umarallure/lawyeronboarding-sub002/platform/httpkit"
	"github.com/umarallure/lawyeronboarding-sub002/platform/validator"
)

const (
	msgInvalidRequest = "invalid request"
	msgOrderRequired  = "order_id is required"
	msgInvalidOrderID = "invalid order ID"
	msgLeadRequired   = "lead is required"
)

// Handler handles HTTP requests for the recommendation endpoints.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new recommendation handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the recommendation routes.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/recommend-deals-for-order", h.DealsForOrder)
	group.POST("/recommend-open-orders", h.OpenOrdersForLead)
}

// DealsForOrder ranks unassigned deal candidates against one order.
// POST /recommend-deals-for-order
func (h *Handler) DealsForOrder(c *gin.Context) {
	var req transport.RecommendDealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgOrderRequired, nil)
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidOrderID, nil)
		return
	}

	result, err := h.svc.DealsForOrder(c.Request.Context(), orderID, req.Limit)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// OpenOrdersForLead ranks open orders against one lead descriptor.
// POST /recommend-open-orders
func (h *Handler) OpenOrdersForLead(c *gin.Context) {
	var req transport.RecommendOpenOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if req.Lead == nil {
		httpkit.Error(c, http.StatusBadRequest, msgLeadRequired, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}

	result, err := h.svc.OpenOrdersForLead(c.Request.Context(), *req.Lead, req.Limit)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
