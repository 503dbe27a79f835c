package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/umarallure/lawyeronboarding-sub002/internal/orders/service"
	"github.com/umarallure/lawyeronboarding-sub002/platform/httpkit"
)

const msgInvalidID = "invalid order ID"

// Handler handles HTTP requests for orders.
type Handler struct {
	svc *service.Service
}

// New creates a new orders handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts order routes on the provided group.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/open", h.ListOpen)
	group.GET("/:id", h.GetByID)
}

// GetByID retrieves an order by ID.
// GET /api/v1/orders/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return
	}

	result, err := h.svc.GetByID(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListOpen retrieves open, unexpired orders.
// GET /api/v1/orders/open
func (h *Handler) ListOpen(c *gin.Context) {
	result, err := h.svc.ListOpen(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
