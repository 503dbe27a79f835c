package transport

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID           uuid.UUID       `json:"order_id"`
	LawyerID     uuid.UUID       `json:"lawyer_id"`
	TargetStates []string        `json:"target_states"`
	Criteria     json.RawMessage `json:"criteria,omitempty"`
	QuotaTotal   int             `json:"quota_total"`
	QuotaFilled  int             `json:"quota_filled"`
	Remaining    int             `json:"remaining"`
	Status       string          `json:"status"`
	ExpiresAt    time.Time       `json:"expires_at"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OrderListResponse wraps a list of orders.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}
