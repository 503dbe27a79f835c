package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Order is a law firm's standing purchase request for leads.
type Order struct {
	ID           uuid.UUID
	LawyerID     uuid.UUID
	TargetStates []string
	Criteria     []byte // raw criteria document (jsonb)
	QuotaTotal   int
	QuotaFilled  int
	Status       string
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// Repository defines data access for orders.
type Repository interface {
	// GetByID retrieves an order by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (Order, error)
	// ListOpen retrieves orders with status OPEN that expire after now.
	ListOpen(ctx context.Context, now time.Time) ([]Order, error)
	// MarkExpired transitions OPEN orders past their expiry to EXPIRED and
	// returns how many rows changed.
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
}
