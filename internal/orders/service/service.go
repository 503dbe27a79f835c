package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/umarallure/lawyeronboarding-sub002/internal/orders/repository"
	"github.com/umarallure/lawyeronboarding-sub002/internal/orders/transport"
	"github.com/umarallure/lawyeronboarding-sub002/platform/logger"
)

// Service provides read access to orders. Creation and quota fill happen in
// external purchase and assignment workflows.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new orders service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GetByID retrieves an order by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.OrderResponse, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.OrderResponse{}, err
	}
	return toResponse(order), nil
}

// ListOpen retrieves open, unexpired orders.
func (s *Service) ListOpen(ctx context.Context) (transport.OrderListResponse, error) {
	orders, err := s.repo.ListOpen(ctx, time.Now())
	if err != nil {
		return transport.OrderListResponse{}, err
	}

	items := make([]transport.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, toResponse(order))
	}

	return transport.OrderListResponse{Items: items, Total: len(items)}, nil
}

func toResponse(order repository.Order) transport.OrderResponse {
	return transport.OrderResponse{
		ID:           order.ID,
		LawyerID:     order.LawyerID,
		TargetStates: order.TargetStates,
		Criteria:     order.Criteria,
		QuotaTotal:   order.QuotaTotal,
		QuotaFilled:  order.QuotaFilled,
		Remaining:    order.QuotaTotal - order.QuotaFilled,
		Status:       order.Status,
		ExpiresAt:    order.ExpiresAt,
		CreatedAt:    order.CreatedAt,
	}
}
