package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/umarallure/lawyeronboarding-sub002/platform/apperr"
)

const orderNotFoundMessage = "order not found"

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new orders repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetByID retrieves an order by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Order, error) {
	query := `
		SELECT id, lawyer_id, target_states, criteria, quota_total, quota_filled, status, expires_at, created_at
		FROM orders
		WHERE id = $1`

	var o Order
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.LawyerID, &o.TargetStates, &o.Criteria,
		&o.QuotaTotal, &o.QuotaFilled, &o.Status, &o.ExpiresAt, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, apperr.NotFound(orderNotFoundMessage)
		}
		return Order{}, fmt.Errorf("get order by id: %w", err)
	}

	return o, nil
}

// ListOpen retrieves orders with status OPEN that expire after now.
func (r *Repo) ListOpen(ctx context.Context, now time.Time) ([]Order, error) {
	query := `
		SELECT id, lawyer_id, target_states, criteria, quota_total, quota_filled, status, expires_at, created_at
		FROM orders
		WHERE status = 'OPEN' AND expires_at > $1
		ORDER BY expires_at ASC`

	rows, err := r.pool.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("list open orders: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

// MarkExpired transitions OPEN orders past their expiry to EXPIRED.
func (r *Repo) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE orders SET status = 'EXPIRED' WHERE status = 'OPEN' AND expires_at <= $1`

	result, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("mark orders expired: %w", err)
	}

	return result.RowsAffected(), nil
}

// scanOrders is a helper to scan multiple rows into an Order slice.
func scanOrders(rows pgx.Rows) ([]Order, error) {
	var results []Order

	for rows.Next() {
		var o Order
		err := rows.Scan(
			&o.ID, &o.LawyerID, &o.TargetStates, &o.Criteria,
			&o.QuotaTotal, &o.QuotaFilled, &o.Status, &o.ExpiresAt, &o.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}

		results = append(results, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return results, nil
}
