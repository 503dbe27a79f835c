package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/umarallure/lawyeronboarding-sub002/platform/apperr"
)

const leadNotFoundMessage = "lead not found"

const leadColumns = `id, submission_id, first_name, last_name, phone, state,
	prior_attorney_involved, currently_represented, is_injured,
	received_medical_treatment, accident_last_12_months, insured,
	status, attorney_id, created_at, updated_at`

const dealColumns = `id, submission_id, state,
	prior_attorney_involved, currently_represented, is_injured,
	received_medical_treatment, accident_last_12_months, insured,
	status, attorney_id, created_at`

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// GetByID retrieves a lead by its ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	return r.getLead(ctx, query, id)
}

// GetBySubmissionID retrieves a lead by its submission ID.
func (r *Repo) GetBySubmissionID(ctx context.Context, submissionID string) (Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE submission_id = $1`
	return r.getLead(ctx, query, submissionID)
}

func (r *Repo) getLead(ctx context.Context, query string, arg interface{}) (Lead, error) {
	var l Lead
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&l.ID, &l.SubmissionID, &l.FirstName, &l.LastName, &l.Phone, &l.State,
		&l.PriorAttorneyInvolved, &l.CurrentlyRepresented, &l.IsInjured,
		&l.ReceivedMedicalTreatment, &l.AccidentLast12Months, &l.Insured,
		&l.Status, &l.AttorneyID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Lead{}, apperr.NotFound(leadNotFoundMessage)
		}
		return Lead{}, fmt.Errorf("get lead: %w", err)
	}

	return l, nil
}

// LatestDealBySubmissionID retrieves the most recent deal-flow row for a
// submission, or nil when none exists.
func (r *Repo) LatestDealBySubmissionID(ctx context.Context, submissionID string) (*DealFlowRow, error) {
	query := `
		SELECT ` + dealColumns + `
		FROM deal_flow
		WHERE submission_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	var d DealFlowRow
	err := r.pool.QueryRow(ctx, query, submissionID).Scan(
		&d.ID, &d.SubmissionID, &d.State,
		&d.PriorAttorneyInvolved, &d.CurrentlyRepresented, &d.IsInjured,
		&d.ReceivedMedicalTreatment, &d.AccidentLast12Months, &d.Insured,
		&d.Status, &d.AttorneyID, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest deal by submission: %w", err)
	}

	return &d, nil
}

// ListUnassignedDeals retrieves up to limit deal-flow rows without an
// attorney, most recently created first.
func (r *Repo) ListUnassignedDeals(ctx context.Context, limit int) ([]DealFlowRow, error) {
	query := `
		SELECT ` + dealColumns + `
		FROM deal_flow
		WHERE attorney_id IS NULL
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list unassigned deals: %w", err)
	}
	defer rows.Close()

	var results []DealFlowRow
	for rows.Next() {
		var d DealFlowRow
		err := rows.Scan(
			&d.ID, &d.SubmissionID, &d.State,
			&d.PriorAttorneyInvolved, &d.CurrentlyRepresented, &d.IsInjured,
			&d.ReceivedMedicalTreatment, &d.AccidentLast12Months, &d.Insured,
			&d.Status, &d.AttorneyID, &d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan deal row: %w", err)
		}
		results = append(results, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deal rows: %w", err)
	}

	return results, nil
}

// LeadIDsBySubmissionIDs maps submission IDs to canonical lead IDs.
// Submissions without a lead record are simply absent from the result.
func (r *Repo) LeadIDsBySubmissionIDs(ctx context.Context, submissionIDs []string) (map[string]uuid.UUID, error) {
	mapping := make(map[string]uuid.UUID, len(submissionIDs))
	if len(submissionIDs) == 0 {
		return mapping, nil
	}

	query := `SELECT submission_id, id FROM leads WHERE submission_id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, submissionIDs)
	if err != nil {
		return nil, fmt.Errorf("map submission ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var submissionID string
		var leadID uuid.UUID
		if err := rows.Scan(&submissionID, &leadID); err != nil {
			return nil, fmt.Errorf("scan submission mapping: %w", err)
		}
		mapping[submissionID] = leadID
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submission mappings: %w", err)
	}

	return mapping, nil
}

// Create inserts a new lead from a customer submission.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Lead, error) {
	query := `
		INSERT INTO leads (
			submission_id, first_name, last_name, phone, state,
			prior_attorney_involved, currently_represented, is_injured,
			received_medical_treatment, accident_last_12_months, insured
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + leadColumns

	var l Lead
	err := r.pool.QueryRow(ctx, query,
		params.SubmissionID, params.FirstName, params.LastName, params.Phone, params.State,
		params.PriorAttorneyInvolved, params.CurrentlyRepresented, params.IsInjured,
		params.ReceivedMedicalTreatment, params.AccidentLast12Months, params.Insured,
	).Scan(
		&l.ID, &l.SubmissionID, &l.FirstName, &l.LastName, &l.Phone, &l.State,
		&l.PriorAttorneyInvolved, &l.CurrentlyRepresented, &l.IsInjured,
		&l.ReceivedMedicalTreatment, &l.AccidentLast12Months, &l.Insured,
		&l.Status, &l.AttorneyID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return Lead{}, fmt.Errorf("create lead: %w", err)
	}

	return l, nil
}
