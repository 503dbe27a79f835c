package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead is a canonical intake record for a prospective customer.
type Lead struct {
	ID                       uuid.UUID
	SubmissionID             string
	FirstName                string
	LastName                 string
	Phone                    string
	State                    *string
	PriorAttorneyInvolved    *bool
	CurrentlyRepresented     *bool
	IsInjured                *bool
	ReceivedMedicalTreatment *bool
	AccidentLast12Months     *bool
	Insured                  *bool
	Status                   string
	AttorneyID               *uuid.UUID
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// DealFlowRow is a daily call-activity record linked to a lead by submission ID.
type DealFlowRow struct {
	ID                       uuid.UUID
	SubmissionID             string
	State                    *string
	PriorAttorneyInvolved    *bool
	CurrentlyRepresented     *bool
	IsInjured                *bool
	ReceivedMedicalTreatment *bool
	AccidentLast12Months     *bool
	Insured                  *bool
	Status                   string
	AttorneyID               *uuid.UUID
	CreatedAt                time.Time
}

// CreateParams contains data for inserting a new lead from a customer submission.
type CreateParams struct {
	SubmissionID             string
	FirstName                string
	LastName                 string
	Phone                    string
	State                    *string
	PriorAttorneyInvolved    *bool
	CurrentlyRepresented     *bool
	IsInjured                *bool
	ReceivedMedicalTreatment *bool
	AccidentLast12Months     *bool
	Insured                  *bool
}

// Repository defines data access for leads and deal-flow activity.
type Repository interface {
	// GetByID retrieves a lead by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (Lead, error)
	// GetBySubmissionID retrieves a lead by its submission ID.
	GetBySubmissionID(ctx context.Context, submissionID string) (Lead, error)
	// LatestDealBySubmissionID retrieves the most recent deal-flow row for a
	// submission, or nil when none exists.
	LatestDealBySubmissionID(ctx context.Context, submissionID string) (*DealFlowRow, error)
	// ListUnassignedDeals retrieves up to limit deal-flow rows without an
	// attorney, most recently created first.
	ListUnassignedDeals(ctx context.Context, limit int) ([]DealFlowRow, error)
	// LeadIDsBySubmissionIDs maps submission IDs to canonical lead IDs.
	LeadIDsBySubmissionIDs(ctx context.Context, submissionIDs []string) (map[string]uuid.UUID, error)
	// Create inserts a new lead from a customer submission.
	Create(ctx context.Context, params CreateParams) (Lead, error)
}
