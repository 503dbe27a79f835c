package transport

import (
	"time"

	"github.com/google/uuid"
)

// RecommendDealsRequest asks for deal candidates matching one order.
type RecommendDealsRequest struct {
	OrderID string `json:"order_id" validate:"required"`
	Limit   int    `json:"limit" validate:"omitempty,min=1"`
}

// LeadInput describes the lead to match against open orders. Either a lead ID
// or a submission ID identifies the stored record; the remaining fields are
// live overrides an agent may type before saving, and take precedence over
// stored data.
type LeadInput struct {
	LeadID                   *uuid.UUID `json:"lead_id,omitempty"`
	SubmissionID             *string    `json:"submission_id,omitempty"`
	State                    *string    `json:"state,omitempty"`
	PriorAttorneyInvolved    *bool      `json:"prior_attorney_involved,omitempty"`
	CurrentlyRepresented     *bool      `json:"currently_represented,omitempty"`
	IsInjured                *bool      `json:"is_injured,omitempty"`
	ReceivedMedicalTreatment *bool      `json:"received_medical_treatment,omitempty"`
	AccidentLast12Months     *bool      `json:"accident_last_12_months,omitempty"`
	Insured                  *bool      `json:"insured,omitempty"`
}

// RecommendOpenOrdersRequest asks for open orders matching one lead.
type RecommendOpenOrdersRequest struct {
	Lead  *LeadInput `json:"lead" validate:"required"`
	Limit int        `json:"limit" validate:"omitempty,min=1"`
}

// DealRecommendation is one scored deal candidate. LeadID is the canonical
// lead record resolved from the submission ID, null when no mapping exists.
type DealRecommendation struct {
	SubmissionID             string     `json:"submission_id"`
	LeadID                   *uuid.UUID `json:"lead_id"`
	State                    *string    `json:"state,omitempty"`
	Status                   string     `json:"status"`
	PriorAttorneyInvolved    *bool      `json:"prior_attorney_involved,omitempty"`
	CurrentlyRepresented     *bool      `json:"currently_represented,omitempty"`
	IsInjured                *bool      `json:"is_injured,omitempty"`
	ReceivedMedicalTreatment *bool      `json:"received_medical_treatment,omitempty"`
	AccidentLast12Months     *bool      `json:"accident_last_12_months,omitempty"`
	Insured                  *bool      `json:"insured,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
	Score                    int        `json:"score"`
	Reasons                  []string   `json:"reasons"`
}

// RecommendDealsResponse is the ranked result for one order.
type RecommendDealsResponse struct {
	OrderID         uuid.UUID            `json:"order_id"`
	Recommendations []DealRecommendation `json:"recommendations"`
}

// LeadEcho reflects the resolved lead identity back to the caller.
type LeadEcho struct {
	State        string     `json:"state"`
	SubmissionID *string    `json:"submission_id"`
	LeadID       *uuid.UUID `json:"lead_id"`
}

// OrderRecommendation is one scored open order for a lead.
type OrderRecommendation struct {
	OrderID     uuid.UUID `json:"order_id"`
	LawyerID    uuid.UUID `json:"lawyer_id"`
	ExpiresAt   time.Time `json:"expires_at"`
	QuotaTotal  int       `json:"quota_total"`
	QuotaFilled int       `json:"quota_filled"`
	Remaining   int       `json:"remaining"`
	Score       int       `json:"score"`
	Reasons     []string  `json:"reasons"`
}

// RecommendOpenOrdersResponse is the ranked result for one lead.
type RecommendOpenOrdersResponse struct {
	Lead            LeadEcho              `json:"lead"`
	Recommendations []OrderRecommendation `json:"recommendations"`
}
