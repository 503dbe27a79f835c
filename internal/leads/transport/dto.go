package transport

import (
	"time"

	"github.com/google/uuid"
)

// CreateLeadRequest contains data for registering a new customer submission.
type CreateLeadRequest struct {
	SubmissionID             string  `json:"submission_id" validate:"required,min=1,max=100"`
	FirstName                string  `json:"first_name" validate:"omitempty,max=100"`
	LastName                 string  `json:"last_name" validate:"omitempty,max=100"`
	Phone                    string  `json:"phone" validate:"omitempty,max=30"`
	State                    *string `json:"state,omitempty" validate:"omitempty,max=10"`
	PriorAttorneyInvolved    *bool   `json:"prior_attorney_involved,omitempty"`
	CurrentlyRepresented     *bool   `json:"currently_represented,omitempty"`
	IsInjured                *bool   `json:"is_injured,omitempty"`
	ReceivedMedicalTreatment *bool   `json:"received_medical_treatment,omitempty"`
	AccidentLast12Months     *bool   `json:"accident_last_12_months,omitempty"`
	Insured                  *bool   `json:"insured,omitempty"`
}

// LeadResponse represents a lead in API responses.
type LeadResponse struct {
	ID                       uuid.UUID  `json:"lead_id"`
	SubmissionID             string     `json:"submission_id"`
	FirstName                string     `json:"first_name"`
	LastName                 string     `json:"last_name"`
	Phone                    string     `json:"phone"`
	State                    *string    `json:"state,omitempty"`
	PriorAttorneyInvolved    *bool      `json:"prior_attorney_involved,omitempty"`
	CurrentlyRepresented     *bool      `json:"currently_represented,omitempty"`
	IsInjured                *bool      `json:"is_injured,omitempty"`
	ReceivedMedicalTreatment *bool      `json:"received_medical_treatment,omitempty"`
	AccidentLast12Months     *bool      `json:"accident_last_12_months,omitempty"`
	Insured                  *bool      `json:"insured,omitempty"`
	Status                   string     `json:"status"`
	AttorneyID               *uuid.UUID `json:"attorney_id,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
}
