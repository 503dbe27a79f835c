package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/umarallure/lawyeronboarding-sub002/internal/leads/repository"
	"github.com/umarallure/lawyeronboarding-sub002/internal/leads/transport"
	"github.com/umarallure/lawyeronboarding-sub002/internal/matching"
	"github.com/umarallure/lawyeronboarding-sub002/platform/logger"
	"github.com/umarallure/lawyeronboarding-sub002/platform/phone"
)

// Service provides intake and read access for leads.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new leads service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create registers a new customer submission. Phone numbers normalize to
// E.164 and jurisdiction codes to upper case before storage, so downstream
// matching and dialer workflows see consistent data.
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (transport.LeadResponse, error) {
	state := req.State
	if state != nil {
		normalized := matching.NormalizeState(*state)
		if normalized == "" {
			state = nil
		} else {
			state = &normalized
		}
	}

	lead, err := s.repo.Create(ctx, repository.CreateParams{
		SubmissionID:             req.SubmissionID,
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		Phone:                    phone.NormalizeE164(req.Phone),
		State:                    state,
		PriorAttorneyInvolved:    req.PriorAttorneyInvolved,
		CurrentlyRepresented:     req.CurrentlyRepresented,
		IsInjured:                req.IsInjured,
		ReceivedMedicalTreatment: req.ReceivedMedicalTreatment,
		AccidentLast12Months:     req.AccidentLast12Months,
		Insured:                  req.Insured,
	})
	if err != nil {
		return transport.LeadResponse{}, err
	}

	return toResponse(lead), nil
}

// GetByID retrieves a lead by ID.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (transport.LeadResponse, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return transport.LeadResponse{}, err
	}
	return toResponse(lead), nil
}

func toResponse(lead repository.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:                       lead.ID,
		SubmissionID:             lead.SubmissionID,
		FirstName:                lead.FirstName,
		LastName:                 lead.LastName,
		Phone:                    lead.Phone,
		State:                    lead.State,
		PriorAttorneyInvolved:    lead.PriorAttorneyInvolved,
		CurrentlyRepresented:     lead.CurrentlyRepresented,
		IsInjured:                lead.IsInjured,
		ReceivedMedicalTreatment: lead.ReceivedMedicalTreatment,
		AccidentLast12Months:     lead.AccidentLast12Months,
		Insured:                  lead.Insured,
		Status:                   lead.Status,
		AttorneyID:               lead.AttorneyID,
		CreatedAt:                lead.CreatedAt,
	}
}
