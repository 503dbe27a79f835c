package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/umarallure/lawyeronboarding-sub002/internal/leads/repository"
	"github.com/umarallure/lawyeronboarding-sub002/internal/leads/transport"
	"github.com/umarallure/lawyeronboarding-sub002/platform/apperr"
	"github.com/umarallure/lawyeronboarding-sub002/platform/logger"
)

type fakeRepo struct {
	created *repository.CreateParams
	leads   map[uuid.UUID]repository.Lead
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return repository.Lead{}, apperr.NotFound("lead not found")
	}
	return lead, nil
}

func (f *fakeRepo) GetBySubmissionID(_ context.Context, _ string) (repository.Lead, error) {
	return repository.Lead{}, apperr.NotFound("lead not found")
}

func (f *fakeRepo) LatestDealBySubmissionID(_ context.Context, _ string) (*repository.DealFlowRow, error) {
	return nil, nil
}

func (f *fakeRepo) ListUnassignedDeals(_ context.Context, _ int) ([]repository.DealFlowRow, error) {
	return nil, nil
}

func (f *fakeRepo) LeadIDsBySubmissionIDs(_ context.Context, _ []string) (map[string]uuid.UUID, error) {
	return map[string]uuid.UUID{}, nil
}

func (f *fakeRepo) Create(_ context.Context, params repository.CreateParams) (repository.Lead, error) {
	f.created = &params
	return repository.Lead{
		ID:           uuid.New(),
		SubmissionID: params.SubmissionID,
		Phone:        params.Phone,
		State:        params.State,
		Status:       "New",
	}, nil
}

func strPtr(v string) *string { return &v }

func TestCreateNormalizesStateAndPhone(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, logger.New("development"))

	result, err := svc.Create(context.Background(), transport.CreateLeadRequest{
		SubmissionID: "sub-1",
		Phone:        "(202) 555-0142",
		State:        strPtr("  tx "),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.created == nil {
		t.Fatal("expected repository create call")
	}
	if repo.created.State == nil || *repo.created.State != "TX" {
		t.Fatalf("expected normalized state TX, got %v", repo.created.State)
	}
	if repo.created.Phone != "+12025550142" {
		t.Fatalf("expected E.164 phone, got %q", repo.created.Phone)
	}
	if result.SubmissionID != "sub-1" {
		t.Fatalf("expected submission id sub-1, got %q", result.SubmissionID)
	}
}

func TestCreateDropsBlankState(t *testing.T) {
	repo := &fakeRepo{}
	svc := New(repo, logger.New("development"))

	_, err := svc.Create(context.Background(), transport.CreateLeadRequest{
		SubmissionID: "sub-2",
		State:        strPtr("   "),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.created.State != nil {
		t.Fatalf("expected nil state for blank input, got %v", repo.created.State)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := New(&fakeRepo{leads: map[uuid.UUID]repository.Lead{}}, logger.New("development"))

	_, err := svc.GetByID(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error for unknown lead")
	}
	var domainErr *apperr.Error
	if !errors.As(err, &domainErr) || domainErr.Kind != apperr.KindNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}
