package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	leadsrepo "github.com/umarallure/lawyeronboarding-sub002/internal/leads/repository"
	"github.com/umarallure/lawyeronboarding-sub002/internal/matching"
	ordersrepo "github.com/umarallure/lawyeronboarding-sub002/internal/orders/repository"
	"github.com/umarallure/lawyeronboarding-sub002/internal/recommend/transport"
	"github.com/umarallure/lawyeronboarding-sub002/platform/apperr"
	"github.com/umarallure/lawyeronboarding-sub002/platform/config"
	"github.com/umarallure/lawyeronboarding-sub002/platform/logger"
)

const (
	dealLimitDefault = 50
	dealLimitMax     = 100

	orderLimitDefault = 10
	orderLimitMax     = 25
)

// Service orchestrates the two recommendation directions: data fetch, the
// three-tier lead merge, ranking, and response shaping. The ranking itself
// lives in the matching package and never touches I/O.
type Service struct {
	orders ordersrepo.Repository
	leads  leadsrepo.Repository
	cfg    config.MatchingConfig
	log    *logger.Logger
	now    func() time.Time
}

// New creates a new recommendation service.
func New(orders ordersrepo.Repository, leads leadsrepo.Repository, cfg config.MatchingConfig, log *logger.Logger) *Service {
	return &Service{
		orders: orders,
		leads:  leads,
		cfg:    cfg,
		log:    log,
		now:    time.Now,
	}
}

// DealsForOrder ranks unassigned deal-flow candidates against one order.
// The submission-to-lead mapping lookup is best effort: a failure leaves the
// lead IDs null instead of failing the whole request.
func (s *Service) DealsForOrder(ctx context.Context, orderID uuid.UUID, limit int) (transport.RecommendDealsResponse, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return transport.RecommendDealsResponse{}, err
	}

	rows, err := s.leads.ListUnassignedDeals(ctx, s.cfg.GetDealCandidateFetchLimit())
	if err != nil {
		return transport.RecommendDealsResponse{}, err
	}

	now := s.now()
	deals := make([]matching.Deal, 0, len(rows))
	rowsBySubmission := make(map[string]leadsrepo.DealFlowRow, len(rows))
	for _, row := range rows {
		deals = append(deals, toMatchDeal(row))
		rowsBySubmission[row.SubmissionID] = row
	}

	matches := matching.RankDealsForOrder(
		toMatchOrder(order),
		deals,
		now,
		matching.ClampLimit(limit, dealLimitDefault, dealLimitMax),
	)

	submissionIDs := make([]string, 0, len(matches))
	for _, match := range matches {
		submissionIDs = append(submissionIDs, match.Deal.SubmissionID)
	}

	leadIDs, err := s.leads.LeadIDsBySubmissionIDs(ctx, submissionIDs)
	if err != nil {
		s.log.Warn("lead id mapping lookup failed", "error", err.Error())
		leadIDs = nil
	}

	recommendations := make([]transport.DealRecommendation, 0, len(matches))
	for _, match := range matches {
		row := rowsBySubmission[match.Deal.SubmissionID]
		rec := transport.DealRecommendation{
			SubmissionID:             row.SubmissionID,
			State:                    row.State,
			Status:                   row.Status,
			PriorAttorneyInvolved:    row.PriorAttorneyInvolved,
			CurrentlyRepresented:     row.CurrentlyRepresented,
			IsInjured:                row.IsInjured,
			ReceivedMedicalTreatment: row.ReceivedMedicalTreatment,
			AccidentLast12Months:     row.AccidentLast12Months,
			Insured:                  row.Insured,
			CreatedAt:                row.CreatedAt,
			Score:                    match.Score,
			Reasons:                  match.Reasons,
		}
		if leadID, ok := leadIDs[row.SubmissionID]; ok {
			id := leadID
			rec.LeadID = &id
		}
		recommendations = append(recommendations, rec)
	}

	s.log.Recommendation("deals-for-order", len(rows), len(recommendations))

	return transport.RecommendDealsResponse{
		OrderID:         order.ID,
		Recommendations: recommendations,
	}, nil
}

// OpenOrdersForLead ranks open orders against one lead. The lead view is
// merged from three tiers: the stored record, its latest deal-flow row, and
// the caller's live overrides, in ascending precedence. A stored record that
// cannot be found is not an error; matching proceeds on whatever the caller
// supplied.
func (s *Service) OpenOrdersForLead(ctx context.Context, input transport.LeadInput, limit int) (transport.RecommendOpenOrdersResponse, error) {
	var (
		openOrders []ordersrepo.Order
		stored     *leadsrepo.Lead
		dealRow    *leadsrepo.DealFlowRow
	)

	now := s.now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		openOrders, err = s.orders.ListOpen(gctx, now)
		return err
	})
	g.Go(func() error {
		var err error
		stored, dealRow, err = s.resolveLead(gctx, input)
		return err
	})
	if err := g.Wait(); err != nil {
		return transport.RecommendOpenOrdersResponse{}, err
	}

	base := storedPartial(stored)
	deal := dealPartial(dealRow)
	overrides := overridePartial(input)
	profile := matching.MergeLead(base, deal, overrides)

	candidates := make([]matching.Order, 0, len(openOrders))
	for _, order := range openOrders {
		candidates = append(candidates, toMatchOrder(order))
	}

	matches := matching.RankOpenOrdersForLead(
		candidates,
		profile,
		now,
		matching.ClampLimit(limit, orderLimitDefault, orderLimitMax),
	)

	ordersByID := make(map[uuid.UUID]ordersrepo.Order, len(openOrders))
	for _, order := range openOrders {
		ordersByID[order.ID] = order
	}

	recommendations := make([]transport.OrderRecommendation, 0, len(matches))
	for _, match := range matches {
		order := ordersByID[match.Order.ID]
		recommendations = append(recommendations, transport.OrderRecommendation{
			OrderID:     order.ID,
			LawyerID:    order.LawyerID,
			ExpiresAt:   order.ExpiresAt,
			QuotaTotal:  order.QuotaTotal,
			QuotaFilled: order.QuotaFilled,
			Remaining:   match.Remaining,
			Score:       match.Score,
			Reasons:     match.Reasons,
		})
	}

	s.log.Recommendation("open-orders-for-lead", len(openOrders), len(recommendations))

	return transport.RecommendOpenOrdersResponse{
		Lead:            leadEcho(profile, input, stored),
		Recommendations: recommendations,
	}, nil
}

// resolveLead loads the stored lead by id or submission id, then the latest
// deal-flow row for the resolved submission. Absent records resolve to nil.
func (s *Service) resolveLead(ctx context.Context, input transport.LeadInput) (*leadsrepo.Lead, *leadsrepo.DealFlowRow, error) {
	var stored *leadsrepo.Lead

	switch {
	case input.LeadID != nil:
		lead, err := s.leads.GetByID(ctx, *input.LeadID)
		if err != nil {
			if !apperr.Is(err, apperr.KindNotFound) {
				return nil, nil, err
			}
		} else {
			stored = &lead
		}
	case input.SubmissionID != nil && *input.SubmissionID != "":
		lead, err := s.leads.GetBySubmissionID(ctx, *input.SubmissionID)
		if err != nil {
			if !apperr.Is(err, apperr.KindNotFound) {
				return nil, nil, err
			}
		} else {
			stored = &lead
		}
	}

	submissionID := ""
	if stored != nil {
		submissionID = stored.SubmissionID
	} else if input.SubmissionID != nil {
		submissionID = *input.SubmissionID
	}
	if submissionID == "" {
		return stored, nil, nil
	}

	dealRow, err := s.leads.LatestDealBySubmissionID(ctx, submissionID)
	if err != nil {
		return nil, nil, err
	}
	return stored, dealRow, nil
}

func storedPartial(lead *leadsrepo.Lead) matching.LeadPartial {
	if lead == nil {
		return matching.LeadPartial{}
	}
	return matching.LeadPartial{
		State:                    lead.State,
		PriorAttorneyInvolved:    lead.PriorAttorneyInvolved,
		CurrentlyRepresented:     lead.CurrentlyRepresented,
		IsInjured:                lead.IsInjured,
		ReceivedMedicalTreatment: lead.ReceivedMedicalTreatment,
		AccidentLast12Months:     lead.AccidentLast12Months,
		Insured:                  lead.Insured,
	}
}

func dealPartial(row *leadsrepo.DealFlowRow) matching.LeadPartial {
	if row == nil {
		return matching.LeadPartial{}
	}
	return matching.LeadPartial{
		State:                    row.State,
		PriorAttorneyInvolved:    row.PriorAttorneyInvolved,
		CurrentlyRepresented:     row.CurrentlyRepresented,
		IsInjured:                row.IsInjured,
		ReceivedMedicalTreatment: row.ReceivedMedicalTreatment,
		AccidentLast12Months:     row.AccidentLast12Months,
		Insured:                  row.Insured,
	}
}

func overridePartial(input transport.LeadInput) matching.LeadPartial {
	return matching.LeadPartial{
		State:                    input.State,
		PriorAttorneyInvolved:    input.PriorAttorneyInvolved,
		CurrentlyRepresented:     input.CurrentlyRepresented,
		IsInjured:                input.IsInjured,
		ReceivedMedicalTreatment: input.ReceivedMedicalTreatment,
		AccidentLast12Months:     input.AccidentLast12Months,
		Insured:                  input.Insured,
	}
}

func leadEcho(profile matching.LeadProfile, input transport.LeadInput, stored *leadsrepo.Lead) transport.LeadEcho {
	echo := transport.LeadEcho{State: profile.State}

	if stored != nil {
		id := stored.ID
		submission := stored.SubmissionID
		echo.LeadID = &id
		echo.SubmissionID = &submission
		return echo
	}

	echo.LeadID = input.LeadID
	if input.SubmissionID != nil && *input.SubmissionID != "" {
		echo.SubmissionID = input.SubmissionID
	}
	return echo
}

func toMatchOrder(order ordersrepo.Order) matching.Order {
	return matching.Order{
		ID:           order.ID,
		LawyerID:     order.LawyerID,
		TargetStates: order.TargetStates,
		Criteria:     matching.ParseCriteria(order.Criteria),
		QuotaTotal:   order.QuotaTotal,
		QuotaFilled:  order.QuotaFilled,
		ExpiresAt:    order.ExpiresAt,
	}
}

func toMatchDeal(row leadsrepo.DealFlowRow) matching.Deal {
	state := ""
	if row.State != nil {
		state = *row.State
	}
	return matching.Deal{
		SubmissionID: row.SubmissionID,
		State:        state,
		Status:       row.Status,
		Assigned:     row.AttorneyID != nil,
		Facts: matching.Facts{
			PriorAttorneyInvolved:    matching.FactOf(row.PriorAttorneyInvolved),
			CurrentlyRepresented:     matching.FactOf(row.CurrentlyRepresented),
			IsInjured:                matching.FactOf(row.IsInjured),
			ReceivedMedicalTreatment: matching.FactOf(row.ReceivedMedicalTreatment),
			AccidentLast12Months:     matching.FactOf(row.AccidentLast12Months),
			Insured:                  matching.FactOf(row.Insured),
		},
		CreatedAt: row.CreatedAt,
	}
}
