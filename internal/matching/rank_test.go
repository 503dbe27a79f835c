package matching

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestClampLimit(t *testing.T) {
	if got := ClampLimit(0, 50, 100); got != 50 {
		t.Fatalf("expected default 50, got %d", got)
	}
	if got := ClampLimit(-3, 50, 100); got != 50 {
		t.Fatalf("expected default for negative, got %d", got)
	}
	if got := ClampLimit(200, 50, 100); got != 100 {
		t.Fatalf("expected cap 100, got %d", got)
	}
	if got := ClampLimit(7, 10, 25); got != 7 {
		t.Fatalf("expected passthrough 7, got %d", got)
	}
}

func TestMatchableDealStatus(t *testing.T) {
	for _, status := range []string{
		"Signed Retainer",
		"signed retainers - pending",
		"Returned Back to queue",
		"RETURNED TO CENTER",
		"Dropped Retainers",
		"Retainer Signed",
	} {
		if !MatchableDealStatus(status) {
			t.Fatalf("expected %q to be matchable", status)
		}
	}

	for _, status := range []string{"", "new", "callback scheduled", "DQ"} {
		if MatchableDealStatus(status) {
			t.Fatalf("expected %q to be unmatchable", status)
		}
	}
}

func TestRankDealsForOrder_Scenario(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	order := Order{
		ID:           uuid.New(),
		TargetStates: []string{"TX"},
		Criteria:     Criteria{Insured: InsuredOnly},
		QuotaTotal:   10,
		ExpiresAt:    now.Add(7 * 24 * time.Hour),
	}

	deals := []Deal{
		{
			SubmissionID: "sub-a",
			State:        "TX",
			Status:       "Signed Retainer",
			Facts:        Facts{Insured: FactYes},
			CreatedAt:    now,
		},
		{
			SubmissionID: "sub-b",
			State:        "OK",
			Status:       "Signed Retainer",
			Facts:        Facts{Insured: FactYes},
			CreatedAt:    now,
		},
		{
			SubmissionID: "sub-c",
			State:        "TX",
			Status:       "Signed Retainer",
			Facts:        Facts{Insured: FactNo},
			CreatedAt:    now,
		},
	}

	matches := RankDealsForOrder(order, deals, now, 50)

	if len(matches) != 1 {
		t.Fatalf("expected only candidate A to survive, got %d matches", len(matches))
	}
	if matches[0].Deal.SubmissionID != "sub-a" {
		t.Fatalf("expected sub-a, got %s", matches[0].Deal.SubmissionID)
	}
	// 60 state + 10 insured_only + 10 unassigned + 20 recency
	if matches[0].Score != 100 {
		t.Fatalf("expected score 100, got %d", matches[0].Score)
	}

	wantReasons := []string{
		"State match: TX",
		"Match: insured_only",
		"Unassigned deal",
		"Recency: 0 day(s) ago",
	}
	if !reflect.DeepEqual(matches[0].Reasons, wantReasons) {
		t.Fatalf("unexpected reasons: %v", matches[0].Reasons)
	}
}

func TestRankDealsForOrder_SkipsAssignedAndWrongStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	order := Order{ID: uuid.New(), QuotaTotal: 5}

	deals := []Deal{
		{SubmissionID: "assigned", Status: "Signed Retainer", Assigned: true, CreatedAt: now},
		{SubmissionID: "fresh-call", Status: "callback scheduled", CreatedAt: now},
		{SubmissionID: "ok", Status: "Returned to Center", CreatedAt: now},
	}

	matches := RankDealsForOrder(order, deals, now, 50)

	if len(matches) != 1 || matches[0].Deal.SubmissionID != "ok" {
		t.Fatalf("expected only the returned-to-center deal, got %+v", matches)
	}
}

func TestRankDealsForOrder_SortsByScoreAndTruncates(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	order := Order{ID: uuid.New(), QuotaTotal: 5}

	deals := []Deal{
		{SubmissionID: "old", Status: "retainer signed", CreatedAt: now.Add(-10 * 24 * time.Hour)},
		{SubmissionID: "new", Status: "retainer signed", CreatedAt: now},
		{SubmissionID: "mid", Status: "retainer signed", CreatedAt: now.Add(-2 * 24 * time.Hour)},
	}

	matches := RankDealsForOrder(order, deals, now, 2)

	if len(matches) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(matches))
	}
	if matches[0].Deal.SubmissionID != "new" || matches[1].Deal.SubmissionID != "mid" {
		t.Fatalf("unexpected order: %s, %s", matches[0].Deal.SubmissionID, matches[1].Deal.SubmissionID)
	}
}

func TestRankOpenOrdersForLead_ScoreFloorScenario(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lead := LeadProfile{State: "FL"}

	orderX := Order{
		ID:           uuid.New(),
		TargetStates: []string{"FL"},
		QuotaTotal:   5,
		ExpiresAt:    now.Add(24 * time.Hour),
	}
	orderY := Order{
		ID:           uuid.New(),
		TargetStates: []string{"GA"},
		QuotaTotal:   5,
		ExpiresAt:    now.Add(24 * time.Hour),
	}

	matches := RankOpenOrdersForLead([]Order{orderY, orderX}, lead, now, 10)

	// X: 60 state + 23 expiry + 5 quota = 88, above the floor.
	// Y: 23 expiry + 5 quota = 28, below it, so only X survives.
	if len(matches) != 1 {
		t.Fatalf("expected only order X above the score floor, got %d matches", len(matches))
	}
	if matches[0].Order.ID != orderX.ID {
		t.Fatal("expected order X first")
	}
	if matches[0].Score != 88 {
		t.Fatalf("expected score 88, got %d", matches[0].Score)
	}
	if matches[0].Remaining != 5 {
		t.Fatalf("expected remaining 5, got %d", matches[0].Remaining)
	}
}

func TestRankOpenOrdersForLead_NoFloorWhenAllWeak(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lead := LeadProfile{State: "FL"}

	weak := Order{
		ID:           uuid.New(),
		TargetStates: []string{"GA"},
		QuotaTotal:   1,
		ExpiresAt:    now.Add(30 * 24 * time.Hour),
	}

	matches := RankOpenOrdersForLead([]Order{weak}, lead, now, 10)

	if len(matches) != 1 {
		t.Fatalf("expected the weak candidate to pass through, got %d matches", len(matches))
	}

	found := false
	for _, reason := range matches[0].Reasons {
		if reason == "State mismatch: FL" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a state mismatch reason, got %v", matches[0].Reasons)
	}
}

func TestRankOpenOrdersForLead_SkipsExhaustedQuota(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	exhausted := Order{ID: uuid.New(), QuotaTotal: 3, QuotaFilled: 3, ExpiresAt: now.Add(24 * time.Hour)}
	overfilled := Order{ID: uuid.New(), QuotaTotal: 3, QuotaFilled: 5, ExpiresAt: now.Add(24 * time.Hour)}
	open := Order{ID: uuid.New(), QuotaTotal: 3, QuotaFilled: 1, ExpiresAt: now.Add(24 * time.Hour)}

	matches := RankOpenOrdersForLead([]Order{exhausted, overfilled, open}, LeadProfile{}, now, 10)

	if len(matches) != 1 || matches[0].Order.ID != open.ID {
		t.Fatalf("expected only the order with remaining quota, got %+v", matches)
	}
}

func TestRankOpenOrdersForLead_TieBreaksOnSoonestExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lead := LeadProfile{State: "FL"}

	later := Order{ID: uuid.New(), TargetStates: []string{"FL"}, QuotaTotal: 5, ExpiresAt: now.Add(48 * time.Hour)}
	sooner := Order{ID: uuid.New(), TargetStates: []string{"FL"}, QuotaTotal: 5, ExpiresAt: now.Add(48 * time.Hour)}
	sooner.ExpiresAt = now.Add(47 * time.Hour)

	// One hour apart keeps the rounded expiry bonus identical, forcing a tie.
	first := RankOpenOrdersForLead([]Order{later, sooner}, lead, now, 10)
	second := RankOpenOrdersForLead([]Order{later, sooner}, lead, now, 10)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("ranking must be deterministic for identical inputs")
	}
	if len(first) != 2 {
		t.Fatalf("expected both orders, got %d", len(first))
	}
	if first[0].Score != first[1].Score {
		t.Fatalf("expected a score tie, got %d and %d", first[0].Score, first[1].Score)
	}
	if first[0].Order.ID != sooner.ID {
		t.Fatal("tie must break on soonest expiry")
	}
}
