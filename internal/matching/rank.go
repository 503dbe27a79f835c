package matching

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	unassignedDealBonus = 10

	// scoreFloor guards the open-orders direction against returning uniformly
	// low-confidence matches: once any candidate clears it, weaker ones drop.
	scoreFloor = 50
)

// matchableDealStatuses is the lifecycle allow-list for the deals-for-order
// direction. Matching is a case-insensitive substring test, so both singular
// and plural retainer phrasings pass.
var matchableDealStatuses = []string{
	"returned back",
	"returned to center",
	"dropped retainer",
	"signed retainer",
	"retainer signed",
}

// Order is an order as the engine sees it.
type Order struct {
	ID           uuid.UUID
	LawyerID     uuid.UUID
	TargetStates []string
	Criteria     Criteria
	QuotaTotal   int
	QuotaFilled  int
	ExpiresAt    time.Time
}

// Remaining is the order's unfilled quota. May be negative when external
// assignment overfills; callers treat that as zero availability.
func (o Order) Remaining() int {
	return o.QuotaTotal - o.QuotaFilled
}

// Deal is a deal-flow candidate as the engine sees it.
type Deal struct {
	SubmissionID string
	State        string
	Status       string
	Assigned     bool
	Facts        Facts
	CreatedAt    time.Time
}

// DealMatch is a scored deal candidate for one order.
type DealMatch struct {
	Deal    Deal
	Score   int
	Reasons []string
}

// OrderMatch is a scored order candidate for one lead.
type OrderMatch struct {
	Order     Order
	Remaining int
	Score     int
	Reasons   []string
}

// ClampLimit resolves a requested result limit against a default and a cap.
// Zero or negative means unset.
func ClampLimit(requested, fallback, max int) int {
	if requested <= 0 {
		return fallback
	}
	if requested > max {
		return max
	}
	return requested
}

// MatchableDealStatus reports whether a deal's free-form status text is in a
// lifecycle stage that allows matching.
func MatchableDealStatus(status string) bool {
	lowered := strings.ToLower(status)
	for _, keyword := range matchableDealStatuses {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// RankDealsForOrder scores every eligible deal against one order and returns
// the top candidates, best first. In this direction a state mismatch excludes
// the deal outright. Ties keep the input order (newest-created first as
// fetched), which the stable sort preserves.
func RankDealsForOrder(order Order, deals []Deal, now time.Time, limit int) []DealMatch {
	targets := NormalizeStateSet(order.TargetStates)
	matches := make([]DealMatch, 0, len(deals))

	for _, deal := range deals {
		if deal.Assigned {
			continue
		}
		if !MatchableDealStatus(deal.Status) {
			continue
		}

		ok, stateScore, stateReason := CheckState(targets, deal.State, StateExcluding)
		if !ok {
			continue
		}

		eval := EvaluateCriteria(order.Criteria, deal.Facts)
		if !eval.Eligible {
			continue
		}

		recency, recencyReason := RecencyScore(now, deal.CreatedAt)

		score := stateScore + eval.ScoreBoost + unassignedDealBonus + recency

		reasons := make([]string, 0, len(eval.Reasons)+3)
		if stateReason != "" {
			reasons = append(reasons, stateReason)
		}
		reasons = append(reasons, eval.Reasons...)
		reasons = append(reasons, "Unassigned deal")
		reasons = append(reasons, recencyReason)

		matches = append(matches, DealMatch{Deal: deal, Score: score, Reasons: reasons})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// RankOpenOrdersForLead scores open orders against one merged lead profile.
// A state mismatch does not exclude here; it only withholds the bonus.
// Quota-exhausted orders are filtered out before scoring. Results sort by
// score descending with soonest expiry breaking ties, then the score floor
// applies: if any candidate reaches it, only those are returned.
func RankOpenOrdersForLead(orders []Order, lead LeadProfile, now time.Time, limit int) []OrderMatch {
	matches := make([]OrderMatch, 0, len(orders))

	for _, order := range orders {
		remaining := order.Remaining()
		if remaining <= 0 {
			continue
		}

		eval := EvaluateCriteria(order.Criteria, lead.Facts)
		if !eval.Eligible {
			continue
		}

		targets := NormalizeStateSet(order.TargetStates)
		_, stateScore, stateReason := CheckState(targets, lead.State, StateSoftPenalty)

		expiry, expiryReason := ExpiryScore(now, order.ExpiresAt)
		quota, quotaReason := QuotaBonus(remaining)

		score := eval.ScoreBoost + stateScore + expiry + quota

		reasons := make([]string, 0, len(eval.Reasons)+3)
		reasons = append(reasons, eval.Reasons...)
		if stateReason != "" {
			reasons = append(reasons, stateReason)
		}
		reasons = append(reasons, expiryReason)
		reasons = append(reasons, quotaReason)

		matches = append(matches, OrderMatch{
			Order:     order,
			Remaining: remaining,
			Score:     score,
			Reasons:   reasons,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Order.ExpiresAt.Before(matches[j].Order.ExpiresAt)
	})

	matches = applyScoreFloor(matches)

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// applyScoreFloor keeps only candidates at or above the floor, unless none
// reach it, in which case the full list passes through so the caller still
// gets something for a generically weak lead.
func applyScoreFloor(matches []OrderMatch) []OrderMatch {
	strong := make([]OrderMatch, 0, len(matches))
	for _, match := range matches {
		if match.Score >= scoreFloor {
			strong = append(strong, match)
		}
	}
	if len(strong) == 0 {
		return matches
	}
	return strong
}
