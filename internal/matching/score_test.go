package matching

import (
	"testing"
	"time"
)

func TestRecencyScore_DecaysWithAge(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	fresh, reason := RecencyScore(now, now)
	if fresh != 20 {
		t.Fatalf("expected 20 for a brand-new deal, got %d", fresh)
	}
	if reason != "Recency: 0 day(s) ago" {
		t.Fatalf("unexpected reason %q", reason)
	}

	twoDays, _ := RecencyScore(now, now.Add(-48*time.Hour))
	if twoDays != 10 {
		t.Fatalf("expected 10 at two days, got %d", twoDays)
	}

	tenDays, _ := RecencyScore(now, now.Add(-240*time.Hour))
	if tenDays >= twoDays {
		t.Fatalf("expected decay, got %d at ten days vs %d at two", tenDays, twoDays)
	}
	if tenDays < 0 {
		t.Fatalf("score must never be negative, got %d", tenDays)
	}
}

func TestRecencyScore_FutureCreatedAtFloorsAtZeroDays(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	score, reason := RecencyScore(now, now.Add(6*time.Hour))
	if score != 20 {
		t.Fatalf("expected clock skew to floor at zero days, got %d", score)
	}
	if reason != "Recency: 0 day(s) ago" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestExpiryScore_UrgencyBias(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	immediate, reason := ExpiryScore(now, now)
	if immediate != 30 {
		t.Fatalf("expected 30 for an order expiring now, got %d", immediate)
	}
	if reason != "Expires in ~0 day(s)" {
		t.Fatalf("unexpected reason %q", reason)
	}

	threeDays, _ := ExpiryScore(now, now.Add(72*time.Hour))
	if threeDays != 15 {
		t.Fatalf("expected 15 at three days out, got %d", threeDays)
	}

	past, _ := ExpiryScore(now, now.Add(-24*time.Hour))
	if past != 30 {
		t.Fatalf("expected already-expired timestamps to floor at zero days, got %d", past)
	}
}

func TestQuotaBonus_CappedAndClamped(t *testing.T) {
	bonus, reason := QuotaBonus(5)
	if bonus != 5 {
		t.Fatalf("expected bonus 5, got %d", bonus)
	}
	if reason != "Remaining quota: 5" {
		t.Fatalf("unexpected reason %q", reason)
	}

	if bonus, _ := QuotaBonus(50); bonus != 10 {
		t.Fatalf("expected cap at 10, got %d", bonus)
	}
	if bonus, _ := QuotaBonus(-3); bonus != 0 {
		t.Fatalf("expected clamp at 0, got %d", bonus)
	}
}
