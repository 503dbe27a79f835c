package matching

import (
	"fmt"
	"math"
	"time"
)

const (
	recencyMaxScore = 20
	expiryMaxScore  = 30
	quotaBonusCap   = 10
)

// daysBetween returns the fractional day count from a to b, floored at zero so
// clock skew or already-past timestamps never produce negative contributions.
func daysBetween(a, b time.Time) float64 {
	days := b.Sub(a).Hours() / 24
	return math.Max(0, days)
}

// RecencyScore converts a deal's age into a decaying bonus. Brand-new deals
// score 20 and the bonus halves every two days of age.
func RecencyScore(now, createdAt time.Time) (int, string) {
	days := daysBetween(createdAt, now)
	score := int(math.Round(recencyMaxScore / (1 + days/2)))
	return score, fmt.Sprintf("Recency: %d day(s) ago", int(days))
}

// ExpiryScore converts an order's time-to-expiry into an urgency bonus.
// Orders expiring now score 30; the bonus halves every three days out.
func ExpiryScore(now, expiresAt time.Time) (int, string) {
	days := daysBetween(now, expiresAt)
	score := int(math.Round(expiryMaxScore / (1 + days/3)))
	return score, fmt.Sprintf("Expires in ~%d day(s)", int(days))
}

// QuotaBonus rewards orders with open quota, capped at 10.
func QuotaBonus(remaining int) (int, string) {
	bonus := remaining
	if bonus < 0 {
		bonus = 0
	}
	if bonus > quotaBonusCap {
		bonus = quotaBonusCap
	}
	return bonus, fmt.Sprintf("Remaining quota: %d", remaining)
}
