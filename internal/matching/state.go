package matching

import "strings"

const stateMatchScore = 60

// StateFilterMode controls what a state mismatch does to a candidate.
// The two recommendation directions intentionally differ: matching deals to an
// order excludes out-of-state candidates, while matching orders to a lead only
// withholds the bonus and keeps the order as a lower-scored candidate.
type StateFilterMode int

const (
	// StateExcluding drops candidates whose state is not targeted.
	StateExcluding StateFilterMode = iota
	// StateSoftPenalty keeps mismatched candidates without the match bonus.
	StateSoftPenalty
)

// NormalizeState trims and upper-cases a jurisdiction code. Empty or
// whitespace input becomes the empty string.
func NormalizeState(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeStateSet builds a set of normalized, non-empty target codes.
func NormalizeStateSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		normalized := NormalizeState(value)
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}

// CheckState applies an order's state targeting to a candidate state.
// When the target set is empty or the candidate state is unknown the check is
// skipped entirely: incomplete data must not zero out all candidates.
func CheckState(targets map[string]struct{}, candidateState string, mode StateFilterMode) (ok bool, score int, reason string) {
	state := NormalizeState(candidateState)
	if len(targets) == 0 || state == "" {
		return true, 0, ""
	}

	if _, found := targets[state]; found {
		return true, stateMatchScore, "State match: " + state
	}

	if mode == StateExcluding {
		return false, 0, ""
	}

	return true, 0, "State mismatch: " + state
}
