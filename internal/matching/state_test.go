package matching

import "testing"

func TestNormalizeState(t *testing.T) {
	if got := NormalizeState("  tx "); got != "TX" {
		t.Fatalf("expected TX, got %q", got)
	}
	if got := NormalizeState("   "); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestNormalizeStateSet_DropsEmptyEntries(t *testing.T) {
	set := NormalizeStateSet([]string{"tx", " FL ", "", "  "})

	if len(set) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(set))
	}
	if _, ok := set["TX"]; !ok {
		t.Fatal("expected TX in set")
	}
	if _, ok := set["FL"]; !ok {
		t.Fatal("expected FL in set")
	}
}

func TestCheckState_SkippedWhenEitherSideEmpty(t *testing.T) {
	ok, score, reason := CheckState(nil, "TX", StateExcluding)
	if !ok || score != 0 || reason != "" {
		t.Fatalf("expected skip for empty targets, got ok=%v score=%d reason=%q", ok, score, reason)
	}

	ok, score, reason = CheckState(NormalizeStateSet([]string{"TX"}), "", StateExcluding)
	if !ok || score != 0 || reason != "" {
		t.Fatalf("expected skip for unknown candidate state, got ok=%v score=%d reason=%q", ok, score, reason)
	}
}

func TestCheckState_Match(t *testing.T) {
	ok, score, reason := CheckState(NormalizeStateSet([]string{"TX", "FL"}), "tx", StateExcluding)

	if !ok {
		t.Fatal("expected match")
	}
	if score != 60 {
		t.Fatalf("expected score 60, got %d", score)
	}
	if reason != "State match: TX" {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestCheckState_MismatchDirectionAsymmetry(t *testing.T) {
	targets := NormalizeStateSet([]string{"TX"})

	ok, score, _ := CheckState(targets, "OK", StateExcluding)
	if ok {
		t.Fatal("excluding mode must drop mismatched candidates")
	}
	if score != 0 {
		t.Fatalf("expected zero score, got %d", score)
	}

	ok, score, reason := CheckState(targets, "OK", StateSoftPenalty)
	if !ok {
		t.Fatal("soft-penalty mode must keep mismatched candidates")
	}
	if score != 0 {
		t.Fatalf("expected no bonus, got %d", score)
	}
	if reason != "State mismatch: OK" {
		t.Fatalf("unexpected reason %q", reason)
	}
}
