package matching

import "testing"

func strPtr(v string) *string { return &v }

func TestMergeLead_DealFillsOnlyUnsetFields(t *testing.T) {
	base := LeadPartial{
		State:     strPtr("fl"),
		IsInjured: boolPtr(true),
	}
	deal := LeadPartial{
		State:   strPtr("GA"),
		Insured: boolPtr(true),
	}

	profile := MergeLead(base, deal, LeadPartial{})

	if profile.State != "FL" {
		t.Fatalf("deal tier must not override stored state, got %q", profile.State)
	}
	if profile.Facts.IsInjured != FactYes {
		t.Fatalf("expected stored injury fact kept, got %v", profile.Facts.IsInjured)
	}
	if profile.Facts.Insured != FactYes {
		t.Fatalf("expected deal tier to fill missing insured fact, got %v", profile.Facts.Insured)
	}
}

func TestMergeLead_OverridesWinOverBothTiers(t *testing.T) {
	base := LeadPartial{State: strPtr("FL"), Insured: boolPtr(true)}
	deal := LeadPartial{CurrentlyRepresented: boolPtr(true)}
	overrides := LeadPartial{
		State:                strPtr("tx"),
		Insured:              boolPtr(false),
		CurrentlyRepresented: boolPtr(false),
	}

	profile := MergeLead(base, deal, overrides)

	if profile.State != "TX" {
		t.Fatalf("expected override state, got %q", profile.State)
	}
	if profile.Facts.Insured != FactNo {
		t.Fatalf("expected override insured fact, got %v", profile.Facts.Insured)
	}
	if profile.Facts.CurrentlyRepresented != FactNo {
		t.Fatalf("expected override representation fact, got %v", profile.Facts.CurrentlyRepresented)
	}
}

func TestMergeLead_AllTiersEmpty(t *testing.T) {
	profile := MergeLead(LeadPartial{}, LeadPartial{}, LeadPartial{})

	if profile.State != "" {
		t.Fatalf("expected empty state, got %q", profile.State)
	}
	if profile.Facts.PriorAttorneyInvolved != FactUnknown {
		t.Fatalf("expected unknown facts, got %v", profile.Facts.PriorAttorneyInvolved)
	}
}
