package matching

// LeadPartial is one tier of the merged lead view: stored lead fields,
// deal-flow fields, or live overrides typed by an agent who has not saved yet.
// Nil means the tier says nothing about the field.
type LeadPartial struct {
	State                    *string
	PriorAttorneyInvolved    *bool
	CurrentlyRepresented     *bool
	IsInjured                *bool
	ReceivedMedicalTreatment *bool
	AccidentLast12Months     *bool
	Insured                  *bool
}

// LeadProfile is the merged, normalized view the ranker matches against.
type LeadProfile struct {
	State string
	Facts Facts
}

// MergeLead overlays the three record tiers into one profile. The deal-flow
// tier only fills fields the stored lead leaves unset; live overrides win
// whenever present. Precedence: base < deal < overrides.
func MergeLead(base, deal, overrides LeadPartial) LeadProfile {
	merged := base

	fillString(&merged.State, deal.State)
	fillBool(&merged.PriorAttorneyInvolved, deal.PriorAttorneyInvolved)
	fillBool(&merged.CurrentlyRepresented, deal.CurrentlyRepresented)
	fillBool(&merged.IsInjured, deal.IsInjured)
	fillBool(&merged.ReceivedMedicalTreatment, deal.ReceivedMedicalTreatment)
	fillBool(&merged.AccidentLast12Months, deal.AccidentLast12Months)
	fillBool(&merged.Insured, deal.Insured)

	overrideString(&merged.State, overrides.State)
	overrideBool(&merged.PriorAttorneyInvolved, overrides.PriorAttorneyInvolved)
	overrideBool(&merged.CurrentlyRepresented, overrides.CurrentlyRepresented)
	overrideBool(&merged.IsInjured, overrides.IsInjured)
	overrideBool(&merged.ReceivedMedicalTreatment, overrides.ReceivedMedicalTreatment)
	overrideBool(&merged.AccidentLast12Months, overrides.AccidentLast12Months)
	overrideBool(&merged.Insured, overrides.Insured)

	state := ""
	if merged.State != nil {
		state = NormalizeState(*merged.State)
	}

	return LeadProfile{
		State: state,
		Facts: Facts{
			PriorAttorneyInvolved:    FactOf(merged.PriorAttorneyInvolved),
			CurrentlyRepresented:     FactOf(merged.CurrentlyRepresented),
			IsInjured:                FactOf(merged.IsInjured),
			ReceivedMedicalTreatment: FactOf(merged.ReceivedMedicalTreatment),
			AccidentLast12Months:     FactOf(merged.AccidentLast12Months),
			Insured:                  FactOf(merged.Insured),
		},
	}
}

func fillString(dst **string, src *string) {
	if *dst == nil && src != nil {
		*dst = src
	}
}

func fillBool(dst **bool, src *bool) {
	if *dst == nil && src != nil {
		*dst = src
	}
}

func overrideString(dst **string, src *string) {
	if src != nil {
		*dst = src
	}
}

func overrideBool(dst **bool, src *bool) {
	if src != nil {
		*dst = src
	}
}
