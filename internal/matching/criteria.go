// Package matching implements the lead-to-order matching engine: criteria
// evaluation, jurisdiction filtering, decay scoring, and candidate ranking.
// Everything in this package is a pure function over explicit inputs; I/O
// stays at the request-handler boundary.
package matching

import (
	"encoding/json"
	"strings"
)

// Rule is the policy an order declares for a single tri-state criterion.
type Rule int

const (
	// RuleEither accepts any candidate value, including unknown.
	RuleEither Rule = iota
	// RuleYes requires the candidate fact to be exactly true.
	RuleYes
	// RuleNo requires the candidate fact to be exactly false.
	RuleNo
)

// InsuredRule is the policy for the special insured criterion.
type InsuredRule int

const (
	// InsuredAny applies no insured requirement and no score effect.
	InsuredAny InsuredRule = iota
	// InsuredOnly requires insured candidates and boosts their score.
	InsuredOnly
	// UninsuredOK never excludes and adds a small boost.
	UninsuredOK
)

// Fact is a candidate's normalized tri-state answer to a criterion.
type Fact int

const (
	// FactUnknown means the fact is missing from every record tier.
	FactUnknown Fact = iota
	// FactYes means the fact is exactly true.
	FactYes
	// FactNo means the fact is exactly false.
	FactNo
)

// FactOf normalizes an optional boolean into a Fact.
func FactOf(value *bool) Fact {
	switch {
	case value == nil:
		return FactUnknown
	case *value:
		return FactYes
	default:
		return FactNo
	}
}

// Criteria is an order's typed criteria document. The zero value means
// "either" for every tri-state key and no insured rule, which matches an
// absent document.
type Criteria struct {
	PriorAttorneyInvolved    Rule
	CurrentlyRepresented     Rule
	IsInjured                Rule
	ReceivedMedicalTreatment Rule
	AccidentLast12Months     Rule
	Insured                  InsuredRule
}

// Facts holds a candidate's tri-state answers, one per recognized criterion.
type Facts struct {
	PriorAttorneyInvolved    Fact
	CurrentlyRepresented     Fact
	IsInjured                Fact
	ReceivedMedicalTreatment Fact
	AccidentLast12Months     Fact
	Insured                  Fact
}

// Evaluation is the outcome of matching one candidate against one criteria
// document. Exclusions are encoded as values, never as errors.
type Evaluation struct {
	Eligible   bool
	Reasons    []string
	ScoreBoost int
}

const (
	insuredOnlyBoost = 10
	uninsuredOKBoost = 2
)

// parseRule maps a raw criteria value to a Rule. Anything unrecognized,
// including an absent key, reads as "either".
func parseRule(raw string) Rule {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes":
		return RuleYes
	case "no":
		return RuleNo
	default:
		return RuleEither
	}
}

// parseInsuredRule maps a raw insured value to an InsuredRule, defaulting to
// no rule for unrecognized values.
func parseInsuredRule(raw string) InsuredRule {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "insured_only":
		return InsuredOnly
	case "uninsured_ok":
		return UninsuredOK
	default:
		return InsuredAny
	}
}

// criteriaDoc is the wire shape of a stored criteria document. Unknown keys
// are dropped by json decoding, preserving the "safely ignored" contract.
type criteriaDoc struct {
	PriorAttorneyInvolved    string `json:"prior_attorney_involved"`
	CurrentlyRepresented     string `json:"currently_represented"`
	IsInjured                string `json:"is_injured"`
	ReceivedMedicalTreatment string `json:"received_medical_treatment"`
	AccidentLast12Months     string `json:"accident_last_12_months"`
	Insured                  string `json:"insured"`
}

// ParseCriteria decodes a raw JSON criteria document into typed Criteria.
// A nil, empty, or malformed document yields the neutral zero value.
func ParseCriteria(raw []byte) Criteria {
	if len(raw) == 0 {
		return Criteria{}
	}

	var doc criteriaDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Criteria{}
	}

	return Criteria{
		PriorAttorneyInvolved:    parseRule(doc.PriorAttorneyInvolved),
		CurrentlyRepresented:     parseRule(doc.CurrentlyRepresented),
		IsInjured:                parseRule(doc.IsInjured),
		ReceivedMedicalTreatment: parseRule(doc.ReceivedMedicalTreatment),
		AccidentLast12Months:     parseRule(doc.AccidentLast12Months),
		Insured:                  parseInsuredRule(doc.Insured),
	}
}

type triStateCheck struct {
	key  string
	rule Rule
	fact Fact
}

// EvaluateCriteria decides whether a candidate satisfies an order's criteria.
// The five tri-state checks run in fixed key order and the first failure
// short-circuits: the candidate is excluded with a single reason and zero
// boost, without evaluating the insured rule.
func EvaluateCriteria(criteria Criteria, facts Facts) Evaluation {
	checks := []triStateCheck{
		{"prior_attorney_involved", criteria.PriorAttorneyInvolved, facts.PriorAttorneyInvolved},
		{"currently_represented", criteria.CurrentlyRepresented, facts.CurrentlyRepresented},
		{"is_injured", criteria.IsInjured, facts.IsInjured},
		{"received_medical_treatment", criteria.ReceivedMedicalTreatment, facts.ReceivedMedicalTreatment},
		{"accident_last_12_months", criteria.AccidentLast12Months, facts.AccidentLast12Months},
	}

	for _, check := range checks {
		if !ruleSatisfied(check.rule, check.fact) {
			return Evaluation{
				Eligible: false,
				Reasons:  []string{"Excluded: " + check.key + " mismatch"},
			}
		}
	}

	reasons := []string{}
	boost := 0

	switch criteria.Insured {
	case InsuredOnly:
		if facts.Insured != FactYes {
			return Evaluation{
				Eligible: false,
				Reasons:  []string{"Excluded: insured_only required"},
			}
		}
		boost += insuredOnlyBoost
		reasons = append(reasons, "Match: insured_only")
	case UninsuredOK:
		boost += uninsuredOKBoost
		reasons = append(reasons, "Criteria: uninsured_ok")
	}

	return Evaluation{Eligible: true, Reasons: reasons, ScoreBoost: boost}
}

func ruleSatisfied(rule Rule, fact Fact) bool {
	switch rule {
	case RuleYes:
		return fact == FactYes
	case RuleNo:
		return fact == FactNo
	default:
		return true
	}
}
