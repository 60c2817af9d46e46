package domain

// Outcome is an advisory flag attached to a computed result. Outcomes never
// abort a computation.
type Outcome string

const (
	OutcomeNonConvergence   Outcome = "NonConvergence"
	OutcomeInsufficientCash Outcome = "InsufficientCash"
	OutcomeLTVExceeded      Outcome = "LTVExceeded"
	OutcomeNonPositivePrice Outcome = "NonPositivePrice"
)

type Outcomes []Outcome

func (o Outcomes) Has(outcome Outcome) bool {
	for _, v := range o {
		if v == outcome {
			return true
		}
	}
	return false
}

func (o Outcomes) Strings() []string {
	out := make([]string, len(o))
	for i, v := range o {
		out[i] = string(v)
	}
	return out
}
