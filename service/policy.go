package service

import (
	"fmt"
	"sort"

	"apartment-journey/domain"
	"apartment-journey/pkg/errcodes"
)

// Policy holds every figure that is a snapshot of market or legal terms
// rather than arithmetic. It is loaded from configuration.
type Policy struct {
	VATRate             float64
	AgentRate           float64
	LawyerRate          float64
	AdvisorRate         float64
	AdvisorMinimum      float64
	CitizenFirstHomeLTV float64
	StandardLTV         float64
	PaymentPerMillion   map[int]float64 // keyed by term in years
	Tolerance           float64
	MaxIterations       int
}

func DefaultPolicy() Policy {
	return Policy{
		VATRate:             DefaultVATRate,
		AgentRate:           DefaultAgentRate,
		LawyerRate:          DefaultLawyerRate,
		AdvisorRate:         DefaultAdvisorRate,
		AdvisorMinimum:      DefaultAdvisorMinimum,
		CitizenFirstHomeLTV: CitizenFirstHomeLTV,
		StandardLTV:         StandardLTV,
		PaymentPerMillion: map[int]float64{
			20: PaymentPerMillion20Years,
			30: PaymentPerMillion30Years,
		},
		Tolerance:     DefaultConvergenceTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

func (p Policy) Validate() error {
	switch {
	case p.VATRate < 0:
		return domain.NewError(errcodes.InvalidInput, "vat rate must not be negative")
	case p.AgentRate < 0 || p.LawyerRate < 0 || p.AdvisorRate < 0 || p.AdvisorMinimum < 0:
		return domain.NewError(errcodes.InvalidInput, "fee defaults must not be negative")
	case p.CitizenFirstHomeLTV <= 0 || p.CitizenFirstHomeLTV >= 1 || p.StandardLTV <= 0 || p.StandardLTV >= 1:
		return domain.NewError(errcodes.InvalidInput, "ltv caps must be in (0, 1)")
	case len(p.PaymentPerMillion) == 0:
		return domain.NewError(errcodes.InvalidInput, "no mortgage terms configured")
	case p.Tolerance < MinConvergenceTolerance || p.Tolerance > MaxConvergenceTolerance:
		return domain.NewError(errcodes.InvalidInput, fmt.Sprintf(
			"convergence tolerance must be between %.0f and %.0f NIS", MinConvergenceTolerance, MaxConvergenceTolerance))
	case p.MaxIterations < MinIterationBudget || p.MaxIterations > MaxIterationBudget:
		return domain.NewError(errcodes.InvalidInput, fmt.Sprintf(
			"iteration budget must be between %d and %d", MinIterationBudget, MaxIterationBudget))
	}

	for term, k := range p.PaymentPerMillion {
		if term <= 0 || k <= 0 {
			return domain.NewError(errcodes.InvalidInput, fmt.Sprintf("invalid payment factor for %d years", term))
		}
	}

	return nil
}

func (p Policy) VATMultiplier() float64 {
	return 1 + p.VATRate
}

// MaxLTV is the loan-to-value cap the buyer is eligible for.
func (p Policy) MaxLTV(profile domain.BuyerProfile) float64 {
	if profile.CitizenFirstHome() {
		return p.CitizenFirstHomeLTV
	}
	return p.StandardLTV
}

func (p Policy) PaymentFactor(termYears int) (float64, error) {
	k, ok := p.PaymentPerMillion[termYears]
	if !ok {
		return 0, domain.NewError(errcodes.UnsupportedTerm,
			fmt.Sprintf("unsupported mortgage term %d years, supported: %v", termYears, p.Terms()))
	}
	return k, nil
}

// Terms lists the supported mortgage terms in ascending order.
func (p Policy) Terms() []int {
	terms := make([]int, 0, len(p.PaymentPerMillion))
	for term := range p.PaymentPerMillion {
		terms = append(terms, term)
	}
	sort.Ints(terms)
	return terms
}
