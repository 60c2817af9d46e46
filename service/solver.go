package service

import (
	"fmt"
	"math"

	"apartment-journey/domain"
	"apartment-journey/pkg/errcodes"
)

// Solver finds the apartment price consistent with a cash constraint, the
// buyer's LTV cap, purchase tax and fees, by fixed-point iteration on price.
type Solver struct {
	policy Policy
	tax    *TaxEngine
	fees   *FeeCalculator
}

func NewSolver(policy Policy, tax *TaxEngine) *Solver {
	return &Solver{
		policy: policy,
		tax:    tax,
		fees:   NewFeeCalculator(policy, tax),
	}
}

// solveTerms are the per-call closures the iteration runs on.
type solveTerms struct {
	maxLTV   float64
	ceiling  float64
	fixed    bool
	mortgage func(price float64) float64
	next     func(price float64) float64
}

func (s *Solver) Solve(input domain.AffordabilityInput) (domain.SolverResult, error) {
	if err := s.validate(input); err != nil {
		return domain.SolverResult{}, err
	}

	terms, err := s.terms(input)
	if err != nil {
		return domain.SolverResult{}, err
	}

	price := s.seed(input, terms)
	converged := false
	iterations := 0
	run := []float64{price}

	for iterations < s.policy.MaxIterations {
		iterations++

		newPrice := terms.next(price)
		delta := math.Abs(newPrice - price)
		price = newPrice

		// A non-positive price has no consistent mortgage or fees; stop here
		// rather than iterate on a meaningless estimate.
		if price <= 0 {
			break
		}
		if delta < s.policy.Tolerance {
			converged = true
			break
		}

		// Every two plain steps, jump to the Aitken extrapolation of the run.
		run = append(run, price)
		if len(run) == 3 {
			price = aitken(run[0], run[1], run[2])
			run = append(run[:0], price)
		}
	}

	if converged && input.Mode == domain.ModeNetCash {
		price = s.withinCash(input, terms, price)
	}

	return s.settle(input, terms, price, iterations, converged), nil
}

// aitken applies Aitken's delta-squared step to three consecutive iterates.
// It keeps the last iterate when the step is undefined or not a positive price.
func aitken(p0, p1, p2 float64) float64 {
	curvature := p2 - 2*p1 + p0
	if curvature == 0 {
		return p2
	}

	extrapolated := p2 - (p2-p1)*(p2-p1)/curvature
	if extrapolated <= 0 || math.IsNaN(extrapolated) || math.IsInf(extrapolated, 0) {
		return p2
	}
	return extrapolated
}

// withinCash steps a converged net-cash price down until the settled figures
// spend no more than the available cash. The overdraw grows with price at a
// slope of at least 1 - maxLTV (1 for a fixed mortgage), so dividing by that
// slope lands at or below the exact fixed point.
func (s *Solver) withinCash(input domain.AffordabilityInput, t solveTerms, price float64) float64 {
	mortgage := t.mortgage(price)
	fees := s.fees.Breakdown(price, mortgage, input.Profile, input.Fees)

	overdraw := price - mortgage + fees.Total() - input.AvailableCash
	if overdraw <= 0 {
		return price
	}

	slope := 1.0
	if !t.fixed {
		slope = 1 - t.maxLTV
	}
	return price - overdraw/slope
}

func (s *Solver) validate(input domain.AffordabilityInput) error {
	amounts := []float64{input.AvailableCash, input.DownPayment, input.MonthlyCap}
	if input.MortgageAmount != nil {
		amounts = append(amounts, *input.MortgageAmount)
	}

	if err := validateInput(input, amounts...); err != nil {
		return err
	}

	return validateTerm(s.policy, input.TermYears)
}

func (s *Solver) terms(input domain.AffordabilityInput) (solveTerms, error) {
	ceiling := math.Inf(1)
	if input.MonthlyCap > 0 {
		m, err := s.policy.MortgageFromPayment(input.MonthlyCap, input.TermYears)
		if err != nil {
			return solveTerms{}, err
		}
		ceiling = m
	}

	t := solveTerms{
		maxLTV:  s.policy.MaxLTV(input.Profile),
		ceiling: ceiling,
	}

	if input.MortgageAmount != nil {
		fixed := *input.MortgageAmount
		t.fixed = true
		t.mortgage = func(float64) float64 { return fixed }
	} else {
		t.mortgage = func(price float64) float64 {
			return math.Max(0, math.Min(t.maxLTV*price, t.ceiling))
		}
	}

	switch input.Mode {
	case domain.ModeNetCash:
		t.next = func(price float64) float64 {
			mortgage := t.mortgage(price)
			fees := s.fees.Breakdown(price, mortgage, input.Profile, input.Fees).Total()

			// While the LTV cap binds, mortgage = maxLTV * price, so
			// price = cash + mortgage - fees is solved for price directly.
			if !t.fixed && price > 0 && t.maxLTV*price <= t.ceiling {
				return (input.AvailableCash - fees) / (1 - t.maxLTV)
			}
			return input.AvailableCash + mortgage - fees
		}
	case domain.ModeDownPayment:
		t.next = func(price float64) float64 {
			return input.DownPayment + t.mortgage(price)
		}
	default:
		return solveTerms{}, domain.NewError(errcodes.UnknownSolveMode, fmt.Sprintf("unknown solve mode %q", input.Mode))
	}

	return t, nil
}

// seed is a closed-form first guess that ignores purchase tax, which is too
// nonlinear near common prices to linearize usefully.
func (s *Solver) seed(input domain.AffordabilityInput, t solveTerms) float64 {
	feeRate := s.fees.FlatFeeRate(input.Fees)

	switch input.Mode {
	case domain.ModeDownPayment:
		if input.MortgageAmount != nil {
			return input.DownPayment + *input.MortgageAmount
		}
		return math.Min(input.DownPayment/(1-t.maxLTV), input.DownPayment+t.ceiling)
	default:
		if input.MortgageAmount != nil {
			return (input.AvailableCash + *input.MortgageAmount) / (1 + feeRate)
		}

		// cash = price * (1 - LTV + feeRate)
		denominator := 1 - t.maxLTV + feeRate
		if denominator <= 0 {
			return input.AvailableCash
		}
		return input.AvailableCash / denominator
	}
}

// settle recomputes every figure at the final price so the result is
// consistent under the tax and fee rules, then attaches advisory outcomes.
func (s *Solver) settle(
	input domain.AffordabilityInput,
	t solveTerms,
	price float64,
	iterations int,
	converged bool,
) domain.SolverResult {
	var mortgage float64

	switch {
	case input.MortgageAmount != nil:
		mortgage = *input.MortgageAmount
	case price > 0:
		mortgage = t.mortgage(price)
	}

	fees := s.fees.Breakdown(price, mortgage, input.Profile, input.Fees)

	downPayment := price - mortgage
	if input.Mode == domain.ModeDownPayment {
		downPayment = input.DownPayment
	}

	// Term was validated, the error cannot happen here.
	payment, _ := s.policy.MonthlyPayment(mortgage, input.TermYears)

	result := domain.SolverResult{
		Mode:           input.Mode,
		Price:          price,
		MortgageAmount: mortgage,
		DownPayment:    downPayment,
		Fees:           fees,
		TotalFees:      fees.Total(),
		AvailableCash:  input.AvailableCash,
		CashRequired:   downPayment + fees.Total(),
		MonthlyPayment: payment,
		TermYears:      input.TermYears,
		MaxLTV:         t.maxLTV,
		Iterations:     iterations,
		Converged:      converged,
	}
	result.RemainingCash = result.AvailableCash - result.CashRequired

	if price > 0 {
		result.LTV = mortgage / price
	}

	result.Outcomes = s.outcomes(input, result)

	return result
}

func (s *Solver) outcomes(input domain.AffordabilityInput, r domain.SolverResult) domain.Outcomes {
	outcomes := domain.Outcomes{}

	if !r.Converged {
		outcomes = append(outcomes, domain.OutcomeNonConvergence)
	}

	// In net-cash mode a non-positive price means the fees alone ate the cash.
	insufficient := r.CashRequired > r.AvailableCash+cashRounding ||
		(input.Mode == domain.ModeNetCash && r.Price <= 0)
	if insufficient {
		outcomes = append(outcomes, domain.OutcomeInsufficientCash)
	}

	if r.MortgageAmount > r.MaxLTV*math.Max(r.Price, 0)+ltvRounding {
		outcomes = append(outcomes, domain.OutcomeLTVExceeded)
	}

	if r.Price <= 0 {
		outcomes = append(outcomes, domain.OutcomeNonPositivePrice)
	}

	return outcomes
}
