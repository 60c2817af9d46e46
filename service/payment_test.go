package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"apartment-journey/domain"
	"apartment-journey/pkg/errcodes"
)

func TestMonthlyPayment(t *testing.T) {
	rq := require.New(t)

	p, err := MonthlyPayment(1_000_000, 30)
	rq.NoError(err)
	rq.InDelta(5_550, p, 1e-9)

	p, err = MonthlyPayment(2_000_000, 20)
	rq.NoError(err)
	rq.InDelta(13_400, p, 1e-9)

	p, err = MonthlyPayment(0, 20)
	rq.NoError(err)
	rq.Zero(p)
}

func TestMonthlyPayment_UnsupportedTerm(t *testing.T) {
	rq := require.New(t)

	_, err := MonthlyPayment(1_000_000, 25)
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.UnsupportedTerm, code)
}

func TestMortgageFromPayment_InvertsMonthlyPayment(t *testing.T) {
	rq := require.New(t)
	policy := DefaultPolicy()

	for _, term := range policy.Terms() {
		m, err := policy.MortgageFromPayment(8_000, term)
		rq.NoError(err)

		p, err := policy.MonthlyPayment(m, term)
		rq.NoError(err)
		rq.InDelta(8_000, p, 1e-6)
	}
}

func TestPolicy_Validate(t *testing.T) {
	rq := require.New(t)

	rq.NoError(DefaultPolicy().Validate())

	p := DefaultPolicy()
	p.StandardLTV = 1.2
	rq.Error(p.Validate())

	p = DefaultPolicy()
	p.Tolerance = 0
	rq.Error(p.Validate())

	for _, tolerance := range []float64{50, 2_000} {
		p = DefaultPolicy()
		p.Tolerance = tolerance
		rq.Error(p.Validate(), "tolerance %.0f", tolerance)
	}

	for _, budget := range []int{0, 9, 16, 30} {
		p = DefaultPolicy()
		p.MaxIterations = budget
		rq.Error(p.Validate(), "budget %d", budget)
	}

	p = DefaultPolicy()
	p.Tolerance = MinConvergenceTolerance
	p.MaxIterations = MinIterationBudget
	rq.NoError(p.Validate())

	p.Tolerance = MaxConvergenceTolerance
	p.MaxIterations = MaxIterationBudget
	rq.NoError(p.Validate())

	p = DefaultPolicy()
	p.PaymentPerMillion = map[int]float64{25: 0}
	rq.Error(p.Validate())

	rq.Equal([]int{20, 30}, DefaultPolicy().Terms())
}
