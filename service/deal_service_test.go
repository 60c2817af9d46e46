package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"apartment-journey/domain"
	"apartment-journey/pkg/errcodes"
)

func newTestDealService() *DealService {
	policy := DefaultPolicy()
	return NewDealService(policy, NewTaxEngine(policy))
}

func TestEvaluate_CitizenFirstHome(t *testing.T) {
	rq := require.New(t)

	r, err := newTestDealService().Evaluate(context.Background(), domain.DealInput{
		Price:          2_000_000,
		MortgageAmount: 1_500_000,
		TermYears:      30,
		Profile:        citizenFirstHome,
	})
	rq.NoError(err)

	rq.InDelta(1_500_000, r.MaxMortgage, 1e-6)
	rq.InDelta(77_443.925, r.TotalCosts, 1e-6)
	rq.InDelta(577_443.925, r.CashInvestment, 1e-6)
	rq.InDelta(8_325, r.MonthlyPayment, 1e-6)
	rq.Equal(30, r.TermYears)
	rq.Empty(r.Outcomes)
}

func TestEvaluate_MortgageAboveLTV(t *testing.T) {
	rq := require.New(t)

	r, err := newTestDealService().Evaluate(context.Background(), domain.DealInput{
		Price:          2_000_000,
		MortgageAmount: 1_600_000,
		TermYears:      20,
		Profile:        citizenFirstHome,
	})
	rq.NoError(err)

	rq.Equal(domain.Outcomes{domain.OutcomeLTVExceeded}, r.Outcomes)
	rq.InDelta(10_720, r.MonthlyPayment, 1e-6)
}

func TestEvaluate_CashPurchase(t *testing.T) {
	rq := require.New(t)

	r, err := newTestDealService().Evaluate(context.Background(), domain.DealInput{
		Price:     1_000_000,
		TermYears: 30,
		Profile:   foreignBuyer,
	})
	rq.NoError(err)

	rq.Zero(r.Fees.Advisor)
	rq.Zero(r.MonthlyPayment)
	rq.InDelta(80_000, r.Fees.PurchaseTax, 1e-6)
	rq.InDelta(1_000_000+r.TotalCosts, r.CashInvestment, 1e-6)
}

func TestEvaluate_InvalidInput(t *testing.T) {
	rq := require.New(t)
	s := newTestDealService()

	_, err := s.Evaluate(context.Background(), domain.DealInput{Price: -1, TermYears: 30})
	code, _ := domain.GetCode(err)
	rq.Equal(errcodes.InvalidInput, code)

	_, err = s.Evaluate(context.Background(), domain.DealInput{Price: 1_000_000, TermYears: 15})
	code, _ = domain.GetCode(err)
	rq.Equal(errcodes.InvalidInput, code)
}

func TestQuote(t *testing.T) {
	rq := require.New(t)
	s := newTestDealService()

	q, err := s.Quote(domain.TaxQuoteInput{Price: 1_000_000, Profile: foreignBuyer})
	rq.NoError(err)
	rq.Equal("standard", q.Table)
	rq.InDelta(0.5, q.MaxLTV, 1e-9)
	rq.InDelta(500_000, q.MaxMortgage, 1e-6)
	rq.InDelta(80_000, q.PurchaseTax, 1e-6)

	q, err = s.Quote(domain.TaxQuoteInput{Price: 3_000_000, Profile: newImmigrant})
	rq.NoError(err)
	rq.Equal("new-immigrant", q.Table)
	rq.InDelta(0.75, q.MaxLTV, 1e-9)

	_, err = s.Quote(domain.TaxQuoteInput{Price: -5})
	rq.Error(err)
}
