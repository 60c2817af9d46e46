package service

import (
	"context"
	"log/slog"

	"apartment-journey/domain"
	"apartment-journey/pkg/contextx"
	"apartment-journey/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// DealService evaluates a deal whose price is already known.
type DealService struct {
	policy Policy
	tax    *TaxEngine
	fees   *FeeCalculator
}

func NewDealService(policy Policy, tax *TaxEngine) *DealService {
	return &DealService{
		policy: policy,
		tax:    tax,
		fees:   NewFeeCalculator(policy, tax),
	}
}

func (s *DealService) Evaluate(
	ctx context.Context,
	input domain.DealInput,
) (domain.DealResult, error) {
	if err := validateInput(input, input.Price, input.MortgageAmount); err != nil {
		return domain.DealResult{}, err
	}
	if err := validateTerm(s.policy, input.TermYears); err != nil {
		return domain.DealResult{}, err
	}

	result := s.evaluate(input)

	dealEvaluations.Inc()
	observeOutcomes("deal", result.Outcomes)

	logger(ctx).Debug("deal evaluated",
		slog.Float64(logx.FieldPrice, result.Price),
		slog.Float64(logx.FieldMortgage, result.MortgageAmount),
		slog.Any(logx.FieldOutcomes, result.Outcomes.Strings()),
	)

	return result, nil
}

func (s *DealService) evaluate(input domain.DealInput) domain.DealResult {
	fees := s.fees.Breakdown(input.Price, input.MortgageAmount, input.Profile, input.Fees)
	payment, _ := s.policy.MonthlyPayment(input.MortgageAmount, input.TermYears)

	result := domain.DealResult{
		Price:          input.Price,
		MortgageAmount: input.MortgageAmount,
		MaxMortgage:    s.tax.MaxMortgage(input.Price, input.Profile),
		Fees:           fees,
		TotalCosts:     fees.Total(),
		CashInvestment: input.Price - input.MortgageAmount + fees.Total(),
		MonthlyPayment: payment,
		TermYears:      input.TermYears,
		Outcomes:       domain.Outcomes{},
	}

	if result.MortgageAmount > result.MaxMortgage+ltvRounding {
		result.Outcomes = append(result.Outcomes, domain.OutcomeLTVExceeded)
	}

	return result
}

// Quote returns the eligibility figures alone: LTV cap and purchase tax.
func (s *DealService) Quote(input domain.TaxQuoteInput) (domain.TaxQuote, error) {
	if err := validateInput(input, input.Price); err != nil {
		return domain.TaxQuote{}, err
	}

	return domain.TaxQuote{
		Price:       input.Price,
		Table:       s.tax.TableFor(input.Profile).Name,
		MaxLTV:      s.policy.MaxLTV(input.Profile),
		MaxMortgage: s.tax.MaxMortgage(input.Price, input.Profile),
		PurchaseTax: s.tax.PurchaseTax(input.Price, input.Profile),
	}, nil
}
