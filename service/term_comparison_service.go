package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"apartment-journey/domain"
	"apartment-journey/pkg/logx"
)

type TermComparisonService struct {
	policy Policy
}

func NewTermComparisonService(policy Policy) *TermComparisonService {
	return &TermComparisonService{policy: policy}
}

// CompareTerms prices the mortgage over every supported term and recommends
// the one that repays least while fitting the monthly cap. When no term fits,
// the lowest payment is recommended.
func (s *TermComparisonService) CompareTerms(
	ctx context.Context,
	input domain.TermComparisonInput,
) (domain.TermComparison, error) {
	if err := validateInput(input, input.MortgageAmount, input.MonthlyCap); err != nil {
		return domain.TermComparison{}, err
	}

	options := make([]domain.TermOption, 0, len(s.policy.PaymentPerMillion))

	for _, term := range s.policy.Terms() {
		payment, err := s.policy.MonthlyPayment(input.MortgageAmount, term)
		if err != nil {
			logger(ctx).Warn("skipping term", slog.Int("term", term), logx.Error(err))
			continue
		}

		options = append(options, domain.TermOption{
			TermYears:      term,
			MonthlyPayment: payment,
			TotalRepaid:    payment * 12 * float64(term),
			FitsCap:        input.MonthlyCap <= 0 || payment <= input.MonthlyCap,
		})
	}

	if len(options) == 0 {
		return domain.TermComparison{Options: options}, nil
	}

	ranked := make([]domain.TermOption, len(options))
	copy(ranked, options)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].FitsCap != ranked[j].FitsCap {
			return ranked[i].FitsCap
		}
		if ranked[i].FitsCap {
			return ranked[i].TotalRepaid < ranked[j].TotalRepaid
		}
		return ranked[i].MonthlyPayment < ranked[j].MonthlyPayment
	})

	best := ranked[0]

	return domain.TermComparison{
		RecommendedTerm: best.TermYears,
		Options:         options,
		Reason:          s.reason(best, input),
	}, nil
}

func (s *TermComparisonService) reason(best domain.TermOption, input domain.TermComparisonInput) string {
	switch {
	case input.MortgageAmount <= 0:
		return "No mortgage, no monthly payment."
	case !best.FitsCap:
		return fmt.Sprintf("No term fits a monthly payment of %.0f NIS; %d years has the lowest payment (%.0f NIS).",
			input.MonthlyCap, best.TermYears, best.MonthlyPayment)
	default:
		return fmt.Sprintf("%d years repays the least (about %.0f NIS in total) at %.0f NIS a month.",
			best.TermYears, best.TotalRepaid, best.MonthlyPayment)
	}
}
