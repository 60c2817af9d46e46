package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"apartment-journey/domain"
)

func TestCompareTerms_FitsCap(t *testing.T) {
	rq := require.New(t)
	s := NewTermComparisonService(DefaultPolicy())

	r, err := s.CompareTerms(context.Background(), domain.TermComparisonInput{
		MortgageAmount: 1_000_000,
		MonthlyCap:     6_000,
	})
	rq.NoError(err)

	rq.Equal(30, r.RecommendedTerm)
	rq.Len(r.Options, 2)

	rq.Equal(20, r.Options[0].TermYears)
	rq.InDelta(6_700, r.Options[0].MonthlyPayment, 1e-9)
	rq.InDelta(1_608_000, r.Options[0].TotalRepaid, 1e-6)
	rq.False(r.Options[0].FitsCap)

	rq.Equal(30, r.Options[1].TermYears)
	rq.InDelta(5_550, r.Options[1].MonthlyPayment, 1e-9)
	rq.InDelta(1_998_000, r.Options[1].TotalRepaid, 1e-6)
	rq.True(r.Options[1].FitsCap)
}

func TestCompareTerms_NoCapPrefersShorterTerm(t *testing.T) {
	rq := require.New(t)
	s := NewTermComparisonService(DefaultPolicy())

	r, err := s.CompareTerms(context.Background(), domain.TermComparisonInput{MortgageAmount: 1_000_000})
	rq.NoError(err)

	rq.Equal(20, r.RecommendedTerm)
	rq.True(r.Options[0].FitsCap)
	rq.True(r.Options[1].FitsCap)
}

func TestCompareTerms_NothingFits(t *testing.T) {
	rq := require.New(t)
	s := NewTermComparisonService(DefaultPolicy())

	r, err := s.CompareTerms(context.Background(), domain.TermComparisonInput{
		MortgageAmount: 1_000_000,
		MonthlyCap:     5_000,
	})
	rq.NoError(err)

	rq.Equal(30, r.RecommendedTerm)
	rq.Contains(r.Reason, "No term fits")
}

func TestCompareTerms_InvalidInput(t *testing.T) {
	_, err := NewTermComparisonService(DefaultPolicy()).CompareTerms(context.Background(),
		domain.TermComparisonInput{MortgageAmount: -1})
	require.Error(t, err)
}
