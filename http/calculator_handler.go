package http

import (
	"fmt"
	"net/http"

	"apartment-journey/domain"
	"apartment-journey/pkg/httpx/reply"
	"apartment-journey/pkg/httpx/req"
)

func (s Server) postV1Tax(w http.ResponseWriter, r *http.Request) error {
	var body TaxRequest
	if err := req.Read(r, &body); err != nil {
		return err
	}

	quote, err := s.deals.Quote(domain.TaxQuoteInput{
		Price:   body.Price,
		Profile: newDomainProfile(body.Profile),
	})
	if err != nil {
		return fmt.Errorf("deals.Quote: %w", err)
	}

	reply.JSON(r.Context(), w, http.StatusOK, newRESTTaxQuote(quote))

	return nil
}

func (s Server) postV1DealEvaluate(w http.ResponseWriter, r *http.Request) error {
	var body DealRequest
	if err := req.Read(r, &body); err != nil {
		return err
	}

	result, err := s.deals.Evaluate(r.Context(), newDomainDeal(body))
	if err != nil {
		return fmt.Errorf("deals.Evaluate: %w", err)
	}

	reply.JSON(r.Context(), w, http.StatusOK, newRESTDeal(result))

	return nil
}

func (s Server) postV1AffordabilitySolve(w http.ResponseWriter, r *http.Request) error {
	var body AffordabilityRequest
	if err := req.Read(r, &body); err != nil {
		return err
	}

	result, err := s.affordability.Solve(r.Context(), newDomainAffordability(body))
	if err != nil {
		return fmt.Errorf("affordability.Solve: %w", err)
	}

	reply.JSON(r.Context(), w, http.StatusOK, newRESTAffordability(result))

	return nil
}

func (s Server) postV1TermsCompare(w http.ResponseWriter, r *http.Request) error {
	var body TermsRequest
	if err := req.Read(r, &body); err != nil {
		return err
	}

	result, err := s.terms.CompareTerms(r.Context(), domain.TermComparisonInput{
		MortgageAmount: body.MortgageAmount,
		MonthlyCap:     body.MonthlyCap,
	})
	if err != nil {
		return fmt.Errorf("terms.CompareTerms: %w", err)
	}

	reply.JSON(r.Context(), w, http.StatusOK, newRESTTerms(result))

	return nil
}
