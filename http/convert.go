package http

import (
	"github.com/samber/lo"

	"apartment-journey/domain"
	"apartment-journey/service"
)

const (
	defaultDealTerm   = 20
	defaultBudgetTerm = 30
)

func newDomainProfile(p Profile) domain.BuyerProfile {
	return domain.BuyerProfile{
		IsCitizen:      p.IsCitizen,
		IsFirstHome:    p.IsFirstHome,
		IsNewImmigrant: p.IsNewImmigrant,
	}
}

func newRESTProfile(p domain.BuyerProfile) Profile {
	return Profile{
		IsCitizen:      p.IsCitizen,
		IsFirstHome:    p.IsFirstHome,
		IsNewImmigrant: p.IsNewImmigrant,
	}
}

func newDomainFeeOverride(o *FeeOverride) *domain.FeeOverride {
	if o == nil {
		return nil
	}
	return &domain.FeeOverride{Percent: o.Percent, Amount: o.Amount}
}

func newRESTFeeOverride(o *domain.FeeOverride) *FeeOverride {
	if o == nil {
		return nil
	}
	return &FeeOverride{Percent: o.Percent, Amount: o.Amount}
}

func newDomainFeeOverrides(o FeeOverrides) domain.FeeOverrides {
	return domain.FeeOverrides{
		Agent:   newDomainFeeOverride(o.Agent),
		Lawyer:  newDomainFeeOverride(o.Lawyer),
		Advisor: newDomainFeeOverride(o.Advisor),
	}
}

func newRESTFeeOverrides(o domain.FeeOverrides) FeeOverrides {
	return FeeOverrides{
		Agent:   newRESTFeeOverride(o.Agent),
		Lawyer:  newRESTFeeOverride(o.Lawyer),
		Advisor: newRESTFeeOverride(o.Advisor),
	}
}

func newRESTFeeBreakdown(f domain.FeeBreakdown) FeeBreakdown {
	return FeeBreakdown{
		PurchaseTax: f.PurchaseTax,
		Lawyer:      f.Lawyer,
		Agent:       f.Agent,
		Advisor:     f.Advisor,
		Total:       f.Total(),
	}
}

func newRESTOutcomes(o domain.Outcomes) []string {
	return lo.Ternary(o == nil, []string{}, o.Strings())
}

func newRESTTaxQuote(q domain.TaxQuote) TaxResponse {
	return TaxResponse{
		Price:       q.Price,
		Table:       q.Table,
		MaxLTV:      q.MaxLTV,
		MaxMortgage: q.MaxMortgage,
		PurchaseTax: q.PurchaseTax,
	}
}

func newDomainDeal(r DealRequest) domain.DealInput {
	return domain.DealInput{
		Price:          r.Price,
		MortgageAmount: r.MortgageAmount,
		TermYears:      lo.Ternary(r.TermYears == 0, defaultDealTerm, r.TermYears),
		Profile:        newDomainProfile(r.Profile),
		Fees:           newDomainFeeOverrides(r.Fees),
	}
}

func newRESTDealInput(d domain.DealInput) DealRequest {
	return DealRequest{
		Price:          d.Price,
		MortgageAmount: d.MortgageAmount,
		TermYears:      d.TermYears,
		Profile:        newRESTProfile(d.Profile),
		Fees:           newRESTFeeOverrides(d.Fees),
	}
}

func newRESTDeal(r domain.DealResult) DealResponse {
	return DealResponse{
		Price:          r.Price,
		MortgageAmount: r.MortgageAmount,
		MaxMortgage:    r.MaxMortgage,
		Fees:           newRESTFeeBreakdown(r.Fees),
		CashInvestment: r.CashInvestment,
		MonthlyPayment: r.MonthlyPayment,
		TermYears:      r.TermYears,
		Outcomes:       newRESTOutcomes(r.Outcomes),
	}
}

func newDomainAffordability(r AffordabilityRequest) domain.AffordabilityInput {
	return domain.AffordabilityInput{
		Mode:           lo.Ternary(r.Mode == "", domain.ModeNetCash, domain.SolveMode(r.Mode)),
		AvailableCash:  r.AvailableCash,
		DownPayment:    r.DownPayment,
		MonthlyCap:     r.MonthlyCap,
		MortgageAmount: r.MortgageAmount,
		TermYears:      lo.Ternary(r.TermYears == 0, defaultBudgetTerm, r.TermYears),
		Profile:        newDomainProfile(r.Profile),
		Fees:           newDomainFeeOverrides(r.Fees),
	}
}

func newRESTAffordabilityInput(in domain.AffordabilityInput) AffordabilityRequest {
	return AffordabilityRequest{
		Mode:           string(in.Mode),
		AvailableCash:  in.AvailableCash,
		DownPayment:    in.DownPayment,
		MonthlyCap:     in.MonthlyCap,
		MortgageAmount: in.MortgageAmount,
		TermYears:      in.TermYears,
		Profile:        newRESTProfile(in.Profile),
		Fees:           newRESTFeeOverrides(in.Fees),
	}
}

func newRESTAffordability(r domain.SolverResult) AffordabilityResponse {
	return AffordabilityResponse{
		Mode:           string(r.Mode),
		Price:          r.Price,
		MortgageAmount: r.MortgageAmount,
		DownPayment:    r.DownPayment,
		Fees:           newRESTFeeBreakdown(r.Fees),
		AvailableCash:  r.AvailableCash,
		CashRequired:   r.CashRequired,
		RemainingCash:  r.RemainingCash,
		MonthlyPayment: r.MonthlyPayment,
		TermYears:      r.TermYears,
		LTV:            r.LTV,
		MaxLTV:         r.MaxLTV,
		Iterations:     r.Iterations,
		Converged:      r.Converged,
		Outcomes:       newRESTOutcomes(r.Outcomes),
	}
}

func newRESTTerms(c domain.TermComparison) TermsResponse {
	return TermsResponse{
		RecommendedTerm: c.RecommendedTerm,
		Reason:          c.Reason,
		Options: lo.Map(c.Options, func(o domain.TermOption, _ int) TermOption {
			return TermOption{
				TermYears:      o.TermYears,
				MonthlyPayment: o.MonthlyPayment,
				TotalRepaid:    o.TotalRepaid,
				FitsCap:        o.FitsCap,
			}
		}),
	}
}

func newDomainWizardEvent(r WizardEventRequest) domain.WizardEvent {
	event := domain.WizardEvent{
		Kind: domain.EventKind(r.Kind),
		Flow: domain.Flow(r.Flow),
	}

	if r.DealBasics != nil {
		event.DealBasics = &domain.DealBasics{
			Price:          r.DealBasics.Price,
			MortgageAmount: r.DealBasics.MortgageAmount,
			Profile:        newDomainProfile(r.DealBasics.Profile),
		}
	}
	if r.Expenses != nil {
		fees := newDomainFeeOverrides(*r.Expenses)
		event.Expenses = &fees
	}
	if r.Mortgage != nil {
		event.Mortgage = &domain.MortgageDetails{TermYears: r.Mortgage.TermYears}
	}
	if r.Budget != nil {
		budget := newDomainAffordability(*r.Budget)
		event.Budget = &budget
	}

	return event
}

func newRESTWizardState(s domain.WizardState) WizardState {
	out := WizardState{
		ID:   s.ID,
		Step: string(s.Step),
		Flow: string(s.Flow),
	}

	switch s.Flow {
	case domain.FlowKnownDeal:
		deal := newRESTDealInput(s.Deal)
		out.Deal = &deal
	case domain.FlowBudget:
		budget := newRESTAffordabilityInput(s.Budget)
		out.Budget = &budget
	}

	if s.DealResult != nil {
		r := newRESTDeal(*s.DealResult)
		out.DealResult = &r
	}
	if s.BudgetResult != nil {
		r := newRESTAffordability(*s.BudgetResult)
		out.BudgetResult = &r
	}

	return out
}

func newRESTSummary(s service.Summary) SummaryResponse {
	return SummaryResponse{
		Title: s.Title,
		Rows: lo.Map(s.Rows, func(row service.SummaryRow, _ int) SummaryRow {
			return SummaryRow{
				Item:      row.Item,
				Amount:    row.Amount,
				Formatted: service.FormatNIS(row.Amount),
			}
		}),
		Outcomes:  newRESTOutcomes(s.Outcomes),
		Narrative: s.Narrative,
	}
}
