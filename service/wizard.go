package service

import (
	"fmt"

	"apartment-journey/domain"
	"apartment-journey/pkg/errcodes"
)

const (
	defaultKnownDealTerm = 20
	defaultBudgetTerm    = 30
)

//nolint:gochecknoglobals
var backTargets = map[domain.Step]domain.Step{
	domain.StepKnownBasics:   domain.StepHome,
	domain.StepKnownExpenses: domain.StepKnownBasics,
	domain.StepKnownMortgage: domain.StepKnownExpenses,
	domain.StepKnownSummary:  domain.StepKnownMortgage,
	domain.StepBudgetBasics:  domain.StepHome,
	domain.StepBudgetDetails: domain.StepBudgetBasics,
}

// Transition is the wizard's pure step function. It returns the next state
// or an InvalidTransition error and never touches the state it was given.
func Transition(state domain.WizardState, event domain.WizardEvent) (domain.WizardState, error) {
	switch event.Kind {
	case domain.EventReset:
		return domain.NewWizardState(state.ID), nil
	case domain.EventBack:
		target, ok := backTargets[state.Step]
		if !ok {
			return state, invalidTransition(state, event)
		}
		if target == domain.StepHome {
			return domain.NewWizardState(state.ID), nil
		}
		state.Step = target
		return state, nil
	}

	next := state

	switch {
	case state.Step == domain.StepHome && event.Kind == domain.EventChooseFlow:
		return chooseFlow(state, event)

	case state.Step == domain.StepKnownBasics && event.Kind == domain.EventSubmitDealBasics:
		if event.DealBasics == nil {
			return state, missingPayload(event)
		}
		if err := validateInput(*event.DealBasics, event.DealBasics.Price, event.DealBasics.MortgageAmount); err != nil {
			return state, err
		}
		next.Deal.Price = event.DealBasics.Price
		next.Deal.MortgageAmount = event.DealBasics.MortgageAmount
		next.Deal.Profile = event.DealBasics.Profile
		next.Step = domain.StepKnownExpenses

	case state.Step == domain.StepKnownExpenses && event.Kind == domain.EventSubmitExpenses:
		if event.Expenses == nil {
			return state, missingPayload(event)
		}
		if err := validateInput(*event.Expenses); err != nil {
			return state, err
		}
		next.Deal.Fees = *event.Expenses
		next.Step = domain.StepKnownMortgage

	case state.Step == domain.StepKnownMortgage && event.Kind == domain.EventSubmitMortgage:
		if event.Mortgage == nil {
			return state, missingPayload(event)
		}
		if err := validateInput(*event.Mortgage); err != nil {
			return state, err
		}
		next.Deal.TermYears = event.Mortgage.TermYears
		next.Step = domain.StepKnownSummary

	case state.Step == domain.StepBudgetBasics && event.Kind == domain.EventSubmitBudget:
		if event.Budget == nil {
			return state, missingPayload(event)
		}
		if err := validateInput(*event.Budget); err != nil {
			return state, err
		}
		next.Budget = *event.Budget
		next.Step = domain.StepBudgetDetails

	default:
		return state, invalidTransition(state, event)
	}

	// Inputs changed; results are recomputed for the new step.
	next.DealResult = nil
	next.BudgetResult = nil

	return next, nil
}

func chooseFlow(state domain.WizardState, event domain.WizardEvent) (domain.WizardState, error) {
	next := domain.NewWizardState(state.ID)
	next.Flow = event.Flow

	switch event.Flow {
	case domain.FlowKnownDeal:
		next.Step = domain.StepKnownBasics
		next.Deal.TermYears = defaultKnownDealTerm
	case domain.FlowBudget:
		next.Step = domain.StepBudgetBasics
		next.Budget.Mode = domain.ModeNetCash
		next.Budget.TermYears = defaultBudgetTerm
	default:
		return state, domain.NewError(errcodes.InvalidInput, fmt.Sprintf("unknown flow %q", event.Flow))
	}

	return next, nil
}

func invalidTransition(state domain.WizardState, event domain.WizardEvent) error {
	return domain.NewError(errcodes.InvalidTransition,
		fmt.Sprintf("event %q is not allowed at step %q", event.Kind, state.Step))
}

func missingPayload(event domain.WizardEvent) error {
	return domain.NewError(errcodes.InvalidInput, fmt.Sprintf("event %q has no payload", event.Kind))
}
