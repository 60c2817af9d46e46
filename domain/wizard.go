package domain

type Flow string

const (
	FlowNone      Flow = ""
	FlowKnownDeal Flow = "known_deal"
	FlowBudget    Flow = "budget"
)

type Step string

const (
	StepHome          Step = "home"
	StepKnownBasics   Step = "known_basics"
	StepKnownExpenses Step = "known_expenses"
	StepKnownMortgage Step = "known_mortgage"
	StepKnownSummary  Step = "known_summary"
	StepBudgetBasics  Step = "budget_basics"
	StepBudgetDetails Step = "budget_details"
)

type EventKind string

const (
	EventChooseFlow       EventKind = "choose_flow"
	EventSubmitDealBasics EventKind = "submit_deal_basics"
	EventSubmitExpenses   EventKind = "submit_expenses"
	EventSubmitMortgage   EventKind = "submit_mortgage"
	EventSubmitBudget     EventKind = "submit_budget"
	EventBack             EventKind = "back"
	EventReset            EventKind = "reset"
)

type DealBasics struct {
	Price          float64 `validate:"gte=0"`
	MortgageAmount float64 `validate:"gte=0"`
	Profile        BuyerProfile
}

type MortgageDetails struct {
	TermYears int `validate:"oneof=20 30"`
}

// WizardEvent carries the payload for its Kind; other payloads are ignored.
type WizardEvent struct {
	Kind       EventKind
	Flow       Flow
	DealBasics *DealBasics
	Expenses   *FeeOverrides
	Mortgage   *MortgageDetails
	Budget     *AffordabilityInput
}

// WizardState is the typed accumulator of one wizard session.
type WizardState struct {
	ID           string
	Step         Step
	Flow         Flow
	Deal         DealInput
	Budget       AffordabilityInput
	DealResult   *DealResult
	BudgetResult *SolverResult
}

func NewWizardState(id string) WizardState {
	return WizardState{
		ID:   id,
		Step: StepHome,
	}
}
