package http

// Request and response bodies of the JSON API. Amounts are NIS.

type Profile struct {
	IsCitizen      bool `json:"is_citizen"`
	IsFirstHome    bool `json:"is_first_home"`
	IsNewImmigrant bool `json:"is_new_immigrant"`
}

// FeeOverride replaces a default fee: percent of the base, or a flat amount
// before VAT. An override with both zero waives the fee.
type FeeOverride struct {
	Percent float64 `json:"percent" validate:"gte=0,lte=100"`
	Amount  float64 `json:"amount" validate:"gte=0"`
}

type FeeOverrides struct {
	Agent   *FeeOverride `json:"agent,omitempty"`
	Lawyer  *FeeOverride `json:"lawyer,omitempty"`
	Advisor *FeeOverride `json:"advisor,omitempty"`
}

type FeeBreakdown struct {
	PurchaseTax float64 `json:"purchase_tax"`
	Lawyer      float64 `json:"lawyer"`
	Agent       float64 `json:"agent"`
	Advisor     float64 `json:"advisor"`
	Total       float64 `json:"total"`
}

type TaxRequest struct {
	Price   float64 `json:"price" validate:"gte=0"`
	Profile Profile `json:"profile"`
}

type TaxResponse struct {
	Price       float64 `json:"price"`
	Table       string  `json:"table"`
	MaxLTV      float64 `json:"max_ltv"`
	MaxMortgage float64 `json:"max_mortgage"`
	PurchaseTax float64 `json:"purchase_tax"`
}

type DealRequest struct {
	Price          float64      `json:"price" validate:"gte=0"`
	MortgageAmount float64      `json:"mortgage_amount" validate:"gte=0"`
	TermYears      int          `json:"term_years" validate:"omitempty,oneof=20 30"`
	Profile        Profile      `json:"profile"`
	Fees           FeeOverrides `json:"fees"`
}

type DealResponse struct {
	Price          float64      `json:"price"`
	MortgageAmount float64      `json:"mortgage_amount"`
	MaxMortgage    float64      `json:"max_mortgage"`
	Fees           FeeBreakdown `json:"fees"`
	CashInvestment float64      `json:"cash_investment"`
	MonthlyPayment float64      `json:"monthly_payment"`
	TermYears      int          `json:"term_years"`
	Outcomes       []string     `json:"outcomes"`
}

type AffordabilityRequest struct {
	Mode           string       `json:"mode" validate:"omitempty,oneof=net_cash down_payment"`
	AvailableCash  float64      `json:"available_cash" validate:"gte=0"`
	DownPayment    float64      `json:"down_payment" validate:"gte=0"`
	MonthlyCap     float64      `json:"monthly_cap" validate:"gte=0"`
	MortgageAmount *float64     `json:"mortgage_amount,omitempty" validate:"omitempty,gte=0"`
	TermYears      int          `json:"term_years" validate:"omitempty,oneof=20 30"`
	Profile        Profile      `json:"profile"`
	Fees           FeeOverrides `json:"fees"`
}

type AffordabilityResponse struct {
	Mode           string       `json:"mode"`
	Price          float64      `json:"price"`
	MortgageAmount float64      `json:"mortgage_amount"`
	DownPayment    float64      `json:"down_payment"`
	Fees           FeeBreakdown `json:"fees"`
	AvailableCash  float64      `json:"available_cash"`
	CashRequired   float64      `json:"cash_required"`
	RemainingCash  float64      `json:"remaining_cash"`
	MonthlyPayment float64      `json:"monthly_payment"`
	TermYears      int          `json:"term_years"`
	LTV            float64      `json:"ltv"`
	MaxLTV         float64      `json:"max_ltv"`
	Iterations     int          `json:"iterations"`
	Converged      bool         `json:"converged"`
	Outcomes       []string     `json:"outcomes"`
}

type TermsRequest struct {
	MortgageAmount float64 `json:"mortgage_amount" validate:"gte=0"`
	MonthlyCap     float64 `json:"monthly_cap" validate:"gte=0"`
}

type TermOption struct {
	TermYears      int     `json:"term_years"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalRepaid    float64 `json:"total_repaid"`
	FitsCap        bool    `json:"fits_cap"`
}

type TermsResponse struct {
	RecommendedTerm int          `json:"recommended_term"`
	Reason          string       `json:"reason"`
	Options         []TermOption `json:"options"`
}

type DealBasics struct {
	Price          float64 `json:"price" validate:"gte=0"`
	MortgageAmount float64 `json:"mortgage_amount" validate:"gte=0"`
	Profile        Profile `json:"profile"`
}

type MortgageDetails struct {
	TermYears int `json:"term_years" validate:"oneof=20 30"`
}

type WizardEventRequest struct {
	Kind       string                `json:"kind" validate:"required"`
	Flow       string                `json:"flow,omitempty"`
	DealBasics *DealBasics           `json:"deal_basics,omitempty"`
	Expenses   *FeeOverrides         `json:"expenses,omitempty"`
	Mortgage   *MortgageDetails      `json:"mortgage,omitempty"`
	Budget     *AffordabilityRequest `json:"budget,omitempty"`
}

type WizardState struct {
	ID           string                 `json:"id"`
	Step         string                 `json:"step"`
	Flow         string                 `json:"flow,omitempty"`
	Deal         *DealRequest           `json:"deal,omitempty"`
	Budget       *AffordabilityRequest  `json:"budget,omitempty"`
	DealResult   *DealResponse          `json:"deal_result,omitempty"`
	BudgetResult *AffordabilityResponse `json:"budget_result,omitempty"`
}

type SummaryRow struct {
	Item      string  `json:"item"`
	Amount    float64 `json:"amount"`
	Formatted string  `json:"formatted"`
}

type SummaryResponse struct {
	Title     string       `json:"title"`
	Rows      []SummaryRow `json:"rows"`
	Outcomes  []string     `json:"outcomes"`
	Narrative string       `json:"narrative"`
}
