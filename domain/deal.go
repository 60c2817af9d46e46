package domain

type DealInput struct {
	Price          float64 `validate:"gte=0"`
	MortgageAmount float64 `validate:"gte=0"`
	TermYears      int     `validate:"oneof=20 30"`
	Profile        BuyerProfile
	Fees           FeeOverrides
}

type DealResult struct {
	Price          float64
	MortgageAmount float64
	MaxMortgage    float64
	Fees           FeeBreakdown
	TotalCosts     float64
	CashInvestment float64 // price - mortgage + total costs
	MonthlyPayment float64
	TermYears      int
	Outcomes       Outcomes
}
