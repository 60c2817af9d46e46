package domain

type TermComparisonInput struct {
	MortgageAmount float64 `validate:"gte=0"`
	MonthlyCap     float64 `validate:"gte=0"` // zero means no cap
}

type TermOption struct {
	TermYears      int
	MonthlyPayment float64
	TotalRepaid    float64
	FitsCap        bool
}

type TermComparison struct {
	RecommendedTerm int
	Options         []TermOption
	Reason          string
}
