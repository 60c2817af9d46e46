package domain

type SolveMode string

const (
	// ModeNetCash nets the fees against cash + mortgage:
	// price = cash + mortgage - fees(price, mortgage).
	ModeNetCash SolveMode = "net_cash"
	// ModeDownPayment fixes the down payment handed to the seller and pays the
	// fees from the same cash pool: price = down + mortgage, cash >= down + fees.
	// Fees stay out of the price equation because they are paid beside the
	// price, not financed by it; that keeps down + mortgage == price exact.
	ModeDownPayment SolveMode = "down_payment"
)

type AffordabilityInput struct {
	Mode          SolveMode `validate:"oneof=net_cash down_payment"`
	AvailableCash float64   `validate:"gte=0"`
	DownPayment   float64   `validate:"gte=0"`
	MonthlyCap    float64   `validate:"gte=0"` // zero means no payment ceiling
	// MortgageAmount fixes the mortgage when set; otherwise the solver takes the
	// largest mortgage allowed by the LTV cap and the monthly cap.
	MortgageAmount *float64 `validate:"omitempty,gte=0"`
	TermYears      int      `validate:"oneof=20 30"`
	Profile        BuyerProfile
	Fees           FeeOverrides
}

type SolverResult struct {
	Mode           SolveMode
	Price          float64
	MortgageAmount float64
	DownPayment    float64
	Fees           FeeBreakdown
	TotalFees      float64
	AvailableCash  float64
	CashRequired   float64 // down payment + total fees
	RemainingCash  float64
	MonthlyPayment float64
	TermYears      int
	LTV            float64
	MaxLTV         float64
	Iterations     int
	Converged      bool
	Outcomes       Outcomes
}
