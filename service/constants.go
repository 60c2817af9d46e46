package service

const (
	MaxAmount  = 1_000_000_000.0 // 1 billion NIS, sanity bound on any input amount
	MillionNIS = 1_000_000.0

	DefaultVATRate        = 0.18
	DefaultAgentRate      = 0.015
	DefaultLawyerRate     = 0.01
	DefaultAdvisorRate    = 0.01
	DefaultAdvisorMinimum = 7_500.0

	CitizenFirstHomeLTV = 0.75
	StandardLTV         = 0.50

	// Monthly payment per 1,000,000 NIS borrowed.
	PaymentPerMillion30Years = 5_550.0
	PaymentPerMillion20Years = 6_700.0

	DefaultConvergenceTolerance = 500.0 // NIS
	DefaultMaxIterations        = 15

	// Accepted envelope for configured solver budgets.
	MinConvergenceTolerance = 100.0
	MaxConvergenceTolerance = 1_000.0
	MinIterationBudget      = 10
	MaxIterationBudget      = 15

	// ltvRounding is the absolute slack, in NIS, before a mortgage counts as
	// above the LTV cap.
	ltvRounding = 1.0

	// cashRounding is the float slack, in NIS, before the cash required
	// counts as more than the cash available.
	cashRounding = 1.0
)
