package domain

// FeeOverride is a user-supplied fee. Percent wins over Amount; when both are
// zero the fee is zero. A nil *FeeOverride means the policy default applies.
type FeeOverride struct {
	Percent float64 `validate:"gte=0,lte=100"`
	Amount  float64 `validate:"gte=0"`
}

type FeeOverrides struct {
	Agent   *FeeOverride
	Lawyer  *FeeOverride
	Advisor *FeeOverride
}

// FeeBreakdown holds every transaction cost on top of the price, VAT included
// for the professional fees.
type FeeBreakdown struct {
	PurchaseTax float64
	Lawyer      float64
	Agent       float64
	Advisor     float64
}

func (f FeeBreakdown) Professional() float64 {
	return f.Lawyer + f.Agent + f.Advisor
}

func (f FeeBreakdown) Total() float64 {
	return f.PurchaseTax + f.Professional()
}
