package service

// MonthlyPayment uses the linear per-million approximation of the policy.
// A zero mortgage is a cash purchase and has no payment.
func (p Policy) MonthlyPayment(mortgage float64, termYears int) (float64, error) {
	k, err := p.PaymentFactor(termYears)
	if err != nil {
		return 0, err
	}
	if mortgage <= 0 {
		return 0, nil
	}
	return mortgage / MillionNIS * k, nil
}

// MortgageFromPayment is the inverse of MonthlyPayment: the mortgage a given
// monthly payment can service.
func (p Policy) MortgageFromPayment(monthly float64, termYears int) (float64, error) {
	k, err := p.PaymentFactor(termYears)
	if err != nil {
		return 0, err
	}
	if monthly <= 0 {
		return 0, nil
	}
	return monthly / k * MillionNIS, nil
}

func MonthlyPayment(mortgage float64, termYears int) (float64, error) {
	return DefaultPolicy().MonthlyPayment(mortgage, termYears)
}
