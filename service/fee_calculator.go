package service

import (
	"math"

	"apartment-journey/domain"
)

type FeeCalculator struct {
	policy Policy
	tax    *TaxEngine
}

func NewFeeCalculator(policy Policy, tax *TaxEngine) *FeeCalculator {
	return &FeeCalculator{policy: policy, tax: tax}
}

func (c *FeeCalculator) AgentFee(price float64, override *domain.FeeOverride) float64 {
	return c.proportional(price, c.policy.AgentRate, override)
}

func (c *FeeCalculator) LawyerFee(price float64, override *domain.FeeOverride) float64 {
	return c.proportional(price, c.policy.LawyerRate, override)
}

// AdvisorFee is charged on the mortgage, not the price. No mortgage, no advisor.
func (c *FeeCalculator) AdvisorFee(mortgage float64, override *domain.FeeOverride) float64 {
	if mortgage <= 0 {
		return 0
	}
	if override == nil {
		return math.Max(c.policy.AdvisorMinimum, mortgage*c.policy.AdvisorRate) * c.policy.VATMultiplier()
	}
	return c.proportional(mortgage, c.policy.AdvisorRate, override)
}

func (c *FeeCalculator) Breakdown(
	price float64,
	mortgage float64,
	profile domain.BuyerProfile,
	overrides domain.FeeOverrides,
) domain.FeeBreakdown {
	price = math.Max(price, 0)

	return domain.FeeBreakdown{
		PurchaseTax: c.tax.PurchaseTax(price, profile),
		Lawyer:      c.LawyerFee(price, overrides.Lawyer),
		Agent:       c.AgentFee(price, overrides.Agent),
		Advisor:     c.AdvisorFee(mortgage, overrides.Advisor),
	}
}

// FlatFeeRate is the share of the price taken by the lawyer and agent, VAT
// included. Flat amounts do not scale with price and are left out.
func (c *FeeCalculator) FlatFeeRate(overrides domain.FeeOverrides) float64 {
	return c.rate(c.policy.LawyerRate, overrides.Lawyer) + c.rate(c.policy.AgentRate, overrides.Agent)
}

func (c *FeeCalculator) rate(defaultRate float64, override *domain.FeeOverride) float64 {
	switch {
	case override == nil:
		return defaultRate * c.policy.VATMultiplier()
	case override.Percent > 0:
		return override.Percent / 100 * c.policy.VATMultiplier()
	default:
		return 0
	}
}

func (c *FeeCalculator) proportional(base, defaultRate float64, override *domain.FeeOverride) float64 {
	switch {
	case override == nil:
		return base * defaultRate * c.policy.VATMultiplier()
	case override.Percent > 0:
		return base * (override.Percent / 100) * c.policy.VATMultiplier()
	case override.Amount > 0:
		return override.Amount * c.policy.VATMultiplier()
	default:
		return 0
	}
}
