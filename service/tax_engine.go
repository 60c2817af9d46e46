package service

import (
	"math"

	"github.com/shopspring/decimal"

	"apartment-journey/domain"
)

const (
	firstHomeExemptCeiling = 1_978_745.0
	firstHomeReducedTop    = 2_347_040.0
	firstHomeMiddleTop     = 6_055_070.0
	luxuryThreshold        = 20_183_565.0
)

// TaxTables groups the bracket tables the engine chooses from. New tables can
// be swapped in without touching the solver.
type TaxTables struct {
	CitizenFirstHome domain.BracketTable
	NewImmigrant     domain.BracketTable
	Standard         domain.BracketTable
}

func DefaultTaxTables() TaxTables {
	return TaxTables{
		CitizenFirstHome: domain.BracketTable{
			Name: "citizen-first-home",
			Brackets: []domain.Bracket{
				{Lower: 0, Upper: firstHomeExemptCeiling, Rate: 0},
				{Lower: firstHomeExemptCeiling, Upper: firstHomeReducedTop, Rate: 0.035},
				{Lower: firstHomeReducedTop, Upper: firstHomeMiddleTop, Rate: 0.05},
				{Lower: firstHomeMiddleTop, Upper: luxuryThreshold, Rate: 0.08},
				{Lower: luxuryThreshold, Upper: math.Inf(1), Rate: 0.10},
			},
		},
		NewImmigrant: domain.BracketTable{
			Name: "new-immigrant",
			Brackets: []domain.Bracket{
				{Lower: 0, Upper: firstHomeExemptCeiling, Rate: 0},
				{Lower: firstHomeExemptCeiling, Upper: firstHomeMiddleTop, Rate: 0.005},
				{Lower: firstHomeMiddleTop, Upper: luxuryThreshold, Rate: 0.08},
				{Lower: luxuryThreshold, Upper: math.Inf(1), Rate: 0.10},
			},
		},
		Standard: domain.BracketTable{
			Name: "standard",
			Brackets: []domain.Bracket{
				{Lower: 0, Upper: math.Inf(1), Rate: 0.08},
			},
		},
	}
}

func (t TaxTables) Validate() error {
	for _, table := range []domain.BracketTable{t.CitizenFirstHome, t.NewImmigrant, t.Standard} {
		if err := table.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TaxEngine computes eligibility (LTV cap) and purchase tax.
type TaxEngine struct {
	policy Policy
	tables TaxTables
}

func NewTaxEngine(policy Policy) *TaxEngine {
	return &TaxEngine{
		policy: policy,
		tables: DefaultTaxTables(),
	}
}

// WithTables returns a copy of the engine that computes tax from tables.
// The receiver keeps its own tables.
func (e *TaxEngine) WithTables(tables TaxTables) (*TaxEngine, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}

	cp := *e
	cp.tables = tables
	return &cp, nil
}

// TableFor selects the bracket table; the new-immigrant table wins over the
// citizen one when both apply.
func (e *TaxEngine) TableFor(profile domain.BuyerProfile) domain.BracketTable {
	switch {
	case profile.ImmigrantFirstHome():
		return e.tables.NewImmigrant
	case profile.CitizenFirstHome():
		return e.tables.CitizenFirstHome
	default:
		return e.tables.Standard
	}
}

func (e *TaxEngine) MaxMortgage(price float64, profile domain.BuyerProfile) float64 {
	if price <= 0 {
		return 0
	}
	return e.policy.MaxLTV(profile) * price
}

func (e *TaxEngine) PurchaseTax(price float64, profile domain.BuyerProfile) float64 {
	return BracketTax(price, e.TableFor(profile))
}

// BracketTax applies marginal rates: each bracket only taxes the part of the
// price inside it. Upper bounds are inclusive.
func BracketTax(price float64, table domain.BracketTable) float64 {
	if price <= 0 {
		return 0
	}

	p := decimal.NewFromFloat(price)
	total := decimal.Zero

	for _, b := range table.Brackets {
		lower := decimal.NewFromFloat(b.Lower)
		if !p.GreaterThan(lower) {
			break
		}

		upper := p
		if !math.IsInf(b.Upper, 1) {
			if u := decimal.NewFromFloat(b.Upper); u.LessThan(p) {
				upper = u
			}
		}

		total = total.Add(upper.Sub(lower).Mul(decimal.NewFromFloat(b.Rate)))
	}

	return total.InexactFloat64()
}

//nolint:gochecknoglobals
var defaultTaxEngine = NewTaxEngine(DefaultPolicy())

// MaxMortgage uses the default policy.
func MaxMortgage(price float64, profile domain.BuyerProfile) float64 {
	return defaultTaxEngine.MaxMortgage(price, profile)
}

// PurchaseTax uses the default bracket tables.
func PurchaseTax(price float64, profile domain.BuyerProfile) float64 {
	return defaultTaxEngine.PurchaseTax(price, profile)
}
