package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"apartment-journey/domain"
	"apartment-journey/pkg/errcodes"
)

var (
	citizenFirstHome = domain.BuyerProfile{IsCitizen: true, IsFirstHome: true}
	citizenSecond    = domain.BuyerProfile{IsCitizen: true}
	foreignBuyer     = domain.BuyerProfile{}
	newImmigrant     = domain.BuyerProfile{IsCitizen: true, IsFirstHome: true, IsNewImmigrant: true}
)

func TestPurchaseTax_CitizenFirstHomeBrackets(t *testing.T) {
	rq := require.New(t)

	rq.Zero(PurchaseTax(0, citizenFirstHome))
	rq.Zero(PurchaseTax(1_500_000, citizenFirstHome))
	rq.Zero(PurchaseTax(1_978_745, citizenFirstHome))
	rq.InDelta(743.925, PurchaseTax(2_000_000, citizenFirstHome), 1e-6)
	rq.InDelta(12_890.325, PurchaseTax(2_347_040, citizenFirstHome), 1e-6)
	rq.InDelta(198_291.825, PurchaseTax(6_055_070, citizenFirstHome), 1e-6)
}

func TestPurchaseTax_StandardIsFlat(t *testing.T) {
	rq := require.New(t)

	rq.InDelta(80_000, PurchaseTax(1_000_000, foreignBuyer), 1e-6)
	rq.InDelta(80_000, PurchaseTax(1_000_000, citizenSecond), 1e-6)
	rq.InDelta(160_000, PurchaseTax(2_000_000, foreignBuyer), 1e-6)
}

func TestPurchaseTax_NewImmigrantTable(t *testing.T) {
	rq := require.New(t)

	rq.Zero(PurchaseTax(1_978_745, newImmigrant))
	rq.InDelta(5_106.275, PurchaseTax(3_000_000, newImmigrant), 1e-6)
	rq.Less(PurchaseTax(3_000_000, newImmigrant), PurchaseTax(3_000_000, citizenFirstHome))

	// Without a first home the immigrant gets no benefit.
	rq.InDelta(240_000, PurchaseTax(3_000_000, domain.BuyerProfile{IsNewImmigrant: true}), 1e-6)
}

func TestPurchaseTax_MonotonicAndContinuous(t *testing.T) {
	rq := require.New(t)

	for _, profile := range []domain.BuyerProfile{citizenFirstHome, newImmigrant, foreignBuyer} {
		prev := 0.0
		for price := 0.0; price <= 25_000_000; price += 12_345 {
			tax := PurchaseTax(price, profile)
			rq.GreaterOrEqual(tax, prev)
			prev = tax
		}

		for _, edge := range []float64{1_978_745, 2_347_040, 6_055_070, 20_183_565} {
			below := PurchaseTax(edge-1, profile)
			above := PurchaseTax(edge+1, profile)
			rq.Less(above-below, 1.0, "jump at %.0f", edge)
		}
	}
}

func TestMaxMortgage(t *testing.T) {
	rq := require.New(t)

	rq.InDelta(1_500_000, MaxMortgage(2_000_000, citizenFirstHome), 1e-6)
	rq.InDelta(1_000_000, MaxMortgage(2_000_000, citizenSecond), 1e-6)
	rq.InDelta(1_000_000, MaxMortgage(2_000_000, foreignBuyer), 1e-6)
	rq.Zero(MaxMortgage(0, citizenFirstHome))
	rq.Zero(MaxMortgage(-10, citizenFirstHome))
}

func TestTaxEngine_WithTables(t *testing.T) {
	rq := require.New(t)

	tables := DefaultTaxTables()
	tables.Standard = domain.BracketTable{
		Name: "flat-ten",
		Brackets: []domain.Bracket{
			{Lower: 0, Upper: math.Inf(1), Rate: 0.10},
		},
	}

	base := NewTaxEngine(DefaultPolicy())
	engine, err := base.WithTables(tables)
	rq.NoError(err)
	rq.NotSame(base, engine)
	rq.InDelta(100_000, engine.PurchaseTax(1_000_000, foreignBuyer), 1e-6)
	rq.Equal("flat-ten", engine.TableFor(foreignBuyer).Name)

	rq.InDelta(80_000, base.PurchaseTax(1_000_000, foreignBuyer), 1e-6)
	rq.NotEqual("flat-ten", base.TableFor(foreignBuyer).Name)

	tables.Standard = domain.BracketTable{Name: "empty"}
	invalid, err := base.WithTables(tables)
	rq.Error(err)
	rq.Nil(invalid)
	rq.InDelta(80_000, base.PurchaseTax(1_000_000, foreignBuyer), 1e-6)
}

func bracket(lower, upper, rate float64) domain.Bracket {
	return domain.Bracket{Lower: lower, Upper: upper, Rate: rate}
}

func TestBracketTable_Validate(t *testing.T) {
	cases := map[string]domain.BracketTable{
		"empty":          {Name: "empty"},
		"not at zero":    {Brackets: []domain.Bracket{{Lower: 10, Upper: math.Inf(1), Rate: 0.1}}},
		"gap":            {Brackets: []domain.Bracket{bracket(0, 100, 0), bracket(200, math.Inf(1), 0.1)}},
		"rate decreases": {Brackets: []domain.Bracket{bracket(0, 100, 0.2), bracket(100, math.Inf(1), 0.1)}},
		"rate too high":  {Brackets: []domain.Bracket{bracket(0, math.Inf(1), 1.5)}},
		"closed":         {Brackets: []domain.Bracket{bracket(0, 100, 0), bracket(100, 200, 0.1)}},
		"upper below":    {Brackets: []domain.Bracket{bracket(0, 0, 0), bracket(0, math.Inf(1), 0.1)}},
	}

	for name, table := range cases {
		t.Run(name, func(t *testing.T) {
			err := table.Validate()
			require.Error(t, err)

			code, ok := domain.GetCode(err)
			require.True(t, ok)
			require.Equal(t, errcodes.InvalidBracketTable, code)
		})
	}

	require.NoError(t, DefaultTaxTables().Validate())
}
