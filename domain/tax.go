package domain

import (
	"fmt"
	"math"

	"apartment-journey/pkg/errcodes"
)

// Bracket taxes the slice of the price in (Lower, Upper] at Rate.
type Bracket struct {
	Lower float64
	Upper float64
	Rate  float64
}

// BracketTable is an ordered set of contiguous brackets covering [0, +Inf).
type BracketTable struct {
	Name     string
	Brackets []Bracket
}

func (t BracketTable) Validate() error {
	if len(t.Brackets) == 0 {
		return NewError(errcodes.InvalidBracketTable, fmt.Sprintf("table %q has no brackets", t.Name))
	}

	if t.Brackets[0].Lower != 0 {
		return NewError(errcodes.InvalidBracketTable, fmt.Sprintf("table %q does not start at zero", t.Name))
	}

	for i, b := range t.Brackets {
		if b.Upper <= b.Lower {
			return NewError(errcodes.InvalidBracketTable,
				fmt.Sprintf("table %q bracket %d: upper %.0f not above lower %.0f", t.Name, i, b.Upper, b.Lower))
		}
		if b.Rate < 0 || b.Rate > 1 {
			return NewError(errcodes.InvalidBracketTable,
				fmt.Sprintf("table %q bracket %d: rate %v out of range", t.Name, i, b.Rate))
		}
		if i == 0 {
			continue
		}

		prev := t.Brackets[i-1]
		if b.Lower != prev.Upper {
			return NewError(errcodes.InvalidBracketTable,
				fmt.Sprintf("table %q bracket %d: gap or overlap at %.0f", t.Name, i, b.Lower))
		}
		if b.Rate < prev.Rate {
			return NewError(errcodes.InvalidBracketTable,
				fmt.Sprintf("table %q bracket %d: rate decreases", t.Name, i))
		}
	}

	if !math.IsInf(t.Brackets[len(t.Brackets)-1].Upper, 1) {
		return NewError(errcodes.InvalidBracketTable, fmt.Sprintf("table %q is not open-ended", t.Name))
	}

	return nil
}

type TaxQuoteInput struct {
	Price   float64 `validate:"gte=0"`
	Profile BuyerProfile
}

type TaxQuote struct {
	Price       float64
	Table       string
	MaxLTV      float64
	MaxMortgage float64
	PurchaseTax float64
}
