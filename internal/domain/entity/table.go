package entity

import (
	"github.com/shopspring/decimal"

	"bargain/internal/domain/value"
)

// Table is the full answer to one price input.
type Table struct {
	Price   float64          `json:"price"`
	FeeRate float64          `json:"fee_rate"`
	State   value.InputState `json:"state"`
	Rows    []Row            `json:"rows"`
}

type Row struct {
	Recommendation
	Chance value.AcceptanceChance `json:"chance"`
}

func (r Row) Band() value.Band {
	return r.Chance.Band()
}

// FeePercent is the sale fee as shown to users, e.g. 2 for 0.02.
func (t Table) FeePercent() float64 {
	return decimal.NewFromFloat(t.FeeRate).Shift(2).InexactFloat64() //nolint:mnd
}

func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}
