package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one band of a progressive schedule. Rate is a percentage.
// A nil Min starts the band at the previous ceiling; a nil Max marks the
// final open-ended band. Amounts are in the jurisdiction's local currency.
type TaxBracket struct {
	Rate        decimal.Decimal  `yaml:"rate" json:"rate"`
	Min         *decimal.Decimal `yaml:"min,omitempty" json:"min,omitempty"`
	Max         *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Description string           `yaml:"description,omitempty" json:"description,omitempty"`
}

// Band builds a closed bracket [min, max] taxed at rate percent
func Band(rate string, min, max int64) TaxBracket {
	lo := decimal.NewFromInt(min)
	hi := decimal.NewFromInt(max)
	return TaxBracket{Rate: decimal.RequireFromString(rate), Min: &lo, Max: &hi}
}

// OpenBand builds the final bracket taxing everything above min at rate percent
func OpenBand(rate string, min int64) TaxBracket {
	lo := decimal.NewFromInt(min)
	return TaxBracket{Rate: decimal.RequireFromString(rate), Min: &lo}
}

// IsOpen reports whether the bracket has no upper bound
func (b TaxBracket) IsOpen() bool {
	return b.Max == nil
}

// TaxDetail is one named component of a computed liability
type TaxDetail struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
}

// TaxResult is a computed liability in the jurisdiction's local currency.
//
// Breakdown entries are informational. They are not guaranteed to sum to
// TotalTax: deemed-revenue regimes report illustrative components.
type TaxResult struct {
	TotalTax      decimal.Decimal `json:"totalTax"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"` // percent of profit, 0 when profit is 0
	Breakdown     []TaxDetail     `json:"breakdown"`
}
