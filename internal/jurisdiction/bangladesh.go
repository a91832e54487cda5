package jurisdiction

import (
	"fmt"

	"github.com/rgehrsitz/taxcmp/internal/calculation"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

// bangladesh implements non-listed private company tax with the turnover
// minimum, firm tax at the company rate and individual slab tax.
type bangladesh struct {
	citRateNonListed decimal.Decimal
	minimumTaxRate   decimal.Decimal

	slabs *calculation.BracketSchedule
}

func newBangladesh(profile domain.JurisdictionProfile) (Calculator, error) {
	slabs, err := calculation.NewBracketSchedule(profile.PIT.Brackets)
	if err != nil {
		return nil, fmt.Errorf("bangladesh PIT slabs: %w", err)
	}
	return &bangladesh{
		citRateNonListed: calculation.Pct("27.5"),
		minimumTaxRate:   calculation.Pct("0.6"),
		slabs:            slabs,
	}, nil
}

func (bd *bangladesh) ID() string { return "bd" }

func (bd *bangladesh) CalculateCorporate(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	regularTax := calculation.Percent(profit, bd.citRateNonListed)
	minimumTax := calculation.Percent(calculation.NonNegative(revenue), bd.minimumTaxRate)
	tax, minimumBinding := calculation.HigherOf(regularTax, minimumTax)

	applied := label("CIT", bd.citRateNonListed)
	if minimumBinding {
		applied = fmt.Sprintf("Min Tax (%s%% Rev)", bd.minimumTaxRate)
	}
	return calculation.NewTaxResult(tax, profit, domain.TaxDetail{Label: applied, Amount: tax})
}

func (bd *bangladesh) CalculatePartnership(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	tax := calculation.Percent(profit, bd.citRateNonListed)
	return calculation.NewTaxResult(tax, profit, domain.TaxDetail{Label: "Partnership Tax", Amount: tax})
}

func (bd *bangladesh) CalculateSoleProprietor(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	tax := bd.slabs.Tax(profit)
	return calculation.NewTaxResult(tax, profit, domain.TaxDetail{Label: "Personal Income Tax", Amount: tax})
}
