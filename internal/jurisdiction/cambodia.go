package jurisdiction

import (
	"fmt"

	"github.com/rgehrsitz/taxcmp/internal/calculation"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

// cambodia implements the real regime: tax on income with a minimum tax on
// turnover for legal entities, and progressive tax for sole proprietors.
type cambodia struct {
	toiRate        decimal.Decimal
	minimumTaxRate decimal.Decimal

	// Monthly salary thresholds annualized for business income.
	soleProprietor *calculation.BracketSchedule
}

func newCambodia(domain.JurisdictionProfile) (Calculator, error) {
	return &cambodia{
		toiRate:        calculation.Pct("20"),
		minimumTaxRate: calculation.Pct("1"),
		soleProprietor: calculation.MustBracketSchedule(
			domain.Band("0", 0, 18000000),
			domain.Band("5", 18000000, 24000000),
			domain.Band("10", 24000000, 102000000),
			domain.Band("15", 102000000, 150000000),
			domain.OpenBand("20", 150000000),
		),
	}, nil
}

func (kh *cambodia) ID() string { return "kh" }

func (kh *cambodia) CalculateCorporate(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	toi := calculation.Percent(profit, kh.toiRate)
	minimumTax := calculation.Percent(calculation.NonNegative(revenue), kh.minimumTaxRate)
	tax, minimumBinding := calculation.HigherOf(toi, minimumTax)

	applied := label("TOI", kh.toiRate)
	if minimumBinding {
		applied = fmt.Sprintf("Minimum Tax (%s%% Rev)", kh.minimumTaxRate)
	}
	return calculation.NewTaxResult(tax, profit, domain.TaxDetail{Label: applied, Amount: tax})
}

// CalculatePartnership taxes partnerships as legal entities
func (kh *cambodia) CalculatePartnership(revenue, expenses decimal.Decimal) domain.TaxResult {
	return kh.CalculateCorporate(revenue, expenses)
}

func (kh *cambodia) CalculateSoleProprietor(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	tax := kh.soleProprietor.Tax(profit)
	return calculation.NewTaxResult(tax, profit, domain.TaxDetail{Label: "Progressive Tax (PIT)", Amount: tax})
}
