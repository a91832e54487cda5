package jurisdiction

import (
	"github.com/rgehrsitz/taxcmp/internal/calculation"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

// vietnam implements standard CIT for enterprises, including partnerships
// formed under the Enterprise Law. Household businesses pay a deemed tax
// on revenue rather than profit.
type vietnam struct {
	citRateStandard decimal.Decimal

	// Deemed rate blends distribution (1.5%) and services (7%) sectors.
	// The VAT and PIT components are the illustrative split reported in
	// the breakdown; they are not used to compute the total.
	deemedRate    decimal.Decimal
	deemedVATRate decimal.Decimal
	deemedPITRate decimal.Decimal
}

func newVietnam(domain.JurisdictionProfile) (Calculator, error) {
	return &vietnam{
		citRateStandard: calculation.Pct("20"),
		deemedRate:      calculation.Pct("4.5"),
		deemedVATRate:   calculation.Pct("3"),
		deemedPITRate:   calculation.Pct("1.5"),
	}, nil
}

func (vn *vietnam) ID() string { return "vn" }

func (vn *vietnam) CalculateCorporate(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	tax := calculation.Percent(profit, vn.citRateStandard)
	return calculation.NewTaxResult(tax, profit, domain.TaxDetail{Label: label("Standard CIT", vn.citRateStandard), Amount: tax})
}

func (vn *vietnam) CalculatePartnership(revenue, expenses decimal.Decimal) domain.TaxResult {
	return vn.CalculateCorporate(revenue, expenses)
}

// CalculateSoleProprietor reports the effective rate against profit so it
// stays comparable across jurisdictions; it can exceed 100%.
func (vn *vietnam) CalculateSoleProprietor(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)
	turnover := calculation.NonNegative(revenue)

	tax := calculation.Percent(turnover, vn.deemedRate)
	return calculation.NewTaxResult(tax, profit,
		domain.TaxDetail{Label: "VAT on Revenue (~" + vn.deemedVATRate.String() + "%)", Amount: calculation.Percent(turnover, vn.deemedVATRate)},
		domain.TaxDetail{Label: "PIT on Revenue (~" + vn.deemedPITRate.String() + "%)", Amount: calculation.Percent(turnover, vn.deemedPITRate)},
	)
}
