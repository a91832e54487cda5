package jurisdiction

import (
	"github.com/rgehrsitz/taxcmp/internal/calculation"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

// UAE corporate tax. Sole establishments and partnerships carrying on a
// business are taxable persons at the same rates, so all three entity
// types share one computation.
type uae struct {
	smallBusinessReliefRevenue decimal.Decimal // relief applies at or below this revenue (until Dec 2026)
	zeroBandCeiling            decimal.Decimal
	rateAboveZeroBand          decimal.Decimal
}

func newUAE(domain.JurisdictionProfile) (Calculator, error) {
	return &uae{
		smallBusinessReliefRevenue: calculation.Amount(3000000),
		zeroBandCeiling:            calculation.Amount(375000),
		rateAboveZeroBand:          calculation.Pct("9"),
	}, nil
}

func (u *uae) ID() string { return "ae" }

func (u *uae) CalculateCorporate(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	if revenue.LessThanOrEqual(u.smallBusinessReliefRevenue) {
		return calculation.NewTaxResult(decimal.Zero, profit, domain.TaxDetail{
			Label: "Small Business Relief",
			Note:  "Revenue at or below AED " + u.smallBusinessReliefRevenue.StringFixed(0),
		})
	}

	if profit.LessThanOrEqual(u.zeroBandCeiling) {
		return calculation.NewTaxResult(decimal.Zero, profit, domain.TaxDetail{Label: "Profit below Threshold"})
	}

	tax := calculation.Percent(profit.Sub(u.zeroBandCeiling), u.rateAboveZeroBand)
	return calculation.NewTaxResult(tax, profit,
		domain.TaxDetail{Label: "0% Band (First 375k)"},
		domain.TaxDetail{Label: label("Band above 375k", u.rateAboveZeroBand), Amount: tax},
	)
}

func (u *uae) CalculatePartnership(revenue, expenses decimal.Decimal) domain.TaxResult {
	return u.CalculateCorporate(revenue, expenses)
}

func (u *uae) CalculateSoleProprietor(revenue, expenses decimal.Decimal) domain.TaxResult {
	return u.CalculateCorporate(revenue, expenses)
}
