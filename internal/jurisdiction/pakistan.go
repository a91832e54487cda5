package jurisdiction

import (
	"fmt"

	"github.com/rgehrsitz/taxcmp/internal/calculation"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

// pakistan implements companies (higher of normal tax and turnover tax),
// associations of persons and business individuals. Super tax (section 4C)
// is charged on income after the entity computation for companies and AOPs.
type pakistan struct {
	citRateStandard decimal.Decimal
	minimumTaxRate  decimal.Decimal // general turnover tax
	superTax        []calculation.Tier

	slabs *calculation.BracketSchedule // non-salaried individual and AOP slabs
}

func newPakistan(profile domain.JurisdictionProfile) (Calculator, error) {
	slabs, err := calculation.NewBracketSchedule(profile.PIT.Brackets)
	if err != nil {
		return nil, fmt.Errorf("pakistan PIT slabs: %w", err)
	}

	million := calculation.Amount(1000000)
	above := func(m int64) decimal.Decimal { return million.Mul(calculation.Amount(m)) }
	return &pakistan{
		citRateStandard: calculation.Pct("29"),
		minimumTaxRate:  calculation.Pct("1.25"),
		superTax: []calculation.Tier{
			{Above: above(150), Rate: calculation.Pct("1")},
			{Above: above(200), Rate: calculation.Pct("2")},
			{Above: above(250), Rate: calculation.Pct("3")},
			{Above: above(300), Rate: calculation.Pct("4")},
			{Above: above(350), Rate: calculation.Pct("6")},
			{Above: above(400), Rate: calculation.Pct("8")},
			{Above: above(500), Rate: calculation.Pct("10")},
		},
		slabs: slabs,
	}, nil
}

func (pk *pakistan) ID() string { return "pk" }

// superTaxOn returns the super tax on income and the rate applied
func (pk *pakistan) superTaxOn(income decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	rate := calculation.TierRate(income, pk.superTax)
	return calculation.Percent(income, rate), rate
}

func (pk *pakistan) CalculateCorporate(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	normalTax := calculation.Percent(profit, pk.citRateStandard)
	minimumTax := calculation.Percent(calculation.NonNegative(revenue), pk.minimumTaxRate)
	liability, minimumBinding := calculation.HigherOf(normalTax, minimumTax)

	applied := label("Normal CIT", pk.citRateStandard)
	if minimumBinding {
		applied = fmt.Sprintf("Minimum Tax (%s%% Rev)", pk.minimumTaxRate)
	}

	superTax, superRate := pk.superTaxOn(profit)
	return calculation.NewTaxResult(liability.Add(superTax), profit,
		domain.TaxDetail{Label: applied, Amount: liability},
		domain.TaxDetail{Label: label("Super Tax", superRate), Amount: superTax},
	)
}

func (pk *pakistan) CalculatePartnership(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	slabTax := pk.slabs.Tax(profit)
	superTax, superRate := pk.superTaxOn(profit)
	return calculation.NewTaxResult(slabTax.Add(superTax), profit,
		domain.TaxDetail{Label: "AOP Slab Tax", Amount: slabTax},
		domain.TaxDetail{Label: label("Super Tax", superRate), Amount: superTax},
	)
}

func (pk *pakistan) CalculateSoleProprietor(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	tax := pk.slabs.Tax(profit)
	return calculation.NewTaxResult(tax, profit, domain.TaxDetail{Label: "Business Income Tax", Amount: tax})
}
