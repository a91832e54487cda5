package jurisdiction

import (
	"fmt"

	"github.com/rgehrsitz/taxcmp/internal/calculation"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

// india implements domestic company, firm and individual (new regime)
// taxation. Every path stacks a surcharge on base tax and the health and
// education cess on base tax plus surcharge.
type india struct {
	citRateReducedTurnover decimal.Decimal // turnover at or below citTurnoverLimit
	citRateDomestic        decimal.Decimal
	citTurnoverLimit       decimal.Decimal // INR 400 crore
	firmRate               decimal.Decimal
	cessRate               decimal.Decimal
	rebateProfitLimit      decimal.Decimal // section 87A

	corporateSurcharge  []calculation.Tier
	firmSurcharge       []calculation.Tier
	individualSurcharge []calculation.Tier

	slabs *calculation.BracketSchedule
}

func newIndia(profile domain.JurisdictionProfile) (Calculator, error) {
	slabs, err := calculation.NewBracketSchedule(profile.PIT.Brackets)
	if err != nil {
		return nil, fmt.Errorf("india PIT slabs: %w", err)
	}

	crore := calculation.Amount(10000000)
	return &india{
		citRateReducedTurnover: calculation.Pct("25"),
		citRateDomestic:        calculation.Pct("30"),
		citTurnoverLimit:       crore.Mul(calculation.Amount(400)),
		firmRate:               calculation.Pct("30"),
		cessRate:               calculation.Pct("4"),
		rebateProfitLimit:      calculation.Amount(700000),
		corporateSurcharge: []calculation.Tier{
			{Above: crore, Rate: calculation.Pct("7")},
			{Above: crore.Mul(calculation.Amount(10)), Rate: calculation.Pct("12")},
		},
		firmSurcharge: []calculation.Tier{
			{Above: crore, Rate: calculation.Pct("12")},
		},
		individualSurcharge: []calculation.Tier{
			{Above: calculation.Amount(5000000), Rate: calculation.Pct("10")},
			{Above: crore, Rate: calculation.Pct("15")},
			{Above: crore.Mul(calculation.Amount(2)), Rate: calculation.Pct("25")},
		},
		slabs: slabs,
	}, nil
}

func (in *india) ID() string { return "in" }

func (in *india) CalculateCorporate(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	rate := in.citRateDomestic
	if revenue.LessThanOrEqual(in.citTurnoverLimit) {
		rate = in.citRateReducedTurnover
	}

	baseTax := calculation.Percent(profit, rate)
	surchargeRate := calculation.TierRate(profit, in.corporateSurcharge)
	surcharge, cess := calculation.StackSurtaxes(baseTax, surchargeRate, in.cessRate)

	return calculation.NewTaxResult(baseTax.Add(surcharge).Add(cess), profit,
		domain.TaxDetail{Label: label("Base CIT", rate), Amount: baseTax},
		domain.TaxDetail{Label: label("Surcharge", surchargeRate), Amount: surcharge},
		domain.TaxDetail{Label: label("Health & Edu Cess", in.cessRate), Amount: cess},
	)
}

func (in *india) CalculatePartnership(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	baseTax := calculation.Percent(profit, in.firmRate)
	surchargeRate := calculation.TierRate(profit, in.firmSurcharge)
	surcharge, cess := calculation.StackSurtaxes(baseTax, surchargeRate, in.cessRate)

	return calculation.NewTaxResult(baseTax.Add(surcharge).Add(cess), profit,
		domain.TaxDetail{Label: label("Base Tax (Flat)", in.firmRate), Amount: baseTax},
		domain.TaxDetail{Label: label("Surcharge", surchargeRate), Amount: surcharge},
		domain.TaxDetail{Label: label("Cess", in.cessRate), Amount: cess},
	)
}

func (in *india) CalculateSoleProprietor(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	if profit.LessThanOrEqual(in.rebateProfitLimit) {
		return calculation.NewTaxResult(decimal.Zero, profit, domain.TaxDetail{
			Label: "Rebate u/s 87A",
			Note:  "Income at or below INR " + in.rebateProfitLimit.StringFixed(0),
		})
	}

	slabTax := in.slabs.Tax(profit)
	surchargeRate := calculation.TierRate(profit, in.individualSurcharge)
	surcharge, cess := calculation.StackSurtaxes(slabTax, surchargeRate, in.cessRate)

	return calculation.NewTaxResult(slabTax.Add(surcharge).Add(cess), profit,
		domain.TaxDetail{Label: "Slab Tax", Amount: slabTax},
		domain.TaxDetail{Label: label("Surcharge", surchargeRate), Amount: surcharge},
		domain.TaxDetail{Label: label("Cess", in.cessRate), Amount: cess},
	)
}
