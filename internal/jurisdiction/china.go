package jurisdiction

import (
	"github.com/rgehrsitz/taxcmp/internal/calculation"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

// china implements enterprise income tax with the small low-profit
// enterprise preference. Partnerships and sole proprietorships are
// pass-through: owners pay individual income tax on operating income.
type china struct {
	citRateStandard      decimal.Decimal
	smallProfitCeiling   decimal.Decimal // taxable income at or below qualifies
	smallProfitInclusion decimal.Decimal // share of income brought into tax
	smallProfitRate      decimal.Decimal

	operatingIncome *calculation.BracketSchedule
}

func newChina(domain.JurisdictionProfile) (Calculator, error) {
	return &china{
		citRateStandard:      calculation.Pct("25"),
		smallProfitCeiling:   calculation.Amount(3000000),
		smallProfitInclusion: calculation.Pct("25"),
		smallProfitRate:      calculation.Pct("20"),
		operatingIncome: calculation.MustBracketSchedule(
			domain.Band("5", 0, 30000),
			domain.Band("10", 30000, 90000),
			domain.Band("20", 90000, 300000),
			domain.Band("30", 300000, 500000),
			domain.OpenBand("35", 500000),
		),
	}, nil
}

func (cn *china) ID() string { return "cn" }

func (cn *china) CalculateCorporate(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	if profit.LessThanOrEqual(cn.smallProfitCeiling) {
		taxable := calculation.Percent(profit, cn.smallProfitInclusion)
		tax := calculation.Percent(taxable, cn.smallProfitRate)
		return calculation.NewTaxResult(tax, profit, domain.TaxDetail{
			Label:  "Small Low-Profit Ent. (Effective 5%)",
			Amount: tax,
		})
	}

	tax := calculation.Percent(profit, cn.citRateStandard)
	return calculation.NewTaxResult(tax, profit, domain.TaxDetail{Label: label("Standard CIT Rate", cn.citRateStandard), Amount: tax})
}

func (cn *china) CalculatePartnership(revenue, expenses decimal.Decimal) domain.TaxResult {
	profit := calculation.Profit(revenue, expenses)

	tax := cn.operatingIncome.Tax(profit)
	return calculation.NewTaxResult(tax, profit, domain.TaxDetail{Label: "IIT (Operating Income)", Amount: tax})
}

func (cn *china) CalculateSoleProprietor(revenue, expenses decimal.Decimal) domain.TaxResult {
	return cn.CalculatePartnership(revenue, expenses)
}
