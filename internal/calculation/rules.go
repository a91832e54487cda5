package calculation

import (
	"sort"

	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Pct parses a percentage literal such as "27.5"
func Pct(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Amount builds a whole local-currency amount
func Amount(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// NonNegative clamps d to zero from below
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Profit is revenue less expenses, never below zero
func Profit(revenue, expenses decimal.Decimal) decimal.Decimal {
	return NonNegative(revenue.Sub(expenses))
}

// Percent returns rate percent of amount
func Percent(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(hundred)
}

// EffectiveRate is tax as a percentage of profit, or zero when there is no profit
func EffectiveRate(tax, profit decimal.Decimal) decimal.Decimal {
	if !profit.IsPositive() {
		return decimal.Zero
	}
	return tax.Div(profit).Mul(hundred)
}

// NewTaxResult assembles a result, deriving the effective rate from profit
func NewTaxResult(totalTax, profit decimal.Decimal, breakdown ...domain.TaxDetail) domain.TaxResult {
	if breakdown == nil {
		breakdown = []domain.TaxDetail{}
	}
	return domain.TaxResult{
		TotalTax:      totalTax,
		EffectiveRate: EffectiveRate(totalTax, profit),
		Breakdown:     breakdown,
	}
}

// Tier is one step of a tiered surtax: Rate applies when the measured
// value is strictly greater than Above
type Tier struct {
	Above decimal.Decimal
	Rate  decimal.Decimal
}

// TierRate returns the rate of the highest tier whose threshold value
// strictly exceeds, or zero when none match
func TierRate(value decimal.Decimal, tiers []Tier) decimal.Decimal {
	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Above.GreaterThan(sorted[j].Above)
	})
	for _, t := range sorted {
		if value.GreaterThan(t.Above) {
			return t.Rate
		}
	}
	return decimal.Zero
}

// StackSurtaxes applies a surcharge on base tax, then a cess on the
// post-surcharge subtotal
func StackSurtaxes(baseTax, surchargeRate, cessRate decimal.Decimal) (surcharge, cess decimal.Decimal) {
	surcharge = Percent(baseTax, surchargeRate)
	cess = Percent(baseTax.Add(surcharge), cessRate)
	return surcharge, cess
}

// HigherOf picks the binding liability between a standard computation and
// a minimum (alternative-base) tax. Ties go to the standard computation.
func HigherOf(standard, minimum decimal.Decimal) (tax decimal.Decimal, minimumBinding bool) {
	if standard.GreaterThanOrEqual(minimum) {
		return standard, false
	}
	return minimum, true
}
