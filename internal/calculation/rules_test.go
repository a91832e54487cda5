package calculation

import (
	"testing"

	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProfit(t *testing.T) {
	assert.True(t, Amount(400).Equal(Profit(Amount(1000), Amount(600))))
	assert.True(t, Profit(Amount(600), Amount(1000)).IsZero())
	assert.True(t, Profit(Amount(-100), Amount(0)).IsZero())
}

func TestEffectiveRate(t *testing.T) {
	assert.True(t, Amount(26).Equal(EffectiveRate(Amount(1040000), Amount(4000000))))
	assert.True(t, EffectiveRate(Amount(500), decimal.Zero).IsZero())
	assert.True(t, EffectiveRate(Amount(500), Amount(-10)).IsZero())
}

func TestNewTaxResult(t *testing.T) {
	result := NewTaxResult(Amount(50), Amount(200))
	assert.True(t, Amount(25).Equal(result.EffectiveRate))
	assert.NotNil(t, result.Breakdown)
	assert.Empty(t, result.Breakdown)

	result = NewTaxResult(Amount(50), Amount(200), domain.TaxDetail{Label: "CIT", Amount: Amount(50)})
	assert.Len(t, result.Breakdown, 1)
}

func TestTierRate(t *testing.T) {
	tiers := []Tier{
		{Above: Amount(10000000), Rate: Pct("7")},
		{Above: Amount(100000000), Rate: Pct("12")},
	}

	tests := []struct {
		value    int64
		expected string
	}{
		{0, "0"},
		{10000000, "0"}, // strict greater-than
		{10000001, "7"},
		{100000000, "7"},
		{100000001, "12"},
	}
	for _, tt := range tests {
		got := TierRate(Amount(tt.value), tiers)
		assert.True(t, Pct(tt.expected).Equal(got), "value %d: expected %s, got %s", tt.value, tt.expected, got)
	}
}

func TestStackSurtaxes(t *testing.T) {
	surcharge, cess := StackSurtaxes(Amount(1000000), Pct("12"), Pct("4"))
	assert.True(t, Amount(120000).Equal(surcharge))
	// cess on base + surcharge, not base alone
	assert.True(t, Amount(44800).Equal(cess))

	surcharge, cess = StackSurtaxes(Amount(1000000), decimal.Zero, Pct("4"))
	assert.True(t, surcharge.IsZero())
	assert.True(t, Amount(40000).Equal(cess))
}

func TestHigherOf(t *testing.T) {
	tax, minimum := HigherOf(Amount(100), Amount(80))
	assert.True(t, Amount(100).Equal(tax))
	assert.False(t, minimum)

	tax, minimum = HigherOf(Amount(80), Amount(100))
	assert.True(t, Amount(100).Equal(tax))
	assert.True(t, minimum)

	_, minimum = HigherOf(Amount(100), Amount(100))
	assert.False(t, minimum, "tie favors the standard computation")
}
