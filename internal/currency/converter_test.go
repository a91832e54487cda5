package currency

import (
	"testing"

	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() domain.ExchangeRateTable {
	return domain.ExchangeRateTable{
		domain.USD: decimal.NewFromInt(1),
		domain.EUR: decimal.RequireFromString("0.92"),
		domain.GBP: decimal.RequireFromString("0.77"),
		domain.AED: decimal.RequireFromString("3.67"),
		domain.INR: decimal.RequireFromString("83.5"),
		domain.PKR: decimal.NewFromInt(278),
		domain.CNY: decimal.RequireFromString("7.24"),
		domain.VND: decimal.NewFromInt(25450),
		domain.BDT: decimal.NewFromInt(117),
		domain.KHR: decimal.NewFromInt(4100),
	}
}

func newTestConverter(t *testing.T) *Converter {
	t.Helper()
	c, err := NewConverter(snapshot())
	require.NoError(t, err)
	return c
}

func TestConvert(t *testing.T) {
	c := newTestConverter(t)

	tests := []struct {
		name     string
		amount   decimal.Decimal
		from, to domain.CurrencyCode
		expected decimal.Decimal
	}{
		{"base to local", decimal.NewFromInt(1000), domain.USD, domain.INR, decimal.NewFromInt(83500)},
		{"local to base", decimal.NewFromInt(367), domain.AED, domain.USD, decimal.NewFromInt(100)},
		{"cross rate through base", decimal.NewFromInt(92), domain.EUR, domain.PKR, decimal.NewFromInt(27800)},
		{"negative amounts convert", decimal.NewFromInt(-10), domain.USD, domain.KHR, decimal.NewFromInt(-41000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.amount, tt.from, tt.to)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestConvert_SingleRounding(t *testing.T) {
	c := newTestConverter(t)

	// 25450 / 0.92 = 27663.04347826086956521739...
	got, err := c.Convert(decimal.NewFromInt(1), domain.EUR, domain.VND)
	require.NoError(t, err)
	assert.Equal(t, "27663.0434782608695652", got.String())

	// 7.24 * 1000 / 0.92 = 7869.56521739130434782608...
	got, err = c.Convert(decimal.NewFromInt(1000), domain.EUR, domain.CNY)
	require.NoError(t, err)
	assert.Equal(t, "7869.5652173913043478", got.String())
}

func TestConvert_Identity(t *testing.T) {
	c := newTestConverter(t)
	amount := decimal.RequireFromString("1234567.891")

	for _, code := range domain.CurrencyCodes {
		got, err := c.Convert(amount, code, code)
		require.NoError(t, err)
		assert.True(t, amount.Equal(got), "%s -> %s changed the amount", code, code)
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	c := newTestConverter(t)
	tolerance := decimal.RequireFromString("0.000001")
	amounts := []decimal.Decimal{
		decimal.NewFromInt(1),
		decimal.RequireFromString("999.99"),
		decimal.NewFromInt(2500000),
		decimal.NewFromInt(750000000),
	}

	for _, a := range domain.CurrencyCodes {
		for _, b := range domain.CurrencyCodes {
			for _, amount := range amounts {
				there, err := c.Convert(amount, a, b)
				require.NoError(t, err)
				back, err := c.Convert(there, b, a)
				require.NoError(t, err)
				assert.True(t, back.Sub(amount).Abs().LessThanOrEqual(tolerance),
					"%s %s -> %s -> %s = %s", amount, a, b, a, back)
			}
		}
	}
}

func TestConvert_UnknownCurrency(t *testing.T) {
	c := newTestConverter(t)

	_, err := c.Convert(decimal.NewFromInt(1), "XYZ", domain.USD)
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)

	_, err = c.Convert(decimal.NewFromInt(1), domain.USD, "XYZ")
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)

	partial, err := NewConverter(domain.ExchangeRateTable{domain.USD: decimal.NewFromInt(1)})
	require.NoError(t, err)
	_, err = partial.Convert(decimal.NewFromInt(1), domain.EUR, domain.EUR)
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency, "identity conversion still requires a known code")
}

func TestNewConverter_Validation(t *testing.T) {
	_, err := NewConverter(domain.ExchangeRateTable{domain.USD: decimal.Zero})
	assert.Error(t, err)

	_, err = NewConverter(domain.ExchangeRateTable{"XYZ": decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestConverter_IsolatedFromTable(t *testing.T) {
	table := snapshot()
	c, err := NewConverter(table)
	require.NoError(t, err)

	table[domain.EUR] = decimal.NewFromInt(5)
	rate, err := c.Rate(domain.EUR)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.92").Equal(rate))
}

func TestConverter_Codes(t *testing.T) {
	c := newTestConverter(t)
	codes := c.Codes()
	assert.Len(t, codes, 10)
	assert.Equal(t, domain.AED, codes[0])
	assert.True(t, c.Supports(domain.VND))
	assert.False(t, c.Supports("XYZ"))
}
