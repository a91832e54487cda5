package currency

import (
	"fmt"
	"sort"

	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

// Converter converts amounts through a fixed, base-anchored rate table.
// The table is a static snapshot injected at construction.
type Converter struct {
	rates domain.ExchangeRateTable
}

// NewConverter copies table into a converter. Every rate must be positive.
func NewConverter(table domain.ExchangeRateTable) (*Converter, error) {
	rates := make(domain.ExchangeRateTable, len(table))
	for code, rate := range table {
		if !code.Known() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, code)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate for %s must be positive, got %s", code, rate)
		}
		rates[code] = rate
	}
	return &Converter{rates: rates}, nil
}

// Convert scales amount by toRate/fromRate. Multiplication is exact; the
// single division is carried to decimal.DivisionPrecision digits, so a
// conversion into a currency other than the base may carry noise in the
// final digits.
func (c *Converter) Convert(amount decimal.Decimal, from, to domain.CurrencyCode) (decimal.Decimal, error) {
	fromRate, err := c.Rate(from)
	if err != nil {
		return decimal.Zero, err
	}
	toRate, err := c.Rate(to)
	if err != nil {
		return decimal.Zero, err
	}
	if from == to {
		return amount, nil
	}
	return amount.Mul(toRate).Div(fromRate), nil
}

// Rate returns units of code per one unit of the base currency
func (c *Converter) Rate(code domain.CurrencyCode) (decimal.Decimal, error) {
	rate, ok := c.rates[code]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, code)
	}
	return rate, nil
}

// Supports reports whether code has a rate
func (c *Converter) Supports(code domain.CurrencyCode) bool {
	_, ok := c.rates[code]
	return ok
}

// Codes returns the supported codes sorted alphabetically
func (c *Converter) Codes() []domain.CurrencyCode {
	codes := make([]domain.CurrencyCode, 0, len(c.rates))
	for code := range c.rates {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
