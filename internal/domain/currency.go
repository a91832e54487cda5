package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyCode is an ISO 4217 code from the supported set
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	PKR CurrencyCode = "PKR"
	INR CurrencyCode = "INR"
	AED CurrencyCode = "AED"
	CNY CurrencyCode = "CNY"
	VND CurrencyCode = "VND"
	BDT CurrencyCode = "BDT"
	KHR CurrencyCode = "KHR"
)

// BaseCurrency anchors the exchange rate table at a rate of 1
const BaseCurrency = USD

// CurrencyCodes is the closed set of supported codes
var CurrencyCodes = []CurrencyCode{USD, EUR, GBP, PKR, INR, AED, CNY, VND, BDT, KHR}

// InvestmentCurrencies are the input currencies offered to investors
var InvestmentCurrencies = []CurrencyCode{USD, EUR, GBP}

// Known reports whether c belongs to the supported set
func (c CurrencyCode) Known() bool {
	for _, code := range CurrencyCodes {
		if code == c {
			return true
		}
	}
	return false
}

// ParseCurrencyCode normalizes and validates a currency code
func ParseCurrencyCode(s string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if !code.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
	}
	return code, nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *CurrencyCode) UnmarshalText(text []byte) error {
	code, err := ParseCurrencyCode(string(text))
	if err != nil {
		return err
	}
	*c = code
	return nil
}

// ExchangeRateTable maps each currency to units per one unit of BaseCurrency
type ExchangeRateTable map[CurrencyCode]decimal.Decimal
