package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/rgehrsitz/taxcmp/internal/calculation"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/reference.yaml
var defaultReferenceYAML []byte

// DefaultReferenceYAML returns the embedded reference data document
func DefaultReferenceYAML() []byte {
	out := make([]byte, len(defaultReferenceYAML))
	copy(out, defaultReferenceYAML)
	return out
}

// InputParser handles parsing of reference data files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadDefault parses the reference data compiled into the binary
func (ip *InputParser) LoadDefault() (*domain.ReferenceData, error) {
	return ip.Parse(defaultReferenceYAML)
}

// LoadFromFile loads reference data from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.ReferenceData, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Load reads filename when given, otherwise the embedded defaults
func (ip *InputParser) Load(filename string) (*domain.ReferenceData, error) {
	if filename == "" {
		return ip.LoadDefault()
	}
	return ip.LoadFromFile(filename)
}

// Parse decodes and validates a reference data document
func (ip *InputParser) Parse(data []byte) (*domain.ReferenceData, error) {
	var ref domain.ReferenceData
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateReferenceData(&ref); err != nil {
		return nil, fmt.Errorf("reference data validation failed: %w", err)
	}

	return &ref, nil
}

// ValidateReferenceData validates the loaded reference data
func (ip *InputParser) ValidateReferenceData(ref *domain.ReferenceData) error {
	if err := ip.validateExchangeRates(ref.ExchangeRates); err != nil {
		return fmt.Errorf("exchange rates: %w", err)
	}

	if len(ref.Jurisdictions) == 0 {
		return fmt.Errorf("no jurisdictions provided")
	}

	seen := make(map[string]bool, len(ref.Jurisdictions))
	for i := range ref.Jurisdictions {
		profile := &ref.Jurisdictions[i]
		if seen[profile.ID] {
			return fmt.Errorf("duplicate jurisdiction %q", profile.ID)
		}
		seen[profile.ID] = true

		if err := ip.validateProfile(profile, ref.ExchangeRates); err != nil {
			return fmt.Errorf("jurisdiction %d (%s) validation failed: %w", i, profile.ID, err)
		}
	}

	return nil
}

// validateExchangeRates requires the base currency at 1 and positive rates
func (ip *InputParser) validateExchangeRates(rates domain.ExchangeRateTable) error {
	if len(rates) == 0 {
		return fmt.Errorf("no exchange rates provided")
	}
	base, ok := rates[domain.BaseCurrency]
	if !ok {
		return fmt.Errorf("base currency %s is missing", domain.BaseCurrency)
	}
	if !base.Equal(calculation.Amount(1)) {
		return fmt.Errorf("base currency %s must have rate 1, got %s", domain.BaseCurrency, base)
	}
	for code, rate := range rates {
		if !rate.IsPositive() {
			return fmt.Errorf("rate for %s must be positive, got %s", code, rate)
		}
	}
	return nil
}

// validateProfile validates a single jurisdiction profile
func (ip *InputParser) validateProfile(profile *domain.JurisdictionProfile, rates domain.ExchangeRateTable) error {
	if profile.ID == "" {
		return fmt.Errorf("id is required")
	}
	if profile.Country == "" {
		return fmt.Errorf("country is required")
	}
	if !profile.CurrencyCode.Known() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, profile.CurrencyCode)
	}
	if _, ok := rates[profile.CurrencyCode]; !ok {
		return fmt.Errorf("%w: no exchange rate for %s", domain.ErrUnknownCurrency, profile.CurrencyCode)
	}
	if profile.CIT.StandardRate.IsNegative() {
		return fmt.Errorf("CIT standard rate cannot be negative")
	}
	if err := calculation.ValidateBrackets(profile.PIT.Brackets); err != nil {
		return fmt.Errorf("PIT brackets: %w", err)
	}
	return nil
}
