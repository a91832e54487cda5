package domain

import (
	"github.com/shopspring/decimal"
)

// ReferenceData is the static configuration the engine consumes. It is
// loaded once from reference.yaml and never mutated afterwards.
type ReferenceData struct {
	Metadata      ReferenceMetadata     `yaml:"metadata" json:"metadata"`
	ExchangeRates ExchangeRateTable     `yaml:"exchange_rates" json:"exchange_rates"`
	Jurisdictions []JurisdictionProfile `yaml:"jurisdictions" json:"jurisdictions"`
}

// ReferenceMetadata describes where a reference data snapshot came from
type ReferenceMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// Profiles indexes the jurisdiction profiles by id
func (r *ReferenceData) Profiles() map[string]JurisdictionProfile {
	profiles := make(map[string]JurisdictionProfile, len(r.Jurisdictions))
	for _, p := range r.Jurisdictions {
		profiles[p.ID] = p
	}
	return profiles
}

// JurisdictionProfile contains the reference data for one jurisdiction
type JurisdictionProfile struct {
	ID               string           `yaml:"id" json:"id"`
	Country          string           `yaml:"country" json:"country"`
	Flag             string           `yaml:"flag" json:"flag"`
	Currency         string           `yaml:"currency" json:"currency"`
	CurrencyCode     CurrencyCode     `yaml:"currency_code" json:"currencyCode"`
	CIT              CorporateTax     `yaml:"cit" json:"cit"`
	PIT              PersonalTax      `yaml:"pit" json:"pit"`
	BusinessTax      BusinessTax      `yaml:"business_tax" json:"businessTax"`
	SalesTax         SalesTax         `yaml:"sales_tax" json:"salesTax"`
	AdditionalLevies []string         `yaml:"additional_levies" json:"additionalLevies"`
	ResidencyRules   string           `yaml:"residency_rules" json:"residencyRules"`
	Withholding      WithholdingRates `yaml:"withholding" json:"withholding"`
}

// CorporateTax holds the headline corporate rate and incentives
type CorporateTax struct {
	StandardRate decimal.Decimal `yaml:"standard_rate" json:"standardRate"`
	Description  string          `yaml:"description" json:"description"`
	Incentives   []string        `yaml:"incentives" json:"incentives"`
}

// PersonalTax holds the personal income tax schedule. A nil Threshold means
// no personal income tax is levied at all.
type PersonalTax struct {
	Brackets    []TaxBracket     `yaml:"brackets" json:"brackets"`
	Threshold   *decimal.Decimal `yaml:"threshold" json:"threshold"`
	Description string           `yaml:"description" json:"description"`
}

// BusinessTax describes how non-corporate business income is taxed
type BusinessTax struct {
	SoleProprietor string `yaml:"sole_proprietor" json:"soleProprietor"`
	Partnership    string `yaml:"partnership" json:"partnership"`
}

// SalesTax describes the VAT/GST regime
type SalesTax struct {
	Name                  string          `yaml:"name" json:"name"`
	StandardRate          decimal.Decimal `yaml:"standard_rate" json:"standardRate"`
	ReducedRates          string          `yaml:"reduced_rates" json:"reducedRates"`
	Exemptions            string          `yaml:"exemptions" json:"exemptions"`
	RegistrationThreshold string          `yaml:"registration_threshold" json:"registrationThreshold"`
}

// WithholdingRates describes withholding on passive income
type WithholdingRates struct {
	Dividends string `yaml:"dividends" json:"dividends"`
	Interest  string `yaml:"interest" json:"interest"`
}

// TopPITRate returns the rate of the final personal bracket
func (p JurisdictionProfile) TopPITRate() decimal.Decimal {
	if len(p.PIT.Brackets) == 0 {
		return decimal.Zero
	}
	return p.PIT.Brackets[len(p.PIT.Brackets)-1].Rate
}
