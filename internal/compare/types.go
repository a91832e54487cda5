package compare

import (
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

// Scenario is one comparison request. Revenue and Expenses are in Currency.
type Scenario struct {
	Revenue    decimal.Decimal     `json:"revenue"`
	Expenses   decimal.Decimal     `json:"expenses"`
	Currency   domain.CurrencyCode `json:"currency"`
	EntityType domain.EntityType   `json:"entityType"`
}

// Row is one jurisdiction's outcome expressed in the scenario currency
type Row struct {
	JurisdictionID string              `json:"jurisdictionId"`
	Country        string              `json:"country"`
	LocalCurrency  domain.CurrencyCode `json:"localCurrency"`
	Profit         decimal.Decimal     `json:"profit"`
	Tax            decimal.Decimal     `json:"tax"`
	NetProfit      decimal.Decimal     `json:"netProfit"`
	EffectiveRate  decimal.Decimal     `json:"effectiveRate"`
}

// Evaluation is a single-jurisdiction outcome with the local-currency
// figures kept alongside the converted ones for display
type Evaluation struct {
	Row
	Scenario Scenario `json:"scenario"`

	LocalRevenue  decimal.Decimal  `json:"localRevenue"`
	LocalExpenses decimal.Decimal  `json:"localExpenses"`
	LocalProfit   decimal.Decimal  `json:"localProfit"`
	LocalNet      decimal.Decimal  `json:"localNet"`
	Local         domain.TaxResult `json:"local"`
}

// ComparisonSet is a ranked comparison across every jurisdiction
type ComparisonSet struct {
	Scenario Scenario `json:"scenario"`
	Rows     []Row    `json:"rows"`
}

// Best returns the jurisdiction with the highest net profit
func (cs *ComparisonSet) Best() (Row, bool) {
	if len(cs.Rows) == 0 {
		return Row{}, false
	}
	return cs.Rows[0], true
}
