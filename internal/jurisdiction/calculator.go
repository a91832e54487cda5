package jurisdiction

import (
	"fmt"

	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

// Calculator encodes one jurisdiction's business tax rules. Inputs are
// non-negative amounts in the jurisdiction's local currency and results are
// reported in that same currency.
type Calculator interface {
	ID() string
	CalculateCorporate(revenue, expenses decimal.Decimal) domain.TaxResult
	CalculatePartnership(revenue, expenses decimal.Decimal) domain.TaxResult
	CalculateSoleProprietor(revenue, expenses decimal.Decimal) domain.TaxResult
}

// Calculate dispatches to the computation matching the entity type
func Calculate(calc Calculator, entity domain.EntityType, revenue, expenses decimal.Decimal) (domain.TaxResult, error) {
	switch entity {
	case domain.Corporate:
		return calc.CalculateCorporate(revenue, expenses), nil
	case domain.Partnership:
		return calc.CalculatePartnership(revenue, expenses), nil
	case domain.SoleProprietor:
		return calc.CalculateSoleProprietor(revenue, expenses), nil
	default:
		return domain.TaxResult{}, fmt.Errorf("%w: %d", domain.ErrUnknownEntityType, int(entity))
	}
}

// label formats a breakdown label with a percentage suffix, e.g. "Base CIT (25%)"
func label(name string, rate decimal.Decimal) string {
	return fmt.Sprintf("%s (%s%%)", name, rate.String())
}
