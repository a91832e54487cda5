package calculation

import (
	"fmt"

	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

// BRACKET EVALUATION ASSUMPTIONS:
//
// 1. Brackets are supplied sorted ascending and contiguous: each floor equals
//    the previous ceiling, the first floor is zero and only the last bracket
//    is open-ended. The evaluator never sorts; ValidateBrackets rejects
//    anything else with domain.ErrMalformedBracketSequence.
//
// 2. Rates are percentages (25 means 25%).
//
// 3. Income below zero is taxed as zero.

// BracketSchedule is a validated progressive schedule
type BracketSchedule struct {
	brackets []domain.TaxBracket
}

// NewBracketSchedule validates brackets and copies them into a schedule
func NewBracketSchedule(brackets []domain.TaxBracket) (*BracketSchedule, error) {
	if err := ValidateBrackets(brackets); err != nil {
		return nil, err
	}
	copied := make([]domain.TaxBracket, len(brackets))
	copy(copied, brackets)
	return &BracketSchedule{brackets: copied}, nil
}

// MustBracketSchedule is NewBracketSchedule for schedules fixed in code
func MustBracketSchedule(brackets ...domain.TaxBracket) *BracketSchedule {
	s, err := NewBracketSchedule(brackets)
	if err != nil {
		panic(err)
	}
	return s
}

// Brackets returns a copy of the schedule's brackets
func (s *BracketSchedule) Brackets() []domain.TaxBracket {
	out := make([]domain.TaxBracket, len(s.brackets))
	copy(out, s.brackets)
	return out
}

// Tax computes marginal progressive tax on income
func (s *BracketSchedule) Tax(income decimal.Decimal) decimal.Decimal {
	return evaluate(income, s.brackets)
}

// EvaluateBrackets computes marginal progressive tax on income after
// checking the bracket precondition
func EvaluateBrackets(income decimal.Decimal, brackets []domain.TaxBracket) (decimal.Decimal, error) {
	if err := ValidateBrackets(brackets); err != nil {
		return decimal.Zero, err
	}
	return evaluate(income, brackets), nil
}

func evaluate(income decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	income = NonNegative(income)

	totalTax := decimal.Zero
	previousCeiling := decimal.Zero
	for _, bracket := range brackets {
		floor := previousCeiling
		if bracket.Min != nil {
			floor = decimal.Max(previousCeiling, *bracket.Min)
		}
		if income.LessThanOrEqual(floor) {
			break
		}

		top := income
		if !bracket.IsOpen() {
			top = decimal.Min(income, *bracket.Max)
		}
		incomeInBracket := top.Sub(floor)
		if incomeInBracket.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(Percent(incomeInBracket, bracket.Rate))
		}

		if bracket.IsOpen() {
			break
		}
		previousCeiling = *bracket.Max
	}

	return totalTax
}

// ValidateBrackets checks that brackets form an ascending, gap-free
// sequence starting at zero and ending with an open-ended bracket
func ValidateBrackets(brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%w: no brackets", domain.ErrMalformedBracketSequence)
	}

	previousCeiling := decimal.Zero
	for i, b := range brackets {
		if b.Rate.IsNegative() {
			return fmt.Errorf("%w: bracket %d has negative rate %s", domain.ErrMalformedBracketSequence, i, b.Rate)
		}

		floor := previousCeiling
		if b.Min != nil {
			floor = *b.Min
		}
		if !floor.Equal(previousCeiling) {
			if i == 0 {
				return fmt.Errorf("%w: first bracket starts at %s, not 0", domain.ErrMalformedBracketSequence, floor)
			}
			return fmt.Errorf("%w: bracket %d starts at %s but previous bracket ends at %s",
				domain.ErrMalformedBracketSequence, i, floor, previousCeiling)
		}

		last := i == len(brackets)-1
		if b.IsOpen() {
			if !last {
				return fmt.Errorf("%w: bracket %d is open-ended but is not the last bracket", domain.ErrMalformedBracketSequence, i)
			}
			continue
		}
		if last {
			return fmt.Errorf("%w: last bracket must be open-ended, ends at %s", domain.ErrMalformedBracketSequence, *b.Max)
		}
		if b.Max.LessThanOrEqual(floor) {
			return fmt.Errorf("%w: bracket %d ceiling %s does not exceed floor %s", domain.ErrMalformedBracketSequence, i, *b.Max, floor)
		}
		previousCeiling = *b.Max
	}

	return nil
}
