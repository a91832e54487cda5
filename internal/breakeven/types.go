package breakeven

import (
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
)

// Request asks for the revenue needed to keep TargetNet after tax. Expenses
// and TargetNet are in Currency.
type Request struct {
	JurisdictionID string              `json:"jurisdictionId,omitempty"`
	TargetNet      decimal.Decimal     `json:"targetNet"`
	Expenses       decimal.Decimal     `json:"expenses"`
	Currency       domain.CurrencyCode `json:"currency"`
	EntityType     domain.EntityType   `json:"entityType"`

	MaxIterations int             `json:"-"` // Maximum bisection steps; zero uses the solver default
	Tolerance     decimal.Decimal `json:"-"` // Convergence tolerance in Currency; zero uses the solver default
}

// Result is the revenue found for one jurisdiction and the outcome at it
type Result struct {
	JurisdictionID string          `json:"jurisdictionId"`
	Country        string          `json:"country"`
	Revenue        decimal.Decimal `json:"revenue"`
	Tax            decimal.Decimal `json:"tax"`
	NetProfit      decimal.Decimal `json:"netProfit"`
	EffectiveRate  decimal.Decimal `json:"effectiveRate"`

	Iterations      int    `json:"iterations"`
	Converged       bool   `json:"converged"`
	ConvergenceInfo string `json:"convergenceInfo"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance
	MaxIterations int             // Maximum bisection iterations
	MaxDoublings  int             // Maximum upper-bound expansions before giving up
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.RequireFromString("0.01"),
		MaxIterations: 100,
		MaxDoublings:  64,
	}
}

// Validate checks that the request can be solved
func (r *Request) Validate() error {
	if !r.TargetNet.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "target net profit must be positive",
		}
	}
	if r.Expenses.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "expenses cannot be negative",
		}
	}
	if r.Tolerance.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "tolerance cannot be negative",
		}
	}
	return nil
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
