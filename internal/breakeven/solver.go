package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/taxcmp/internal/compare"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver finds the revenue at which a jurisdiction leaves a target net profit
type Solver struct {
	Engine  *compare.Engine
	Options SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(engine *compare.Engine, options SolverOptions) *Solver {
	return &Solver{
		Engine:  engine,
		Options: options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(engine *compare.Engine) *Solver {
	return NewSolver(engine, DefaultSolverOptions())
}

// Solve bisects on revenue with expenses held fixed. Net profit is not
// monotonic in revenue across relief cliffs, so the result is a revenue
// where the target is met, not necessarily the lowest one.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	net := func(revenue decimal.Decimal) (*compare.Evaluation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ev, err := s.Engine.Evaluate(ctx, compare.Scenario{
			Revenue:    revenue,
			Expenses:   req.Expenses,
			Currency:   req.Currency,
			EntityType: req.EntityType,
		}, req.JurisdictionID)
		if err != nil {
			return nil, &BreakEvenError{
				Operation: "solve",
				Message:   fmt.Sprintf("failed to evaluate %s at revenue %s", req.JurisdictionID, revenue),
				Cause:     err,
			}
		}
		return ev, nil
	}

	// Find an upper bound that meets the target
	lo := req.Expenses
	hi := req.Expenses.Add(req.TargetNet)
	best, err := net(hi)
	if err != nil {
		return nil, err
	}
	for doublings := 0; best.NetProfit.LessThan(req.TargetNet); doublings++ {
		if doublings >= s.Options.MaxDoublings {
			return nil, &BreakEvenError{
				Operation: "solve",
				Message:   fmt.Sprintf("target net profit %s is unreachable in %s", req.TargetNet, req.JurisdictionID),
			}
		}
		lo = hi
		hi = hi.Mul(two)
		if best, err = net(hi); err != nil {
			return nil, err
		}
	}

	result := &Result{}
	for result.Iterations < req.MaxIterations {
		result.Iterations++

		mid := lo.Add(hi).Div(two)
		ev, err := net(mid)
		if err != nil {
			return nil, err
		}

		diff := ev.NetProfit.Sub(req.TargetNet)
		if diff.IsNegative() {
			lo = mid
		} else {
			hi, best = mid, ev
		}

		if (!diff.IsNegative() && diff.LessThan(req.Tolerance)) || hi.Sub(lo).LessThan(req.Tolerance) {
			result.Converged = true
			result.ConvergenceInfo = fmt.Sprintf("Converged within %s %s", req.Tolerance, req.Currency)
			break
		}
	}
	if !result.Converged {
		result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
	}

	result.JurisdictionID = best.JurisdictionID
	result.Country = best.Country
	result.Revenue = best.Scenario.Revenue
	result.Tax = best.Tax
	result.NetProfit = best.NetProfit
	result.EffectiveRate = best.EffectiveRate
	return result, nil
}
