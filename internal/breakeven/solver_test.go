package breakeven

import (
	"context"
	"errors"
	"testing"

	"github.com/rgehrsitz/taxcmp/internal/compare"
	"github.com/rgehrsitz/taxcmp/internal/config"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSolver(t *testing.T) *Solver {
	t.Helper()
	ref, err := config.NewInputParser().LoadDefault()
	require.NoError(t, err)
	engine, err := compare.NewEngineFromReference(ref)
	require.NoError(t, err)
	return NewDefaultSolver(engine)
}

func request(id string, target, expenses int64) Request {
	return Request{
		JurisdictionID: id,
		TargetNet:      decimal.NewFromInt(target),
		Expenses:       decimal.NewFromInt(expenses),
		Currency:       domain.USD,
		EntityType:     domain.Corporate,
	}
}

func TestNewDefaultSolver(t *testing.T) {
	s := newTestSolver(t)

	assert.NotNil(t, s.Engine)
	assert.Equal(t, 100, s.Options.MaxIterations)
	assert.True(t, decimal.RequireFromString("0.01").Equal(s.Options.Tolerance))
}

func TestSolve_FlatRate(t *testing.T) {
	res, err := newTestSolver(t).Solve(context.Background(), request("vn", 800, 0))
	require.NoError(t, err)

	assert.True(t, res.Converged, res.ConvergenceInfo)
	assert.Equal(t, "vn", res.JurisdictionID)
	assert.True(t, res.Revenue.Sub(decimal.NewFromInt(1000)).Abs().LessThan(decimal.RequireFromString("0.05")),
		"revenue %s", res.Revenue)
	assert.True(t, res.NetProfit.GreaterThanOrEqual(decimal.NewFromInt(800)))
}

func TestSolve_WithExpenses(t *testing.T) {
	res, err := newTestSolver(t).Solve(context.Background(), request("kh", 80000, 50000))
	require.NoError(t, err)

	// 20% on income: profit of 100,000 leaves 80,000
	assert.True(t, res.Revenue.Sub(decimal.NewFromInt(150000)).Abs().LessThan(decimal.RequireFromString("0.05")),
		"revenue %s", res.Revenue)
}

func TestSolve_MeetsTargetAcrossJurisdictions(t *testing.T) {
	s := newTestSolver(t)
	target := decimal.NewFromInt(1000000)

	for _, id := range []string{"ae", "in", "pk", "cn", "vn", "bd", "kh"} {
		for _, entity := range domain.EntityTypes {
			req := request(id, 1000000, 250000)
			req.EntityType = entity

			res, err := s.Solve(context.Background(), req)
			require.NoError(t, err, "%s %s", id, entity)
			assert.True(t, res.NetProfit.GreaterThanOrEqual(target), "%s %s: net %s", id, entity, res.NetProfit)
			assert.True(t, res.Revenue.GreaterThan(decimal.NewFromInt(1250000)) || res.Tax.IsZero(), "%s %s", id, entity)
		}
	}
}

func TestSolve_Errors(t *testing.T) {
	s := newTestSolver(t)
	ctx := context.Background()

	_, err := s.Solve(ctx, request("ae", 0, 0))
	var beErr *BreakEvenError
	require.True(t, errors.As(err, &beErr))
	assert.Equal(t, "validate_request", beErr.Operation)

	_, err = s.Solve(ctx, request("ae", 100, -1))
	assert.ErrorContains(t, err, "expenses cannot be negative")

	_, err = s.Solve(ctx, request("zz", 100, 0))
	assert.True(t, errors.Is(err, domain.ErrUnknownJurisdiction))

	req := request("ae", 100, 0)
	req.Currency = "XYZ"
	_, err = s.Solve(ctx, req)
	assert.True(t, errors.Is(err, domain.ErrUnknownCurrency))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Solve(cancelled, request("ae", 100, 0))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSolve_IterationLimit(t *testing.T) {
	req := request("in", 1000000, 0)
	req.MaxIterations = 2
	req.Tolerance = decimal.RequireFromString("0.000001")

	res, err := newTestSolver(t).Solve(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
	assert.Contains(t, res.ConvergenceInfo, "Max iterations (2)")
	assert.True(t, res.NetProfit.GreaterThanOrEqual(req.TargetNet))
}

func TestSolveAll(t *testing.T) {
	results, err := newTestSolver(t).SolveAll(context.Background(), request("", 500000, 100000))
	require.NoError(t, err)
	require.Len(t, results, 7)

	seen := map[string]bool{}
	for i, r := range results {
		seen[r.JurisdictionID] = true
		if i > 0 {
			assert.True(t, results[i-1].Revenue.LessThanOrEqual(r.Revenue))
		}
	}
	assert.Len(t, seen, 7)
}

func TestFormatters(t *testing.T) {
	req := request("", 500000, 100000)
	results, err := newTestSolver(t).SolveAll(context.Background(), req)
	require.NoError(t, err)

	table := (&TableFormatter{}).Format(req, results)
	assert.Contains(t, table, "BREAK-EVEN REVENUE")
	assert.Contains(t, table, "USD 500,000")
	assert.Contains(t, table, "Cambodia")

	out, err := (&JSONFormatter{}).Format(req, results)
	require.NoError(t, err)
	assert.Contains(t, out, `"results"`)
	assert.Contains(t, out, `"targetNet": "500000"`)
}

func TestBreakEvenError(t *testing.T) {
	cause := errors.New("boom")
	err := &BreakEvenError{Operation: "solve", Message: "failed", Cause: cause}

	assert.Equal(t, "solve: failed: boom", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "solve: failed", (&BreakEvenError{Operation: "solve", Message: "failed"}).Error())
}
