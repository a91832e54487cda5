package compare

import (
	"context"
	"fmt"
	"sort"

	"github.com/rgehrsitz/taxcmp/internal/calculation"
	"github.com/rgehrsitz/taxcmp/internal/currency"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/rgehrsitz/taxcmp/internal/jurisdiction"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ReportScale is the number of decimal places kept on amounts converted back
// into the scenario currency. Equal outcomes compare as exact ties at this scale.
const ReportScale = 8

// Logger is the minimal logging surface the engine uses
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// Engine runs scenarios through the jurisdiction registry, normalizing
// currencies on the way in and out
type Engine struct {
	Registry  *jurisdiction.Registry
	Converter *currency.Converter
	logger    Logger
}

// NewEngine creates a comparison engine
func NewEngine(registry *jurisdiction.Registry, converter *currency.Converter) *Engine {
	return &Engine{
		Registry:  registry,
		Converter: converter,
		logger:    nopLogger{},
	}
}

// NewEngineFromReference builds the registry and converter from reference data
func NewEngineFromReference(ref *domain.ReferenceData) (*Engine, error) {
	registry, err := jurisdiction.NewRegistry(ref.Profiles())
	if err != nil {
		return nil, err
	}
	converter, err := currency.NewConverter(ref.ExchangeRates)
	if err != nil {
		return nil, err
	}
	for _, j := range registry.All() {
		if !converter.Supports(j.Profile.CurrencyCode) {
			return nil, fmt.Errorf("jurisdiction %q: %w: no rate for %s", j.ID(), domain.ErrUnknownCurrency, j.Profile.CurrencyCode)
		}
	}
	return NewEngine(registry, converter), nil
}

// SetLogger replaces the engine logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	e.logger = l
}

// Compare evaluates the scenario in every jurisdiction and ranks the
// results by net profit, highest first. Ties keep registry order.
func (e *Engine) Compare(ctx context.Context, scenario Scenario) (*ComparisonSet, error) {
	if !e.Converter.Supports(scenario.Currency) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, scenario.Currency)
	}

	all := e.Registry.All()
	rows := make([]Row, len(all))

	g, gctx := errgroup.WithContext(ctx)
	for i, j := range all {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			eval, err := e.evaluate(scenario, j)
			if err != nil {
				return fmt.Errorf("jurisdiction %s: %w", j.ID(), err)
			}
			rows[i] = eval.Row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Errorf("comparison failed: %v", err)
		return nil, err
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].NetProfit.GreaterThan(rows[b].NetProfit)
	})

	e.logger.Debugf("compared %d jurisdictions for %s %s revenue=%s expenses=%s",
		len(rows), scenario.EntityType, scenario.Currency, scenario.Revenue, scenario.Expenses)

	return &ComparisonSet{Scenario: scenario, Rows: rows}, nil
}

// Evaluate runs the scenario in one jurisdiction
func (e *Engine) Evaluate(ctx context.Context, scenario Scenario, jurisdictionID string) (*Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	j, err := e.Registry.Lookup(jurisdictionID)
	if err != nil {
		return nil, err
	}
	if !e.Converter.Supports(scenario.Currency) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, scenario.Currency)
	}
	return e.evaluate(scenario, j)
}

// evaluate converts the scenario into local currency, applies the rule
// module and converts the outcome back
func (e *Engine) evaluate(scenario Scenario, j jurisdiction.Jurisdiction) (*Evaluation, error) {
	local := j.Profile.CurrencyCode
	toLocal := func(v decimal.Decimal) (decimal.Decimal, error) {
		return e.Converter.Convert(v, scenario.Currency, local)
	}
	toInput := func(v decimal.Decimal) (decimal.Decimal, error) {
		out, err := e.Converter.Convert(v, local, scenario.Currency)
		return out.Round(ReportScale), err
	}

	revenue, err := toLocal(calculation.NonNegative(scenario.Revenue))
	if err != nil {
		return nil, err
	}
	expenses, err := toLocal(calculation.NonNegative(scenario.Expenses))
	if err != nil {
		return nil, err
	}

	result, err := jurisdiction.Calculate(j.Calculator, scenario.EntityType, revenue, expenses)
	if err != nil {
		return nil, err
	}

	localProfit := calculation.Profit(revenue, expenses)
	localNet := localProfit.Sub(result.TotalTax)

	tax, err := toInput(result.TotalTax)
	if err != nil {
		return nil, err
	}
	net, err := toInput(localNet)
	if err != nil {
		return nil, err
	}
	profit, err := toInput(localProfit)
	if err != nil {
		return nil, err
	}

	e.logger.Debugf("%s %s: local profit=%s tax=%s %s", j.ID(), scenario.EntityType, localProfit, result.TotalTax, local)

	return &Evaluation{
		Row: Row{
			JurisdictionID: j.ID(),
			Country:        j.Profile.Country,
			LocalCurrency:  local,
			Profit:         profit,
			Tax:            tax,
			NetProfit:      net,
			EffectiveRate:  result.EffectiveRate,
		},
		Scenario:      scenario,
		LocalRevenue:  revenue,
		LocalExpenses: expenses,
		LocalProfit:   localProfit,
		LocalNet:      localNet,
		Local:         result,
	}, nil
}
