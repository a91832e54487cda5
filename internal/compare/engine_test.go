package compare

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/rgehrsitz/taxcmp/internal/config"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/rgehrsitz/taxcmp/internal/jurisdiction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	ref, err := config.NewInputParser().LoadDefault()
	require.NoError(t, err)
	engine, err := NewEngineFromReference(ref)
	require.NoError(t, err)
	return engine
}

func scenario(revenue, expenses int64, code domain.CurrencyCode, entity domain.EntityType) Scenario {
	return Scenario{
		Revenue:    decimal.NewFromInt(revenue),
		Expenses:   decimal.NewFromInt(expenses),
		Currency:   code,
		EntityType: entity,
	}
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

type recordingLogger struct {
	mu     sync.Mutex
	debugs int
	errors []string
}

func (l *recordingLogger) Debugf(string, ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugs++
}
func (l *recordingLogger) Infof(string, ...any) {}
func (l *recordingLogger) Warnf(string, ...any) {}
func (l *recordingLogger) Errorf(format string, _ ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, format)
}

func TestEngine_Compare_OrderedByNetProfit(t *testing.T) {
	engine := newTestEngine(t)

	for _, entity := range domain.EntityTypes {
		t.Run(entity.String(), func(t *testing.T) {
			set, err := engine.Compare(context.Background(), scenario(1000000, 600000, domain.USD, entity))
			require.NoError(t, err)
			require.Len(t, set.Rows, 7)

			for i := 1; i < len(set.Rows); i++ {
				assert.True(t, set.Rows[i-1].NetProfit.GreaterThanOrEqual(set.Rows[i].NetProfit),
					"row %d (%s) ranked above row %d (%s)", i-1, set.Rows[i-1].JurisdictionID, i, set.Rows[i].JurisdictionID)
			}

			best, ok := set.Best()
			require.True(t, ok)
			assert.Equal(t, set.Rows[0], best)
		})
	}
}

func TestEngine_Compare_StableTies(t *testing.T) {
	engine := newTestEngine(t)

	set, err := engine.Compare(context.Background(), scenario(0, 0, domain.EUR, domain.Corporate))
	require.NoError(t, err)

	ids := make([]string, 0, len(set.Rows))
	for _, r := range set.Rows {
		ids = append(ids, r.JurisdictionID)
		assert.True(t, r.NetProfit.IsZero())
	}
	assert.Equal(t, jurisdiction.IDs(), ids)
}

func TestEngine_Compare_StableTiesInLocalCurrency(t *testing.T) {
	engine := newTestEngine(t)
	// No tax is due on these tiny sole proprietor incomes
	untaxed := []string{"ae", "in", "pk", "bd", "kh"}

	for _, cur := range []domain.CurrencyCode{domain.KHR, domain.AED, domain.INR, domain.PKR, domain.BDT, domain.EUR} {
		for rev := int64(1); rev <= 400; rev += 7 {
			set, err := engine.Compare(context.Background(), scenario(rev, 0, cur, domain.SoleProprietor))
			require.NoError(t, err)

			var ids []string
			for _, r := range set.Rows {
				if slices.Contains(untaxed, r.JurisdictionID) {
					ids = append(ids, r.JurisdictionID)
					assert.True(t, decimal.NewFromInt(rev).Equal(r.NetProfit),
						"%s %d %s: net %s", cur, rev, r.JurisdictionID, r.NetProfit)
				}
			}
			assert.Equal(t, untaxed, ids, "%s %d", cur, rev)
		}
	}

	set, err := engine.Compare(context.Background(), scenario(358, 0, domain.KHR, domain.SoleProprietor))
	require.NoError(t, err)
	top := make([]string, 0, len(untaxed))
	for _, r := range set.Rows[:len(untaxed)] {
		top = append(top, r.JurisdictionID)
	}
	assert.Equal(t, untaxed, top)
}

func TestEngine_Compare_EveryJurisdictionOnce(t *testing.T) {
	engine := newTestEngine(t)

	set, err := engine.Compare(context.Background(), scenario(250000, 100000, domain.GBP, domain.SoleProprietor))
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, r := range set.Rows {
		assert.False(t, seen[r.JurisdictionID], "duplicate %s", r.JurisdictionID)
		seen[r.JurisdictionID] = true
		assert.True(t, r.NetProfit.Equal(r.Profit.Sub(r.Tax)) || r.NetProfit.Sub(r.Profit.Sub(r.Tax)).Abs().LessThan(decimal.New(1, -6)))
	}
	assert.Len(t, seen, 7)
	assert.Equal(t, domain.GBP, set.Scenario.Currency)
}

func TestEngine_Compare_UnknownCurrency(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.Compare(context.Background(), scenario(1000, 0, "XYZ", domain.Corporate))
	assert.True(t, errors.Is(err, domain.ErrUnknownCurrency))
}

func TestEngine_Compare_UnknownEntity(t *testing.T) {
	engine := newTestEngine(t)
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	_, err := engine.Compare(context.Background(), scenario(1000, 0, domain.USD, domain.EntityType(9)))
	assert.True(t, errors.Is(err, domain.ErrUnknownEntityType))
	assert.Len(t, logger.errors, 1)
}

func TestEngine_Compare_Cancelled(t *testing.T) {
	engine := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Compare(ctx, scenario(1000, 0, domain.USD, domain.Corporate))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestEngine_Evaluate_LocalCurrencyInput(t *testing.T) {
	engine := newTestEngine(t)

	ev, err := engine.Evaluate(context.Background(), scenario(10000000, 6000000, domain.INR, domain.Corporate), "in")
	require.NoError(t, err)

	assertAmount(t, "1040000", ev.Tax)
	assertAmount(t, "1040000", ev.Local.TotalTax)
	assertAmount(t, "26", ev.EffectiveRate)
	assertAmount(t, "4000000", ev.Profit)
	assertAmount(t, "2960000", ev.NetProfit)
	assert.Equal(t, domain.INR, ev.LocalCurrency)
	assert.Equal(t, "India", ev.Country)
}

func TestEngine_Evaluate_ConvertsBothWays(t *testing.T) {
	engine := newTestEngine(t)

	ev, err := engine.Evaluate(context.Background(), scenario(1000000, 600000, domain.USD, domain.Corporate), "in")
	require.NoError(t, err)

	assertAmount(t, "83500000", ev.LocalRevenue)
	assertAmount(t, "50100000", ev.LocalExpenses)
	assertAmount(t, "33400000", ev.LocalProfit)
	// 8,350,000 base, 7% surcharge and 4% cess
	assertAmount(t, "9291880", ev.Local.TotalTax)
	assertAmount(t, "111280", ev.Tax)
	assertAmount(t, "400000", ev.Profit)
}

func TestEngine_Evaluate_ClampsNegativeInputs(t *testing.T) {
	engine := newTestEngine(t)

	ev, err := engine.Evaluate(context.Background(), scenario(-5000, -100, domain.USD, domain.Corporate), "kh")
	require.NoError(t, err)

	assert.True(t, ev.LocalRevenue.IsZero())
	assert.True(t, ev.LocalExpenses.IsZero())
	assert.True(t, ev.Tax.IsZero())
	assert.True(t, ev.EffectiveRate.IsZero())
}

func TestEngine_Evaluate_Errors(t *testing.T) {
	engine := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Evaluate(ctx, scenario(1, 0, domain.USD, domain.Corporate), "atlantis")
	assert.True(t, errors.Is(err, domain.ErrUnknownJurisdiction))

	_, err = engine.Evaluate(ctx, scenario(1, 0, "ZZZ", domain.Corporate), "ae")
	assert.True(t, errors.Is(err, domain.ErrUnknownCurrency))

	_, err = engine.Evaluate(ctx, scenario(1, 0, domain.USD, domain.EntityType(-1)), "ae")
	assert.True(t, errors.Is(err, domain.ErrUnknownEntityType))
}

func TestEngine_SetLogger(t *testing.T) {
	engine := newTestEngine(t)
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	_, err := engine.Compare(context.Background(), scenario(1000, 0, domain.USD, domain.Corporate))
	require.NoError(t, err)
	assert.Greater(t, logger.debugs, 7)

	engine.SetLogger(nil)
	_, err = engine.Compare(context.Background(), scenario(1000, 0, domain.USD, domain.Corporate))
	assert.NoError(t, err)
}

func TestNewEngineFromReference_MissingRate(t *testing.T) {
	ref, err := config.NewInputParser().LoadDefault()
	require.NoError(t, err)
	delete(ref.ExchangeRates, domain.KHR)

	_, err = NewEngineFromReference(ref)
	assert.True(t, errors.Is(err, domain.ErrUnknownCurrency))
}
