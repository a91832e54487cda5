package jurisdiction

import (
	"testing"

	"github.com/rgehrsitz/taxcmp/internal/config"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultProfiles(t *testing.T) map[string]domain.JurisdictionProfile {
	t.Helper()
	ref, err := config.NewInputParser().LoadDefault()
	require.NoError(t, err)
	return ref.Profiles()
}

func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(defaultProfiles(t))
	require.NoError(t, err)
	return r
}

func calculator(t *testing.T, id string) Calculator {
	t.Helper()
	j, err := defaultRegistry(t).Lookup(id)
	require.NoError(t, err)
	return j.Calculator
}

func dec(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func assertAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func labels(r domain.TaxResult) []string {
	out := make([]string, len(r.Breakdown))
	for i, d := range r.Breakdown {
		out[i] = d.Label
	}
	return out
}
