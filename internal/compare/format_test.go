package compare

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet(t *testing.T) *ComparisonSet {
	t.Helper()
	set, err := newTestEngine(t).Compare(context.Background(), scenario(1000000, 600000, domain.USD, domain.Corporate))
	require.NoError(t, err)
	return set
}

func sampleEvaluation(t *testing.T) *Evaluation {
	t.Helper()
	ev, err := newTestEngine(t).Evaluate(context.Background(), scenario(10000000, 6000000, domain.INR, domain.Corporate), "in")
	require.NoError(t, err)
	return ev
}

func TestGetFormatterByName(t *testing.T) {
	assert.IsType(t, &TableFormatter{}, GetFormatterByName("table"))
	assert.IsType(t, &TableFormatter{}, GetFormatterByName("Console"))
	assert.IsType(t, &CSVFormatter{}, GetFormatterByName("csv"))
	assert.Equal(t, &JSONFormatter{Pretty: true}, GetFormatterByName("json"))
	assert.Equal(t, &JSONFormatter{}, GetFormatterByName("json-compact"))
	assert.IsType(t, &HTMLFormatter{}, GetFormatterByName("HTML"))
	assert.Nil(t, GetFormatterByName("xml"))
}

func TestTableFormatter_Format(t *testing.T) {
	out, err := (&TableFormatter{}).Format(sampleSet(t))
	require.NoError(t, err)

	assert.Contains(t, out, "JURISDICTION COMPARISON")
	assert.Contains(t, out, "USD 1,000,000")
	for _, country := range []string{"United Arab Emirates", "India", "Pakistan", "China", "Vietnam", "Bangladesh", "Cambodia"} {
		assert.Contains(t, out, country)
	}
	assert.Contains(t, out, "Highest net profit:")
}

func TestTableFormatter_FormatEvaluation(t *testing.T) {
	out, err := (&TableFormatter{}).FormatEvaluation(sampleEvaluation(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Base CIT (25%)")
	assert.Contains(t, out, "Health & Edu Cess (4%)")
	assert.Contains(t, out, "INR 1,040,000")
	assert.Contains(t, out, "26.00%")
}

func TestJSONFormatter(t *testing.T) {
	set := sampleSet(t)

	out, err := (&JSONFormatter{}).Format(set)
	require.NoError(t, err)
	assert.False(t, strings.Contains(strings.TrimSpace(out), "\n"), "compact output is a single line")

	var decoded ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Rows, len(set.Rows))
	assert.Equal(t, set.Rows[0].JurisdictionID, decoded.Rows[0].JurisdictionID)
	assert.True(t, set.Rows[0].NetProfit.Equal(decoded.Rows[0].NetProfit))
	assert.Equal(t, domain.Corporate, decoded.Scenario.EntityType)

	pretty, err := (&JSONFormatter{Pretty: true}).FormatEvaluation(sampleEvaluation(t))
	require.NoError(t, err)
	assert.Contains(t, pretty, `"jurisdictionId": "in"`)
	assert.Contains(t, pretty, `"entityType": "corporate"`)
	assert.Contains(t, pretty, `"breakdown"`)
}

func TestCSVFormatter(t *testing.T) {
	set := sampleSet(t)

	out, err := (&CSVFormatter{}).Format(set)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(set.Rows)+1)
	assert.Equal(t, "Rank", records[0][0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, set.Rows[0].JurisdictionID, records[1][1])
	assert.Equal(t, set.Rows[0].Tax.StringFixed(2), records[1][6])

	out, err = (&CSVFormatter{}).FormatEvaluation(sampleEvaluation(t))
	require.NoError(t, err)
	records, err = csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Base CIT (25%)", "1000000.00", "INR", ""}, records[1])
	assert.Equal(t, []string{"Total Tax", "1040000.00", "INR", ""}, records[4])
}

func TestHTMLFormatter(t *testing.T) {
	set := sampleSet(t)
	out, err := (&HTMLFormatter{}).Format(set)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<h1>Jurisdiction Comparison</h1>")
	assert.Contains(t, out, "Revenue: USD 1,000,000")
	assert.Equal(t, 8, strings.Count(out, "<tr"))
	assert.Equal(t, 1, strings.Count(out, `class="best"`))
	for _, r := range set.Rows {
		assert.Contains(t, out, "<td>"+r.Country+"</td>")
	}

	out, err = (&HTMLFormatter{}).FormatEvaluation(sampleEvaluation(t))
	require.NoError(t, err)
	assert.Contains(t, out, "<td>Base CIT (25%)</td>")
	assert.Contains(t, out, "INR 1,040,000")
	assert.Contains(t, out, "26.00%")
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "USD 1,234,568", FormatMoney(decimal.RequireFromString("1234567.89"), "USD"))
	assert.Equal(t, "VND 0", FormatMoney(decimal.Zero, "VND"))
	assert.Equal(t, "12.35%", FormatRate(decimal.RequireFromString("12.345")))
}
