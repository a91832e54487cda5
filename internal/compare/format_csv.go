package compare

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	header := []string{
		"Rank",
		"Jurisdiction",
		"Country",
		"Local Currency",
		"Currency",
		"Profit",
		"Tax",
		"Net Profit",
		"Effective Rate",
	}

	records := make([][]string, 0, len(compSet.Rows))
	for i, r := range compSet.Rows {
		records = append(records, []string{
			fmt.Sprintf("%d", i+1),
			r.JurisdictionID,
			r.Country,
			string(r.LocalCurrency),
			string(compSet.Scenario.Currency),
			r.Profit.StringFixed(2),
			r.Tax.StringFixed(2),
			r.NetProfit.StringFixed(2),
			r.EffectiveRate.StringFixed(2),
		})
	}
	return writeCSV(header, records)
}

// FormatEvaluation writes the local breakdown followed by totals
func (cf *CSVFormatter) FormatEvaluation(ev *Evaluation) (string, error) {
	header := []string{"Component", "Amount", "Currency", "Note"}
	local := string(ev.LocalCurrency)

	records := make([][]string, 0, len(ev.Local.Breakdown)+3)
	for _, d := range ev.Local.Breakdown {
		records = append(records, []string{d.Label, d.Amount.StringFixed(2), local, d.Note})
	}
	records = append(records,
		[]string{"Total Tax", ev.Local.TotalTax.StringFixed(2), local, ""},
		[]string{"Total Tax", ev.Tax.StringFixed(2), string(ev.Scenario.Currency), ""},
		[]string{"Net Profit", ev.NetProfit.StringFixed(2), string(ev.Scenario.Currency), ""},
	)
	return writeCSV(header, records)
}

func writeCSV(header []string, records [][]string) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if err := writer.Write(header); err != nil {
		return "", err
	}
	for _, rec := range records {
		if err := writer.Write(rec); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
