package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/taxcmp/internal/compare"
)

// TableFormatter formats break-even results as a console table
type TableFormatter struct{}

// Format renders the required revenue per jurisdiction
func (tf *TableFormatter) Format(req Request, results []Result) string {
	var sb strings.Builder
	code := string(req.Currency)

	sb.WriteString("BREAK-EVEN REVENUE\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Target Net Profit: %s\n", compare.FormatMoney(req.TargetNet, code)))
	sb.WriteString(fmt.Sprintf("Expenses:          %s\n", compare.FormatMoney(req.Expenses, code)))
	sb.WriteString(fmt.Sprintf("Entity:            %s\n\n", req.EntityType.Label()))

	sb.WriteString(fmt.Sprintf("%-22s %18s %16s %10s  %s\n", "Jurisdiction", "Required Revenue", "Tax", "Eff. Rate", "Status"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("%-22s %18s %16s %10s  %s\n",
			r.Country,
			compare.FormatMoney(r.Revenue, code),
			compare.FormatMoney(r.Tax, code),
			compare.FormatRate(r.EffectiveRate),
			tf.formatStatus(r.Converged),
		))
	}
	return sb.String()
}

func (tf *TableFormatter) formatStatus(converged bool) string {
	if converged {
		return "converged"
	}
	return "approximate"
}

// JSONFormatter formats break-even results as JSON
type JSONFormatter struct{}

// Format generates indented JSON for the request and its results
func (jf *JSONFormatter) Format(req Request, results []Result) (string, error) {
	data, err := json.MarshalIndent(struct {
		Request Request  `json:"request"`
		Results []Result `json:"results"`
	}{req, results}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
