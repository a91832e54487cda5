package compare

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("#10B981")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a ranked table of jurisdictions
func (tf *TableFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	s := compSet.Scenario

	sb.WriteString(titleStyle.Render("JURISDICTION COMPARISON") + "\n")
	sb.WriteString(fmt.Sprintf("Entity: %s | Revenue: %s | Expenses: %s\n\n",
		s.EntityType.Label(), FormatMoney(s.Revenue, string(s.Currency)), FormatMoney(s.Expenses, string(s.Currency))))

	rows := make([][]string, 0, len(compSet.Rows))
	for i, r := range compSet.Rows {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Country,
			string(r.LocalCurrency),
			FormatMoney(r.Profit, string(s.Currency)),
			FormatMoney(r.Tax, string(s.Currency)),
			FormatMoney(r.NetProfit, string(s.Currency)),
			FormatRate(r.EffectiveRate),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Jurisdiction", "Local", "Profit", "Tax", "Net Profit", "Eff. Rate").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == 0:
				return bestStyle
			default:
				return cellStyle
			}
		})
	sb.WriteString(t.Render() + "\n")

	if best, ok := compSet.Best(); ok {
		sb.WriteString(fmt.Sprintf("\nHighest net profit: %s (%s)\n", best.Country, FormatMoney(best.NetProfit, string(s.Currency))))
	}
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("Values computed in local currency and converted to %s.", s.Currency)) + "\n")

	return sb.String(), nil
}

// FormatEvaluation renders one jurisdiction with its local breakdown
func (tf *TableFormatter) FormatEvaluation(ev *Evaluation) (string, error) {
	var sb strings.Builder
	in := string(ev.Scenario.Currency)
	local := string(ev.LocalCurrency)

	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s - %s", strings.ToUpper(ev.Country), ev.Scenario.EntityType.Label())) + "\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("  Revenue:         %s\n", FormatMoney(ev.LocalRevenue, local)))
	sb.WriteString(fmt.Sprintf("  Expenses:        %s\n", FormatMoney(ev.LocalExpenses, local)))
	sb.WriteString(fmt.Sprintf("  Profit:          %s\n", FormatMoney(ev.LocalProfit, local)))
	sb.WriteString("\nBREAKDOWN\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, d := range ev.Local.Breakdown {
		line := fmt.Sprintf("  %-34s %s", d.Label, FormatMoney(d.Amount, local))
		if d.Note != "" {
			line += "  " + mutedStyle.Render(d.Note)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("  Total Tax:       %s (%s)\n", FormatMoney(ev.Local.TotalTax, local), FormatMoney(ev.Tax, in)))
	sb.WriteString(fmt.Sprintf("  Net Profit:      %s (%s)\n", FormatMoney(ev.LocalNet, local), FormatMoney(ev.NetProfit, in)))
	sb.WriteString(fmt.Sprintf("  Effective Rate:  %s\n", FormatRate(ev.EffectiveRate)))
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("*Calculated in local %s and converted back to %s.", local, in)) + "\n")

	return sb.String(), nil
}

var printer = message.NewPrinter(language.English)

// FormatMoney renders an amount with thousands grouping and no fraction
func FormatMoney(d decimal.Decimal, code string) string {
	return printer.Sprintf("%s %d", code, d.Round(0).IntPart())
}

// FormatRate renders a percentage with two decimals
func FormatRate(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
