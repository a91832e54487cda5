package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rgehrsitz/taxcmp/internal/compare"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch m.currentScene {
	case SceneCompare:
		content = m.renderCompare()
	case SceneDetail:
		content = m.renderDetail()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		m.renderInputs(),
		content,
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("TAXCMP - Jurisdiction Comparison")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, SubtitleStyle.Render(m.currentScene.String())) + "\n"
}

func (m Model) renderInputs() string {
	var sb strings.Builder
	sb.WriteString(LabelStyle.Render("Revenue") + m.inputs[fieldRevenue].View() + "\n")
	sb.WriteString(LabelStyle.Render("Expenses") + m.inputs[fieldExpenses].View() + "\n")
	sb.WriteString(LabelStyle.Render("Currency") + ValueStyle.Render(string(m.currencies[m.currency])) + "\n")
	sb.WriteString(LabelStyle.Render("Entity") + ValueStyle.Render(m.entity.Label()) + "\n")
	if m.inputErr != nil {
		sb.WriteString(ErrorStyle.Render("Invalid amount: "+m.inputErr.Error()) + "\n")
	}
	return sb.String()
}

func (m Model) renderCompare() string {
	if m.err != nil {
		return ErrorStyle.Render("Error: " + m.err.Error())
	}
	if m.results == nil {
		return NoteStyle.Render("Calculating...")
	}

	code := string(m.results.Scenario.Currency)
	rows := make([][]string, 0, len(m.results.Rows))
	for i, r := range m.results.Rows {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Country,
			compare.FormatMoney(r.Tax, code),
			compare.FormatMoney(r.NetProfit, code),
			compare.FormatRate(r.EffectiveRate),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers("#", "Jurisdiction", "Tax", "Net Profit", "Eff. Rate").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case row == m.selected:
				return TableSelectedStyle
			case row == 0:
				return TableHighlightStyle
			default:
				return TableCellStyle
			}
		})
	return t.Render()
}

func (m Model) renderDetail() string {
	if m.err != nil {
		return ErrorStyle.Render("Error: " + m.err.Error())
	}
	if m.evaluation == nil {
		return NoteStyle.Render("Calculating...")
	}

	ev := m.evaluation
	local := string(ev.LocalCurrency)
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(ev.Country) + "\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", LabelStyle.Render("Profit"), compare.FormatMoney(ev.LocalProfit, local)))
	for _, d := range ev.Local.Breakdown {
		line := fmt.Sprintf("  %-34s %s", d.Label, compare.FormatMoney(d.Amount, local))
		if d.Note != "" {
			line += "  " + NoteStyle.Render(d.Note)
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString(fmt.Sprintf("%s %s (%s)\n", LabelStyle.Render("Total Tax"),
		compare.FormatMoney(ev.Local.TotalTax, local), compare.FormatMoney(ev.Tax, string(ev.Scenario.Currency))))
	sb.WriteString(fmt.Sprintf("%s %s\n", LabelStyle.Render("Eff. Rate"), compare.FormatRate(ev.EffectiveRate)))
	return sb.String()
}

func (m Model) renderHelp() string {
	keys := [][2]string{
		{"tab", "switch between revenue and expenses"},
		{"ctrl+r", "cycle input currency"},
		{"ctrl+e", "cycle entity type"},
		{"up/down", "select jurisdiction"},
		{"enter", "show tax breakdown"},
		{"esc", "back / quit"},
		{"?", "toggle help"},
	}
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", StatusKeyStyle.Width(8).Render(k[0]), k[1]))
	}
	return sb.String()
}

func (m Model) renderStatusBar() string {
	return StatusBarStyle.Render(fmt.Sprintf("%s currency  %s entity  %s details  %s help  %s quit",
		StatusKeyStyle.Render("ctrl+r"),
		StatusKeyStyle.Render("ctrl+e"),
		StatusKeyStyle.Render("enter"),
		StatusKeyStyle.Render("?"),
		StatusKeyStyle.Render("esc"),
	))
}
