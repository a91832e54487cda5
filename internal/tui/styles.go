package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorSuccess = lipgloss.Color("#10B981")
	ColorDanger  = lipgloss.Color("#EF4444")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorBorder  = lipgloss.Color("#374151")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Width(12).
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().Bold(true)

	TableHeaderStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	TableCellStyle      = lipgloss.NewStyle().Padding(0, 1)
	TableHighlightStyle = TableCellStyle.Foreground(ColorSuccess).Bold(true)
	TableSelectedStyle  = TableCellStyle.Reverse(true)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	NoteStyle  = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)
