package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ComparisonCompleteMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.err = msg.Err
		if msg.Err == nil {
			m.results = msg.Set
			if m.selected >= len(msg.Set.Rows) {
				m.selected = 0
			}
		}
		if m.currentScene == SceneDetail {
			return m, m.evaluateCmd()
		}
		return m, nil

	case EvaluationCompleteMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.err = msg.Err
		if msg.Err == nil {
			m.evaluation = msg.Evaluation
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.currentScene != SceneCompare {
			m.currentScene = SceneCompare
			return m, nil
		}
		return m, tea.Quit

	case "?":
		if m.currentScene == SceneHelp {
			m.currentScene = SceneCompare
		} else {
			m.currentScene = SceneHelp
		}
		return m, nil

	case "tab":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % fieldCount
		return m, m.inputs[m.focus].Focus()

	case "shift+tab":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m, m.inputs[m.focus].Focus()

	case "ctrl+e":
		m.entity = m.entity.Next()
		return m.recalculate()

	case "ctrl+r":
		m.currency = (m.currency + 1) % len(m.currencies)
		return m.recalculate()

	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case "down":
		if m.results != nil && m.selected < len(m.results.Rows)-1 {
			m.selected++
		}
		return m, nil

	case "enter":
		if m.results == nil || len(m.results.Rows) == 0 {
			return m, nil
		}
		m.currentScene = SceneDetail
		m.detailID = m.results.Rows[m.selected].JurisdictionID
		m.evaluation = nil
		return m, m.evaluateCmd()
	}

	return m.updateInputs(msg)
}

// updateInputs forwards msg to the focused input and recalculates when its
// value changed
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() == before {
		return m, cmd
	}

	next, recalc := m.recalculate()
	return next, tea.Batch(cmd, recalc)
}

// recalculate validates the inputs and starts a new comparison
func (m Model) recalculate() (tea.Model, tea.Cmd) {
	m.seq++
	if _, err := m.Scenario(); err != nil {
		m.inputErr = err
		return m, nil
	}
	m.inputErr = nil
	return m, m.compareCmd()
}
