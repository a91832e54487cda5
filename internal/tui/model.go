package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxcmp/internal/compare"
	"github.com/rgehrsitz/taxcmp/internal/domain"
)

const (
	fieldRevenue = iota
	fieldExpenses
	fieldCount
)

// Model represents the entire application state
type Model struct {
	currentScene Scene

	// Terminal dimensions
	width  int
	height int

	engine *compare.Engine

	// Scenario inputs
	inputs     [fieldCount]textinput.Model
	focus      int
	currencies []domain.CurrencyCode
	currency   int
	entity     domain.EntityType

	// Results; seq increases on every recalculation so late replies are dropped
	seq        int
	results    *compare.ComparisonSet
	selected   int
	detailID   string
	evaluation *compare.Evaluation

	inputErr error
	err      error
}

// NewModel creates a new application model seeded with a scenario
func NewModel(engine *compare.Engine, initial compare.Scenario) Model {
	m := Model{
		currentScene: SceneCompare,
		engine:       engine,
		currencies:   currencyChoices(initial.Currency),
		entity:       initial.EntityType,
		width:        100,
		height:       30,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 20
		ti.Width = 20
		m.inputs[i] = ti
	}
	m.inputs[fieldRevenue].Placeholder = "revenue"
	m.inputs[fieldExpenses].Placeholder = "expenses"
	m.inputs[fieldRevenue].SetValue(initial.Revenue.String())
	m.inputs[fieldExpenses].SetValue(initial.Expenses.String())
	m.inputs[fieldRevenue].Focus()

	return m
}

// currencyChoices lists the investment currencies with the initial one first
func currencyChoices(initial domain.CurrencyCode) []domain.CurrencyCode {
	choices := []domain.CurrencyCode{}
	if initial.Known() {
		choices = append(choices, initial)
	}
	for _, c := range domain.InvestmentCurrencies {
		if c != initial {
			choices = append(choices, c)
		}
	}
	return choices
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.compareCmd())
}

// Scenario returns the scenario described by the current inputs. Invalid
// amounts are reported and treated as zero.
func (m Model) Scenario() (compare.Scenario, error) {
	revenue, err := parseAmount(m.inputs[fieldRevenue].Value())
	if err != nil {
		return compare.Scenario{}, err
	}
	expenses, err := parseAmount(m.inputs[fieldExpenses].Value())
	if err != nil {
		return compare.Scenario{}, err
	}
	return compare.Scenario{
		Revenue:    revenue,
		Expenses:   expenses,
		Currency:   m.currencies[m.currency],
		EntityType: m.entity,
	}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// compareCmd runs the comparison for the current inputs off the UI loop
func (m Model) compareCmd() tea.Cmd {
	scenario, err := m.Scenario()
	if err != nil {
		return nil
	}
	engine, seq := m.engine, m.seq
	return func() tea.Msg {
		set, err := engine.Compare(context.Background(), scenario)
		return ComparisonCompleteMsg{Seq: seq, Set: set, Err: err}
	}
}

// evaluateCmd evaluates the jurisdiction shown in the detail scene
func (m Model) evaluateCmd() tea.Cmd {
	if m.detailID == "" {
		return nil
	}
	scenario, err := m.Scenario()
	if err != nil {
		return nil
	}
	engine, seq, id := m.engine, m.seq, m.detailID
	return func() tea.Msg {
		ev, err := engine.Evaluate(context.Background(), scenario, id)
		return EvaluationCompleteMsg{Seq: seq, Evaluation: ev, Err: err}
	}
}

// CurrentScene returns the active scene
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// Results returns the latest comparison, or nil before the first completes
func (m Model) Results() *compare.ComparisonSet {
	return m.results
}
