package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	flag "github.com/spf13/pflag"

	"github.com/rgehrsitz/taxcmp/internal/compare"
	"github.com/rgehrsitz/taxcmp/internal/config"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/rgehrsitz/taxcmp/internal/tui"
)

func main() {
	dataFile := flag.String("data", "", "reference data file (default: embedded data)")
	revenue := flag.StringP("revenue", "r", "1000000", "initial revenue")
	expenses := flag.StringP("expenses", "x", "600000", "initial expenses")
	currency := flag.StringP("currency", "c", "", "initial input currency (default from settings)")
	entity := flag.StringP("entity", "e", "", "initial entity type (default from settings)")
	flag.Parse()

	settings, err := config.LoadSettings(config.NewViper(), "")
	if err != nil {
		fail(err)
	}
	if *dataFile == "" {
		*dataFile = settings.DataFile
	}
	if *currency == "" {
		*currency = settings.DefaultCurrency
	}
	if *entity == "" {
		*entity = settings.EntityType
	}

	ref, err := config.NewInputParser().Load(*dataFile)
	if err != nil {
		fail(err)
	}
	engine, err := compare.NewEngineFromReference(ref)
	if err != nil {
		fail(err)
	}

	scenario := compare.Scenario{}
	if scenario.Revenue, err = decimal.NewFromString(*revenue); err != nil {
		fail(fmt.Errorf("invalid revenue: %w", err))
	}
	if scenario.Expenses, err = decimal.NewFromString(*expenses); err != nil {
		fail(fmt.Errorf("invalid expenses: %w", err))
	}
	if scenario.Currency, err = domain.ParseCurrencyCode(*currency); err != nil {
		fail(err)
	}
	if scenario.EntityType, err = domain.ParseEntityType(*entity); err != nil {
		fail(err)
	}

	p := tea.NewProgram(tui.NewModel(engine, scenario), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
