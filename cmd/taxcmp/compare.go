package main

import (
	"fmt"

	"github.com/rgehrsitz/taxcmp/internal/compare"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Rank every jurisdiction by net profit",
	Example: `  taxcmp compare --revenue 1000000 --expenses 600000
  taxcmp compare -r 250000 -x 90000 -c EUR -e sole-proprietor -f csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := scenarioFromFlags(cmd)
		if err != nil {
			return err
		}
		engine, err := newEngine()
		if err != nil {
			return err
		}
		f, err := formatter()
		if err != nil {
			return err
		}

		set, err := engine.Compare(cmd.Context(), scenario)
		if err != nil {
			return err
		}
		out, err := f.Format(set)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var evaluateCmd = &cobra.Command{
	Use:     "evaluate [jurisdiction]",
	Aliases: []string{"eval"},
	Short:   "Show the tax breakdown for one jurisdiction",
	Example: `  taxcmp evaluate in --revenue 10000000 --expenses 6000000 --currency INR`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := scenarioFromFlags(cmd)
		if err != nil {
			return err
		}
		engine, err := newEngine()
		if err != nil {
			return err
		}
		f, err := formatter()
		if err != nil {
			return err
		}

		ev, err := engine.Evaluate(cmd.Context(), scenario, args[0])
		if err != nil {
			return err
		}
		out, err := f.FormatEvaluation(ev)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{compareCmd, evaluateCmd} {
		c.Flags().StringP("revenue", "r", "", "annual revenue in the input currency")
		c.Flags().StringP("expenses", "x", "0", "annual deductible expenses in the input currency")
		_ = c.MarkFlagRequired("revenue")
	}
}

// scenarioFromFlags builds a scenario from command flags and settings
func scenarioFromFlags(cmd *cobra.Command) (compare.Scenario, error) {
	revenueStr, _ := cmd.Flags().GetString("revenue")
	expensesStr, _ := cmd.Flags().GetString("expenses")

	revenue, err := decimal.NewFromString(revenueStr)
	if err != nil {
		return compare.Scenario{}, fmt.Errorf("invalid revenue %q: %w", revenueStr, err)
	}
	expenses, err := decimal.NewFromString(expensesStr)
	if err != nil {
		return compare.Scenario{}, fmt.Errorf("invalid expenses %q: %w", expensesStr, err)
	}
	code, err := domain.ParseCurrencyCode(settings.DefaultCurrency)
	if err != nil {
		return compare.Scenario{}, err
	}
	entity, err := domain.ParseEntityType(settings.EntityType)
	if err != nil {
		return compare.Scenario{}, err
	}

	return compare.Scenario{
		Revenue:    revenue,
		Expenses:   expenses,
		Currency:   code,
		EntityType: entity,
	}, nil
}
