package main

import (
	"fmt"

	"github.com/rgehrsitz/taxcmp/internal/breakeven"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var breakEvenCmd = &cobra.Command{
	Use:   "break-even [jurisdiction]",
	Short: "Find the revenue needed to keep a target net profit",
	Long: `Find the revenue needed in each jurisdiction (or only the one given) to
keep a target net profit after tax, with expenses held fixed.`,
	Example: `  taxcmp break-even --net 500000 --expenses 100000
  taxcmp break-even ae --net 1000000 -c EUR`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		netStr, _ := cmd.Flags().GetString("net")
		expensesStr, _ := cmd.Flags().GetString("expenses")

		target, err := decimal.NewFromString(netStr)
		if err != nil {
			return fmt.Errorf("invalid net profit %q: %w", netStr, err)
		}
		expenses, err := decimal.NewFromString(expensesStr)
		if err != nil {
			return fmt.Errorf("invalid expenses %q: %w", expensesStr, err)
		}
		code, err := domain.ParseCurrencyCode(settings.DefaultCurrency)
		if err != nil {
			return err
		}
		entity, err := domain.ParseEntityType(settings.EntityType)
		if err != nil {
			return err
		}

		engine, err := newEngine()
		if err != nil {
			return err
		}
		solver := breakeven.NewDefaultSolver(engine)
		req := breakeven.Request{
			TargetNet:  target,
			Expenses:   expenses,
			Currency:   code,
			EntityType: entity,
		}

		var results []breakeven.Result
		if len(args) == 1 {
			req.JurisdictionID = args[0]
			res, err := solver.Solve(cmd.Context(), req)
			if err != nil {
				return err
			}
			results = []breakeven.Result{*res}
		} else {
			if results, err = solver.SolveAll(cmd.Context(), req); err != nil {
				return err
			}
		}

		switch settings.Format {
		case "json", "json-compact":
			out, err := (&breakeven.JSONFormatter{}).Format(req, results)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
		default:
			fmt.Fprint(cmd.OutOrStdout(), (&breakeven.TableFormatter{}).Format(req, results))
		}
		return nil
	},
}

func init() {
	breakEvenCmd.Flags().StringP("net", "n", "", "target net profit in the input currency")
	breakEvenCmd.Flags().StringP("expenses", "x", "0", "annual deductible expenses in the input currency")
	_ = breakEvenCmd.MarkFlagRequired("net")
	rootCmd.AddCommand(breakEvenCmd)
}
