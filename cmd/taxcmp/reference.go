package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/taxcmp/internal/compare"
	"github.com/rgehrsitz/taxcmp/internal/config"
	"github.com/rgehrsitz/taxcmp/internal/currency"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var convertCmd = &cobra.Command{
	Use:     "convert [amount] [from] [to]",
	Short:   "Convert an amount between currencies using the reference rates",
	Example: `  taxcmp convert 1000 USD INR`,
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[0], err)
		}
		from, err := domain.ParseCurrencyCode(args[1])
		if err != nil {
			return err
		}
		to, err := domain.ParseCurrencyCode(args[2])
		if err != nil {
			return err
		}

		ref, err := loadReference()
		if err != nil {
			return err
		}
		converter, err := currency.NewConverter(ref.ExchangeRates)
		if err != nil {
			return err
		}
		result, err := converter.Convert(amount, from, to)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n", amount, from, result.StringFixed(2), to)
		return nil
	},
}

var jurisdictionsCmd = &cobra.Command{
	Use:   "jurisdictions",
	Short: "List supported jurisdictions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-4s %-22s %-5s %8s %8s  %s\n", "ID", "Country", "Cur", "CIT", "Top PIT", "Sales Tax")
		fmt.Fprintln(out, strings.Repeat("-", 64))
		for _, j := range engine.Registry.All() {
			p := j.Profile
			fmt.Fprintf(out, "%-4s %-22s %-5s %8s %8s  %s %s%%\n",
				p.ID, p.Country, p.CurrencyCode,
				compare.FormatRate(p.CIT.StandardRate), compare.FormatRate(p.TopPITRate()),
				p.SalesTax.Name, p.SalesTax.StandardRate)
		}
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile [jurisdiction]",
	Short: "Show the reference profile of a jurisdiction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		j, err := engine.Registry.Lookup(args[0])
		if err != nil {
			return err
		}

		var data []byte
		if strings.HasPrefix(settings.Format, "json") {
			data, err = json.MarshalIndent(j.Profile, "", "  ")
			data = append(data, '\n')
		} else {
			data, err = yaml.Marshal(j.Profile)
		}
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [data-file]",
	Short: "Validate a reference data file",
	Long:  "Validate a reference data file, or the embedded data when no file is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := "embedded reference data"
		parser := config.NewInputParser()

		var ref *domain.ReferenceData
		var err error
		if len(args) == 1 {
			source = args[0]
			ref, err = parser.LoadFromFile(args[0])
		} else {
			ref, err = parser.Load(settings.DataFile)
			if settings.DataFile != "" {
				source = settings.DataFile
			}
		}
		if err != nil {
			return err
		}
		if _, err := compare.NewEngineFromReference(ref); err != nil {
			return fmt.Errorf("reference data validation failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d jurisdictions, %d currencies, data year %d)\n",
			source, len(ref.Jurisdictions), len(ref.ExchangeRates), ref.Metadata.DataYear)
		return nil
	},
}
