package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/taxcmp/internal/compare"
	"github.com/rgehrsitz/taxcmp/internal/config"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/rgehrsitz/taxcmp/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Loaded by the root command before any subcommand runs
var (
	settings *config.Settings
	logger   *zap.Logger
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taxcmp %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "taxcmp",
	Short: "Business tax jurisdiction comparison CLI",
	Long: `Compare the business tax burden of the same revenue and expenses across
the UAE, India, Pakistan, China, Vietnam, Bangladesh and Cambodia.
Amounts are converted into each local currency, taxed under local rules
and converted back for ranking.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := config.NewViper()
		flags := cmd.Root().PersistentFlags()
		for key, name := range map[string]string{
			"default_currency": "currency",
			"entity_type":      "entity",
			"format":           "format",
			"data_file":        "data",
			"logging.level":    "log-level",
		} {
			if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
				return err
			}
		}

		configFile, _ := cmd.Flags().GetString("config")
		var err error
		settings, err = config.LoadSettings(v, configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger, err = logging.New(settings.Logging.Level, settings.Logging.Format)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "settings file (default: ./taxcmp.yaml or ~/.taxcmp/taxcmp.yaml)")
	rootCmd.PersistentFlags().StringP("currency", "c", "USD", "input currency (USD, EUR, GBP or any local currency)")
	rootCmd.PersistentFlags().StringP("entity", "e", "corporate", "entity type: corporate, partnership, sole-proprietor")
	rootCmd.PersistentFlags().StringP("format", "f", "table", "output format: table, json, json-compact, csv, html")
	rootCmd.PersistentFlags().String("data", "", "reference data file (default: embedded data)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(jurisdictionsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadReference reads the configured data file, or the embedded data
func loadReference() (*domain.ReferenceData, error) {
	return config.NewInputParser().Load(settings.DataFile)
}

// newEngine builds the comparison engine from the configured reference data
func newEngine() (*compare.Engine, error) {
	ref, err := loadReference()
	if err != nil {
		return nil, err
	}
	engine, err := compare.NewEngineFromReference(ref)
	if err != nil {
		return nil, err
	}
	engine.SetLogger(logging.NewSugar(logger))
	return engine, nil
}

func formatter() (compare.Formatter, error) {
	f := compare.GetFormatterByName(settings.Format)
	if f == nil {
		return nil, fmt.Errorf("unsupported format %q", settings.Format)
	}
	return f, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
