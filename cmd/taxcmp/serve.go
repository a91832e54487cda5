package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rgehrsitz/taxcmp/internal/api"
	"github.com/rgehrsitz/taxcmp/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the comparison engine over HTTP",
	Long: `Serve the comparison engine as a JSON API. A .env file in the working
directory is loaded first so TAXCMP_ variables can be kept there.`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return err
		}
		// Re-run settings loading so values from .env are visible
		return cmd.Root().PersistentPreRunE(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine()
		if err != nil {
			return err
		}
		code, err := domain.ParseCurrencyCode(settings.DefaultCurrency)
		if err != nil {
			return err
		}
		entity, err := domain.ParseEntityType(settings.EntityType)
		if err != nil {
			return err
		}

		addr := settings.API.Addr()
		if a, _ := cmd.Flags().GetString("addr"); a != "" {
			addr = a
		}

		server := api.NewServer(engine, logger, api.Options{
			CORSOrigins:     settings.API.CORSOrigins,
			DefaultCurrency: code,
			DefaultEntity:   entity,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		defer func() { _ = logger.Sync() }()

		logger.Info("Starting taxcmp API", zap.String("version", version))
		return server.Run(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides api.host and api.port)")
}
