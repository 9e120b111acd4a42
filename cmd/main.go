package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fundflow/internal/adapter/postgres"
	"fundflow/internal/config"
	"fundflow/internal/db"
)

var Version = "dev"

// main is the entry point of fundflow. Every subcommand loads configuration
// from the environment and logs through slog.
func main() {
	rootCmd := &cobra.Command{
		Use:           "fundflow",
		Short:         "Crowdfunding marketplace API",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(createAdminCmd())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.NewLogger(os.Stdout)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// openPostgres connects to the configured database. The caller closes the
// returned store's pool through the cleanup func.
func openPostgres(ctx context.Context, cfg config.Config) (*postgres.Store, func(), error) {
	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}
	return postgres.NewStore(pool), pool.Close, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
			return nil
		},
	}
}
