package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"fundflow/internal/adapter/auth"
	"fundflow/internal/adapter/usecase"
	"fundflow/internal/db"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo accounts, campaigns and investments",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			pg, closePool, err := openPostgres(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closePool()
			if err = db.Seed(cmd.Context(), pg.Repositories(), auth.NewBcryptHasher(cfg.Auth.BcryptCost)); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Info("demo data seeded", slog.String("password", db.SeedPassword))
			return nil
		},
	}
}

// createAdminCmd creates admin accounts. Registration over the API never
// grants the admin role.
func createAdminCmd() *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if email == "" || password == "" {
				return errors.New("--email and --password are required")
			}
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			pg, closePool, err := openPostgres(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closePool()

			accounts := usecase.NewAccountUseCase(pg, auth.NewBcryptHasher(cfg.Auth.BcryptCost),
				auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL))
			a, err := accounts.CreateAdmin(cmd.Context(), name, email, password)
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			logger.Info("admin created", slog.String("id", a.ID.String()), slog.String("email", a.Email))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "Admin", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "login password")
	return cmd
}
