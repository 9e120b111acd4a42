package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fundflow/internal/adapter/auth"
	"fundflow/internal/adapter/export"
	httpadapter "fundflow/internal/adapter/http"
	"fundflow/internal/adapter/memory"
	"fundflow/internal/adapter/payment"
	"fundflow/internal/adapter/realtime"
	"fundflow/internal/adapter/usecase"
	"fundflow/internal/config"
	"fundflow/internal/config/configs"
	"fundflow/internal/core/port"
	"fundflow/internal/db"
	"fundflow/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

func serveCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and realtime gateway",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger, seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "insert demo data before serving")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, logger *slog.Logger, seed bool) error {
	var (
		store  port.Store
		health httpadapter.HealthFunc
	)
	switch cfg.Storage.Driver {
	case configs.StorageMemory:
		logger.Warn("using in-memory storage, data is lost on exit")
		store = memory.NewStore().Repositories()
	default:
		if cfg.Psql.RunMigrations {
			if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pg, closePool, err := openPostgres(ctx, cfg)
		if err != nil {
			return err
		}
		defer closePool()
		store, health = pg.Repositories(), pg.Ping
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	if seed {
		if err := db.Seed(ctx, store, hasher); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded", slog.String("password", db.SeedPassword))
	}

	var payments port.PaymentProcessor
	switch cfg.Payments.Provider {
	case configs.PaymentsSandbox:
		logger.Warn("using sandbox payments, every intent succeeds")
		payments = payment.NewSandbox()
	default:
		payments = payment.NewStripe(cfg.Payments.StripeKey)
	}

	m := metrics.New()
	hub := realtime.NewHub(m, logger)
	if cfg.NATS.URL != "" {
		broker, err := realtime.DialNATS(cfg.NATS.URL, cfg.NATS.SubjectPrefix, logger)
		if err != nil {
			return err
		}
		defer broker.Close()
		if err = hub.UseBroker(broker); err != nil {
			return fmt.Errorf("subscribe nats: %w", err)
		}
		logger.Info("realtime bridge connected", slog.String("url", cfg.NATS.URL))
	}

	chat := usecase.NewChatUseCase(store.Accounts, store.Conversations, hub)
	svc := httpadapter.Services{
		Accounts:  usecase.NewAccountUseCase(store.Accounts, hasher, auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)),
		Campaigns: usecase.NewCampaignUseCase(store.Campaigns),
		Investments: usecase.NewInvestmentUseCase(store.Campaigns, store.Ledger, payments,
			usecase.WithCurrency(cfg.Payments.Currency),
			usecase.WithProcessorTimeout(cfg.Payments.Timeout),
			usecase.WithMetrics(m),
			usecase.WithLogger(logger),
		),
		Chat:  chat,
		Admin: usecase.NewAdminUseCase(store, export.NewXLSX()),
	}
	gateway := realtime.NewGateway(hub, chat, cfg.Realtime, cfg.HTTP.CORSOrigins, logger)
	handler := httpadapter.NewHandler(svc, cfg.HTTP, logger,
		httpadapter.WithGateway(gateway),
		httpadapter.WithMetrics(m),
		httpadapter.WithHealth(health),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}
