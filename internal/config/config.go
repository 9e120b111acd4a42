package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"fundflow/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Storage  configs.Storage  `envPrefix:"STORAGE_"`
	Auth     configs.Auth     `envPrefix:"AUTH_"`
	Payments configs.Payments `envPrefix:"PAYMENTS_"`
	NATS     configs.NATS     `envPrefix:"NATS_"`
	Realtime configs.Realtime `envPrefix:"REALTIME_"`
}

// Load reads configuration from environment variables into a Config. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment take precedence over it.
func Load() (Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Auth.JWTSecret) < 16 {
		return errors.New("AUTH_JWT_SECRET must be at least 16 characters")
	}
	switch c.Storage.Driver {
	case configs.StoragePostgres, configs.StorageMemory:
	default:
		return errors.New("STORAGE_DRIVER must be postgres or memory")
	}
	switch c.Payments.Provider {
	case configs.PaymentsStripe:
		if c.Payments.StripeKey == "" {
			return errors.New("PAYMENTS_STRIPE_KEY is required for the stripe provider")
		}
	case configs.PaymentsSandbox:
	default:
		return errors.New("PAYMENTS_PROVIDER must be stripe or sandbox")
	}
	return nil
}
