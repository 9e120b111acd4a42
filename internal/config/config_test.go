package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundflow/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("PAYMENTS_PROVIDER", "sandbox")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, configs.StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "usd", cfg.Payments.Currency)
	assert.Equal(t, 100, cfg.HTTP.RateLimit)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Empty(t, cfg.NATS.URL)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTH_JWT_SECRET", "short")
	t.Setenv("PAYMENTS_PROVIDER", "sandbox")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadStripeRequiresKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("PAYMENTS_PROVIDER", "stripe")
	t.Setenv("PAYMENTS_STRIPE_KEY", "")

	_, err := Load()
	require.Error(t, err)
}

func TestRealtimePingPeriod(t *testing.T) {
	rt := configs.Realtime{PongTimeout: 60 * time.Second}
	assert.Equal(t, 54*time.Second, rt.PingPeriod())
}

func TestLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	logger := configs.Logger{Level: "warn", Format: "JSON"}.NewLogger(&buf)
	logger.Info("dropped")
	logger.Warn("kept", slog.Int("n", 1))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.EqualValues(t, 1, rec["n"])

	assert.Equal(t, "text", configs.Logger{Format: "yaml"}.SlogFormat())
	assert.Equal(t, slog.LevelDebug, configs.Logger{Level: "DEBUG"}.SlogLevel())
}
