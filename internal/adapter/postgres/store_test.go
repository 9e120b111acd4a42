package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"fundflow/internal/core/domain"
)

func TestTranslate(t *testing.T) {
	boom := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), domain.ErrNotFound},
		{"unique", &pgconn.PgError{Code: codeUniqueViolation}, domain.ErrConflict},
		{"foreign key", &pgconn.PgError{Code: codeForeignKeyViolation}, domain.ErrNotFound},
		{"other", boom, boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.err, "campaign")
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), "campaign")
		})
	}
	assert.NoError(t, translate(nil, "campaign"))
}

func TestRetryable(t *testing.T) {
	assert.True(t, retryable(&pgconn.PgError{Code: codeSerializationFailure}))
	assert.True(t, retryable(fmt.Errorf("commit: %w", &pgconn.PgError{Code: codeDeadlockDetected})))
	assert.False(t, retryable(&pgconn.PgError{Code: codeUniqueViolation}))
	assert.False(t, retryable(errors.New("timeout")))
}

func TestLedgerIsolation(t *testing.T) {
	// A burst on one campaign under serializable aborts with 40001 and can
	// exhaust maxTxAttempts. The row lock alone orders increments.
	assert.Equal(t, pgx.ReadCommitted, ledgerIsolation)
	assert.Less(t, ledgerIsolation, pgx.Serializable)
}
