package port

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
)

// ErrPaymentProvider wraps failures of the external payment processor.
var ErrPaymentProvider = errors.New("payment provider error")

// PaymentIntentRequest describes a payment to be collected by the processor.
type PaymentIntentRequest struct {
	Amount     int64
	Currency   string
	CampaignID uuid.UUID
	InvestorID uuid.UUID
}

// PaymentProcessor is the external payment service. It is treated as the
// source of truth for whether a payment succeeded.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, req PaymentIntentRequest) (*domain.PaymentIntent, error)
	GetIntent(ctx context.Context, id string) (*domain.PaymentIntent, error)
}

// PasswordHasher hashes credentials with a salted one-way function.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns domain.ErrInvalidCredentials on mismatch.
	Compare(hash, password string) error
}

// TokenIssuer issues and verifies bearer tokens.
type TokenIssuer interface {
	Issue(id domain.Identity) (token string, expiresAt time.Time, err error)
	// Parse returns the account id carried by a valid token, or
	// domain.ErrUnauthenticated.
	Parse(token string) (uuid.UUID, error)
}

// MessageNotifier is told about every newly appended chat message. Delivery
// is best-effort and never fails the append.
type MessageNotifier interface {
	NotifyMessage(ctx context.Context, conv *domain.Conversation, msg domain.Message)
}

// InvestmentExporter renders investments into a downloadable document.
type InvestmentExporter interface {
	ContentType() string
	Export(w io.Writer, investments []domain.Investment) error
}
