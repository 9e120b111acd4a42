package payment

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

// Sandbox is an in-process processor for development and tests. Intents
// start in the configured status, succeeded by default.
type Sandbox struct {
	mu      sync.Mutex
	intents map[string]domain.PaymentIntent
	initial domain.PaymentStatus
}

// NewSandbox returns a sandbox whose intents succeed immediately.
func NewSandbox() *Sandbox {
	return &Sandbox{
		intents: make(map[string]domain.PaymentIntent),
		initial: domain.PaymentSucceeded,
	}
}

// WithInitialStatus changes the status new intents are created in.
func (s *Sandbox) WithInitialStatus(status domain.PaymentStatus) *Sandbox {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initial = status
	return s
}

func (s *Sandbox) CreateIntent(ctx context.Context, req port.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id := "pi_sandbox_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	pi := domain.PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12],
		Amount:       req.Amount,
		Currency:     strings.ToLower(req.Currency),
		CampaignID:   req.CampaignID,
		InvestorID:   req.InvestorID,
		Method:       "card",
	}
	s.mu.Lock()
	pi.Status = s.initial
	s.intents[id] = pi
	s.mu.Unlock()
	return &pi, nil
}

func (s *Sandbox) GetIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	pi, ok := s.intents[id]
	if !ok {
		return nil, fmt.Errorf("%w: payment intent %s", domain.ErrNotFound, id)
	}
	return &pi, nil
}

// SetStatus moves an existing intent to status.
func (s *Sandbox) SetStatus(id string, status domain.PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pi, ok := s.intents[id]
	if !ok {
		return fmt.Errorf("%w: payment intent %s", domain.ErrNotFound, id)
	}
	pi.Status = status
	s.intents[id] = pi
	return nil
}
