package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
	"fundflow/internal/metrics"
)

// InvestmentUseCase turns processor-confirmed payments into ledger
// contributions. The processor is the source of truth for whether money was
// collected; the ledger is the source of truth for what was applied.
type InvestmentUseCase struct {
	campaigns port.CampaignRepository
	ledger    port.FundingLedger
	payments  port.PaymentProcessor

	currency string
	timeout  time.Duration

	metrics *metrics.Metrics
	logger  *slog.Logger
}

// InvestmentOption customizes an InvestmentUseCase.
type InvestmentOption func(*InvestmentUseCase)

// WithCurrency sets the currency of created payment intents.
func WithCurrency(currency string) InvestmentOption {
	return func(u *InvestmentUseCase) { u.currency = strings.ToLower(currency) }
}

// WithProcessorTimeout bounds every processor call.
func WithProcessorTimeout(d time.Duration) InvestmentOption {
	return func(u *InvestmentUseCase) { u.timeout = d }
}

// WithMetrics records confirmation outcomes.
func WithMetrics(m *metrics.Metrics) InvestmentOption {
	return func(u *InvestmentUseCase) { u.metrics = m }
}

// WithLogger sets the logger used for applied contributions.
func WithLogger(l *slog.Logger) InvestmentOption {
	return func(u *InvestmentUseCase) { u.logger = l }
}

// NewInvestmentUseCase wires the investment usecase.
func NewInvestmentUseCase(campaigns port.CampaignRepository, ledger port.FundingLedger, payments port.PaymentProcessor, opts ...InvestmentOption) *InvestmentUseCase {
	u := &InvestmentUseCase{
		campaigns: campaigns,
		ledger:    ledger,
		payments:  payments,
		currency:  "usd",
		timeout:   10 * time.Second,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreatePaymentIntent starts a payment for an active campaign.
func (u *InvestmentUseCase) CreatePaymentIntent(ctx context.Context, id domain.Identity, campaignID uuid.UUID, amount int64) (*port.IntentResp, error) {
	if id.Role != domain.RoleInvestor {
		return nil, fmt.Errorf("%w: only investors can invest", domain.ErrForbidden)
	}
	if amount < domain.MinInvestmentAmount {
		return nil, domain.Validationf("amount must be at least %d", domain.MinInvestmentAmount)
	}
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.StatusActive {
		return nil, domain.Validationf("campaign is %s and does not accept investments", c.Status)
	}

	pctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	pi, err := u.payments.CreateIntent(pctx, port.PaymentIntentRequest{
		Amount:     amount,
		Currency:   u.currency,
		CampaignID: campaignID,
		InvestorID: id.AccountID,
	})
	if err != nil {
		return nil, err
	}
	return &port.IntentResp{ClientSecret: pi.ClientSecret, PaymentIntentID: pi.ID}, nil
}

// ConfirmPayment checks the intent with the processor and applies it to the
// ledger. Replaying an applied intent returns ErrDuplicatePayment and changes
// nothing.
func (u *InvestmentUseCase) ConfirmPayment(ctx context.Context, id domain.Identity, req port.ConfirmReq) (*domain.Investment, error) {
	if id.Role != domain.RoleInvestor {
		return nil, fmt.Errorf("%w: only investors can invest", domain.ErrForbidden)
	}
	if req.PaymentIntentID == "" {
		return nil, domain.Validationf("paymentIntentId is required")
	}

	pctx, cancel := context.WithTimeout(ctx, u.timeout)
	pi, err := u.payments.GetIntent(pctx, req.PaymentIntentID)
	cancel()
	if err != nil {
		u.metrics.Confirmation(metrics.ResultFailed, 0)
		return nil, err
	}
	if pi.Status != domain.PaymentSucceeded {
		u.metrics.Confirmation(metrics.ResultNotPaid, 0)
		return nil, fmt.Errorf("%w: intent is %s", domain.ErrPaymentNotCompleted, pi.Status)
	}
	if pi.Amount != req.Amount || pi.CampaignID != req.CampaignID || pi.InvestorID != id.AccountID {
		u.metrics.Confirmation(metrics.ResultRejected, 0)
		return nil, domain.Validationf("payment does not match the confirmed investment")
	}

	inv, err := u.ledger.ApplyContribution(ctx, domain.Contribution{
		CampaignID:    req.CampaignID,
		InvestorID:    id.AccountID,
		Amount:        pi.Amount,
		PaymentID:     pi.ID,
		PaymentMethod: pi.Method,
	})
	switch {
	case errors.Is(err, domain.ErrDuplicatePayment):
		u.metrics.Confirmation(metrics.ResultDuplicate, 0)
		return nil, err
	case err != nil:
		u.metrics.Confirmation(metrics.ResultFailed, 0)
		return nil, err
	}
	u.metrics.Confirmation(metrics.ResultApplied, inv.Amount)
	u.logger.Info("contribution applied",
		slog.String("investment_id", inv.ID.String()),
		slog.String("campaign_id", inv.CampaignID.String()),
		slog.Int64("amount", inv.Amount))
	return inv, nil
}

// ListForInvestor returns an investor's investments to the investor or an
// admin.
func (u *InvestmentUseCase) ListForInvestor(ctx context.Context, id domain.Identity, investorID uuid.UUID) ([]domain.Investment, error) {
	if id.AccountID != investorID && !id.IsAdmin() {
		return nil, fmt.Errorf("%w: investments of another account", domain.ErrForbidden)
	}
	return u.ledger.ListInvestmentsByInvestor(ctx, investorID)
}

func (u *InvestmentUseCase) ListAll(ctx context.Context, id domain.Identity) ([]domain.Investment, error) {
	if !id.IsAdmin() {
		return nil, fmt.Errorf("%w: admin only", domain.ErrForbidden)
	}
	return u.ledger.ListInvestments(ctx)
}
