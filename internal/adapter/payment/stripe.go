// Package payment holds the PaymentProcessor implementations.
package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

const (
	metaCampaignID = "campaign_id"
	metaInvestorID = "investor_id"
)

// Stripe collects payments through Stripe payment intents.
type Stripe struct {
	client paymentintent.Client
}

// NewStripe returns a processor authenticated with the secret key.
func NewStripe(secretKey string) *Stripe {
	return &Stripe{
		client: paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: secretKey},
	}
}

// CreateIntent creates a card payment intent tagged with the campaign and
// investor so confirmation can check what was paid for.
func (s *Stripe) CreateIntent(ctx context.Context, req port.PaymentIntentRequest) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata(metaCampaignID, req.CampaignID.String())
	params.AddMetadata(metaInvestorID, req.InvestorID.String())

	pi, err := s.client.New(params)
	if err != nil {
		return nil, wrapStripe(err)
	}
	return toIntent(pi), nil
}

// GetIntent fetches the current state of a payment intent.
func (s *Stripe) GetIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := s.client.Get(id, params)
	if err != nil {
		return nil, wrapStripe(err)
	}
	return toIntent(pi), nil
}

func toIntent(pi *stripe.PaymentIntent) *domain.PaymentIntent {
	out := &domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       toStatus(pi.Status),
		Method:       "card",
	}
	// unparsable metadata leaves uuid.Nil, which never matches a confirmation
	out.CampaignID, _ = uuid.Parse(pi.Metadata[metaCampaignID])
	out.InvestorID, _ = uuid.Parse(pi.Metadata[metaInvestorID])
	if len(pi.PaymentMethodTypes) > 0 {
		out.Method = pi.PaymentMethodTypes[0]
	}
	return out
}

func toStatus(s stripe.PaymentIntentStatus) domain.PaymentStatus {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return domain.PaymentSucceeded
	case stripe.PaymentIntentStatusProcessing:
		return domain.PaymentProcessing
	case stripe.PaymentIntentStatusCanceled:
		return domain.PaymentCanceled
	default:
		return domain.PaymentPending
	}
}

func wrapStripe(err error) error {
	var se *stripe.Error
	if errors.As(err, &se) && se.Code == stripe.ErrorCodeResourceMissing {
		return fmt.Errorf("%w: payment intent", domain.ErrNotFound)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", port.ErrPaymentProvider, err)
}
