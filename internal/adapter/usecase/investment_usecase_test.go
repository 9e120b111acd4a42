package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fundflow/internal/adapter/payment"
	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
	"fundflow/internal/core/port/mocks"
	"fundflow/internal/metrics"
)

func succeeded(id string, campaignID, investorID uuid.UUID, amount int64) *domain.PaymentIntent {
	return &domain.PaymentIntent{
		ID:         id,
		Amount:     amount,
		Currency:   "usd",
		Status:     domain.PaymentSucceeded,
		CampaignID: campaignID,
		InvestorID: investorID,
		Method:     "card",
	}
}

func TestConfirmPaymentAppliesOnce(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	owner := e.register(t, domain.RoleStartup)
	investor := e.register(t, domain.RoleInvestor)
	c := e.campaign(t, owner, domain.MinGoalAmount)

	processor := mocks.NewMockPaymentProcessor(t)
	processor.EXPECT().
		GetIntent(mock.Anything, "pi_1").
		Return(succeeded("pi_1", c.ID, investor.AccountID, 2500), nil).
		Times(2)

	svc := NewInvestmentUseCase(e.repos.Campaigns, e.repos.Ledger, processor, WithMetrics(metrics.New()))
	req := port.ConfirmReq{PaymentIntentID: "pi_1", CampaignID: c.ID, Amount: 2500}

	inv, err := svc.ConfirmPayment(ctx, investor, req)
	require.NoError(t, err)
	assert.Equal(t, domain.InvestmentCompleted, inv.Status)
	assert.Equal(t, "pi_1", inv.PaymentID)

	_, err = svc.ConfirmPayment(ctx, investor, req)
	assert.ErrorIs(t, err, domain.ErrDuplicatePayment)
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := e.camps.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), got.RaisedAmount)
	require.Len(t, got.Backers, 1)
	assert.Equal(t, int64(2500), got.Backers[0].Amount)

	me, err := e.accounts.Me(ctx, investor)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), me.TotalInvested)
	creator, err := e.accounts.Me(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), creator.TotalRaised)
}

func TestConfirmPaymentRejectsUnpaidOrMismatched(t *testing.T) {
	ctx := context.Background()
	investor := domain.Identity{AccountID: uuid.New(), Role: domain.RoleInvestor}
	campaignID := uuid.New()

	processor := mocks.NewMockPaymentProcessor(t)
	ledger := mocks.NewMockFundingLedger(t)
	svc := NewInvestmentUseCase(nil, ledger, processor)

	pending := succeeded("pi_pending", campaignID, investor.AccountID, 1000)
	pending.Status = domain.PaymentProcessing
	processor.EXPECT().GetIntent(mock.Anything, "pi_pending").Return(pending, nil)
	processor.EXPECT().GetIntent(mock.Anything, "pi_ok").Return(succeeded("pi_ok", campaignID, investor.AccountID, 1000), nil)
	processor.EXPECT().GetIntent(mock.Anything, "pi_down").Return(nil, fmt.Errorf("%w: timeout", port.ErrPaymentProvider))

	_, err := svc.ConfirmPayment(ctx, investor, port.ConfirmReq{PaymentIntentID: "pi_pending", CampaignID: campaignID, Amount: 1000})
	assert.ErrorIs(t, err, domain.ErrPaymentNotCompleted)

	_, err = svc.ConfirmPayment(ctx, investor, port.ConfirmReq{PaymentIntentID: "pi_ok", CampaignID: campaignID, Amount: 999})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.ConfirmPayment(ctx, investor, port.ConfirmReq{PaymentIntentID: "pi_ok", CampaignID: uuid.New(), Amount: 1000})
	assert.ErrorIs(t, err, domain.ErrValidation)

	thief := domain.Identity{AccountID: uuid.New(), Role: domain.RoleInvestor}
	_, err = svc.ConfirmPayment(ctx, thief, port.ConfirmReq{PaymentIntentID: "pi_ok", CampaignID: campaignID, Amount: 1000})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.ConfirmPayment(ctx, investor, port.ConfirmReq{PaymentIntentID: "pi_down", CampaignID: campaignID, Amount: 1000})
	assert.ErrorIs(t, err, port.ErrPaymentProvider)

	startup := domain.Identity{AccountID: uuid.New(), Role: domain.RoleStartup}
	_, err = svc.ConfirmPayment(ctx, startup, port.ConfirmReq{PaymentIntentID: "pi_ok", CampaignID: campaignID, Amount: 1000})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// the ledger mock has no expectations: none of the above may reach it
	ledger.AssertNotCalled(t, "ApplyContribution", mock.Anything, mock.Anything)
}

func TestCreatePaymentIntent(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	owner := e.register(t, domain.RoleStartup)
	investor := e.register(t, domain.RoleInvestor)
	c := e.campaign(t, owner, domain.MinGoalAmount)
	sandbox := payment.NewSandbox()
	svc := NewInvestmentUseCase(e.repos.Campaigns, e.repos.Ledger, sandbox, WithCurrency("EUR"))

	_, err := svc.CreatePaymentIntent(ctx, owner, c.ID, 1000)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = svc.CreatePaymentIntent(ctx, investor, c.ID, domain.MinInvestmentAmount-1)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.CreatePaymentIntent(ctx, investor, uuid.New(), 1000)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	resp, err := svc.CreatePaymentIntent(ctx, investor, c.ID, 1000)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ClientSecret)
	pi, err := sandbox.GetIntent(ctx, resp.PaymentIntentID)
	require.NoError(t, err)
	assert.Equal(t, "eur", pi.Currency)
	assert.Equal(t, investor.AccountID, pi.InvestorID)

	_, err = e.camps.Update(ctx, owner, c.ID, port.CampaignReq{Status: ptr(domain.StatusCompleted)})
	require.NoError(t, err)
	_, err = svc.CreatePaymentIntent(ctx, investor, c.ID, 1000)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// TestConcurrentConfirmations ensures concurrent confirmations neither lose
// increments nor apply the same payment twice.
func TestConcurrentConfirmations(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	owner := e.register(t, domain.RoleStartup)
	c := e.campaign(t, owner, domain.MinGoalAmount)
	sandbox := payment.NewSandbox()
	svc := NewInvestmentUseCase(e.repos.Campaigns, e.repos.Ledger, sandbox)

	const investors = 20
	ids := make([]domain.Identity, investors)
	intents := make([]string, investors)
	for i := range ids {
		ids[i] = e.register(t, domain.RoleInvestor)
		resp, err := svc.CreatePaymentIntent(ctx, ids[i], c.ID, 500)
		require.NoError(t, err)
		intents[i] = resp.PaymentIntentID
	}

	var (
		wg         sync.WaitGroup
		applied    atomic.Int64
		duplicates atomic.Int64
	)
	// every intent is confirmed three times at once
	for i := range ids {
		for range 3 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.ConfirmPayment(ctx, ids[i], port.ConfirmReq{
					PaymentIntentID: intents[i], CampaignID: c.ID, Amount: 500,
				})
				switch {
				case err == nil:
					applied.Add(1)
				case errors.Is(err, domain.ErrDuplicatePayment):
					duplicates.Add(1)
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
	}
	wg.Wait()

	assert.Equal(t, int64(investors), applied.Load())
	assert.Equal(t, int64(2*investors), duplicates.Load())

	got, err := e.camps.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(investors*500), got.RaisedAmount)
	assert.Len(t, got.Backers, investors)

	creator, err := e.accounts.Me(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(investors*500), creator.TotalRaised)
}

func TestListInvestmentsAccess(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	owner := e.register(t, domain.RoleStartup)
	investor := e.register(t, domain.RoleInvestor)
	other := e.register(t, domain.RoleInvestor)
	admin := e.admin(t)
	c := e.campaign(t, owner, domain.MinGoalAmount)
	svc := NewInvestmentUseCase(e.repos.Campaigns, e.repos.Ledger, payment.NewSandbox())

	_, err := e.repos.Ledger.ApplyContribution(ctx, domain.Contribution{
		CampaignID: c.ID, InvestorID: investor.AccountID, Amount: 700, PaymentID: "pi_a",
	})
	require.NoError(t, err)

	mine, err := svc.ListForInvestor(ctx, investor, investor.AccountID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].Campaign)
	assert.Equal(t, c.Title, mine[0].Campaign.Title)

	_, err = svc.ListForInvestor(ctx, other, investor.AccountID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	viaAdmin, err := svc.ListForInvestor(ctx, admin, investor.AccountID)
	require.NoError(t, err)
	assert.Len(t, viaAdmin, 1)

	_, err = svc.ListAll(ctx, investor)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	all, err := svc.ListAll(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
