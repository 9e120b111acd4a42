package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
)

// ApplyContribution validates every precondition before mutating anything,
// then applies all four effects under the write lock.
func (s *Store) ApplyContribution(ctx context.Context, c domain.Contribution) (*domain.Investment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.payments[c.PaymentID]; dup {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicatePayment, c.PaymentID)
	}
	camp, ok := s.campaigns[c.CampaignID]
	if !ok {
		return nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, c.CampaignID)
	}
	investor, ok := s.accounts[c.InvestorID]
	if !ok {
		return nil, fmt.Errorf("%w: investor %s", domain.ErrNotFound, c.InvestorID)
	}
	creator, ok := s.accounts[camp.CreatorID]
	if !ok {
		return nil, fmt.Errorf("%w: creator %s", domain.ErrNotFound, camp.CreatorID)
	}

	now := s.now()
	method := c.PaymentMethod
	if method == "" {
		method = "card"
	}
	inv := &domain.Investment{
		ID:            uuid.New(),
		InvestorID:    c.InvestorID,
		CampaignID:    c.CampaignID,
		Amount:        c.Amount,
		PaymentID:     c.PaymentID,
		Status:        domain.InvestmentCompleted,
		PaymentMethod: method,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.investments = append(s.investments, inv)
	s.payments[c.PaymentID] = struct{}{}

	camp.RaisedAmount += c.Amount
	camp.UpdatedAt = now

	idx := slices.IndexFunc(s.backers[c.CampaignID], func(b *domain.Backer) bool { return b.InvestorID == c.InvestorID })
	if idx >= 0 {
		s.backers[c.CampaignID][idx].Amount += c.Amount
	} else {
		s.backers[c.CampaignID] = append(s.backers[c.CampaignID], &domain.Backer{
			CampaignID:    c.CampaignID,
			InvestorID:    c.InvestorID,
			Amount:        c.Amount,
			FirstBackedAt: now,
		})
	}

	investor.TotalInvested += c.Amount
	creator.TotalRaised += c.Amount

	out := *inv
	out.Campaign = s.campaignRef(c.CampaignID)
	return &out, nil
}

// campaignRef must be called with s.mu held.
func (s *Store) campaignRef(id uuid.UUID) *domain.CampaignRef {
	c, ok := s.campaigns[id]
	if !ok {
		return &domain.CampaignRef{ID: id}
	}
	deadline, creator := c.Deadline, c.CreatorID
	return &domain.CampaignRef{
		ID:           c.ID,
		Title:        c.Title,
		GoalAmount:   c.GoalAmount,
		RaisedAmount: c.RaisedAmount,
		Deadline:     &deadline,
		CreatorID:    &creator,
	}
}

func (s *Store) ListInvestmentsByInvestor(_ context.Context, investorID uuid.UUID) ([]domain.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Investment{}
	for _, inv := range slices.Backward(s.investments) {
		if inv.InvestorID != investorID {
			continue
		}
		cp := *inv
		cp.Campaign = s.campaignRef(inv.CampaignID)
		out = append(out, cp)
	}
	return out, nil
}

func (s *Store) ListInvestments(_ context.Context) ([]domain.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Investment, 0, len(s.investments))
	for _, inv := range slices.Backward(s.investments) {
		cp := *inv
		investor := s.ref(inv.InvestorID)
		cp.Investor = &investor
		cp.Campaign = s.campaignRef(inv.CampaignID)
		out = append(out, cp)
	}
	return out, nil
}
