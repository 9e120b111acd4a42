package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
)

// snapshot copies a campaign and resolves its creator. s.mu must be held.
func (s *Store) snapshot(c *domain.Campaign) domain.Campaign {
	cp := *c
	cp.Images = slices.Clone(c.Images)
	creator := s.ref(c.CreatorID)
	cp.Creator = &creator
	cp.BackerCount = len(s.backers[c.ID])
	return cp
}

func (s *Store) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[c.CreatorID]; !ok {
		return fmt.Errorf("%w: creator %s", domain.ErrNotFound, c.CreatorID)
	}
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	c.RaisedAmount = 0
	cp := *c
	cp.Images = slices.Clone(c.Images)
	cp.Creator, cp.Backers, cp.Updates = nil, nil, nil
	s.campaigns[c.ID] = &cp
	s.campaignOrder = append(s.campaignOrder, c.ID)
	*c = s.snapshot(&cp)
	return nil
}

func (s *Store) GetCampaign(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, id)
	}
	cp := s.snapshot(c)
	return &cp, nil
}

func (s *Store) GetCampaignDetails(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, id)
	}
	cp := s.snapshot(c)
	cp.Backers = make([]domain.Backer, 0, len(s.backers[id]))
	for _, b := range s.backers[id] {
		bc := *b
		bc.Investor = s.ref(b.InvestorID)
		cp.Backers = append(cp.Backers, bc)
	}
	cp.Updates = slices.Clone(s.updates[id])
	return &cp, nil
}

func (s *Store) ListCampaigns(_ context.Context, f domain.CampaignFilter) (domain.Page[domain.Campaign], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status := domain.StatusActive
	if f.Status != nil {
		status = *f.Status
	}
	var matched []domain.Campaign
	for _, id := range slices.Backward(s.campaignOrder) {
		c := s.campaigns[id]
		if !f.AllStatuses && c.Status != status {
			continue
		}
		if f.Category != nil && c.Category != *f.Category {
			continue
		}
		if f.CreatorID != nil && c.CreatorID != *f.CreatorID {
			continue
		}
		matched = append(matched, s.snapshot(c))
	}
	return paginate(matched, f.Page), nil
}

func (s *Store) ListCampaignsByCreator(_ context.Context, creatorID uuid.UUID) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Campaign{}
	for _, id := range slices.Backward(s.campaignOrder) {
		if c := s.campaigns[id]; c.CreatorID == creatorID {
			out = append(out, s.snapshot(c))
		}
	}
	return out, nil
}

func (s *Store) UpdateCampaign(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.campaigns[c.ID]
	if !ok {
		return fmt.Errorf("%w: campaign %s", domain.ErrNotFound, c.ID)
	}
	cur.Title, cur.Description = c.Title, c.Description
	cur.GoalAmount, cur.Deadline = c.GoalAmount, c.Deadline
	cur.Category, cur.Status = c.Category, c.Status
	cur.Images = slices.Clone(c.Images)
	cur.Featured = c.Featured
	cur.UpdatedAt = s.now()
	*c = s.snapshot(cur)
	return nil
}

func (s *Store) DeleteCampaign(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[id]; !ok {
		return fmt.Errorf("%w: campaign %s", domain.ErrNotFound, id)
	}
	delete(s.campaigns, id)
	delete(s.backers, id)
	delete(s.updates, id)
	s.campaignOrder = slices.DeleteFunc(s.campaignOrder, func(x uuid.UUID) bool { return x == id })
	return nil
}

func (s *Store) AddCampaignUpdate(_ context.Context, u *domain.CampaignUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[u.CampaignID]
	if !ok {
		return fmt.Errorf("%w: campaign %s", domain.ErrNotFound, u.CampaignID)
	}
	u.CreatedAt = s.now()
	s.updates[u.CampaignID] = append(s.updates[u.CampaignID], *u)
	c.UpdatedAt = u.CreatedAt
	return nil
}
