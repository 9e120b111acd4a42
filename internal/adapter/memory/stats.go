package memory

import (
	"context"

	"fundflow/internal/core/domain"
)

func (s *Store) PlatformStats(_ context.Context) (*domain.PlatformStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := &domain.PlatformStats{TotalUsers: len(s.accounts)}
	funded := 0
	for _, c := range s.campaigns {
		if c.Status != domain.StatusActive {
			continue
		}
		st.TotalCampaigns++
		if c.FullyFunded() {
			funded++
		}
	}
	for _, inv := range s.investments {
		if inv.Status == domain.InvestmentCompleted {
			st.TotalFunded += inv.Amount
		}
	}
	st.SuccessRate = domain.Percent(funded, st.TotalCampaigns)
	return st, nil
}

func (s *Store) AdminStats(_ context.Context) (*domain.AdminStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := &domain.AdminStats{
		TotalUsers:       len(s.accounts),
		TotalCampaigns:   len(s.campaigns),
		TotalInvestments: len(s.investments),
	}
	for _, inv := range s.investments {
		if inv.Status == domain.InvestmentCompleted {
			st.TotalFunded += inv.Amount
		}
	}
	return st, nil
}
