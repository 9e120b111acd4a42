package postgres

import (
	"context"
	"fmt"

	"fundflow/internal/core/domain"
)

// PlatformStats counts active campaigns and the share of them that reached
// their goal.
func (s *Store) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	var (
		st     domain.PlatformStats
		funded int
	)
	err := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM campaigns WHERE status = 'active'),
			(SELECT count(*) FROM campaigns WHERE status = 'active' AND raised_amount >= goal_amount),
			(SELECT count(*) FROM accounts),
			(SELECT coalesce(sum(amount), 0)::bigint FROM investments WHERE status = 'completed')`,
	).Scan(&st.TotalCampaigns, &funded, &st.TotalUsers, &st.TotalFunded)
	if err != nil {
		return nil, fmt.Errorf("platform stats: %w", err)
	}
	st.SuccessRate = domain.Percent(funded, st.TotalCampaigns)
	return &st, nil
}

func (s *Store) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	var st domain.AdminStats
	err := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM accounts),
			(SELECT count(*) FROM campaigns),
			(SELECT count(*) FROM investments),
			(SELECT coalesce(sum(amount), 0)::bigint FROM investments WHERE status = 'completed')`,
	).Scan(&st.TotalUsers, &st.TotalCampaigns, &st.TotalInvestments, &st.TotalFunded)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}
	return &st, nil
}
