package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

const recentItems = 5

// AdminUseCase implements moderation and platform statistics.
type AdminUseCase struct {
	store    port.Store
	exporter port.InvestmentExporter
}

// NewAdminUseCase wires the admin usecase.
func NewAdminUseCase(store port.Store, exporter port.InvestmentExporter) *AdminUseCase {
	return &AdminUseCase{store: store, exporter: exporter}
}

func requireAdmin(id domain.Identity) error {
	if !id.IsAdmin() {
		return fmt.Errorf("%w: admin only", domain.ErrForbidden)
	}
	return nil
}

// Overview loads the dashboard counters and the most recent users and
// campaigns concurrently.
func (u *AdminUseCase) Overview(ctx context.Context, id domain.Identity) (*port.AdminOverview, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	var out port.AdminOverview
	recent := domain.PageRequest{Page: 1, Limit: recentItems}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := u.store.Stats.AdminStats(gctx)
		if err != nil {
			return err
		}
		out.Stats = *st
		return nil
	})
	g.Go(func() error {
		users, err := u.store.Accounts.ListAccounts(gctx, recent)
		out.RecentUsers = users.Items
		return err
	})
	g.Go(func() error {
		campaigns, err := u.store.Campaigns.ListCampaigns(gctx, domain.CampaignFilter{AllStatuses: true, Page: recent})
		out.RecentCampaigns = campaigns.Items
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *AdminUseCase) Users(ctx context.Context, id domain.Identity, page domain.PageRequest) (domain.Page[domain.Account], error) {
	if err := requireAdmin(id); err != nil {
		return domain.Page[domain.Account]{}, err
	}
	return u.store.Accounts.ListAccounts(ctx, page.Normalize())
}

// SetUserActive activates or deactivates an account. Admins cannot
// deactivate themselves.
func (u *AdminUseCase) SetUserActive(ctx context.Context, id domain.Identity, userID uuid.UUID, active bool) (*domain.Account, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	if userID == id.AccountID && !active {
		return nil, domain.Validationf("admins cannot deactivate their own account")
	}
	return u.store.Accounts.SetAccountActive(ctx, userID, active)
}

// Campaigns lists campaigns of every status.
func (u *AdminUseCase) Campaigns(ctx context.Context, id domain.Identity, page domain.PageRequest) (domain.Page[domain.Campaign], error) {
	if err := requireAdmin(id); err != nil {
		return domain.Page[domain.Campaign]{}, err
	}
	return u.store.Campaigns.ListCampaigns(ctx, domain.CampaignFilter{AllStatuses: true, Page: page.Normalize()})
}

// SetCampaignStatus moves a campaign along the transition table.
func (u *AdminUseCase) SetCampaignStatus(ctx context.Context, id domain.Identity, campaignID uuid.UUID, status domain.CampaignStatus) (*domain.Campaign, error) {
	if err := requireAdmin(id); err != nil {
		return nil, err
	}
	c, err := u.store.Campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err = transition(id, c, status); err != nil {
		return nil, err
	}
	if err = u.store.Campaigns.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ExportInvestments renders every investment into w and returns the
// document's content type.
func (u *AdminUseCase) ExportInvestments(ctx context.Context, id domain.Identity, w io.Writer) (string, error) {
	if err := requireAdmin(id); err != nil {
		return "", err
	}
	investments, err := u.store.Ledger.ListInvestments(ctx)
	if err != nil {
		return "", err
	}
	if err = u.exporter.Export(w, investments); err != nil {
		return "", fmt.Errorf("export investments: %w", err)
	}
	return u.exporter.ContentType(), nil
}

// PublicStats needs no identity.
func (u *AdminUseCase) PublicStats(ctx context.Context) (*domain.PlatformStats, error) {
	return u.store.Stats.PlatformStats(ctx)
}
