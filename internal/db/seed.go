package db

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

// SeedPassword is the password of every seeded account.
const SeedPassword = "password123"

// Seed inserts demo data: startups with campaigns, investors, and funding
// applied through the ledger so all totals stay consistent. Accounts that
// already exist are left as they are, together with their campaigns and
// investments, so running it again is a no-op.
func Seed(ctx context.Context, store port.Store, hasher port.PasswordHasher) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hash, err := hasher.Hash(SeedPassword)
	if err != nil {
		return err
	}
	// ensureAccount reports whether the account was created by this run.
	ensureAccount := func(i int, role domain.Role) (*domain.Account, bool, error) {
		email := fmt.Sprintf("%s%d@example.com", role, i)
		existing, err := store.Accounts.GetAccountByEmail(ctx, email)
		switch {
		case err == nil:
			return existing, false, nil
		case !errors.Is(err, domain.ErrNotFound):
			return nil, false, err
		}
		a := &domain.Account{
			ID:           uuid.New(),
			Name:         fmt.Sprintf("%s %d", role, i),
			Email:        email,
			PasswordHash: hash,
			Role:         role,
			IsActive:     true,
		}
		if role == domain.RoleStartup {
			a.Company = fmt.Sprintf("Startup %d Inc.", i)
		}
		return a, true, store.Accounts.CreateAccount(ctx, a)
	}

	var campaigns []uuid.UUID
	categories := domain.Categories()
	for i := 1; i <= 3; i++ {
		startup, created, err := ensureAccount(i, domain.RoleStartup)
		if err != nil {
			return err
		}
		if !created {
			own, err := store.Campaigns.ListCampaignsByCreator(ctx, startup.ID)
			if err != nil {
				return err
			}
			for _, c := range own {
				campaigns = append(campaigns, c.ID)
			}
			continue
		}
		for j := 1; j <= 3; j++ {
			c := &domain.Campaign{
				ID:          uuid.New(),
				CreatorID:   startup.ID,
				Title:       fmt.Sprintf("Campaign %d of startup %d", j, i),
				Description: "Demo campaign seeded for local development.",
				GoalAmount:  int64(5+r.Intn(20)) * 1000_00,
				Deadline:    time.Now().AddDate(0, 1+r.Intn(3), 0),
				Category:    categories[r.Intn(len(categories))],
				Status:      domain.StatusActive,
			}
			if err = store.Campaigns.CreateCampaign(ctx, c); err != nil {
				return err
			}
			campaigns = append(campaigns, c.ID)
		}
	}

	for i := 1; i <= 5; i++ {
		investor, created, err := ensureAccount(i, domain.RoleInvestor)
		if err != nil {
			return err
		}
		if !created || len(campaigns) == 0 {
			continue
		}
		for k := 0; k < 4; k++ {
			_, err = store.Ledger.ApplyContribution(ctx, domain.Contribution{
				CampaignID:    campaigns[r.Intn(len(campaigns))],
				InvestorID:    investor.ID,
				Amount:        int64(1+r.Intn(50)) * 100_00,
				PaymentID:     "seed_" + uuid.NewString(),
				PaymentMethod: "seed",
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}
