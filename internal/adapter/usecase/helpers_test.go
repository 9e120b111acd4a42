package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fundflow/internal/adapter/auth"
	"fundflow/internal/adapter/memory"
	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

type env struct {
	store    *memory.Store
	repos    port.Store
	accounts *AccountUseCase
	camps    *CampaignUseCase
}

func newEnv(t *testing.T) *env {
	t.Helper()
	s := memory.NewStore()
	repos := s.Repositories()
	return &env{
		store:    s,
		repos:    repos,
		accounts: NewAccountUseCase(repos.Accounts, auth.NewBcryptHasher(bcrypt.MinCost), auth.NewJWTIssuer("usecase-test-secret", time.Hour)),
		camps:    NewCampaignUseCase(repos.Campaigns),
	}
}

func (e *env) register(t *testing.T, role domain.Role) domain.Identity {
	t.Helper()
	sess, err := e.accounts.Register(context.Background(), port.RegisterReq{
		Name:     string(role) + " " + uuid.NewString()[:6],
		Email:    uuid.NewString() + "@example.com",
		Password: "password123",
		Role:     role,
	})
	require.NoError(t, err)
	return sess.User.Identity()
}

func (e *env) admin(t *testing.T) domain.Identity {
	t.Helper()
	a, err := e.accounts.CreateAdmin(context.Background(), "Root", uuid.NewString()+"@example.com", "password123")
	require.NoError(t, err)
	return a.Identity()
}

func (e *env) campaign(t *testing.T, owner domain.Identity, goal int64) *domain.Campaign {
	t.Helper()
	c, err := e.camps.Create(context.Background(), owner, campaignReq(goal))
	require.NoError(t, err)
	return c
}

func campaignReq(goal int64) port.CampaignReq {
	title, desc := "Solar roofs", "Cheap solar for everyone"
	deadline := time.Now().Add(30 * 24 * time.Hour)
	cat := domain.CategoryEnvironment
	return port.CampaignReq{
		Title:       &title,
		Description: &desc,
		GoalAmount:  &goal,
		Deadline:    &deadline,
		Category:    &cat,
	}
}

func ptr[T any](v T) *T {
	return &v
}
