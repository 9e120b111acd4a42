package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundflow/internal/core/domain"
)

func TestCreateAccountDuplicateEmail(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	a := &domain.Account{ID: uuid.New(), Email: "a@example.com", Role: domain.RoleStartup}
	require.NoError(t, s.CreateAccount(ctx, a))

	b := &domain.Account{ID: uuid.New(), Email: "a@example.com", Role: domain.RoleInvestor}
	require.ErrorIs(t, s.CreateAccount(ctx, b), domain.ErrConflict)

	page, err := s.ListAccounts(ctx, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Pagination.Total)
}

func TestListCampaignsDefaultsToActive(t *testing.T) {
	f := newFixture(t, 5_000_00)
	ctx := context.Background()
	draft := &domain.Campaign{
		ID: uuid.New(), CreatorID: f.creator.ID, Title: "Draft", Description: "d",
		GoalAmount: 5_000_00, Deadline: time.Now().Add(time.Hour), Category: domain.CategoryArts,
		Status: domain.StatusDraft,
	}
	require.NoError(t, f.store.CreateCampaign(ctx, draft))

	page, err := f.store.ListCampaigns(ctx, domain.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, f.campaign.ID, page.Items[0].ID)

	status := domain.StatusDraft
	page, err = f.store.ListCampaigns(ctx, domain.CampaignFilter{Status: &status})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, draft.ID, page.Items[0].ID)

	page, err = f.store.ListCampaigns(ctx, domain.CampaignFilter{AllStatuses: true})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, draft.ID, page.Items[0].ID, "newest first")

	page, err = f.store.ListCampaigns(ctx, domain.CampaignFilter{Page: domain.PageRequest{Page: 5}})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)

	page, err = f.store.ListCampaigns(ctx, domain.CampaignFilter{Page: domain.PageRequest{Page: domain.MaxPage, Limit: domain.MaxPageSize}})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestConversationScopes(t *testing.T) {
	f := newFixture(t, 5_000_00)
	ctx := context.Background()
	inv := newAccount(t, f.store, domain.RoleInvestor)

	c1, err := f.store.GetOrCreateConversation(ctx, inv.ID, f.creator.ID, nil)
	require.NoError(t, err)
	c2, err := f.store.GetOrCreateConversation(ctx, f.creator.ID, inv.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, c1.ID, c2.ID, "participant order must not matter")

	campaignID := f.campaign.ID
	c3, err := f.store.GetOrCreateConversation(ctx, inv.ID, f.creator.ID, &campaignID)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c3.ID, "campaign scope is a separate conversation")
	require.NotNil(t, c3.Campaign)
	assert.Equal(t, f.campaign.Title, c3.Campaign.Title)
}

func TestAppendMessageSequenceAndActivity(t *testing.T) {
	f := newFixture(t, 5_000_00)
	ctx := context.Background()
	inv := newAccount(t, f.store, domain.RoleInvestor)
	conv, err := f.store.GetOrCreateConversation(ctx, inv.ID, f.creator.ID, nil)
	require.NoError(t, err)

	before := conv.LastMessageAt
	for i := 0; i < 3; i++ {
		m := &domain.Message{ConversationID: conv.ID, SenderID: inv.ID, Content: "hi"}
		require.NoError(t, f.store.AppendMessage(ctx, m))
		assert.Equal(t, int64(i+1), m.Seq)
	}
	conv, err = f.store.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.True(t, conv.LastMessageAt.After(before))

	msgs, err := f.store.ListMessages(ctx, conv.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, int64(2), msgs[0].Seq)
	assert.Equal(t, inv.Name, msgs[0].Sender.Name)

	n, err := f.store.MarkRead(ctx, conv.ID, f.creator.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	n, err = f.store.MarkRead(ctx, conv.ID, inv.ID)
	require.NoError(t, err)
	assert.Zero(t, n, "own messages are not marked")
}

func TestListConversationsByActivity(t *testing.T) {
	f := newFixture(t, 5_000_00)
	ctx := context.Background()
	a := newAccount(t, f.store, domain.RoleInvestor)
	b := newAccount(t, f.store, domain.RoleInvestor)
	ca, err := f.store.GetOrCreateConversation(ctx, f.creator.ID, a.ID, nil)
	require.NoError(t, err)
	cb, err := f.store.GetOrCreateConversation(ctx, f.creator.ID, b.ID, nil)
	require.NoError(t, err)

	require.NoError(t, f.store.AppendMessage(ctx, &domain.Message{ConversationID: ca.ID, SenderID: a.ID, Content: "ping"}))

	list, err := f.store.ListConversations(ctx, f.creator.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ca.ID, list[0].ID)
	assert.Equal(t, cb.ID, list[1].ID)

	list, err = f.store.ListConversations(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
