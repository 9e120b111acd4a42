package port

import (
	"context"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
)

// AccountRepository persists accounts. Lookups of unknown ids return
// domain.ErrNotFound and email collisions return domain.ErrConflict.
type AccountRepository interface {
	// CreateAccount stores a new account. a.ID must already be set.
	CreateAccount(ctx context.Context, a *domain.Account) error
	// GetAccount returns an account by id.
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	// GetAccountByEmail returns an account by its normalized email.
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
	// UpdateProfile stores name, email, company and bio of the account.
	UpdateProfile(ctx context.Context, a *domain.Account) error
	// SetAccountActive toggles the activity flag and returns the account.
	SetAccountActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Account, error)
	// ListAccounts returns accounts newest first.
	ListAccounts(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Account], error)
}

// CampaignRepository persists campaign metadata and update logs. The raised
// amount and backers are owned by the FundingLedger and never written here.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns the campaign with its creator resolved.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// GetCampaignDetails additionally resolves backers and updates.
	GetCampaignDetails(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ListCampaigns returns a page of campaigns newest first.
	ListCampaigns(ctx context.Context, f domain.CampaignFilter) (domain.Page[domain.Campaign], error)
	// ListCampaignsByCreator returns every campaign of a creator newest first.
	ListCampaignsByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Campaign, error)
	// UpdateCampaign stores the editable fields and status.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
	AddCampaignUpdate(ctx context.Context, u *domain.CampaignUpdate) error
}

// FundingLedger applies confirmed contributions. Implementations must be
// concurrency-safe: every contribution is applied atomically and increments
// on the same campaign are serialized.
type FundingLedger interface {
	// ApplyContribution records the investment, increments the campaign
	// raised amount, upserts the backer entry and increments the investor and
	// creator totals as one unit. A payment id that was already applied
	// returns domain.ErrDuplicatePayment and changes nothing.
	ApplyContribution(ctx context.Context, c domain.Contribution) (*domain.Investment, error)
	// ListInvestmentsByInvestor returns the investor's investments newest
	// first with campaign summaries resolved.
	ListInvestmentsByInvestor(ctx context.Context, investorID uuid.UUID) ([]domain.Investment, error)
	// ListInvestments returns all investments newest first with investor and
	// campaign resolved.
	ListInvestments(ctx context.Context) ([]domain.Investment, error)
}

// ConversationRepository persists conversations and their messages.
type ConversationRepository interface {
	// GetOrCreateConversation returns the conversation of the unordered pair
	// (a, b) in the given campaign scope, creating it when absent.
	GetOrCreateConversation(ctx context.Context, a, b uuid.UUID, campaignID *uuid.UUID) (*domain.Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	// ListConversations returns the account's conversations by last activity,
	// most recent first.
	ListConversations(ctx context.Context, accountID uuid.UUID) ([]domain.Conversation, error)
	// AppendMessage assigns the next sequence number, stores the message and
	// advances the conversation's last activity.
	AppendMessage(ctx context.Context, m *domain.Message) error
	// ListMessages returns up to limit messages with seq > afterSeq in
	// ascending order.
	ListMessages(ctx context.Context, conversationID uuid.UUID, afterSeq int64, limit int) ([]domain.Message, error)
	// MarkRead marks messages not sent by reader as read and returns how
	// many changed.
	MarkRead(ctx context.Context, conversationID, reader uuid.UUID) (int64, error)
}

// StatsRepository computes aggregate counters.
type StatsRepository interface {
	PlatformStats(ctx context.Context) (*domain.PlatformStats, error)
	AdminStats(ctx context.Context) (*domain.AdminStats, error)
}

// Store bundles every repository of one storage backend.
type Store struct {
	Accounts      AccountRepository
	Campaigns     CampaignRepository
	Ledger        FundingLedger
	Conversations ConversationRepository
	Stats         StatsRepository
}
