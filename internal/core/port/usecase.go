package port

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
)

// Session is the result of a successful registration or login.
type Session struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	User      *domain.Account `json:"user"`
}

// RegisterReq holds registration input.
type RegisterReq struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
	Company  string
	Bio      string
}

// ProfileReq holds editable profile fields.
type ProfileReq struct {
	Name    string
	Email   string
	Company string
	Bio     string
}

// AccountUseCase covers registration, login and profiles.
type AccountUseCase interface {
	Register(ctx context.Context, req RegisterReq) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	// Authenticate resolves a bearer token to an active account.
	Authenticate(ctx context.Context, token string) (*domain.Account, error)
	Me(ctx context.Context, id domain.Identity) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id domain.Identity, req ProfileReq) (*domain.Account, error)
}

// CampaignReq holds the editable fields of a campaign. Nil fields are left
// unchanged on update.
type CampaignReq struct {
	Title       *string
	Description *string
	GoalAmount  *int64
	Deadline    *time.Time
	Category    *domain.Category
	Images      []string
	Status      *domain.CampaignStatus
}

// CampaignUseCase covers the campaign store.
type CampaignUseCase interface {
	Create(ctx context.Context, id domain.Identity, req CampaignReq) (*domain.Campaign, error)
	Get(ctx context.Context, campaignID uuid.UUID) (*domain.Campaign, error)
	List(ctx context.Context, f domain.CampaignFilter) (domain.Page[domain.Campaign], error)
	Update(ctx context.Context, id domain.Identity, campaignID uuid.UUID, req CampaignReq) (*domain.Campaign, error)
	Delete(ctx context.Context, id domain.Identity, campaignID uuid.UUID) error
	AppendUpdate(ctx context.Context, id domain.Identity, campaignID uuid.UUID, title, content string) (*domain.CampaignUpdate, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Campaign, error)
	CreatorStats(ctx context.Context, creatorID uuid.UUID) (*domain.CreatorStats, error)
}

// IntentResp is returned to the client to complete a card payment.
type IntentResp struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// ConfirmReq asserts that a payment intent was paid.
type ConfirmReq struct {
	PaymentIntentID string
	CampaignID      uuid.UUID
	Amount          int64
}

// InvestmentUseCase covers payments and the funding ledger.
type InvestmentUseCase interface {
	CreatePaymentIntent(ctx context.Context, id domain.Identity, campaignID uuid.UUID, amount int64) (*IntentResp, error)
	ConfirmPayment(ctx context.Context, id domain.Identity, req ConfirmReq) (*domain.Investment, error)
	ListForInvestor(ctx context.Context, id domain.Identity, investorID uuid.UUID) ([]domain.Investment, error)
	ListAll(ctx context.Context, id domain.Identity) ([]domain.Investment, error)
}

// ChatUseCase covers conversations and messages.
type ChatUseCase interface {
	GetOrCreate(ctx context.Context, id domain.Identity, other uuid.UUID, campaignID *uuid.UUID) (*domain.Conversation, error)
	ListFor(ctx context.Context, id domain.Identity) ([]domain.Conversation, error)
	// Conversation returns a conversation the caller participates in.
	Conversation(ctx context.Context, id domain.Identity, conversationID uuid.UUID) (*domain.Conversation, error)
	Messages(ctx context.Context, id domain.Identity, conversationID uuid.UUID, afterSeq int64, limit int) ([]domain.Message, error)
	AppendMessage(ctx context.Context, id domain.Identity, conversationID uuid.UUID, content string) (*domain.Message, error)
	MarkRead(ctx context.Context, id domain.Identity, conversationID uuid.UUID) (int64, error)
}

// AdminOverview is the admin dashboard payload.
type AdminOverview struct {
	Stats           domain.AdminStats `json:"stats"`
	RecentUsers     []domain.Account  `json:"recentUsers"`
	RecentCampaigns []domain.Campaign `json:"recentCampaigns"`
}

// AdminUseCase covers moderation and platform statistics.
type AdminUseCase interface {
	Overview(ctx context.Context, id domain.Identity) (*AdminOverview, error)
	Users(ctx context.Context, id domain.Identity, page domain.PageRequest) (domain.Page[domain.Account], error)
	SetUserActive(ctx context.Context, id domain.Identity, userID uuid.UUID, active bool) (*domain.Account, error)
	Campaigns(ctx context.Context, id domain.Identity, page domain.PageRequest) (domain.Page[domain.Campaign], error)
	SetCampaignStatus(ctx context.Context, id domain.Identity, campaignID uuid.UUID, status domain.CampaignStatus) (*domain.Campaign, error)
	ExportInvestments(ctx context.Context, id domain.Identity, w io.Writer) (contentType string, err error)
	PublicStats(ctx context.Context) (*domain.PlatformStats, error)
}
