package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

// CampaignUseCase implements the campaign store operations.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	now       func() time.Time
}

// NewCampaignUseCase wires the campaign usecase.
func NewCampaignUseCase(campaigns port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns, now: time.Now}
}

// Create stores a new campaign owned by the calling startup. New campaigns
// are active unless created as drafts.
func (u *CampaignUseCase) Create(ctx context.Context, id domain.Identity, req port.CampaignReq) (*domain.Campaign, error) {
	if id.Role != domain.RoleStartup {
		return nil, fmt.Errorf("%w: only startups can create campaigns", domain.ErrForbidden)
	}
	if req.Title == nil || req.Description == nil || req.GoalAmount == nil || req.Deadline == nil || req.Category == nil {
		return nil, domain.Validationf("title, description, goalAmount, deadline and category are required")
	}
	c := &domain.Campaign{
		ID:          uuid.New(),
		CreatorID:   id.AccountID,
		Title:       *req.Title,
		Description: *req.Description,
		GoalAmount:  *req.GoalAmount,
		Deadline:    req.Deadline.UTC(),
		Category:    *req.Category,
		Status:      domain.StatusActive,
		Images:      cleanImages(req.Images),
	}
	if req.Status != nil {
		if *req.Status != domain.StatusActive && *req.Status != domain.StatusDraft {
			return nil, domain.Validationf("new campaigns must be %q or %q", domain.StatusDraft, domain.StatusActive)
		}
		c.Status = *req.Status
	}
	if !c.Deadline.After(u.now()) {
		return nil, domain.Validationf("deadline must be in the future")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := u.campaigns.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns a campaign with backers and updates resolved.
func (u *CampaignUseCase) Get(ctx context.Context, campaignID uuid.UUID) (*domain.Campaign, error) {
	return u.campaigns.GetCampaignDetails(ctx, campaignID)
}

func (u *CampaignUseCase) List(ctx context.Context, f domain.CampaignFilter) (domain.Page[domain.Campaign], error) {
	if f.Category != nil && !f.Category.Valid() {
		return domain.Page[domain.Campaign]{}, domain.Validationf("unknown category %q", *f.Category)
	}
	if f.Status != nil && !f.Status.Valid() {
		return domain.Page[domain.Campaign]{}, domain.Validationf("unknown status %q", *f.Status)
	}
	f.Page = f.Page.Normalize()
	return u.campaigns.ListCampaigns(ctx, f)
}

// Update applies the non-nil fields of req. Only the creator or an admin may
// update, status changes follow the transition table, and suspension is an
// admin action.
func (u *CampaignUseCase) Update(ctx context.Context, id domain.Identity, campaignID uuid.UUID, req port.CampaignReq) (*domain.Campaign, error) {
	c, err := u.owned(ctx, id, campaignID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		c.Title = *req.Title
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.GoalAmount != nil {
		c.GoalAmount = *req.GoalAmount
	}
	if req.Deadline != nil {
		if !req.Deadline.After(u.now()) {
			return nil, domain.Validationf("deadline must be in the future")
		}
		c.Deadline = req.Deadline.UTC()
	}
	if req.Category != nil {
		c.Category = *req.Category
	}
	if req.Images != nil {
		c.Images = cleanImages(req.Images)
	}
	if req.Status != nil {
		if err = transition(id, c, *req.Status); err != nil {
			return nil, err
		}
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	if err = u.campaigns.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *CampaignUseCase) Delete(ctx context.Context, id domain.Identity, campaignID uuid.UUID) error {
	if _, err := u.owned(ctx, id, campaignID); err != nil {
		return err
	}
	return u.campaigns.DeleteCampaign(ctx, campaignID)
}

// AppendUpdate posts a progress note to the campaign's update log.
func (u *CampaignUseCase) AppendUpdate(ctx context.Context, id domain.Identity, campaignID uuid.UUID, title, content string) (*domain.CampaignUpdate, error) {
	title, content = strings.TrimSpace(title), strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, domain.Validationf("title and content are required")
	}
	if _, err := u.owned(ctx, id, campaignID); err != nil {
		return nil, err
	}
	upd := &domain.CampaignUpdate{ID: uuid.New(), CampaignID: campaignID, Title: title, Content: content}
	if err := u.campaigns.AddCampaignUpdate(ctx, upd); err != nil {
		return nil, err
	}
	return upd, nil
}

func (u *CampaignUseCase) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Campaign, error) {
	return u.campaigns.ListCampaignsByCreator(ctx, creatorID)
}

// CreatorStats aggregates over every campaign of the creator.
func (u *CampaignUseCase) CreatorStats(ctx context.Context, creatorID uuid.UUID) (*domain.CreatorStats, error) {
	campaigns, err := u.campaigns.ListCampaignsByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	st := domain.ComputeCreatorStats(campaigns)
	return &st, nil
}

func (u *CampaignUseCase) owned(ctx context.Context, id domain.Identity, campaignID uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !c.OwnedBy(id) {
		return nil, fmt.Errorf("%w: not the campaign owner", domain.ErrForbidden)
	}
	return c, nil
}

// transition moves c to next when the table and the caller's role allow it.
func transition(id domain.Identity, c *domain.Campaign, next domain.CampaignStatus) error {
	if !next.Valid() {
		return domain.Validationf("unknown status %q", next)
	}
	if !c.Status.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, c.Status, next)
	}
	if c.Status.AdminOnly(next) && !id.IsAdmin() {
		return fmt.Errorf("%w: only admins can suspend or reinstate campaigns", domain.ErrForbidden)
	}
	c.Status = next
	return nil
}

func cleanImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if img = strings.TrimSpace(img); img != "" {
			out = append(out, img)
		}
	}
	return out
}
