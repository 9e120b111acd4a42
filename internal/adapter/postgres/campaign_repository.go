package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"fundflow/internal/core/domain"
)

const campaignSelect = `
	SELECT c.id, c.creator_id, a.name, a.company, a.role, c.title, c.description,
		c.goal_amount, c.raised_amount, c.deadline, c.category, c.status, c.images,
		c.featured, c.created_at, c.updated_at,
		(SELECT count(*) FROM campaign_backers b WHERE b.campaign_id = c.id)
	FROM campaigns c
	JOIN accounts a ON a.id = c.creator_id`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c       domain.Campaign
		creator domain.AccountRef
	)
	err := row.Scan(&c.ID, &c.CreatorID, &creator.Name, &creator.Company, &creator.Role,
		&c.Title, &c.Description, &c.GoalAmount, &c.RaisedAmount, &c.Deadline,
		&c.Category, &c.Status, &c.Images, &c.Featured, &c.CreatedAt, &c.UpdatedAt,
		&c.BackerCount)
	if err != nil {
		return c, err
	}
	creator.ID = c.CreatorID
	c.Creator = &creator
	return c, nil
}

func collectCampaigns(rows pgx.Rows) ([]domain.Campaign, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// CreateCampaign inserts a campaign. The raised amount always starts at zero.
func (s *Store) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.Images == nil {
		c.Images = []string{}
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO campaigns (id, creator_id, title, description, goal_amount, deadline,
			category, status, images, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.CreatorID, c.Title, c.Description, c.GoalAmount, c.Deadline,
		c.Category, c.Status, c.Images, c.Featured)
	if err != nil {
		return translate(err, "campaign")
	}
	created, err := s.GetCampaign(ctx, c.ID)
	if err != nil {
		return err
	}
	*c = *created
	return nil
}

func (s *Store) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(s.pool.QueryRow(ctx, campaignSelect+` WHERE c.id = $1`, id))
	if err != nil {
		return nil, translate(err, "campaign "+id.String())
	}
	return &c, nil
}

// GetCampaignDetails loads the campaign with its backers and update log.
func (s *Store) GetCampaignDetails(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := s.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT b.investor_id, a.name, a.company, a.role, b.amount, b.first_backed_at
		FROM campaign_backers b
		JOIN accounts a ON a.id = b.investor_id
		WHERE b.campaign_id = $1
		ORDER BY b.first_backed_at, b.investor_id`, id)
	if err != nil {
		return nil, fmt.Errorf("list backers: %w", err)
	}
	c.Backers, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Backer, error) {
		b := domain.Backer{CampaignID: id}
		err := row.Scan(&b.InvestorID, &b.Investor.Name, &b.Investor.Company, &b.Investor.Role,
			&b.Amount, &b.FirstBackedAt)
		b.Investor.ID = b.InvestorID
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("list backers: %w", err)
	}

	rows, err = s.pool.Query(ctx, `
		SELECT id, title, content, created_at FROM campaign_updates
		WHERE campaign_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	c.Updates, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignUpdate, error) {
		u := domain.CampaignUpdate{CampaignID: id}
		err := row.Scan(&u.ID, &u.Title, &u.Content, &u.CreatedAt)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	return c, nil
}

// ListCampaigns returns a filtered page newest first. Without an explicit
// status only active campaigns are listed.
func (s *Store) ListCampaigns(ctx context.Context, f domain.CampaignFilter) (domain.Page[domain.Campaign], error) {
	page := f.Page.Normalize()
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if !f.AllStatuses {
		status := domain.StatusActive
		if f.Status != nil {
			status = *f.Status
		}
		add("c.status = $%d", status)
	}
	if f.Category != nil {
		add("c.category = $%d", *f.Category)
	}
	if f.CreatorID != nil {
		add("c.creator_id = $%d", *f.CreatorID)
	}
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM campaigns c`+clause, args...).Scan(&total); err != nil {
		return domain.Page[domain.Campaign]{}, fmt.Errorf("count campaigns: %w", err)
	}

	query := fmt.Sprintf(`%s%s ORDER BY c.created_at DESC, c.id LIMIT $%d OFFSET $%d`,
		campaignSelect, clause, len(args)+1, len(args)+2)
	rows, err := s.pool.Query(ctx, query, append(args, page.Limit, page.Offset())...)
	if err != nil {
		return domain.Page[domain.Campaign]{}, fmt.Errorf("list campaigns: %w", err)
	}
	items, err := collectCampaigns(rows)
	if err != nil {
		return domain.Page[domain.Campaign]{}, fmt.Errorf("list campaigns: %w", err)
	}
	return domain.Page[domain.Campaign]{Items: items, Pagination: domain.NewPagination(page, total)}, nil
}

func (s *Store) ListCampaignsByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, campaignSelect+` WHERE c.creator_id = $1 ORDER BY c.created_at DESC, c.id`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list campaigns by creator: %w", err)
	}
	items, err := collectCampaigns(rows)
	if err != nil {
		return nil, fmt.Errorf("list campaigns by creator: %w", err)
	}
	return items, nil
}

// UpdateCampaign stores the editable fields. raised_amount is owned by the
// ledger and never written here.
func (s *Store) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.Images == nil {
		c.Images = []string{}
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE campaigns SET title = $2, description = $3, goal_amount = $4, deadline = $5,
			category = $6, status = $7, images = $8, featured = $9, updated_at = now()
		WHERE id = $1`,
		c.ID, c.Title, c.Description, c.GoalAmount, c.Deadline, c.Category, c.Status,
		c.Images, c.Featured)
	if err != nil {
		return translate(err, "campaign "+c.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: campaign %s", domain.ErrNotFound, c.ID)
	}
	updated, err := s.GetCampaign(ctx, c.ID)
	if err != nil {
		return err
	}
	*c = *updated
	return nil
}

func (s *Store) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return translate(err, "campaign "+id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: campaign %s", domain.ErrNotFound, id)
	}
	return nil
}

func (s *Store) AddCampaignUpdate(ctx context.Context, u *domain.CampaignUpdate) error {
	return s.inTx(ctx, pgx.ReadCommitted, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO campaign_updates (id, campaign_id, title, content)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at`,
			u.ID, u.CampaignID, u.Title, u.Content).Scan(&u.CreatedAt)
		if err != nil {
			return translate(err, "campaign "+u.CampaignID.String())
		}
		_, err = tx.Exec(ctx, `UPDATE campaigns SET updated_at = $2 WHERE id = $1`, u.CampaignID, u.CreatedAt)
		return err
	})
}
