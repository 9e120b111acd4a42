package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"fundflow/internal/core/domain"
)

// ledgerIsolation is read committed: the campaign row lock orders increments
// and the unique payment_id index rejects replays, so serializable would only
// add aborts under a burst of confirmations.
const ledgerIsolation = pgx.ReadCommitted

// ApplyContribution applies a confirmed payment in a single transaction. The
// campaign row is locked first so increments on the same campaign queue behind
// each other, and the unique payment_id constraint rejects a payment that was
// already applied.
func (s *Store) ApplyContribution(ctx context.Context, c domain.Contribution) (*domain.Investment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	method := c.PaymentMethod
	if method == "" {
		method = "card"
	}

	var inv domain.Investment
	err := s.inTx(ctx, ledgerIsolation, func(tx pgx.Tx) error {
		var (
			creatorID uuid.UUID
			ref       domain.CampaignRef
		)
		err := tx.QueryRow(ctx, `
			SELECT id, title, goal_amount, raised_amount, deadline, creator_id
			FROM campaigns WHERE id = $1 FOR UPDATE`, c.CampaignID,
		).Scan(&ref.ID, &ref.Title, &ref.GoalAmount, &ref.RaisedAmount, &ref.Deadline, &creatorID)
		if err != nil {
			return translate(err, "campaign "+c.CampaignID.String())
		}
		ref.CreatorID = &creatorID

		var applied bool
		err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM investments WHERE payment_id = $1)`, c.PaymentID).Scan(&applied)
		if err != nil {
			return err
		}
		if applied {
			return fmt.Errorf("%w: %s", domain.ErrDuplicatePayment, c.PaymentID)
		}

		inv = domain.Investment{
			ID:            uuid.New(),
			InvestorID:    c.InvestorID,
			CampaignID:    c.CampaignID,
			Amount:        c.Amount,
			PaymentID:     c.PaymentID,
			Status:        domain.InvestmentCompleted,
			PaymentMethod: method,
		}
		err = tx.QueryRow(ctx, `
			INSERT INTO investments (id, investor_id, campaign_id, amount, payment_id, status, payment_method)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING created_at, updated_at`,
			inv.ID, inv.InvestorID, inv.CampaignID, inv.Amount, inv.PaymentID, inv.Status, inv.PaymentMethod,
		).Scan(&inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			if pgCode(err) == codeUniqueViolation {
				return fmt.Errorf("%w: %s", domain.ErrDuplicatePayment, c.PaymentID)
			}
			return translate(err, "investor "+c.InvestorID.String())
		}

		err = tx.QueryRow(ctx, `
			UPDATE campaigns SET raised_amount = raised_amount + $2, updated_at = now()
			WHERE id = $1 RETURNING raised_amount`, c.CampaignID, c.Amount).Scan(&ref.RaisedAmount)
		if err != nil {
			return fmt.Errorf("increment raised amount: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO campaign_backers (campaign_id, investor_id, amount, first_backed_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (campaign_id, investor_id)
			DO UPDATE SET amount = campaign_backers.amount + EXCLUDED.amount`,
			c.CampaignID, c.InvestorID, c.Amount, inv.CreatedAt)
		if err != nil {
			return fmt.Errorf("upsert backer: %w", err)
		}

		if err := addTotal(ctx, tx, "total_invested", c.InvestorID, c.Amount); err != nil {
			return err
		}
		if err := addTotal(ctx, tx, "total_raised", creatorID, c.Amount); err != nil {
			return err
		}
		inv.Campaign = &ref
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicatePayment) || errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("apply contribution: %w", err)
	}
	return &inv, nil
}

// addTotal increments one of the account total columns.
func addTotal(ctx context.Context, tx pgx.Tx, column string, id uuid.UUID, amount int64) error {
	tag, err := tx.Exec(ctx, `UPDATE accounts SET `+column+` = `+column+` + $2, updated_at = now() WHERE id = $1`, id, amount)
	if err != nil {
		return fmt.Errorf("increment %s: %w", column, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", domain.ErrNotFound, id)
	}
	return nil
}

const investmentSelect = `
	SELECT i.id, i.investor_id, i.campaign_id, i.amount, i.payment_id, i.status, i.payment_method,
		i.created_at, i.updated_at,
		a.name, a.company, a.role,
		c.title, c.goal_amount, c.raised_amount, c.deadline, c.creator_id
	FROM investments i
	JOIN accounts a ON a.id = i.investor_id
	LEFT JOIN campaigns c ON c.id = i.campaign_id`

func collectInvestments(rows pgx.Rows) ([]domain.Investment, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Investment, error) {
		var (
			inv      domain.Investment
			investor domain.AccountRef
			title    *string
			goal     *int64
			raised   *int64
			ref      domain.CampaignRef
		)
		err := row.Scan(&inv.ID, &inv.InvestorID, &inv.CampaignID, &inv.Amount, &inv.PaymentID,
			&inv.Status, &inv.PaymentMethod, &inv.CreatedAt, &inv.UpdatedAt,
			&investor.Name, &investor.Company, &investor.Role,
			&title, &goal, &raised, &ref.Deadline, &ref.CreatorID)
		if err != nil {
			return inv, err
		}
		investor.ID = inv.InvestorID
		inv.Investor = &investor
		ref.ID = inv.CampaignID
		if title != nil {
			ref.Title, ref.GoalAmount, ref.RaisedAmount = *title, *goal, *raised
		}
		inv.Campaign = &ref
		return inv, nil
	})
}

func (s *Store) ListInvestmentsByInvestor(ctx context.Context, investorID uuid.UUID) ([]domain.Investment, error) {
	rows, err := s.pool.Query(ctx, investmentSelect+` WHERE i.investor_id = $1 ORDER BY i.created_at DESC, i.id`, investorID)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	items, err := collectInvestments(rows)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	// the investor is the caller here, only the campaign is embedded
	for i := range items {
		items[i].Investor = nil
	}
	return items, nil
}

func (s *Store) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	rows, err := s.pool.Query(ctx, investmentSelect+` ORDER BY i.created_at DESC, i.id`)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	items, err := collectInvestments(rows)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	return items, nil
}
