package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"fundflow/internal/core/domain"
)

const accountColumns = `id, name, email, password_hash, role, company, bio, is_active,
	total_raised, total_invested, created_at, updated_at`

func scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.Company, &a.Bio,
		&a.IsActive, &a.TotalRaised, &a.TotalInvested, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// CreateAccount inserts a new account. A taken email yields ErrConflict.
func (s *Store) CreateAccount(ctx context.Context, a *domain.Account) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO accounts (id, name, email, password_hash, role, company, bio, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		a.ID, a.Name, a.Email, a.PasswordHash, a.Role, a.Company, a.Bio, a.IsActive,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return translate(err, "account "+a.Email)
}

// GetAccount returns an account by id.
func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	a, err := scanAccount(s.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
	if err != nil {
		return nil, translate(err, "account "+id.String())
	}
	return &a, nil
}

// GetAccountByEmail returns an account by email.
func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a, err := scanAccount(s.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email))
	if err != nil {
		return nil, translate(err, "account "+email)
	}
	return &a, nil
}

// UpdateProfile stores the profile fields and refreshes a from the row.
func (s *Store) UpdateProfile(ctx context.Context, a *domain.Account) error {
	row := s.pool.QueryRow(ctx, `
		UPDATE accounts SET name = $2, email = $3, company = $4, bio = $5, updated_at = now()
		WHERE id = $1
		RETURNING `+accountColumns,
		a.ID, a.Name, a.Email, a.Company, a.Bio)
	updated, err := scanAccount(row)
	if err != nil {
		return translate(err, "account "+a.Email)
	}
	*a = updated
	return nil
}

// SetAccountActive toggles the activity flag.
func (s *Store) SetAccountActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Account, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE accounts SET is_active = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+accountColumns, id, active)
	a, err := scanAccount(row)
	if err != nil {
		return nil, translate(err, "account "+id.String())
	}
	return &a, nil
}

// ListAccounts returns a page of accounts newest first.
func (s *Store) ListAccounts(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Account], error) {
	page = page.Normalize()
	var total int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM accounts`).Scan(&total); err != nil {
		return domain.Page[domain.Account]{}, fmt.Errorf("count accounts: %w", err)
	}
	rows, err := s.pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts
		ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`, page.Limit, page.Offset())
	if err != nil {
		return domain.Page[domain.Account]{}, fmt.Errorf("list accounts: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return domain.Page[domain.Account]{}, fmt.Errorf("list accounts: %w", err)
	}
	return domain.Page[domain.Account]{Items: items, Pagination: domain.NewPagination(page, total)}, nil
}
