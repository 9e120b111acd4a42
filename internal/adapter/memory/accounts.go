package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
)

func (s *Store) CreateAccount(_ context.Context, a *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.emails[a.Email]; taken {
		return fmt.Errorf("%w: email already registered", domain.ErrConflict)
	}
	now := s.now()
	a.CreatedAt, a.UpdatedAt = now, now
	cp := *a
	s.accounts[a.ID] = &cp
	s.emails[a.Email] = a.ID
	s.accountOrder = append(s.accountOrder, a.ID)
	return nil
}

func (s *Store) GetAccount(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", domain.ErrNotFound, id)
	}
	cp := *a
	return &cp, nil
}

func (s *Store) GetAccountByEmail(_ context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emails[email]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", domain.ErrNotFound, email)
	}
	cp := *s.accounts[id]
	return &cp, nil
}

func (s *Store) UpdateProfile(_ context.Context, a *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.accounts[a.ID]
	if !ok {
		return fmt.Errorf("%w: account %s", domain.ErrNotFound, a.ID)
	}
	if owner, taken := s.emails[a.Email]; taken && owner != a.ID {
		return fmt.Errorf("%w: email already registered", domain.ErrConflict)
	}
	delete(s.emails, cur.Email)
	s.emails[a.Email] = a.ID
	cur.Name, cur.Email, cur.Company, cur.Bio = a.Name, a.Email, a.Company, a.Bio
	cur.UpdatedAt = s.now()
	*a = *cur
	return nil
}

func (s *Store) SetAccountActive(_ context.Context, id uuid.UUID, active bool) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", domain.ErrNotFound, id)
	}
	a.IsActive = active
	a.UpdatedAt = s.now()
	cp := *a
	return &cp, nil
}

func (s *Store) ListAccounts(_ context.Context, page domain.PageRequest) (domain.Page[domain.Account], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]domain.Account, 0, len(s.accountOrder))
	for _, id := range slices.Backward(s.accountOrder) {
		all = append(all, *s.accounts[id])
	}
	return paginate(all, page), nil
}
