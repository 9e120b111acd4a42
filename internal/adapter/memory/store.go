// Package memory keeps every repository in process memory. All state sits
// behind one lock, so each operation, including a whole ledger contribution,
// is applied atomically with respect to every reader.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

type conversation struct {
	conv     domain.Conversation
	scope    string
	messages []domain.Message
}

// Store implements every repository port in memory.
type Store struct {
	mu sync.RWMutex

	accounts     map[uuid.UUID]*domain.Account
	accountOrder []uuid.UUID
	emails       map[string]uuid.UUID

	campaigns     map[uuid.UUID]*domain.Campaign
	campaignOrder []uuid.UUID
	backers       map[uuid.UUID][]*domain.Backer
	updates       map[uuid.UUID][]domain.CampaignUpdate

	investments []*domain.Investment
	payments    map[string]struct{}

	conversations map[uuid.UUID]*conversation
	scopes        map[string]uuid.UUID

	now func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		accounts:      make(map[uuid.UUID]*domain.Account),
		emails:        make(map[string]uuid.UUID),
		campaigns:     make(map[uuid.UUID]*domain.Campaign),
		backers:       make(map[uuid.UUID][]*domain.Backer),
		updates:       make(map[uuid.UUID][]domain.CampaignUpdate),
		payments:      make(map[string]struct{}),
		conversations: make(map[uuid.UUID]*conversation),
		scopes:        make(map[string]uuid.UUID),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Repositories returns the store as a port.Store bundle.
func (s *Store) Repositories() port.Store {
	return port.Store{
		Accounts:      s,
		Campaigns:     s,
		Ledger:        s,
		Conversations: s,
		Stats:         s,
	}
}

// ref must be called with s.mu held.
func (s *Store) ref(id uuid.UUID) domain.AccountRef {
	a, ok := s.accounts[id]
	if !ok {
		return domain.AccountRef{ID: id}
	}
	return domain.AccountRef{ID: a.ID, Name: a.Name, Company: a.Company, Role: a.Role}
}

func paginate[T any](items []T, p domain.PageRequest) domain.Page[T] {
	p = p.Normalize()
	total := len(items)
	start := min(max(p.Offset(), 0), total)
	end := min(start+p.Limit, total)
	out := make([]T, 0, end-start)
	return domain.Page[T]{
		Items:      append(out, items[start:end]...),
		Pagination: domain.NewPagination(p, total),
	}
}
