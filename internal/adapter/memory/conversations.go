package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
)

// view copies a conversation with participants and campaign resolved.
// s.mu must be held.
func (s *Store) view(c *conversation) *domain.Conversation {
	cp := c.conv
	cp.Participants = make([]domain.AccountRef, 0, len(c.conv.Participants))
	for _, p := range c.conv.Participants {
		cp.Participants = append(cp.Participants, s.ref(p.ID))
	}
	if c.conv.CampaignID != nil {
		cp.Campaign = s.campaignRef(*c.conv.CampaignID)
	}
	return &cp
}

func (s *Store) GetOrCreateConversation(_ context.Context, a, b uuid.UUID, campaignID *uuid.UUID) (*domain.Conversation, error) {
	key := domain.ScopeKey(a, b, campaignID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.scopes[key]; ok {
		return s.view(s.conversations[id]), nil
	}
	for _, id := range []uuid.UUID{a, b} {
		if _, ok := s.accounts[id]; !ok {
			return nil, fmt.Errorf("%w: account %s", domain.ErrNotFound, id)
		}
	}
	if campaignID != nil {
		if _, ok := s.campaigns[*campaignID]; !ok {
			return nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, *campaignID)
		}
		cid := *campaignID
		campaignID = &cid
	}
	now := s.now()
	c := &conversation{
		conv: domain.Conversation{
			ID:            uuid.New(),
			CampaignID:    campaignID,
			Participants:  []domain.AccountRef{{ID: a}, {ID: b}},
			LastMessageAt: now,
			CreatedAt:     now,
		},
		scope: key,
	}
	s.conversations[c.conv.ID] = c
	s.scopes[key] = c.conv.ID
	return s.view(c), nil
}

func (s *Store) GetConversation(_ context.Context, id uuid.UUID) (*domain.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversations[id]
	if !ok {
		return nil, fmt.Errorf("%w: conversation %s", domain.ErrNotFound, id)
	}
	return s.view(c), nil
}

func (s *Store) ListConversations(_ context.Context, accountID uuid.UUID) ([]domain.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Conversation{}
	for _, c := range s.conversations {
		if c.conv.HasParticipant(accountID) {
			out = append(out, *s.view(c))
		}
	}
	slices.SortFunc(out, func(x, y domain.Conversation) int {
		return y.LastMessageAt.Compare(x.LastMessageAt)
	})
	return out, nil
}

func (s *Store) AppendMessage(_ context.Context, m *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[m.ConversationID]
	if !ok {
		return fmt.Errorf("%w: conversation %s", domain.ErrNotFound, m.ConversationID)
	}
	now := s.now()
	if !now.After(c.conv.LastMessageAt) {
		now = c.conv.LastMessageAt.Add(1)
	}
	c.conv.MessageCount++
	c.conv.LastMessageAt = now
	m.Seq = c.conv.MessageCount
	m.CreatedAt = now
	m.Read = false
	m.Sender = s.ref(m.SenderID)
	c.messages = append(c.messages, *m)
	return nil
}

func (s *Store) ListMessages(_ context.Context, conversationID uuid.UUID, afterSeq int64, limit int) ([]domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.conversations[conversationID]
	if !ok {
		return nil, fmt.Errorf("%w: conversation %s", domain.ErrNotFound, conversationID)
	}
	start := int(max(afterSeq, 0))
	if start > len(c.messages) {
		start = len(c.messages)
	}
	end := len(c.messages)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	out := slices.Clone(c.messages[start:end])
	for i := range out {
		out[i].Sender = s.ref(out[i].SenderID)
	}
	return out, nil
}

func (s *Store) MarkRead(_ context.Context, conversationID, reader uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[conversationID]
	if !ok {
		return 0, fmt.Errorf("%w: conversation %s", domain.ErrNotFound, conversationID)
	}
	var n int64
	for i := range c.messages {
		if c.messages[i].SenderID != reader && !c.messages[i].Read {
			c.messages[i].Read = true
			n++
		}
	}
	return n, nil
}
