package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"fundflow/internal/core/domain"
)

const conversationSelect = `
	SELECT v.id, v.campaign_id, c.title, v.message_count, v.last_message_at, v.created_at
	FROM conversations v
	LEFT JOIN campaigns c ON c.id = v.campaign_id`

func scanConversation(row pgx.Row) (domain.Conversation, error) {
	var (
		conv  domain.Conversation
		title *string
	)
	err := row.Scan(&conv.ID, &conv.CampaignID, &title, &conv.MessageCount, &conv.LastMessageAt, &conv.CreatedAt)
	if err != nil {
		return conv, err
	}
	if conv.CampaignID != nil {
		conv.Campaign = &domain.CampaignRef{ID: *conv.CampaignID}
		if title != nil {
			conv.Campaign.Title = *title
		}
	}
	return conv, nil
}

// GetOrCreateConversation relies on the unique scope key: concurrent callers
// for the same pair and campaign end up with the same row.
func (s *Store) GetOrCreateConversation(ctx context.Context, a, b uuid.UUID, campaignID *uuid.UUID) (*domain.Conversation, error) {
	key := domain.ScopeKey(a, b, campaignID)
	var id uuid.UUID
	err := s.inTx(ctx, pgx.ReadCommitted, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO conversations (id, campaign_id, scope_key)
			VALUES ($1, $2, $3)
			ON CONFLICT (scope_key) DO NOTHING
			RETURNING id`, uuid.New(), campaignID, key).Scan(&id)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return tx.QueryRow(ctx, `SELECT id FROM conversations WHERE scope_key = $1`, key).Scan(&id)
		case err != nil:
			return translate(err, "conversation")
		}
		for _, p := range []uuid.UUID{a, b} {
			if _, err := tx.Exec(ctx, `INSERT INTO conversation_participants (conversation_id, account_id)
				VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, p); err != nil {
				return translate(err, "account "+p.String())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetConversation(ctx, id)
}

func (s *Store) GetConversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	conv, err := scanConversation(s.pool.QueryRow(ctx, conversationSelect+` WHERE v.id = $1`, id))
	if err != nil {
		return nil, translate(err, "conversation "+id.String())
	}
	parts, err := s.participants(ctx, `WHERE p.conversation_id = $1`, id)
	if err != nil {
		return nil, err
	}
	conv.Participants = parts[id]
	return &conv, nil
}

// ListConversations returns the account's conversations most recent first.
func (s *Store) ListConversations(ctx context.Context, accountID uuid.UUID) ([]domain.Conversation, error) {
	rows, err := s.pool.Query(ctx, conversationSelect+`
		JOIN conversation_participants me ON me.conversation_id = v.id AND me.account_id = $1
		ORDER BY v.last_message_at DESC, v.id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	convs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Conversation, error) {
		return scanConversation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	parts, err := s.participants(ctx, `WHERE p.conversation_id IN (
		SELECT conversation_id FROM conversation_participants WHERE account_id = $1)`, accountID)
	if err != nil {
		return nil, err
	}
	for i := range convs {
		convs[i].Participants = parts[convs[i].ID]
	}
	return convs, nil
}

// participants loads participant refs grouped by conversation.
func (s *Store) participants(ctx context.Context, where string, arg any) (map[uuid.UUID][]domain.AccountRef, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT p.conversation_id, a.id, a.name, a.company, a.role
		FROM conversation_participants p
		JOIN accounts a ON a.id = p.account_id
		`+where+`
		ORDER BY p.conversation_id, a.id`, arg)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()
	out := make(map[uuid.UUID][]domain.AccountRef)
	for rows.Next() {
		var (
			convID uuid.UUID
			ref    domain.AccountRef
		)
		if err := rows.Scan(&convID, &ref.ID, &ref.Name, &ref.Company, &ref.Role); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		out[convID] = append(out[convID], ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return out, nil
}

// AppendMessage bumps the conversation counter under its row lock and uses
// the new value as the message sequence number.
func (s *Store) AppendMessage(ctx context.Context, m *domain.Message) error {
	return s.inTx(ctx, pgx.ReadCommitted, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			UPDATE conversations
			SET message_count = message_count + 1,
				last_message_at = greatest(clock_timestamp(), last_message_at + interval '1 microsecond')
			WHERE id = $1
			RETURNING message_count, last_message_at`, m.ConversationID).Scan(&m.Seq, &m.CreatedAt)
		if err != nil {
			return translate(err, "conversation "+m.ConversationID.String())
		}
		m.Read = false
		_, err = tx.Exec(ctx, `
			INSERT INTO messages (conversation_id, seq, sender_id, content, is_read, created_at)
			VALUES ($1, $2, $3, $4, FALSE, $5)`,
			m.ConversationID, m.Seq, m.SenderID, m.Content, m.CreatedAt)
		if err != nil {
			return translate(err, "message")
		}
		m.Sender = domain.AccountRef{ID: m.SenderID}
		return tx.QueryRow(ctx, `SELECT name, company, role FROM accounts WHERE id = $1`, m.SenderID).
			Scan(&m.Sender.Name, &m.Sender.Company, &m.Sender.Role)
	})
}

// ListMessages pages forward from afterSeq in ascending order.
func (s *Store) ListMessages(ctx context.Context, conversationID uuid.UUID, afterSeq int64, limit int) ([]domain.Message, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM conversations WHERE id = $1)`, conversationID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: conversation %s", domain.ErrNotFound, conversationID)
	}
	var lim *int
	if limit > 0 {
		lim = &limit
	}
	rows, err := s.pool.Query(ctx, `
		SELECT m.seq, m.sender_id, a.name, a.company, a.role, m.content, m.is_read, m.created_at
		FROM messages m
		JOIN accounts a ON a.id = m.sender_id
		WHERE m.conversation_id = $1 AND m.seq > $2
		ORDER BY m.seq
		LIMIT $3`, conversationID, afterSeq, lim)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	msgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Message, error) {
		m := domain.Message{ConversationID: conversationID}
		err := row.Scan(&m.Seq, &m.SenderID, &m.Sender.Name, &m.Sender.Company, &m.Sender.Role,
			&m.Content, &m.Read, &m.CreatedAt)
		m.Sender.ID = m.SenderID
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *Store) MarkRead(ctx context.Context, conversationID, reader uuid.UUID) (int64, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE messages SET is_read = TRUE
		WHERE conversation_id = $1 AND sender_id <> $2 AND NOT is_read`, conversationID, reader)
	if err != nil {
		return 0, fmt.Errorf("mark read: %w", err)
	}
	return tag.RowsAffected(), nil
}
