package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

const (
	defaultMessageLimit = 50
	maxMessageLimit     = 200
)

// ChatUseCase implements conversations and messages. Every appended message
// is handed to the notifier for realtime delivery.
type ChatUseCase struct {
	accounts      port.AccountRepository
	conversations port.ConversationRepository
	notifier      port.MessageNotifier
}

// NewChatUseCase wires the chat usecase. notifier may be nil.
func NewChatUseCase(accounts port.AccountRepository, conversations port.ConversationRepository, notifier port.MessageNotifier) *ChatUseCase {
	return &ChatUseCase{accounts: accounts, conversations: conversations, notifier: notifier}
}

// GetOrCreate returns the caller's conversation with other in the given
// campaign scope.
func (u *ChatUseCase) GetOrCreate(ctx context.Context, id domain.Identity, other uuid.UUID, campaignID *uuid.UUID) (*domain.Conversation, error) {
	if other == uuid.Nil {
		return nil, domain.Validationf("participant id is required")
	}
	if other == id.AccountID {
		return nil, domain.Validationf("cannot start a conversation with yourself")
	}
	if _, err := u.accounts.GetAccount(ctx, other); err != nil {
		return nil, err
	}
	return u.conversations.GetOrCreateConversation(ctx, id.AccountID, other, campaignID)
}

func (u *ChatUseCase) ListFor(ctx context.Context, id domain.Identity) ([]domain.Conversation, error) {
	return u.conversations.ListConversations(ctx, id.AccountID)
}

// Conversation returns the conversation if the caller participates in it.
func (u *ChatUseCase) Conversation(ctx context.Context, id domain.Identity, conversationID uuid.UUID) (*domain.Conversation, error) {
	conv, err := u.conversations.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(id.AccountID) {
		return nil, fmt.Errorf("%w: not a participant", domain.ErrForbidden)
	}
	return conv, nil
}

// Messages pages forward through a conversation from afterSeq.
func (u *ChatUseCase) Messages(ctx context.Context, id domain.Identity, conversationID uuid.UUID, afterSeq int64, limit int) ([]domain.Message, error) {
	if _, err := u.Conversation(ctx, id, conversationID); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = defaultMessageLimit
	case limit > maxMessageLimit:
		limit = maxMessageLimit
	}
	return u.conversations.ListMessages(ctx, conversationID, max(afterSeq, 0), limit)
}

// AppendMessage stores a message from the caller and notifies the other
// participants.
func (u *ChatUseCase) AppendMessage(ctx context.Context, id domain.Identity, conversationID uuid.UUID, content string) (*domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.Validationf("message content is required")
	}
	if utf8.RuneCountInString(content) > domain.MaxMessageLength {
		return nil, domain.Validationf("message must be at most %d characters", domain.MaxMessageLength)
	}
	conv, err := u.Conversation(ctx, id, conversationID)
	if err != nil {
		return nil, err
	}
	msg := &domain.Message{ConversationID: conversationID, SenderID: id.AccountID, Content: content}
	if err = u.conversations.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}
	if u.notifier != nil {
		u.notifier.NotifyMessage(ctx, conv, *msg)
	}
	return msg, nil
}

// MarkRead marks the messages of the other participants as read.
func (u *ChatUseCase) MarkRead(ctx context.Context, id domain.Identity, conversationID uuid.UUID) (int64, error) {
	if _, err := u.Conversation(ctx, id, conversationID); err != nil {
		return 0, err
	}
	return u.conversations.MarkRead(ctx, conversationID, id.AccountID)
}
