package domain

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// MaxMessageLength bounds the content of a single chat message in runes.
const MaxMessageLength = 5000

// Conversation is a message thread between accounts, optionally scoped to a
// campaign. Messages are stored separately and addressed by sequence number.
type Conversation struct {
	ID            uuid.UUID    `json:"id"`
	CampaignID    *uuid.UUID   `json:"-"`
	Campaign      *CampaignRef `json:"campaign,omitempty"`
	Participants  []AccountRef `json:"participants"`
	LastMessageAt time.Time    `json:"lastMessage"`
	MessageCount  int64        `json:"messageCount"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// HasParticipant reports whether the account takes part in the conversation.
func (c *Conversation) HasParticipant(id uuid.UUID) bool {
	for _, p := range c.Participants {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ParticipantIDs returns the ids of all participants.
func (c *Conversation) ParticipantIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Participants))
	for _, p := range c.Participants {
		ids = append(ids, p.ID)
	}
	return ids
}

// Message is one chat message. Seq is assigned by the store and is strictly
// increasing within a conversation, starting at 1.
type Message struct {
	ConversationID uuid.UUID  `json:"conversationId"`
	Seq            int64      `json:"seq"`
	SenderID       uuid.UUID  `json:"-"`
	Sender         AccountRef `json:"sender"`
	Content        string     `json:"content"`
	Read           bool       `json:"read"`
	CreatedAt      time.Time  `json:"timestamp"`
}

// ScopeKey identifies a conversation by its unordered participant pair and
// campaign scope. Two accounts have at most one conversation per scope.
func ScopeKey(a, b uuid.UUID, campaignID *uuid.UUID) string {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	key := a.String() + ":" + b.String() + ":"
	if campaignID != nil {
		key += campaignID.String()
	}
	return key
}
