// Package realtime delivers chat events to websocket connections. A Hub
// tracks which connections joined which conversation; an optional Broker
// fans events out to every instance of the service.
package realtime

import (
	"github.com/google/uuid"

	"fundflow/internal/core/domain"
)

// Frame types.
const (
	TypeJoin       = "join-conversation"
	TypeLeave      = "leave-conversation"
	TypeSend       = "send-message"
	TypeTyping     = "typing"
	TypeMessage    = "new-message"
	TypeUserTyping = "user-typing"
	TypeError      = "error"
)

// Event is a server to client frame.
type Event struct {
	Type           string             `json:"type"`
	ConversationID uuid.UUID          `json:"conversationId"`
	Message        *domain.Message    `json:"message,omitempty"`
	User           *domain.AccountRef `json:"user,omitempty"`
	IsTyping       *bool              `json:"isTyping,omitempty"`
	Error          *ErrorBody         `json:"error,omitempty"`
}

// ErrorBody describes a rejected client frame.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// origin is the account whose connections must not receive the event.
func (e Event) origin() uuid.UUID {
	switch {
	case e.Message != nil:
		return e.Message.Sender.ID
	case e.User != nil:
		return e.User.ID
	}
	return uuid.Nil
}

// inbound is a client to server frame.
type inbound struct {
	Type           string    `json:"type"`
	ConversationID uuid.UUID `json:"conversationId"`
	Content        string    `json:"content"`
	IsTyping       *bool     `json:"isTyping"`
}
