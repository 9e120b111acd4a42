package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"fundflow/internal/core/domain"
	"fundflow/internal/metrics"
)

// Broker carries events between service instances. Every event published
// through it is delivered back to every subscribed instance, including the
// publishing one.
type Broker interface {
	Publish(evt Event) error
	Subscribe(deliver func(Event)) error
}

// Hub tracks joined connections per conversation and delivers events to
// them. Delivery is best-effort: a connection whose send buffer is full
// misses the frame and can resume from the message cursor.
type Hub struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]map[*Client]struct{}
	conns map[*Client]struct{}

	broker  Broker
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewHub returns a hub delivering only within this process.
func NewHub(m *metrics.Metrics, logger *slog.Logger) *Hub {
	return &Hub{
		rooms:   make(map[uuid.UUID]map[*Client]struct{}),
		conns:   make(map[*Client]struct{}),
		metrics: m,
		logger:  logger,
	}
}

// UseBroker routes every broadcast through b and delivers what b receives
// to the local connections.
func (h *Hub) UseBroker(b Broker) error {
	if err := b.Subscribe(h.Deliver); err != nil {
		return err
	}
	h.mu.Lock()
	h.broker = b
	h.mu.Unlock()
	return nil
}

// NotifyMessage broadcasts a newly appended message to the conversation.
func (h *Hub) NotifyMessage(_ context.Context, conv *domain.Conversation, msg domain.Message) {
	h.broadcast(Event{Type: TypeMessage, ConversationID: conv.ID, Message: &msg})
}

func (h *Hub) broadcast(evt Event) {
	h.mu.RLock()
	b := h.broker
	h.mu.RUnlock()
	if b != nil {
		err := b.Publish(evt)
		if err == nil {
			return
		}
		h.logger.Warn("broker publish failed, delivering locally", slog.Any("error", err))
	}
	h.Deliver(evt)
}

// Deliver sends evt to the local connections that joined its conversation,
// skipping every connection of the originating account.
func (h *Hub) Deliver(evt Event) {
	frame, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("marshal event", slog.Any("error", err))
		return
	}
	origin := evt.origin()

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[evt.ConversationID] {
		if c.identity.AccountID == origin {
			continue
		}
		if !c.enqueue(frame) {
			h.metrics.FrameDropped()
			h.logger.Debug("dropped frame",
				slog.String("account_id", c.identity.AccountID.String()),
				slog.String("conversation_id", evt.ConversationID.String()))
		}
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
	h.metrics.ConnectionOpened()
	h.logger.Debug("realtime connected", slog.String("account_id", c.identity.AccountID.String()))
}

// unregister removes c from every room and closes its send queue.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.conns[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.conns, c)
	for id := range c.rooms {
		h.leaveLocked(c, id)
	}
	close(c.send)
	h.mu.Unlock()
	h.metrics.ConnectionClosed()
	h.logger.Debug("realtime disconnected", slog.String("account_id", c.identity.AccountID.String()))
}

func (h *Hub) join(c *Client, conversationID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[c]; !ok {
		return
	}
	room, ok := h.rooms[conversationID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[conversationID] = room
	}
	room[c] = struct{}{}
	c.rooms[conversationID] = struct{}{}
}

func (h *Hub) leave(c *Client, conversationID uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(c, conversationID)
}

func (h *Hub) leaveLocked(c *Client, conversationID uuid.UUID) {
	delete(c.rooms, conversationID)
	room := h.rooms[conversationID]
	delete(room, c)
	if len(room) == 0 {
		delete(h.rooms, conversationID)
	}
}

// joined reports whether c joined the conversation.
func (h *Hub) joined(c *Client, conversationID uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := c.rooms[conversationID]
	return ok
}

// RoomSize returns the number of local connections joined to a conversation.
func (h *Hub) RoomSize(conversationID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[conversationID])
}
