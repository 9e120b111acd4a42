package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"fundflow/internal/config/configs"
	"fundflow/internal/core/domain"
	"fundflow/internal/core/port"
)

const (
	frameTimeout        = 5 * time.Second
	defaultPongTimeout  = 60 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

// Client is one websocket connection of an authenticated account.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	identity domain.Identity
	send     chan []byte
	// rooms is guarded by hub.mu.
	rooms map[uuid.UUID]struct{}
}

// enqueue must be called with hub.mu held.
func (c *Client) enqueue(frame []byte) bool {
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// Gateway upgrades authenticated requests and runs the connection pumps.
type Gateway struct {
	hub      *Hub
	chat     port.ChatUseCase
	cfg      configs.Realtime
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewGateway returns a gateway accepting browser connections from the given
// origins. "*" accepts any origin.
func NewGateway(hub *Hub, chat port.ChatUseCase, cfg configs.Realtime, origins []string, logger *slog.Logger) *Gateway {
	if cfg.PongTimeout <= 0 {
		cfg.PongTimeout = defaultPongTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	g := &Gateway{hub: hub, chat: chat, cfg: cfg, logger: logger}
	g.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(origins, "*") || slices.Contains(origins, origin)
		},
	}
	return g
}

// Serve upgrades the request and blocks until the connection closes. The
// caller has already authenticated id.
func (g *Gateway) Serve(w http.ResponseWriter, r *http.Request, id domain.Identity) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader already replied with an HTTP error
		g.logger.Debug("websocket upgrade failed", slog.Any("error", err))
		return
	}
	c := &Client{
		hub:      g.hub,
		conn:     conn,
		identity: id,
		send:     make(chan []byte, max(g.cfg.SendBuffer, 1)),
		rooms:    make(map[uuid.UUID]struct{}),
	}
	g.hub.register(c)
	go g.writePump(c)
	g.readPump(r.Context(), c)
}

func (g *Gateway) readPump(ctx context.Context, c *Client) {
	defer func() {
		g.hub.unregister(c)
		_ = c.conn.Close()
	}()
	if g.cfg.MaxFrameBytes > 0 {
		c.conn.SetReadLimit(g.cfg.MaxFrameBytes)
	}
	_ = c.conn.SetReadDeadline(time.Now().Add(g.cfg.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(g.cfg.PongTimeout))
	})
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.logger.Debug("websocket read", slog.Any("error", err))
			}
			return
		}
		var in inbound
		if err = json.Unmarshal(data, &in); err != nil {
			g.reply(c, uuid.Nil, domain.Validationf("malformed frame"))
			continue
		}
		fctx, cancel := context.WithTimeout(ctx, frameTimeout)
		err = g.handle(fctx, c, in)
		cancel()
		if err != nil {
			g.reply(c, in.ConversationID, err)
		}
	}
}

func (g *Gateway) handle(ctx context.Context, c *Client, in inbound) error {
	switch in.Type {
	case TypeJoin:
		// participation is checked on every join, not only at connect
		if _, err := g.chat.Conversation(ctx, c.identity, in.ConversationID); err != nil {
			return err
		}
		g.hub.join(c, in.ConversationID)
	case TypeLeave:
		g.hub.leave(c, in.ConversationID)
	case TypeSend:
		// the chat usecase notifies the hub, which fans the message out
		if _, err := g.chat.AppendMessage(ctx, c.identity, in.ConversationID, in.Content); err != nil {
			return err
		}
	case TypeTyping:
		if !g.hub.joined(c, in.ConversationID) {
			return fmt.Errorf("%w: join the conversation first", domain.ErrForbidden)
		}
		typing := in.IsTyping == nil || *in.IsTyping
		g.hub.broadcast(Event{
			Type:           TypeUserTyping,
			ConversationID: in.ConversationID,
			User:           &domain.AccountRef{ID: c.identity.AccountID, Name: c.identity.Name, Role: c.identity.Role},
			IsTyping:       &typing,
		})
	default:
		return domain.Validationf("unknown frame type %q", in.Type)
	}
	return nil
}

// reply queues an error frame to the connection itself.
func (g *Gateway) reply(c *Client, conversationID uuid.UUID, err error) {
	kind := domain.Kind(err)
	text := err.Error()
	if kind == "internal_error" {
		g.logger.Error("realtime frame failed", slog.Any("error", err))
		text = "internal error"
	}
	frame, merr := json.Marshal(Event{
		Type:           TypeError,
		ConversationID: conversationID,
		Error:          &ErrorBody{Kind: kind, Message: text},
	})
	if merr != nil {
		return
	}
	g.hub.mu.RLock()
	defer g.hub.mu.RUnlock()
	if _, ok := g.hub.conns[c]; ok && !c.enqueue(frame) {
		g.hub.metrics.FrameDropped()
	}
}

func (g *Gateway) writePump(c *Client) {
	ticker := time.NewTicker(g.cfg.PingPeriod())
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(g.cfg.WriteTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(g.cfg.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
