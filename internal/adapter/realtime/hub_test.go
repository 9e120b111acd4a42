package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fundflow/internal/config/configs"
	"fundflow/internal/core/domain"
	"fundflow/internal/core/port/mocks"
	"fundflow/internal/metrics"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(h *Hub, account uuid.UUID, buffer int) *Client {
	c := &Client{
		hub:      h,
		identity: domain.Identity{AccountID: account},
		send:     make(chan []byte, buffer),
		rooms:    make(map[uuid.UUID]struct{}),
	}
	h.register(c)
	return c
}

func message(conv, sender uuid.UUID, seq int64) domain.Message {
	return domain.Message{
		ConversationID: conv,
		Seq:            seq,
		SenderID:       sender,
		Sender:         domain.AccountRef{ID: sender},
		Content:        "hi",
	}
}

func TestDeliverSkipsSenderAccountAndOtherRooms(t *testing.T) {
	h := NewHub(metrics.New(), discard())
	conv := &domain.Conversation{ID: uuid.New()}
	alice, bob := uuid.New(), uuid.New()

	aliceTab1 := testClient(h, alice, 4)
	aliceTab2 := testClient(h, alice, 4)
	bobConn := testClient(h, bob, 4)
	idle := testClient(h, uuid.New(), 4)
	for _, c := range []*Client{aliceTab1, aliceTab2, bobConn} {
		h.join(c, conv.ID)
	}

	h.NotifyMessage(context.Background(), conv, message(conv.ID, alice, 1))

	assert.Len(t, aliceTab1.send, 0)
	assert.Len(t, aliceTab2.send, 0)
	assert.Len(t, idle.send, 0)
	require.Len(t, bobConn.send, 1)

	var evt Event
	require.NoError(t, json.Unmarshal(<-bobConn.send, &evt))
	assert.Equal(t, TypeMessage, evt.Type)
	assert.Equal(t, conv.ID, evt.ConversationID)
	require.NotNil(t, evt.Message)
	assert.Equal(t, int64(1), evt.Message.Seq)
}

func TestDeliverDropsWhenBufferFull(t *testing.T) {
	h := NewHub(nil, discard())
	conv := &domain.Conversation{ID: uuid.New()}
	slow := testClient(h, uuid.New(), 1)
	h.join(slow, conv.ID)

	sender := uuid.New()
	for seq := int64(1); seq <= 3; seq++ {
		h.NotifyMessage(context.Background(), conv, message(conv.ID, sender, seq))
	}
	require.Len(t, slow.send, 1)

	var evt Event
	require.NoError(t, json.Unmarshal(<-slow.send, &evt))
	assert.Equal(t, int64(1), evt.Message.Seq)
}

func TestUnregisterLeavesRoomsAndClosesQueue(t *testing.T) {
	h := NewHub(nil, discard())
	convID := uuid.New()
	c := testClient(h, uuid.New(), 1)
	h.join(c, convID)
	require.Equal(t, 1, h.RoomSize(convID))

	h.unregister(c)
	assert.Zero(t, h.RoomSize(convID))
	_, open := <-c.send
	assert.False(t, open)

	// joining or delivering after close must not panic
	h.join(c, convID)
	h.Deliver(Event{Type: TypeMessage, ConversationID: convID})
	h.unregister(c)
}

type memBroker struct {
	mu   sync.Mutex
	subs []func(Event)
}

func (b *memBroker) Publish(evt Event) error {
	b.mu.Lock()
	subs := slices.Clone(b.subs)
	b.mu.Unlock()
	for _, deliver := range subs {
		deliver(evt)
	}
	return nil
}

func (b *memBroker) Subscribe(deliver func(Event)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, deliver)
	return nil
}

func TestBrokerFansOutAcrossHubs(t *testing.T) {
	broker := &memBroker{}
	first, second := NewHub(nil, discard()), NewHub(nil, discard())
	require.NoError(t, first.UseBroker(broker))
	require.NoError(t, second.UseBroker(broker))

	conv := &domain.Conversation{ID: uuid.New()}
	local := testClient(first, uuid.New(), 4)
	remote := testClient(second, uuid.New(), 4)
	first.join(local, conv.ID)
	second.join(remote, conv.ID)

	first.NotifyMessage(context.Background(), conv, message(conv.ID, uuid.New(), 1))

	assert.Len(t, local.send, 1)
	assert.Len(t, remote.send, 1)
}

type wsEnv struct {
	hub    *Hub
	chat   *mocks.MockChatUseCase
	server *httptest.Server
}

func newWSEnv(t *testing.T) *wsEnv {
	t.Helper()
	hub := NewHub(nil, discard())
	chat := mocks.NewMockChatUseCase(t)
	gw := NewGateway(hub, chat, configs.Realtime{SendBuffer: 8, MaxFrameBytes: 4096}, []string{"*"}, discard())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.URL.Query().Get("as"))
		if err != nil {
			http.Error(w, "unauthenticated", http.StatusUnauthorized)
			return
		}
		gw.Serve(w, r, domain.Identity{AccountID: id, Name: "user", Role: domain.RoleInvestor})
	}))
	t.Cleanup(srv.Close)
	return &wsEnv{hub: hub, chat: chat, server: srv}
}

func (e *wsEnv) dial(t *testing.T, account uuid.UUID) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(e.server.URL, "http") + "/?as=" + account.String()
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var evt Event
	require.NoError(t, conn.ReadJSON(&evt))
	return evt
}

func byAccount(id uuid.UUID) any {
	return mock.MatchedBy(func(i domain.Identity) bool { return i.AccountID == id })
}

func TestWebsocketJoinSendAndTyping(t *testing.T) {
	e := newWSEnv(t)
	alice, bob, mallory := uuid.New(), uuid.New(), uuid.New()
	conv := &domain.Conversation{
		ID:           uuid.New(),
		Participants: []domain.AccountRef{{ID: alice}, {ID: bob}},
	}

	e.chat.EXPECT().Conversation(mock.Anything, byAccount(alice), conv.ID).Return(conv, nil)
	e.chat.EXPECT().Conversation(mock.Anything, byAccount(bob), conv.ID).Return(conv, nil)
	e.chat.EXPECT().Conversation(mock.Anything, byAccount(mallory), conv.ID).Return(nil, domain.ErrForbidden)
	e.chat.EXPECT().
		AppendMessage(mock.Anything, byAccount(alice), conv.ID, "hello bob").
		RunAndReturn(func(ctx context.Context, id domain.Identity, convID uuid.UUID, content string) (*domain.Message, error) {
			msg := message(convID, id.AccountID, 1)
			msg.Content = content
			e.hub.NotifyMessage(ctx, conv, msg)
			return &msg, nil
		})

	aliceConn := e.dial(t, alice)
	bobConn := e.dial(t, bob)
	malloryConn := e.dial(t, mallory)

	for _, c := range []*websocket.Conn{aliceConn, bobConn, malloryConn} {
		require.NoError(t, c.WriteJSON(map[string]any{"type": TypeJoin, "conversationId": conv.ID}))
	}

	evt := readEvent(t, malloryConn)
	assert.Equal(t, TypeError, evt.Type)
	require.NotNil(t, evt.Error)
	assert.Equal(t, "forbidden", evt.Error.Kind)

	require.Eventually(t, func() bool { return e.hub.RoomSize(conv.ID) == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, aliceConn.WriteJSON(map[string]any{
		"type": TypeSend, "conversationId": conv.ID, "content": "hello bob",
	}))
	evt = readEvent(t, bobConn)
	assert.Equal(t, TypeMessage, evt.Type)
	require.NotNil(t, evt.Message)
	assert.Equal(t, "hello bob", evt.Message.Content)
	assert.Equal(t, alice, evt.Message.Sender.ID)

	require.NoError(t, bobConn.WriteJSON(map[string]any{"type": TypeTyping, "conversationId": conv.ID}))
	evt = readEvent(t, aliceConn)
	assert.Equal(t, TypeUserTyping, evt.Type)
	require.NotNil(t, evt.User)
	assert.Equal(t, bob, evt.User.ID)
	require.NotNil(t, evt.IsTyping)
	assert.True(t, *evt.IsTyping)

	// typing without joining is rejected
	require.NoError(t, malloryConn.WriteJSON(map[string]any{"type": TypeTyping, "conversationId": conv.ID}))
	evt = readEvent(t, malloryConn)
	assert.Equal(t, TypeError, evt.Type)
	assert.Equal(t, "forbidden", evt.Error.Kind)

	require.NoError(t, malloryConn.WriteJSON(map[string]any{"type": "dance"}))
	evt = readEvent(t, malloryConn)
	assert.Equal(t, "validation_failed", evt.Error.Kind)
}

func TestWebsocketLeaveStopsDelivery(t *testing.T) {
	e := newWSEnv(t)
	alice := uuid.New()
	conv := &domain.Conversation{ID: uuid.New(), Participants: []domain.AccountRef{{ID: alice}}}
	e.chat.EXPECT().Conversation(mock.Anything, byAccount(alice), conv.ID).Return(conv, nil)

	conn := e.dial(t, alice)
	require.NoError(t, conn.WriteJSON(map[string]any{"type": TypeJoin, "conversationId": conv.ID}))
	require.Eventually(t, func() bool { return e.hub.RoomSize(conv.ID) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": TypeLeave, "conversationId": conv.ID}))
	require.Eventually(t, func() bool { return e.hub.RoomSize(conv.ID) == 0 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
}
