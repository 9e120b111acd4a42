package realtime

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nats-io/nats.go"
)

// NATSBroker fans events out through NATS subjects of the form
// <prefix>.conversation.<id>.
type NATSBroker struct {
	conn   *nats.Conn
	prefix string
	logger *slog.Logger

	mu  sync.Mutex
	sub *nats.Subscription
}

// DialNATS connects to the NATS server and returns a broker on it.
func DialNATS(url, prefix string, logger *slog.Logger) (*NATSBroker, error) {
	nc, err := nats.Connect(url,
		nats.Name("fundflow-realtime"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", slog.Any("error", err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", slog.String("url", nc.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return NewNATSBroker(nc, prefix, logger), nil
}

// NewNATSBroker wraps an established connection.
func NewNATSBroker(nc *nats.Conn, prefix string, logger *slog.Logger) *NATSBroker {
	return &NATSBroker{conn: nc, prefix: prefix, logger: logger}
}

func (b *NATSBroker) subject(token string) string {
	return b.prefix + ".conversation." + token
}

func (b *NATSBroker) Publish(evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return b.conn.Publish(b.subject(evt.ConversationID.String()), data)
}

// Subscribe delivers every conversation event published by any instance.
func (b *NATSBroker) Subscribe(deliver func(Event)) error {
	sub, err := b.conn.Subscribe(b.subject("*"), func(m *nats.Msg) {
		var evt Event
		if err := json.Unmarshal(m.Data, &evt); err != nil {
			b.logger.Warn("malformed nats event", slog.String("subject", m.Subject), slog.Any("error", err))
			return
		}
		deliver(evt)
	})
	if err != nil {
		return fmt.Errorf("subscribe nats: %w", err)
	}
	b.mu.Lock()
	b.sub = sub
	b.mu.Unlock()
	return nil
}

// Close drains the subscription and the connection.
func (b *NATSBroker) Close() error {
	b.mu.Lock()
	sub := b.sub
	b.mu.Unlock()
	if sub != nil {
		_ = sub.Unsubscribe()
	}
	return b.conn.Drain()
}
