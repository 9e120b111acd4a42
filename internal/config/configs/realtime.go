package configs

import "time"

// Realtime configures websocket connections.
type Realtime struct {
	// SendBuffer is the number of outbound frames queued per connection.
	// Frames to a full queue are dropped.
	SendBuffer   int           `env:"SEND_BUFFER" envDefault:"64"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	PongTimeout  time.Duration `env:"PONG_TIMEOUT" envDefault:"60s"`
	// MaxFrameBytes limits inbound frame size.
	MaxFrameBytes int64 `env:"MAX_FRAME_BYTES" envDefault:"16384"`
}

// PingPeriod returns how often pings are sent; it must be below PongTimeout.
func (r Realtime) PingPeriod() time.Duration {
	return r.PongTimeout * 9 / 10
}
