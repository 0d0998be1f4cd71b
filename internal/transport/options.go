package transport

import (
	"time"

	"github.com/MKhiriev/go-poker-client/internal/config"
)

const (
	defaultDialTimeout   = 10 * time.Second
	defaultWriteTimeout  = 5 * time.Second
	defaultSendQueueSize = 16

	// eventBufferSize bounds how far the reader may run ahead of the consumer.
	eventBufferSize = 64
	// maxMessageSize is the read limit for a single inbound frame.
	maxMessageSize   = 1 << 20
	closeGracePeriod = time.Second
)

// Options tune a connection. Zero timeouts and queue size select the
// defaults. A PingInterval that is not positive disables keepalive.
type Options struct {
	DialTimeout   time.Duration
	WriteTimeout  time.Duration
	PingInterval  time.Duration
	SendQueueSize int
}

// OptionsFromConfig maps the transport section of the client config.
func OptionsFromConfig(cfg config.ClientTransport) Options {
	return Options{
		DialTimeout:   cfg.DialTimeout,
		WriteTimeout:  cfg.WriteTimeout,
		PingInterval:  cfg.PingInterval,
		SendQueueSize: cfg.SendQueueSize,
	}
}

func (o Options) withDefaults() Options {
	if o.DialTimeout <= 0 {
		o.DialTimeout = defaultDialTimeout
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = defaultWriteTimeout
	}
	if o.SendQueueSize <= 0 {
		o.SendQueueSize = defaultSendQueueSize
	}
	return o
}

// keepalive reports whether pings are sent and the read deadline enforced.
func (o Options) keepalive() bool {
	return o.PingInterval > 0
}

// pongWait is how long the reader waits for any frame before giving up on an
// idle connection.
func (o Options) pongWait() time.Duration {
	return 2 * o.PingInterval
}
