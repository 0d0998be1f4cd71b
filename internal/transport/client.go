package transport

import (
	"context"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/internal/utils"
	"github.com/MKhiriev/go-poker-client/models"
	"github.com/gorilla/websocket"
)

// Client creates connections and remembers the most recent one. It is safe
// for concurrent use.
type Client struct {
	opts   Options
	dialer *websocket.Dialer
	logger *logger.Logger

	mu      sync.RWMutex
	current *Connection
}

// NewClient returns a Client that dials with opts.
func NewClient(opts Options, log *logger.Logger) *Client {
	opts = opts.withDefaults()
	return &Client{
		opts: opts,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: opts.DialTimeout,
		},
		logger: log.WithComponent("transport"),
	}
}

// Connect starts a new connection to endpoint for identity and makes it the
// current one. It returns immediately with the connection in the connecting
// state; the outcome of the handshake is reported on [Connection.Events].
// Cancelling ctx closes the connection.
//
// A previous connection is not closed; that is left to its owner.
func (cl *Client) Connect(ctx context.Context, endpoint string, identity models.SessionIdentity) *Connection {
	conn := newConnection(endpoint, identity, cl.opts, cl.dialer, cl.logger.WithSession(identity))

	cl.mu.Lock()
	cl.current = conn
	cl.mu.Unlock()

	conn.start(ctx)
	return conn
}

// Current returns the connection made by the last Connect, or nil.
func (cl *Client) Current() *Connection {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return cl.current
}

// State returns the state of the current connection, or unconnected when
// there is none.
func (cl *Client) State() models.ConnectionState {
	if conn := cl.Current(); conn != nil {
		return conn.State()
	}
	return models.ConnectionUnconnected
}

// Send sends payload on the current connection. It returns [ErrNotOpen] when
// there is no current connection.
func (cl *Client) Send(payload []byte) error {
	conn := cl.Current()
	if conn == nil {
		return ErrNotOpen
	}
	return conn.Send(payload)
}

// Close closes the current connection, if any.
func (cl *Client) Close() error {
	if conn := cl.Current(); conn != nil {
		return conn.Close()
	}
	return nil
}

// Endpoint derives the realtime URL for identity from the HTTP base address
// of the table server.
func Endpoint(baseURL string, identity models.SessionIdentity) (string, error) {
	return utils.WebsocketURL(baseURL, identity.TableID, identity.PlayerID)
}
