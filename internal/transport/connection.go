package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/models"
	"github.com/gorilla/websocket"
)

// Connection is one run of the connection state machine against a single
// endpoint. It is created in the connecting state by [Client.Connect] and
// never leaves closed once it gets there; reconnecting means creating a new
// Connection.
type Connection struct {
	endpoint string
	identity models.SessionIdentity
	opts     Options
	dialer   *websocket.Dialer
	logger   *logger.Logger

	events chan Event
	send   chan []byte
	done   chan struct{}
	cancel context.CancelFunc

	mu      sync.Mutex
	state   models.ConnectionState
	netConn net.Conn
	ws      *websocket.Conn
	cause   error

	closeOnce sync.Once
	wg        sync.WaitGroup
}

func newConnection(endpoint string, identity models.SessionIdentity, opts Options, base *websocket.Dialer, log *logger.Logger) *Connection {
	opts = opts.withDefaults()
	c := &Connection{
		endpoint: endpoint,
		identity: identity,
		opts:     opts,
		logger:   log,
		events:   make(chan Event, eventBufferSize),
		send:     make(chan []byte, opts.SendQueueSize),
		done:     make(chan struct{}),
		cancel:   func() {},
		state:    models.ConnectionUnconnected,
	}

	dialer := websocket.Dialer{}
	if base != nil {
		dialer = *base
	}
	dialer.NetDialContext = c.netDial
	c.dialer = &dialer

	return c
}

// netDial keeps hold of the raw connection so that shutdown can interrupt a
// handshake in progress.
func (c *Connection) netDial(ctx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	nc, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == models.ConnectionClosed {
		_ = nc.Close()
		return nil, net.ErrClosed
	}
	c.netConn = nc
	return nc, nil
}

// start moves the connection to connecting and launches the dial. The
// connection is shut down when ctx is cancelled.
func (c *Connection) start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.mu.Lock()
	c.state = models.ConnectionConnecting
	c.mu.Unlock()

	stop := context.AfterFunc(ctx, c.shutdown)

	c.wg.Add(1)
	go func() {
		defer stop()
		c.run(ctx)
	}()
}

// Events returns the ordered stream of inbound payloads and state changes.
// The channel is closed when the connection is closed.
func (c *Connection) Events() <-chan Event {
	return c.events
}

// State returns the current connection state.
func (c *Connection) State() models.ConnectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the failure that closed the connection, if any.
func (c *Connection) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cause
}

// Identity returns the session the connection was opened for.
func (c *Connection) Identity() models.SessionIdentity {
	return c.identity
}

// Endpoint returns the URL this connection dials.
func (c *Connection) Endpoint() string {
	return c.endpoint
}

// Send enqueues payload for the writer goroutine. It does not block: it
// returns [ErrNotOpen] unless the connection is open and [ErrSendQueueFull]
// when the queue has no room. Dropped payloads are never retried.
func (c *Connection) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != models.ConnectionOpen {
		return ErrNotOpen
	}

	select {
	case c.send <- payload:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// Close moves the connection to closed, sends a close frame when it was open,
// and waits for the reader and writer goroutines to exit. Undelivered events
// are discarded, so no event is observable after Close returns. It is safe to
// call Close more than once and from several goroutines.
func (c *Connection) Close() error {
	c.shutdown()
	c.wg.Wait()

	for range c.events {
	}
	return nil
}

// shutdown is the non-blocking half of Close.
func (c *Connection) shutdown() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		ws, nc := c.ws, c.netConn
		wasOpen := c.state == models.ConnectionOpen
		c.state = models.ConnectionClosed
		c.mu.Unlock()

		close(c.done)
		c.cancel()

		if ws == nil && nc != nil {
			_ = nc.Close()
		}

		if ws != nil && wasOpen {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))
			if err := ws.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
				c.logger.Debug().Err(err).Msg("closing websocket")
			}
		}
		c.logger.Debug().Msg("connection closed by client")
	})
}

func (c *Connection) run(ctx context.Context) {
	defer c.wg.Done()
	defer close(c.events)

	c.logger.Debug().Str("endpoint", c.endpoint).Msg("dialing")

	dialCtx, cancel := context.WithTimeout(ctx, c.opts.DialTimeout)
	ws, resp, err := c.dialer.DialContext(dialCtx, c.endpoint, http.Header{})
	cancel()
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			err = fmt.Errorf("%w: handshake status %d: %w", ErrConnectFailed, resp.StatusCode, err)
		} else {
			err = fmt.Errorf("%w: %w", ErrConnectFailed, err)
		}
		c.finish(nil, err)
		return
	}

	c.mu.Lock()
	if c.state == models.ConnectionClosed {
		c.mu.Unlock()
		_ = ws.Close()
		return
	}
	c.ws = ws
	c.state = models.ConnectionOpen
	c.mu.Unlock()

	c.logger.Info().Str("endpoint", c.endpoint).Msg("connection open")
	c.emit(StateChanged{State: models.ConnectionOpen})

	stopWriter := make(chan struct{})
	c.wg.Add(1)
	go c.writeLoop(ws, stopWriter)

	err = c.readLoop(ws)
	close(stopWriter)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrConnectionLost, err)
	}
	c.finish(ws, err)
}

// finish records cause and moves to closed unless Close got there first, in
// which case the transition has already happened and nothing is reported.
func (c *Connection) finish(ws *websocket.Conn, cause error) {
	c.mu.Lock()
	if c.state == models.ConnectionClosed {
		c.mu.Unlock()
		return
	}
	c.state = models.ConnectionClosed
	if c.cause == nil {
		c.cause = cause
	}
	cause = c.cause
	c.mu.Unlock()

	if ws != nil {
		_ = ws.Close()
	}

	c.logger.Warn().Err(cause).Msg("connection closed")
	c.emit(StateChanged{State: models.ConnectionClosed, Err: cause})
}

// fail records a writer failure and closes the socket so the reader returns.
func (c *Connection) fail(ws *websocket.Conn, err error) {
	c.mu.Lock()
	if c.cause == nil && c.state != models.ConnectionClosed {
		c.cause = fmt.Errorf("%w: %w", ErrConnectionLost, err)
	}
	c.mu.Unlock()
	_ = ws.Close()
}

// emit delivers ev unless the connection has been shut down.
func (c *Connection) emit(ev Event) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.events <- ev:
		return true
	case <-c.done:
		return false
	}
}

func (c *Connection) readLoop(ws *websocket.Conn) error {
	ws.SetReadLimit(maxMessageSize)
	if c.opts.keepalive() {
		_ = ws.SetReadDeadline(time.Now().Add(c.opts.pongWait()))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(c.opts.pongWait()))
		})
	}

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			return err
		}
		if c.opts.keepalive() {
			_ = ws.SetReadDeadline(time.Now().Add(c.opts.pongWait()))
		}
		if !c.emit(Inbound{Payload: data}) {
			return nil
		}
	}
}

func (c *Connection) writeLoop(ws *websocket.Conn, stop <-chan struct{}) {
	defer c.wg.Done()

	var ping <-chan time.Time
	if c.opts.keepalive() {
		ticker := time.NewTicker(c.opts.PingInterval)
		defer ticker.Stop()
		ping = ticker.C
	}

	for {
		select {
		case <-stop:
			return
		case <-c.done:
			return
		case payload := <-c.send:
			_ = ws.SetWriteDeadline(time.Now().Add(c.opts.WriteTimeout))
			if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.logger.Error().Err(err).Msg("write failed")
				c.fail(ws, err)
				return
			}
		case <-ping:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(c.opts.WriteTimeout)); err != nil {
				c.logger.Error().Err(err).Msg("ping failed")
				c.fail(ws, err)
				return
			}
		}
	}
}
