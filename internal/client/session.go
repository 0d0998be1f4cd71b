package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-poker-client/internal/config"
	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/internal/service"
	"github.com/MKhiriev/go-poker-client/internal/transport"
	"github.com/MKhiriev/go-poker-client/models"
	"github.com/sethvargo/go-retry"
)

// Session drives one table session.
type Session struct {
	services *service.ClientServices
	conns    *transport.Client
	baseURL  string
	policy   config.ClientReconnect

	identity models.SessionIdentity
	endpoint string
	started  bool

	logger *logger.Logger
}

// NewSession returns a session that bootstraps through services, connects
// through conns to the realtime endpoint derived from baseURL and reconnects
// according to policy.
func NewSession(services *service.ClientServices, conns *transport.Client, baseURL string, policy config.ClientReconnect, log *logger.Logger) *Session {
	return &Session{
		services: services,
		conns:    conns,
		baseURL:  baseURL,
		policy:   policy,
		logger:   log.WithComponent("session"),
	}
}

// Start runs create, join and start and binds the resulting identity to the
// store. A failure is a *service.BootstrapError and nothing is connected.
func (s *Session) Start(ctx context.Context) (models.BootstrapResult, error) {
	result, err := s.services.Bootstrapper.Bootstrap(ctx)
	if err != nil {
		return models.BootstrapResult{}, err
	}

	endpoint, err := transport.Endpoint(s.baseURL, result.Identity)
	if err != nil {
		return models.BootstrapResult{}, fmt.Errorf("realtime endpoint: %w", err)
	}
	if err = s.services.Store.SetIdentity(result.Identity); err != nil {
		return models.BootstrapResult{}, err
	}

	s.identity = result.Identity
	s.endpoint = endpoint
	s.started = true
	s.logger = s.logger.WithSession(result.Identity)
	s.logger.Info().Str("hand_id", result.HandID).Str("endpoint", endpoint).Msg("session bootstrapped")

	return result, nil
}

// Run connects and feeds every event of the connection to the reconciler, in
// order, until ctx is cancelled. It is the only caller of the reconciler.
//
// When the connection is lost, Run reconnects if the policy allows it;
// otherwise, or once the attempts are exhausted, it keeps the session in the
// closed state until ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	if !s.started {
		return ErrNotStarted
	}

	s.services.Reconciler.SetConnection(models.ConnectionConnecting, nil)
	conn := s.conns.Connect(ctx, s.endpoint, s.identity)
	for {
		s.pump(conn)
		_ = conn.Close()

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !s.policy.Enabled {
			s.logger.Warn().Err(conn.Err()).Msg("connection closed, reconnect disabled")
			break
		}

		next, err := s.reconnect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Error().Err(err).Msg("reconnect attempts exhausted")
			break
		}
		conn = next
	}

	<-ctx.Done()
	return ctx.Err()
}

// pump applies events until the connection's stream ends.
func (s *Session) pump(conn *transport.Connection) {
	for ev := range conn.Events() {
		s.apply(ev)
	}
}

func (s *Session) apply(ev transport.Event) {
	switch e := ev.(type) {
	case transport.Inbound:
		s.services.Reconciler.Apply(e.Payload)
	case transport.StateChanged:
		s.services.Reconciler.SetConnection(e.State, e.Err)
	}
}

// reconnect retries connectOnce with capped exponential backoff.
func (s *Session) reconnect(ctx context.Context) (*transport.Connection, error) {
	s.services.Reconciler.MarkStale()

	backoff := retry.NewExponential(s.policy.InitialBackoff)
	backoff = retry.WithCappedDuration(s.policy.MaxBackoff, backoff)
	if s.policy.MaxAttempts > 0 {
		backoff = retry.WithMaxRetries(s.policy.MaxAttempts-1, backoff)
	}

	var (
		conn    *transport.Connection
		attempt int
	)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		c, err := s.connectOnce(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Int("attempt", attempt).Msg("reconnect attempt failed")
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("attempt", attempt).Msg("reconnected")
	return conn, nil
}

// connectOnce opens a new connection, waits for it to open and applies a
// freshly fetched snapshot before the connection is reported open, so that
// submissions resume only on up-to-date state.
func (s *Session) connectOnce(ctx context.Context) (*transport.Connection, error) {
	s.services.Reconciler.SetConnection(models.ConnectionConnecting, nil)
	conn := s.conns.Connect(ctx, s.endpoint, s.identity)

	if err := awaitOpen(ctx, conn); err != nil {
		_ = conn.Close()
		s.services.Reconciler.SetConnection(models.ConnectionClosed, err)
		return nil, err
	}

	snapshot, err := s.services.Bootstrapper.FetchState(ctx, s.identity.TableID)
	if err != nil {
		_ = conn.Close()
		s.services.Reconciler.SetConnection(models.ConnectionClosed, err)
		return nil, err
	}

	s.services.Reconciler.SetConnection(models.ConnectionOpen, nil)
	s.services.Reconciler.ApplySnapshot(snapshot)
	return conn, nil
}

// awaitOpen consumes the first event of conn, which is always a state change.
func awaitOpen(ctx context.Context, conn *transport.Connection) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case ev, ok := <-conn.Events():
		if !ok {
			return ErrNotOpened
		}
		sc, isState := ev.(transport.StateChanged)
		if !isState || sc.State != models.ConnectionOpen {
			if isState && sc.Err != nil {
				return sc.Err
			}
			return ErrNotOpened
		}
		return nil
	}
}
