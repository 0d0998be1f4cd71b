// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package testserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"sync"

	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/models"
	"github.com/gorilla/websocket"
)

const actionBufferSize = 64

var errServerClosed = errors.New("test server closed")

// Server is an in-process table server bound to a loopback port.
type Server struct {
	settings settings
	logger   *logger.Logger
	http     *httptest.Server
	upgrader websocket.Upgrader

	mu      sync.Mutex
	created bool
	table   *models.TableSnapshot
	peers   map[*peer]struct{}
	closed  bool

	actions   chan Action
	connected chan string
}

// New starts a server. Close must be called to release it.
func New(log *logger.Logger, opts ...Option) *Server {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Server{
		settings:  cfg,
		logger:    log.WithComponent("testserver"),
		peers:     make(map[*peer]struct{}),
		actions:   make(chan Action, actionBufferSize),
		connected: make(chan string, actionBufferSize),
	}
	s.http = httptest.NewServer(s.routes())
	return s
}

// URL returns the base URL of the server, e.g. http://127.0.0.1:43127.
func (s *Server) URL() string {
	return s.http.URL
}

// Close drops every realtime connection and stops the server.
func (s *Server) Close() {
	s.mu.Lock()
	s.closed = true
	peers := s.takePeersLocked()
	s.mu.Unlock()

	for _, p := range peers {
		p.close()
	}
	s.http.Close()
}

// Actions returns accepted action frames in arrival order.
func (s *Server) Actions() <-chan Action {
	return s.actions
}

// Connected receives the player id of every realtime connection after it has
// been greeted.
func (s *Server) Connected() <-chan string {
	return s.connected
}

// Table returns a copy of the current table, or nil before a hand started.
func (s *Server) Table() *models.TableSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.table == nil {
		return nil
	}
	t := s.table.Clone()
	return &t
}

// SetTable replaces the current table. It does not broadcast.
func (s *Server) SetTable(table models.TableSnapshot) {
	t := table.Clone()

	s.mu.Lock()
	s.table = &t
	s.mu.Unlock()
}

// Broadcast sends every frame, in order, to every realtime connection.
func (s *Server) Broadcast(frames ...any) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errServerClosed
	}
	peers := make([]*peer, 0, len(s.peers))
	for p := range s.peers {
		peers = append(peers, p)
	}
	s.mu.Unlock()

	var errs []error
	for _, p := range peers {
		for _, frame := range frames {
			if err := p.write(frame); err != nil {
				errs = append(errs, fmt.Errorf("player %s: %w", p.playerID, err))
				break
			}
		}
	}
	return errors.Join(errs...)
}

// Connections returns the number of live realtime connections.
func (s *Server) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.peers)
}

// DropConnections closes every realtime connection without a close frame, as
// a network failure would.
func (s *Server) DropConnections() {
	s.mu.Lock()
	peers := s.takePeersLocked()
	s.mu.Unlock()

	for _, p := range peers {
		p.drop()
	}
}

func (s *Server) takePeersLocked() []*peer {
	peers := make([]*peer, 0, len(s.peers))
	for p := range s.peers {
		peers = append(peers, p)
	}
	clear(s.peers)
	return peers
}

type peer struct {
	playerID string

	mu   sync.Mutex
	conn *websocket.Conn
}

func (p *peer) write(frame any) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if raw, ok := frame.(Raw); ok {
		return p.conn.WriteMessage(websocket.TextMessage, raw)
	}
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	return p.conn.WriteMessage(websocket.TextMessage, payload)
}

func (p *peer) close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	_ = p.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
	_ = p.conn.Close()
}

func (p *peer) drop() {
	_ = p.conn.UnderlyingConn().Close()
}
