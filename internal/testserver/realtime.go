package testserver

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-poker-client/internal/app"
	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/models"
	"github.com/go-chi/chi/v5"
)

func (s *Server) realtime(w http.ResponseWriter, r *http.Request) {
	if !s.knownTable(w, r) {
		return
	}
	log := logger.FromContext(r.Context())
	playerID := r.URL.Query().Get("player_id")

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	p := &peer{playerID: playerID, conn: conn}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = conn.Close()
		return
	}
	s.peers[p] = struct{}{}
	var table *models.TableSnapshot
	if s.table != nil {
		t := s.table.Clone()
		table = &t
	}
	s.mu.Unlock()
	defer s.removePeer(p)

	if table != nil {
		frames := append([]any{Snapshot(*table)}, s.settings.greeting...)
		for _, frame := range frames {
			if err = p.write(frame); err != nil {
				log.Warn().Err(err).Msg("greeting failed")
				return
			}
		}
	}

	select {
	case s.connected <- playerID:
	default:
	}
	log.Info().Str("table_id", chi.URLParam(r, "table_id")).Bool("greeted", table != nil).Msg("websocket upgraded")

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Str("player_id", playerID).Msg("realtime connection closed")
			return
		}
		s.handleFrame(p, raw, log)
	}
}

func (s *Server) handleFrame(p *peer, raw []byte, log *logger.Logger) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		_ = p.write(Error(app.MsgInvalidDataProvided))
		return
	}
	if env.Type != models.OutboundActionType {
		_ = p.write(ackFrame{Type: "ack", Received: json.RawMessage(bytes.Clone(raw))})
		return
	}

	var action models.OutboundAction
	if err := json.Unmarshal(raw, &action); err != nil {
		_ = p.write(Error(app.MsgInvalidDataProvided))
		return
	}

	table := s.Table()
	switch {
	case table == nil:
		_ = p.write(Error(app.MsgTableNotReady))
		return
	case action.HandID != table.HandID:
		_ = p.write(Error(app.MsgStaleHand))
		return
	case table.ToAct == nil || action.Seat != *table.ToAct:
		_ = p.write(Error(app.MsgNotYourTurn))
		return
	}

	accepted := Action{OutboundAction: action, PlayerID: p.playerID, Raw: bytes.Clone(raw)}
	select {
	case s.actions <- accepted:
	default:
		log.Warn().Str("action_id", action.ActionID).Msg("action buffer full, not recorded")
	}

	if s.settings.onAction == nil {
		return
	}
	if err := s.Broadcast(s.settings.onAction(s, accepted)...); err != nil {
		log.Warn().Err(err).Msg("broadcast failed")
	}
}

func (s *Server) removePeer(p *peer) {
	s.mu.Lock()
	delete(s.peers, p)
	s.mu.Unlock()

	_ = p.conn.Close()
}
