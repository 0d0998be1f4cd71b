package testserver

import (
	"net/http"

	"github.com/MKhiriev/go-poker-client/internal/app"
	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/internal/utils"
	"github.com/MKhiriev/go-poker-client/models"
	"github.com/go-chi/chi/v5"
)

func (s *Server) createTable(w http.ResponseWriter, r *http.Request) {
	if s.fail(w, RouteCreate) {
		return
	}

	s.mu.Lock()
	s.created = true
	s.mu.Unlock()

	logger.FromContext(r.Context()).Debug().Str("table_id", s.settings.tableID).Msg("table created")
	_, _ = utils.WriteJSON(w, models.CreateTableResponse{TableID: s.settings.tableID}, http.StatusOK)
}

func (s *Server) joinTable(w http.ResponseWriter, r *http.Request) {
	if s.fail(w, RouteJoin) || !s.knownTable(w, r) {
		return
	}

	seat := s.settings.seat
	_, _ = utils.WriteJSON(w, models.JoinTableResponse{PlayerID: s.settings.playerID, Seat: &seat}, http.StatusOK)
}

func (s *Server) startHand(w http.ResponseWriter, r *http.Request) {
	if s.fail(w, RouteStart) || !s.knownTable(w, r) {
		return
	}

	table := InitialTable(s.settings.handID, s.settings.playerID, s.settings.seat)
	table.TableID = s.settings.tableID
	s.SetTable(table)

	_, _ = utils.WriteJSON(w, models.StartHandResponse{HandID: s.settings.handID}, http.StatusOK)
}

func (s *Server) tableState(w http.ResponseWriter, r *http.Request) {
	if s.fail(w, RouteState) || !s.knownTable(w, r) {
		return
	}

	table := s.Table()
	if table == nil {
		utils.WriteError(w, app.MsgTableNotFound, http.StatusNotFound)
		return
	}
	_, _ = utils.WriteJSON(w, Snapshot(*table), http.StatusOK)
}

// fail answers with the failure injected for route, if any.
func (s *Server) fail(w http.ResponseWriter, route Route) bool {
	f, ok := s.settings.failures[route]
	if !ok {
		return false
	}
	utils.WriteError(w, f.message, f.status)
	return true
}

func (s *Server) knownTable(w http.ResponseWriter, r *http.Request) bool {
	s.mu.Lock()
	created := s.created
	s.mu.Unlock()

	if !created || chi.URLParam(r, "table_id") != s.settings.tableID {
		utils.WriteError(w, app.MsgTableNotFound, http.StatusNotFound)
		return false
	}
	return true
}
