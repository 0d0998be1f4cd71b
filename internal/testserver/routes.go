package testserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withTraceID, s.withLogging)

	router.Post("/tables", s.createTable)
	router.Post("/tables/{table_id}/join", s.joinTable)
	router.Post("/tables/{table_id}/start", s.startHand)
	router.Get("/tables/{table_id}/state", s.tableState)
	router.Get("/ws/tables/{table_id}", s.realtime)

	router.MethodNotAllowed(checkHTTPMethod(router))

	return router
}
