package testserver

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one entry per request once the handler returns. The
// matched route and its table id are read back from the chi route context,
// which routing fills in after this middleware has run. A websocket request
// is logged when its peer disconnects.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		entry := logger.FromContext(r.Context()).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rw.status).
			Int("size", rw.size).
			Bool("upgraded", rw.status == http.StatusSwitchingProtocols).
			Dur("duration", time.Since(start))
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			entry = entry.Str("route", rctx.RoutePattern())
			if tableID := rctx.URLParam("table_id"); tableID != "" {
				entry = entry.Str("table_id", tableID)
			}
		}
		entry.Msg("table server request")
	})
}
