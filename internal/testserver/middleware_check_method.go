// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package testserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// checkHTTPMethod is registered as the router's MethodNotAllowed handler and
// answers 404 instead of chi's default 405, so a known path with the wrong
// method looks like an unknown route.
//
// If the method is in fact registered for the exact route pattern the request
// is handed back to the router.
func checkHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
