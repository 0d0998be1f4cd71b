package testserver

import "net/http"

// Route names one bootstrap route for failure injection.
type Route string

const (
	RouteCreate Route = "create"
	RouteJoin   Route = "join"
	RouteStart  Route = "start"
	RouteState  Route = "state"
)

// ActionHandler decides what the server broadcasts after accepting an action.
// It runs with the server lock released; calling [Server.SetTable] from it is
// allowed.
type ActionHandler func(s *Server, action Action) []any

type failure struct {
	status  int
	message string
}

type settings struct {
	tableID  string
	playerID string
	seat     int
	handID   string

	greeting []any
	onAction ActionHandler
	failures map[Route]failure
}

func defaultSettings() settings {
	return settings{
		tableID:  "t1",
		playerID: "p1",
		seat:     1,
		handID:   "h_00001",
		failures: make(map[Route]failure),
	}
}

// Option configures a [Server].
type Option func(*settings)

// WithIdentity sets the table id returned by create and the player id and
// seat returned by join.
func WithIdentity(tableID, playerID string, seat int) Option {
	return func(s *settings) {
		s.tableID = tableID
		s.playerID = playerID
		s.seat = seat
	}
}

// WithHandID sets the hand id returned by start.
func WithHandID(handID string) Option {
	return func(s *settings) {
		s.handID = handID
	}
}

// WithGreeting appends frames sent to every new realtime connection right
// after the snapshot, typically a prompt.
func WithGreeting(frames ...any) Option {
	return func(s *settings) {
		s.greeting = append(s.greeting, frames...)
	}
}

// WithActionHandler installs fn as the reaction to accepted actions.
func WithActionHandler(fn ActionHandler) Option {
	return func(s *settings) {
		s.onAction = fn
	}
}

// WithFailure makes route answer status with {"error": message}.
func WithFailure(route Route, status int, message string) Option {
	return func(s *settings) {
		if message == "" {
			message = http.StatusText(status)
		}
		s.failures[route] = failure{status: status, message: message}
	}
}
