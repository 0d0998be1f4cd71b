package models

// CreateTableResponse is the body of POST /tables.
type CreateTableResponse struct {
	TableID string `json:"table_id"`
}

// JoinTableResponse is the body of POST /tables/{table_id}/join.
type JoinTableResponse struct {
	PlayerID string `json:"player_id"`
	// Seat is a pointer so a missing seat is distinguishable from seat 0.
	Seat *int `json:"seat"`
}

// StartHandResponse is the body of POST /tables/{table_id}/start.
type StartHandResponse struct {
	HandID string `json:"hand_id"`
}

// BootstrapResult is everything the bootstrap sequence hands to the realtime
// layer.
type BootstrapResult struct {
	Identity SessionIdentity
	// HandID is the hand started during bootstrap. Informational only: the
	// hand id used for submissions always comes from the current snapshot.
	HandID string
}
