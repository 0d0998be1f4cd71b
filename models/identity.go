// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// SessionIdentity identifies the local player for the lifetime of a session.
// It is assigned once, at join time, and never changes afterwards.
type SessionIdentity struct {
	TableID  string `json:"table_id"`
	PlayerID string `json:"player_id"`
	Seat     int    `json:"seat"`
}

// String renders the identity for logs and status lines.
func (s SessionIdentity) String() string {
	return s.TableID + "/" + s.PlayerID + "#" + strconv.Itoa(s.Seat)
}
