// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Street is the phase marker of a hand.
type Street string

const (
	StreetPreflop  Street = "preflop"
	StreetFlop     Street = "flop"
	StreetTurn     Street = "turn"
	StreetRiver    Street = "river"
	StreetShowdown Street = "showdown"
)

// MaxBoardCards is the largest number of community cards a board can hold.
const MaxBoardCards = 5

// ErrInvalidSnapshot wraps every shape violation found by
// [TableSnapshot.Validate].
var ErrInvalidSnapshot = errors.New("invalid table snapshot")

// Player is one seated participant as seen in a snapshot.
type Player struct {
	Seat   int    `json:"seat"`
	ID     string `json:"id"`
	Stack  int64  `json:"stack"`
	InHand bool   `json:"in_hand"`
}

// Blinds holds the forced bet sizes of the table, when the server reports them.
type Blinds struct {
	SB int64 `json:"sb"`
	BB int64 `json:"bb"`
}

// TableSnapshot is the authoritative point-in-time view of a table pushed by
// the server. A newer snapshot always replaces the previous one as a whole.
type TableSnapshot struct {
	HandID  string        `json:"hand_id"`
	Street  Street        `json:"street"`
	Pot     int64         `json:"pot"`
	Board   []string      `json:"board"`
	Players []Player      `json:"players"`
	Bets    map[int]int64 `json:"bets"`
	ToAct   *int          `json:"to_act"`

	// optional fields some servers include
	TableID    string  `json:"table_id,omitempty"`
	ButtonSeat *int    `json:"button_seat,omitempty"`
	Blinds     *Blinds `json:"blinds,omitempty"`
}

// Validate checks that the snapshot has the expected shape. It does not judge
// game legality.
func (s TableSnapshot) Validate() error {
	if s.HandID == "" {
		return fmt.Errorf("%w: empty hand_id", ErrInvalidSnapshot)
	}
	if s.Street == "" {
		return fmt.Errorf("%w: empty street", ErrInvalidSnapshot)
	}
	if s.Pot < 0 {
		return fmt.Errorf("%w: negative pot %d", ErrInvalidSnapshot, s.Pot)
	}
	if len(s.Board) > MaxBoardCards {
		return fmt.Errorf("%w: board has %d cards", ErrInvalidSnapshot, len(s.Board))
	}

	seats := make(map[int]struct{}, len(s.Players))
	for _, p := range s.Players {
		if _, dup := seats[p.Seat]; dup {
			return fmt.Errorf("%w: duplicate seat %d", ErrInvalidSnapshot, p.Seat)
		}
		seats[p.Seat] = struct{}{}
		if p.Stack < 0 {
			return fmt.Errorf("%w: negative stack for seat %d", ErrInvalidSnapshot, p.Seat)
		}
	}
	for seat, bet := range s.Bets {
		if bet < 0 {
			return fmt.Errorf("%w: negative bet for seat %d", ErrInvalidSnapshot, seat)
		}
	}
	return nil
}

// Clone returns a deep copy that shares no slices, maps or pointers with s.
func (s TableSnapshot) Clone() TableSnapshot {
	out := s
	out.Board = slices.Clone(s.Board)
	out.Players = slices.Clone(s.Players)
	out.Bets = maps.Clone(s.Bets)
	out.ToAct = cloneInt(s.ToAct)
	out.ButtonSeat = cloneInt(s.ButtonSeat)
	if s.Blinds != nil {
		b := *s.Blinds
		out.Blinds = &b
	}
	return out
}

// Player returns the player sitting at seat.
func (s TableSnapshot) Player(seat int) (Player, bool) {
	for _, p := range s.Players {
		if p.Seat == seat {
			return p, true
		}
	}
	return Player{}, false
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
