// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-poker-client/internal/service"
	"github.com/MKhiriev/go-poker-client/models"
)

// Trigger is one selectable action. Descriptor is handed to the submitter
// unchanged.
type Trigger struct {
	Label      string
	Descriptor models.ActionDescriptor
}

// PlayerLine is one seat as rendered.
type PlayerLine struct {
	Seat   int
	ID     string
	Stack  int64
	Bet    int64
	InHand bool
	ToAct  bool
	Local  bool
}

// Screen is everything the table view renders. It is derived from a
// [service.View] by [Project] and holds no references into it.
type Screen struct {
	Identity   models.SessionIdentity
	Connection models.ConnectionState
	// ConnectionErr is the humanized reason of the last close, if any.
	ConnectionErr string
	Stale         bool

	HasTable bool
	HandID   string
	Street   models.Street
	Pot      int64
	Board    []string
	Players  []PlayerLine

	// Waiting is set when a prompt exists that the local seat cannot act on.
	Waiting string
	// Triggers is non-empty only when the local seat may act.
	Triggers []Trigger

	LastError string
	Results   string
	Notices   []string
	// LastAction describes the most recent submission outcome.
	LastAction string
}

// Project turns a store view into a screen. It is pure: the same view always
// yields the same screen.
func Project(v service.View) Screen {
	s := Screen{
		Identity:   v.Identity,
		Connection: v.Connection,
		Stale:      v.Stale,
		LastError:  v.LastError,
	}
	if v.ConnectionErr != nil {
		s.ConnectionErr = humanizeConnectionError(v.ConnectionErr)
	}

	if snap := v.Snapshot; snap != nil {
		s.HasTable = true
		s.HandID = snap.HandID
		s.Street = snap.Street
		s.Pot = snap.Pot
		s.Board = slices.Clone(snap.Board)
		s.Players = projectPlayers(*snap, v.Identity.Seat)
	}

	if v.Prompt != nil {
		if v.Actionable {
			s.Triggers = make([]Trigger, 0, len(v.Prompt.LegalActions))
			for _, a := range v.Prompt.LegalActions {
				s.Triggers = append(s.Triggers, Trigger{Label: Label(a), Descriptor: a})
			}
		} else {
			s.Waiting = waitingLine(v)
		}
	}

	if v.Results != nil {
		s.Results = compactJSON(v.Results.Results)
	}
	for _, n := range v.Notices {
		s.Notices = append(s.Notices, fmt.Sprintf("%s: %s", n.Kind, n.Reason))
	}

	switch {
	case v.LastDropped != nil:
		s.LastAction = fmt.Sprintf("dropped %s: %v", Label(v.LastDropped.Action), v.LastDropped.Err)
	case v.LastSent != nil:
		s.LastAction = fmt.Sprintf("sent %s (%s)", Label(v.LastSent.Action), v.LastSent.ActionID)
	}

	return s
}

// Label is the trigger caption of an action descriptor.
func Label(a models.ActionDescriptor) string {
	switch a.Type {
	case models.ActionCheck:
		return "Check"
	case models.ActionFold:
		return "Fold"
	case models.ActionCall:
		return "Call " + strconv.FormatInt(a.Amount, 10)
	case models.ActionRaiseTo:
		label := "Raise to " + strconv.FormatInt(a.Amount, 10)
		if a.Min != nil && a.Max != nil {
			label += fmt.Sprintf(" [%d..%d]", *a.Min, *a.Max)
		}
		return label
	}
	return a.Type.String()
}

func projectPlayers(snap models.TableSnapshot, localSeat int) []PlayerLine {
	lines := make([]PlayerLine, 0, len(snap.Players))
	for _, p := range snap.Players {
		lines = append(lines, PlayerLine{
			Seat:   p.Seat,
			ID:     p.ID,
			Stack:  p.Stack,
			Bet:    snap.Bets[p.Seat],
			InHand: p.InHand,
			ToAct:  snap.ToAct != nil && *snap.ToAct == p.Seat,
			Local:  p.Seat == localSeat,
		})
	}
	slices.SortFunc(lines, func(a, b PlayerLine) int { return a.Seat - b.Seat })
	return lines
}

func waitingLine(v service.View) string {
	switch {
	case v.Stale:
		return "waiting for a fresh snapshot"
	case v.Connection != models.ConnectionOpen:
		return "not connected"
	case v.Prompt.ToAct != nil:
		return "waiting for seat " + strconv.Itoa(*v.Prompt.ToAct)
	case v.Snapshot != nil && v.Snapshot.ToAct != nil:
		return "waiting for seat " + strconv.Itoa(*v.Snapshot.ToAct)
	}
	return "waiting"
}

func compactJSON(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
