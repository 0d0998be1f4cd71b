// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ActionType names one of the moves a seat can make when prompted.
type ActionType string

const (
	ActionCheck   ActionType = "check"
	ActionFold    ActionType = "fold"
	ActionCall    ActionType = "call"
	ActionRaiseTo ActionType = "raise_to"
)

// String returns the wire representation of the action type.
func (t ActionType) String() string {
	return string(t)
}

// NeedsAmount reports whether descriptors of this type carry an amount.
func (t ActionType) NeedsAmount() bool {
	return t == ActionCall || t == ActionRaiseTo
}

// Known reports whether t is one of the four supported action types.
func (t ActionType) Known() bool {
	switch t {
	case ActionCheck, ActionFold, ActionCall, ActionRaiseTo:
		return true
	}
	return false
}

var (
	// ErrUnknownActionType is returned for a descriptor whose type is outside
	// check/fold/call/raise_to.
	ErrUnknownActionType = errors.New("unknown action type")
	// ErrMissingAmount is returned for call/raise_to descriptors without an amount.
	ErrMissingAmount = errors.New("action amount is required")
	// ErrNegativeAmount is returned for descriptors with an amount below zero.
	ErrNegativeAmount = errors.New("action amount must be non-negative")
)

// ActionDescriptor is a single legal move offered by the server and, once
// chosen, the move sent back inside an [OutboundAction].
//
// Min and Max are optional raise bounds some servers attach to prompts. They
// are kept for display and never sent back.
type ActionDescriptor struct {
	Type   ActionType
	Amount int64
	Min    *int64
	Max    *int64

	hasAmount bool
}

// Check returns a check descriptor.
func Check() ActionDescriptor { return ActionDescriptor{Type: ActionCheck} }

// Fold returns a fold descriptor.
func Fold() ActionDescriptor { return ActionDescriptor{Type: ActionFold} }

// Call returns a call descriptor for amount.
func Call(amount int64) ActionDescriptor {
	return ActionDescriptor{Type: ActionCall, Amount: amount, hasAmount: true}
}

// RaiseTo returns a raise_to descriptor for amount.
func RaiseTo(amount int64) ActionDescriptor {
	return ActionDescriptor{Type: ActionRaiseTo, Amount: amount, hasAmount: true}
}

// Validate checks the structural correctness of the descriptor.
func (a ActionDescriptor) Validate() error {
	if !a.Type.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownActionType, a.Type)
	}
	if a.Type.NeedsAmount() && !a.hasAmount {
		return fmt.Errorf("%w: %s", ErrMissingAmount, a.Type)
	}
	if a.Amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, a.Amount)
	}
	return nil
}

// Equal reports whether two descriptors describe the same move.
func (a ActionDescriptor) Equal(b ActionDescriptor) bool {
	if a.Type != b.Type {
		return false
	}
	if a.Type.NeedsAmount() {
		return a.Amount == b.Amount
	}
	return true
}

type actionDescriptorJSON struct {
	Type   ActionType `json:"type"`
	Amount *int64     `json:"amount,omitempty"`
	Min    *int64     `json:"min,omitempty"`
	Max    *int64     `json:"max,omitempty"`
}

// UnmarshalJSON decodes a descriptor and remembers whether amount was present.
func (a *ActionDescriptor) UnmarshalJSON(b []byte) error {
	var raw actionDescriptorJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*a = ActionDescriptor{Type: raw.Type, Min: raw.Min, Max: raw.Max}
	if raw.Amount != nil {
		a.Amount = *raw.Amount
		a.hasAmount = true
	}
	return nil
}

// MarshalJSON encodes the descriptor in its outbound form: check and fold
// carry only the type, call and raise_to carry the amount as well.
func (a ActionDescriptor) MarshalJSON() ([]byte, error) {
	out := actionDescriptorJSON{Type: a.Type}
	if a.Type.NeedsAmount() {
		amount := a.Amount
		out.Amount = &amount
	}
	return json.Marshal(out)
}

// OutboundAction is the "action" message a client sends over the realtime
// channel.
type OutboundAction struct {
	Type     string           `json:"type"`
	ActionID string           `json:"action_id"`
	HandID   string           `json:"hand_id"`
	Seat     int              `json:"seat"`
	Action   ActionDescriptor `json:"action"`
}

// OutboundActionType is the fixed type tag of [OutboundAction].
const OutboundActionType = "action"
