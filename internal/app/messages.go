// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the table server protocol
// implementations in this module.
//
// The Msg* constants are the human-readable texts carried in {"error": ...}
// HTTP bodies and in realtime "error" messages. Keeping them in one place
// keeps the wording of the in-process table server and the client's
// expectations in step.
package app

const (
	// MsgTableNotFound is returned for any table route whose table id is not
	// known, and by the state route before a hand has been started.
	MsgTableNotFound = "table not found"

	// MsgTableNotReady is sent over the realtime channel when an action
	// arrives before a hand has been started.
	MsgTableNotReady = "table not ready"

	// MsgInvalidDataProvided is returned when a frame or request body cannot
	// be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNotYourTurn is the rejection sent when an action names a seat that
	// is not the one to act.
	MsgNotYourTurn = "not your turn"

	// MsgStaleHand is the rejection sent when an action names a hand other
	// than the current one.
	MsgStaleHand = "action for a stale hand"
)
