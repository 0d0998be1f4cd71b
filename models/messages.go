// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// MessageType is the discriminator of inbound realtime messages.
type MessageType string

const (
	MessageSnapshot MessageType = "snapshot"
	MessagePrompt   MessageType = "prompt"
	MessageHandEnd  MessageType = "hand_end"
	MessageError    MessageType = "error"
)

// ErrMalformedMessage wraps every failure to decode an inbound payload into
// one of the known variants.
var ErrMalformedMessage = errors.New("malformed inbound message")

// InboundMessage is the closed set of decoded server messages:
// [SnapshotMessage], [PromptMessage], [HandEndMessage], [ErrorMessage] and
// [UnknownMessage].
type InboundMessage interface {
	MessageType() MessageType
	inbound()
}

// SnapshotMessage carries a full table snapshot.
type SnapshotMessage struct {
	Seq   *int64        `json:"seq,omitempty"`
	Table TableSnapshot `json:"table"`
}

// Prompt is the legal action set issued by the server for the seat to act.
type Prompt struct {
	Seq          *int64             `json:"seq,omitempty"`
	ToAct        *int               `json:"to_act,omitempty"`
	Deadline     *string            `json:"deadline,omitempty"`
	LegalActions []ActionDescriptor `json:"legal_actions"`
}

// PromptMessage replaces the legal action set.
type PromptMessage struct {
	Prompt
}

// HandEndMessage closes a hand. Results are kept verbatim.
type HandEndMessage struct {
	HandID  string          `json:"hand_id,omitempty"`
	Results json.RawMessage `json:"results"`
}

// ErrorMessage is a server-reported rejection of a client action.
type ErrorMessage struct {
	Message string `json:"message"`
}

// UnknownMessage is a well-formed JSON object whose type tag is not one of the
// known kinds. Raw holds the payload as received.
type UnknownMessage struct {
	Type string
	Raw  []byte
}

func (SnapshotMessage) MessageType() MessageType  { return MessageSnapshot }
func (PromptMessage) MessageType() MessageType    { return MessagePrompt }
func (HandEndMessage) MessageType() MessageType   { return MessageHandEnd }
func (ErrorMessage) MessageType() MessageType     { return MessageError }
func (m UnknownMessage) MessageType() MessageType { return MessageType(m.Type) }

func (SnapshotMessage) inbound() {}
func (PromptMessage) inbound()   {}
func (HandEndMessage) inbound()  {}
func (ErrorMessage) inbound()    {}
func (UnknownMessage) inbound()  {}

type envelope struct {
	Type *string `json:"type"`
}

// DecodeInbound turns one raw realtime payload into an [InboundMessage].
//
// Invalid UTF-8, invalid JSON, a missing type tag, an error without a message, a known kind whose body does not fit its
// shape, or a snapshot/prompt that fails validation are reported as
// [ErrMalformedMessage]. An unrecognised type tag is not an error: it yields
// an [UnknownMessage].
func DecodeInbound(raw []byte) (InboundMessage, error) {
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: invalid utf-8", ErrMalformedMessage)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if env.Type == nil {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedMessage)
	}

	switch MessageType(*env.Type) {
	case MessageSnapshot:
		var m struct {
			Seq   *int64         `json:"seq"`
			Table *TableSnapshot `json:"table"`
		}
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: snapshot: %v", ErrMalformedMessage, err)
		}
		if m.Table == nil {
			return nil, fmt.Errorf("%w: snapshot without table", ErrMalformedMessage)
		}
		if err := m.Table.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
		}
		return SnapshotMessage{Seq: m.Seq, Table: *m.Table}, nil

	case MessagePrompt:
		var m struct {
			Prompt
			LegalActions *[]ActionDescriptor `json:"legal_actions"`
		}
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: prompt: %v", ErrMalformedMessage, err)
		}
		if m.LegalActions == nil {
			return nil, fmt.Errorf("%w: prompt without legal_actions", ErrMalformedMessage)
		}
		for i, a := range *m.LegalActions {
			if err := a.Validate(); err != nil {
				return nil, fmt.Errorf("%w: legal action %d: %v", ErrMalformedMessage, i, err)
			}
		}
		p := m.Prompt
		p.LegalActions = *m.LegalActions
		return PromptMessage{Prompt: p}, nil

	case MessageHandEnd:
		var m HandEndMessage
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: hand_end: %v", ErrMalformedMessage, err)
		}
		return m, nil

	case MessageError:
		var m struct {
			Message *string `json:"message"`
		}
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: error: %v", ErrMalformedMessage, err)
		}
		if m.Message == nil || *m.Message == "" {
			return nil, fmt.Errorf("%w: error without message", ErrMalformedMessage)
		}
		return ErrorMessage{Message: *m.Message}, nil

	default:
		return UnknownMessage{Type: *env.Type, Raw: bytes.Clone(raw)}, nil
	}
}
