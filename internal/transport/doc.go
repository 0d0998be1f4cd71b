// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport owns the realtime channel between the client and the
// table server: a gorilla/websocket connection driven through the states
// unconnected → connecting → open → closed.
//
// A [Connection] never calls back into its user. Everything it observes, the
// raw inbound payloads and every state transition, is delivered in order on
// the single channel returned by [Connection.Events]. The channel is closed
// once the connection reaches closed; nothing is delivered after
// [Connection.Close] returns.
//
// Outbound payloads go through a bounded queue drained by one writer
// goroutine. [Connection.Send] never blocks and never retries: it reports
// [ErrNotOpen] or [ErrSendQueueFull] and leaves the decision to the caller.
//
// [Client] keeps track of the current connection so that a sender can keep
// using the same handle across reconnects.
package transport
