// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive poker client runtime.
//
// [Session] owns one table session: it runs the bootstrap sequence, opens the
// realtime connection, pumps its events into the reconciler in arrival order
// and, when enabled, reconnects after a connection loss. [App] wires a
// session and the terminal UI into a single process lifecycle.
package client
