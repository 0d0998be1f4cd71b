// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package testserver runs an in-process table server that speaks the same
// HTTP and realtime protocol as the production table server.
//
// It is a scriptable fake: it owns a single table, answers the bootstrap
// routes, greets every realtime connection with the current snapshot and
// hands received actions to an [ActionHandler] that decides what to
// broadcast. Tests can inject route failures, push arbitrary frames and drop
// live connections to exercise reconnects.
//
// Routes:
//
//	POST /tables                    -> {"table_id": ...}
//	POST /tables/{table_id}/join    -> {"player_id": ..., "seat": ...}
//	POST /tables/{table_id}/start   -> {"hand_id": ...}
//	GET  /tables/{table_id}/state   -> {"type":"snapshot","seq":0,"table":{...}}
//	GET  /ws/tables/{table_id}      -> websocket, ?player_id=
package testserver
