// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the request/response side of the table server
// protocol used to bootstrap a session.
//
// The primary abstraction is [TableAdapter], which decouples the session
// bootstrapper from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPTableAdapter]) built on resty.
//
// Failures are classified into three sentinel values defined in errors.go so
// callers can use [errors.Is]: [ErrUnreachable] when no response was received,
// [ErrRejected] for a non-2xx status (further narrowed by mapHTTPError, e.g.
// [ErrNotFound] for 404) and [ErrMalformedResponse] when a 2xx body cannot be
// decoded or lacks a required identifier.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-poker-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/table_adapter_mock.go -package=mock

// TableAdapter defines the one-shot calls made against the table server before
// and around the realtime channel.
type TableAdapter interface {
	// CreateTable creates or selects a table (POST /tables). The returned
	// table id is never empty.
	CreateTable(ctx context.Context) (models.CreateTableResponse, error)

	// JoinTable joins the caller to a seat at tableID
	// (POST /tables/{table_id}/join). The returned player id is never empty
	// and the seat is always present.
	JoinTable(ctx context.Context, tableID string) (models.JoinTableResponse, error)

	// StartHand starts a hand at tableID (POST /tables/{table_id}/start). The
	// returned hand id is never empty.
	StartHand(ctx context.Context, tableID string) (models.StartHandResponse, error)

	// FetchState downloads the current snapshot of tableID
	// (GET /tables/{table_id}/state). The snapshot has passed shape
	// validation.
	FetchState(ctx context.Context, tableID string) (models.SnapshotMessage, error)
}
