// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-poker-client/internal/adapter"
	"github.com/MKhiriev/go-poker-client/internal/transport"
)

// classifyAdapterError translates an adapter failure into one of the
// bootstrap failure classes.
func classifyAdapterError(ctx context.Context, err error) error {
	switch {
	case ctx.Err() != nil:
		return ErrSessionClosed
	case errors.Is(err, adapter.ErrRejected):
		return ErrRejected
	case errors.Is(err, adapter.ErrMalformedResponse):
		return ErrMalformedResponse
	default:
		return ErrUnreachable
	}
}

// mapSendError translates a transport refusal into a submission error.
func mapSendError(err error) error {
	switch {
	case errors.Is(err, transport.ErrNotOpen):
		return ErrNotConnected
	default:
		return ErrSendFailed
	}
}
