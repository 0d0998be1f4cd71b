package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-poker-client/internal/config"
	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/internal/utils"
	"github.com/MKhiriev/go-poker-client/models"
	"github.com/go-resty/resty/v2"
)

type httpTableAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPTableAdapter constructs an HTTP/REST implementation of
// [TableAdapter]. It normalises adapterCfg.HTTPAddress into a base URL and
// configures the underlying client with it and the request timeout.
//
// Returns an error if the address is empty or cannot be parsed.
func NewHTTPTableAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (TableAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpTableAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL: baseURL,
		logger:  log.WithComponent("adapter"),
	}, nil
}

// BaseURL returns the normalised base URL requests are sent to.
func (h *httpTableAdapter) BaseURL() string {
	return h.baseURL
}

func (h *httpTableAdapter) CreateTable(ctx context.Context) (models.CreateTableResponse, error) {
	var out models.CreateTableResponse
	if err := h.do(h.client.R().SetContext(ctx), resty.MethodPost, "/tables", &out); err != nil {
		return models.CreateTableResponse{}, fmt.Errorf("create table: %w", err)
	}
	if out.TableID == "" {
		return models.CreateTableResponse{}, fmt.Errorf("create table: %w: missing table_id", ErrMalformedResponse)
	}

	return out, nil
}

func (h *httpTableAdapter) JoinTable(ctx context.Context, tableID string) (models.JoinTableResponse, error) {
	var out models.JoinTableResponse
	req := h.client.R().SetContext(ctx).SetPathParam("table_id", tableID)
	if err := h.do(req, resty.MethodPost, "/tables/{table_id}/join", &out); err != nil {
		return models.JoinTableResponse{}, fmt.Errorf("join table: %w", err)
	}
	if out.PlayerID == "" {
		return models.JoinTableResponse{}, fmt.Errorf("join table: %w: missing player_id", ErrMalformedResponse)
	}
	if out.Seat == nil {
		return models.JoinTableResponse{}, fmt.Errorf("join table: %w: missing seat", ErrMalformedResponse)
	}

	return out, nil
}

func (h *httpTableAdapter) StartHand(ctx context.Context, tableID string) (models.StartHandResponse, error) {
	var out models.StartHandResponse
	req := h.client.R().SetContext(ctx).SetPathParam("table_id", tableID)
	if err := h.do(req, resty.MethodPost, "/tables/{table_id}/start", &out); err != nil {
		return models.StartHandResponse{}, fmt.Errorf("start hand: %w", err)
	}
	if out.HandID == "" {
		return models.StartHandResponse{}, fmt.Errorf("start hand: %w: missing hand_id", ErrMalformedResponse)
	}

	return out, nil
}

func (h *httpTableAdapter) FetchState(ctx context.Context, tableID string) (models.SnapshotMessage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("table_id", tableID).
		Get("/tables/{table_id}/state")
	if err != nil {
		return models.SnapshotMessage{}, fmt.Errorf("fetch state: %w: %w", ErrUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SnapshotMessage{}, fmt.Errorf("fetch state: %w", err)
	}

	msg, err := models.DecodeInbound(resp.Body())
	if err != nil {
		return models.SnapshotMessage{}, fmt.Errorf("fetch state: %w: %w", ErrMalformedResponse, err)
	}
	snapshot, ok := msg.(models.SnapshotMessage)
	if !ok {
		return models.SnapshotMessage{}, fmt.Errorf("fetch state: %w: unexpected message type %q", ErrMalformedResponse, msg.MessageType())
	}

	return snapshot, nil
}

// do executes req and decodes a 2xx JSON body into out.
func (h *httpTableAdapter) do(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("response received")

	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}
