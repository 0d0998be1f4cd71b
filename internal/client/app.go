package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-poker-client/internal/adapter"
	"github.com/MKhiriev/go-poker-client/internal/config"
	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/internal/service"
	"github.com/MKhiriev/go-poker-client/internal/transport"
	"github.com/MKhiriev/go-poker-client/internal/tui"
	"github.com/MKhiriev/go-poker-client/internal/utils"
	"github.com/MKhiriev/go-poker-client/internal/workers"
	"github.com/MKhiriev/go-poker-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// App is the interactive client: one session shown in the terminal UI.
type App struct {
	session  *Session
	services *service.ClientServices
	conns    *transport.Client
	ui       *tui.TUI

	logger *logger.Logger
}

var (
	_ Client = (*App)(nil)
	_ Client = (*Session)(nil)
)

// Option customises an [App].
type Option func(*appOptions)

type appOptions struct {
	ui []tea.ProgramOption
}

// WithUIOptions passes program options to the terminal UI, e.g. to run it
// without a terminal.
func WithUIOptions(opts ...tea.ProgramOption) Option {
	return func(o *appOptions) {
		o.ui = append(o.ui, opts...)
	}
}

// NewApp wires the adapter, transport, services, session and UI described by
// cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...Option) (*App, error) {
	var o appOptions
	for _, opt := range opts {
		opt(&o)
	}

	baseURL, err := utils.NormalizeBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid table server address: %w", err)
	}

	tableAdapter, err := adapter.NewHTTPTableAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create table adapter: %w", err)
	}

	conns := transport.NewClient(transport.OptionsFromConfig(cfg.Transport), log)
	services := service.NewClientServices(tableAdapter, conns, log)

	return &App{
		session:  NewSession(services, conns, baseURL, cfg.Transport.Reconnect, log),
		services: services,
		conns:    conns,
		ui:       tui.New(services.Store, services.Submitter, buildInfo, log, o.ui...),
		logger:   log,
	}, nil
}

// Run bootstraps the session and then runs the event pump and the UI until
// the user quits or ctx is cancelled. A bootstrap failure is returned before
// anything is connected and names the failed step.
func (a *App) Run(ctx context.Context) error {
	result, err := a.session.Start(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	a.logger.Info().Str("identity", result.Identity.String()).Msg("joined table")

	defer func() { _ = a.conns.Close() }()

	return workers.New(
		workers.WorkerFunc(a.session.Run),
		workers.WorkerFunc(a.ui.Run),
	).Run(ctx)
}

// Services exposes the session services, e.g. for scripted play.
func (a *App) Services() *service.ClientServices {
	return a.services
}
