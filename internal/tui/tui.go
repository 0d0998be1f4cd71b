// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the presentation adapter of the poker client.
//
// [Project] maps a store view to a [Screen] without side effects. [Model] is
// the bubbletea program around it: it re-projects on every [ViewMsg], lets
// the user pick one of the offered triggers and hands the chosen descriptor
// to the submitter. [TUI] owns the program and forwards store notifications.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-poker-client/internal/logger"
	"github.com/MKhiriev/go-poker-client/internal/service"
	"github.com/MKhiriev/go-poker-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewSource is the read side of the table store.
type ViewSource interface {
	View() service.View
	Updates() <-chan struct{}
}

type TUI struct {
	source    ViewSource
	submitter service.Submitter
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption

	logger *logger.Logger
}

// New returns a TUI reading from source. opts are appended to the default
// program options, e.g. to redirect input and output in tests.
func New(source ViewSource, submitter service.Submitter, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...tea.ProgramOption) *TUI {
	return &TUI{
		source:    source,
		submitter: submitter,
		buildInfo: buildInfo,
		options:   opts,
		logger:    log.WithComponent("tui"),
	}
}

// Run shows the table until the user quits, which returns nil, or ctx is
// cancelled, which returns ctx.Err().
func (t *TUI) Run(ctx context.Context) error {
	model := NewModel(t.submitter, t.source.View(), t.buildInfo)
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)
	program := tea.NewProgram(model, opts...)

	forwardCtx, stop := context.WithCancel(ctx)
	defer stop()
	go t.forward(forwardCtx, program)

	t.logger.Debug().Msg("table ui started")
	_, err := program.Run()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("run table ui: %w", err)
	}
	t.logger.Debug().Msg("table ui closed by user")
	return nil
}

func (t *TUI) forward(ctx context.Context, program *tea.Program) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.source.Updates():
			program.Send(ViewMsg(t.source.View()))
		}
	}
}
