package tui

import (
	"github.com/MKhiriev/go-poker-client/internal/service"
	"github.com/MKhiriev/go-poker-client/models"
)

// ViewMsg delivers a fresh store view to the model.
type ViewMsg service.View

type submittedMsg struct {
	msg models.OutboundAction
	err error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
