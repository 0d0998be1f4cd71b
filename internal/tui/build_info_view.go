// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-poker-client/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Application", "poker-client"},
		{"Version", info.BuildVersion()},
		{"Date", info.BuildDate()},
		{"Commit", info.BuildCommit()},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		value := strings.TrimSpace(r[1])
		if value == "" {
			value = models.NotAvailable
		}
		lines = append(lines, fmt.Sprintf("%s: %s", r[0], value))
	}

	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}
