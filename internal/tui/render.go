package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-poker-client/models"
)

const maxIDWidth = 12

const tableHotKeys = "↑/↓ select  enter/1-9 act  c copy table id  v about"

func renderTable(s Screen, cursor int, spinnerView, status string) string {
	var b strings.Builder

	b.WriteString(renderIdentity(s.Identity))
	b.WriteString("  [")
	b.WriteString(s.Connection.String())
	b.WriteString("]")
	if s.Connection == models.ConnectionConnecting && spinnerView != "" {
		b.WriteString(" ")
		b.WriteString(spinnerView)
	}
	b.WriteString("\n")
	if s.ConnectionErr != "" {
		b.WriteString(errorStyle.Render("Connection: " + s.ConnectionErr))
		b.WriteString("\n")
	}
	if s.Stale {
		b.WriteString(staleStyle.Render("table may be out of date"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if !s.HasTable {
		b.WriteString("Waiting for table state...\n")
	} else {
		fmt.Fprintf(&b, "Hand %s  %s  pot %d\n", s.HandID, s.Street, s.Pot)
		b.WriteString(renderBoard(s.Board))
		b.WriteString("\n")
		for _, p := range s.Players {
			b.WriteString(renderPlayer(p))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case len(s.Triggers) > 0:
		b.WriteString("Your move:\n")
		for i, t := range s.Triggers {
			line := fmt.Sprintf("%d. %s", i+1, t.Label)
			if i == cursor {
				b.WriteString(cursorStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	case s.Waiting != "":
		b.WriteString(helpStyle.Render(s.Waiting))
		b.WriteString("\n")
	}

	if s.LastAction != "" {
		b.WriteString("\nLast action: " + s.LastAction + "\n")
	}
	if s.LastError != "" {
		b.WriteString(errorStyle.Render("Server error: "+s.LastError) + "\n")
	}
	if s.Results != "" {
		b.WriteString("Last hand: " + s.Results + "\n")
	}
	if len(s.Notices) > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("Ignored messages: %d (last: %s)", len(s.Notices), s.Notices[len(s.Notices)-1])))
		b.WriteString("\n")
	}
	if status != "" {
		b.WriteString("\n" + status + "\n")
	}

	return renderPage("POKER TABLE", strings.TrimRight(b.String(), "\n"), tableHotKeys)
}

func renderIdentity(id models.SessionIdentity) string {
	if id.TableID == "" {
		return "not seated"
	}
	return fmt.Sprintf("table %s  player %s  seat %d", id.TableID, fitText(id.PlayerID, maxIDWidth), id.Seat)
}

func renderBoard(board []string) string {
	if len(board) == 0 {
		return boardBoxStyle.Render("Board: -")
	}
	return boardBoxStyle.Render("Board: " + strings.Join(board, " "))
}

func renderPlayer(p PlayerLine) string {
	marker := "  "
	if p.ToAct {
		marker = "* "
	}
	line := fmt.Sprintf("%sseat %d  %-*s  stack %d  bet %d", marker, p.Seat, maxIDWidth, fitText(valueOrDash(p.ID), maxIDWidth), p.Stack, p.Bet)
	if !p.InHand {
		line += "  (out)"
	}
	if p.Local {
		line += "  (you)"
	}
	return line
}
