package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const quitHint = "q / ctrl+c: quit"

var ruleStyle = lipgloss.NewStyle().Faint(true)

// renderPage frames body under a title, followed by the page hot keys and the
// global quit hint.
func renderPage(title, body, hotKeys string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	width := max(lipgloss.Width(body), lipgloss.Width(title), 40)
	rule := ruleStyle.Render(strings.Repeat("─", width))

	hints := quitHint
	if strings.TrimSpace(hotKeys) != "" {
		hints = hotKeys + "  " + quitHint
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		rule,
		body,
		rule,
		helpStyle.Render(hints),
	)
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// fitText shortens v to at most n runes, marking the cut with an ellipsis.
func fitText(v string, n int) string {
	runes := []rune(v)
	if n <= 0 || len(runes) <= n {
		return v
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
