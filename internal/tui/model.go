package tui

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-poker-client/internal/service"
	"github.com/MKhiriev/go-poker-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// Model is the bubbletea model of the table screen. It never writes to the
// store; every state change arrives as a [ViewMsg].
type Model struct {
	submitter service.Submitter
	buildInfo models.AppBuildInfo

	screen  Screen
	cursor  int
	spinner spinner.Model
	status  string

	showBuildInfo bool
	quitting      bool
}

// NewModel returns a model showing initial.
func NewModel(submitter service.Submitter, initial service.View, buildInfo models.AppBuildInfo) Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return Model{
		submitter: submitter,
		buildInfo: buildInfo,
		screen:    Project(initial),
		spinner:   s,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case ViewMsg:
		m.screen = Project(service.View(msg))
		m.cursor = clampCursor(m.cursor, len(m.screen.Triggers))
		return m, nil
	case submittedMsg:
		if msg.err != nil {
			m.status = "Action dropped: " + msg.err.Error()
		} else {
			m.status = "Sent " + Label(msg.msg.Action)
		}
		return m, cmdClearStatus()
	case copiedMsg:
		m.status = "Table id copied"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	case key.Matches(msg, keys.up):
		m.cursor = clampCursor(m.cursor-1, len(m.screen.Triggers))
	case key.Matches(msg, keys.down):
		m.cursor = clampCursor(m.cursor+1, len(m.screen.Triggers))
	case key.Matches(msg, keys.enter):
		if m.cursor < len(m.screen.Triggers) {
			return m, m.cmdSubmit(m.screen.Triggers[m.cursor].Descriptor)
		}
	case key.Matches(msg, keys.digit):
		idx := int(msg.String()[0] - '1')
		if idx < len(m.screen.Triggers) {
			m.cursor = idx
			return m, m.cmdSubmit(m.screen.Triggers[idx].Descriptor)
		}
	case key.Matches(msg, keys.copy):
		if id := m.screen.Identity.TableID; id != "" {
			return m, cmdCopyToClipboard(id)
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	return appStyle.Render(renderTable(m.screen, m.cursor, m.spinner.View(), m.status))
}

// Screen returns the projection currently shown.
func (m Model) Screen() Screen {
	return m.screen
}

func (m Model) cmdSubmit(action models.ActionDescriptor) tea.Cmd {
	submitter := m.submitter
	return func() tea.Msg {
		msg, err := submitter.Submit(action)
		return submittedMsg{msg: msg, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
