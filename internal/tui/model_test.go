package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-poker-client/internal/mock"
	"github.com/MKhiriev/go-poker-client/internal/service"
	"github.com/MKhiriev/go-poker-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func actionableView(actions ...models.ActionDescriptor) service.View {
	v := baseView()
	v.Prompt = &models.Prompt{LegalActions: actions}
	v.Actionable = true
	return v
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModel_EnterSubmitsSelectedTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := mock.NewMockSubmitter(ctrl)
	m := NewModel(submitter, actionableView(models.Check(), models.Fold(), models.RaiseTo(10)), models.AppBuildInfo{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, keyRune('j'))
	assert.Equal(t, 2, m.cursor)

	sent := models.OutboundAction{Type: "action", ActionID: "a-1", Action: models.RaiseTo(10)}
	submitter.EXPECT().Submit(models.RaiseTo(10)).Return(sent, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	result := cmd()
	assert.Equal(t, submittedMsg{msg: sent}, result)

	m, clearCmd := update(t, m, result)
	assert.Equal(t, "Sent Raise to 10", m.status)
	assert.NotNil(t, clearCmd)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestModel_DigitShortcut(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := mock.NewMockSubmitter(ctrl)
	m := NewModel(submitter, actionableView(models.Fold(), models.Call(5)), models.AppBuildInfo{})

	submitter.EXPECT().Submit(models.Call(5)).Return(models.OutboundAction{}, service.ErrNotYourTurn)

	m, cmd := update(t, m, keyRune('2'))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.cursor)

	m, _ = update(t, m, cmd())
	assert.Equal(t, "Action dropped: not your turn", m.status)
}

func TestModel_NoTriggersNoSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := mock.NewMockSubmitter(ctrl) // Submit must not be called

	v := baseView()
	v.Prompt = &models.Prompt{ToAct: intPtr(2), LegalActions: []models.ActionDescriptor{models.Fold()}}
	m := NewModel(submitter, v, models.AppBuildInfo{})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	_, cmd = update(t, m, keyRune('1'))
	assert.Nil(t, cmd)
	_, cmd = update(t, m, keyRune('9'))
	assert.Nil(t, cmd)
}

func TestModel_ViewMsgReprojectsAndClampsCursor(t *testing.T) {
	m := NewModel(nil, actionableView(models.Check(), models.Fold(), models.RaiseTo(10)), models.AppBuildInfo{})
	m.cursor = 2

	m, cmd := update(t, m, ViewMsg(actionableView(models.Fold())))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.cursor)
	require.Len(t, m.Screen().Triggers, 1)

	m, _ = update(t, m, ViewMsg(baseView()))
	assert.Empty(t, m.Screen().Triggers)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_CursorStaysInRange(t *testing.T) {
	m := NewModel(nil, actionableView(models.Check(), models.Fold()), models.AppBuildInfo{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)
	for range 5 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 1, m.cursor)
	m, _ = update(t, m, keyRune('k'))
	assert.Equal(t, 0, m.cursor)
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRune('q'), {Type: tea.KeyCtrlC}} {
		m := NewModel(nil, baseView(), models.AppBuildInfo{})

		m, cmd := update(t, m, msg)

		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	}
}

func TestModel_BuildInfo(t *testing.T) {
	m := NewModel(nil, actionableView(models.Check()), models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"))

	m, _ = update(t, m, keyRune('v'))
	assert.True(t, m.showBuildInfo)
	view := m.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")

	// keys other than esc/v/quit are swallowed while the window is open
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

func TestModel_BuildInfoNA(t *testing.T) {
	assert.Contains(t, renderBuildInfoWindow(models.AppBuildInfo{}), "Version: N/A")
}

func TestModel_CopyTableID(t *testing.T) {
	m := NewModel(nil, baseView(), models.AppBuildInfo{})
	_, cmd := update(t, m, keyRune('c'))
	assert.NotNil(t, cmd)

	empty := NewModel(nil, service.View{}, models.AppBuildInfo{})
	_, cmd = update(t, empty, keyRune('c'))
	assert.Nil(t, cmd)

	m, _ = update(t, m, copiedMsg{})
	assert.Equal(t, "Table id copied", m.status)
	m, _ = update(t, m, copyFailedMsg{err: errors.New("copy to clipboard: no xclip")})
	assert.Equal(t, "copy to clipboard: no xclip", m.status)
}

func TestModel_ViewRendersTable(t *testing.T) {
	v := actionableView(models.Check(), models.RaiseTo(10))
	v.LastError = "not your turn"
	m := NewModel(nil, v, models.AppBuildInfo{})

	out := m.View()

	for _, want := range []string{"table t1", "player p1", "seat 1", "[open]", "Hand h_00001", "pot 20", "Ah Kd 7c", "1. Check", "2. Raise to 10", "(you)", "Server error: not your turn"} {
		assert.True(t, strings.Contains(out, want), "missing %q in\n%s", want, out)
	}
}

func TestModel_ViewConnecting(t *testing.T) {
	m := NewModel(nil, service.View{Connection: models.ConnectionConnecting}, models.AppBuildInfo{})

	out := m.View()

	assert.Contains(t, out, "[connecting]")
	assert.Contains(t, out, "Waiting for table state")
	assert.Contains(t, out, "not seated")
}
