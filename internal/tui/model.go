// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typefast/internal/app"
	"github.com/verte-zerg/typefast/internal/logging"
)

// tickInterval is how often the screen refreshes the running timer.
const tickInterval = 250 * time.Millisecond

type tickMsg time.Time

// Model adapts the page controller to Bubble Tea. Bubble Tea delivers one
// message at a time, which serializes every controller call.
type Model struct {
	ctrl *app.Controller
	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel constructs a TUI model around ctrl.
func NewModel(ctrl *app.Controller) *Model {
	return &Model{
		ctrl: ctrl,
		keys: defaultKeyMap,
		help: help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		m.dispatch(app.Do(app.CmdTick))
		return m, tick()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		cmd := m.keys.decode(msg, m.ctrl.Page())
		if cmd.Kind == app.CmdRune {
			logging.Debugf("key %q", cmd.Rune)
		}
		m.dispatch(cmd)
		if !m.ctrl.Running() {
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) dispatch(cmd app.Command) {
	err := m.ctrl.Dispatch(cmd)
	if err == nil || errors.Is(err, app.ErrInvalidTransition) {
		return
	}
	logging.Errorf("command %s failed: %v", cmd.Kind, err)
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.ctrl.Page() {
	case app.PageMenu:
		body = m.renderMenu()
	case app.PageTyping:
		body = m.renderTyping()
	case app.PagePause:
		body = m.renderPause()
	}
	return m.layout(body)
}
