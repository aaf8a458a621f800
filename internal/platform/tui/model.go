// Package tui provides the Bubble Tea front end for the game.
// It only reads controller snapshots and forwards key presses as actions.
package tui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

// stateMsg carries a committed controller snapshot.
type stateMsg struct {
	state tetris.State
}

// closedMsg reports that the controller stopped publishing.
type closedMsg struct{}

// Model is the Bubble Tea model for a game session.
type Model struct {
	ctrl        *tetris.Controller
	states      <-chan tetris.State
	unsubscribe func()
	logger      *log.Logger

	state    tetris.State
	screen   *core.Screen
	opts     tetris.RenderOptions
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel subscribes to the controller and returns a model sized from cfg.
func NewModel(ctrl *tetris.Controller, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	states, unsubscribe := ctrl.Subscribe()

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		ctrl:        ctrl,
		states:      states,
		unsubscribe: unsubscribe,
		logger:      logger,
		state:       ctrl.State(),
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:        tetris.RenderOptions{ShowGhost: cfg.ShowGhost},
		keys:        DefaultKeyMap(),
		help:        h,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
	}
}

// waitForState blocks on the next snapshot.
func waitForState(states <-chan tetris.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-states
		if !ok {
			return closedMsg{}
		}
		return stateMsg{state: s}
	}
}

// Init starts listening for snapshots.
func (m Model) Init() tea.Cmd {
	return waitForState(m.states)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case stateMsg:
		m.state = msg.state
		return m, waitForState(m.states)

	case closedMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey forwards game actions to the controller. Snapshots come back
// through the subscription, never from here.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.unsubscribe()
		return m, tea.Quit
	case core.ActionToggleHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case core.ActionLeft:
		err = m.ctrl.Move(tetris.DirLeft)
	case core.ActionRight:
		err = m.ctrl.Move(tetris.DirRight)
	case core.ActionSoftDrop:
		err = m.ctrl.Move(tetris.DirDown)
	case core.ActionRotate:
		err = m.ctrl.Rotate()
	case core.ActionHardDrop:
		err = m.ctrl.HardDrop()
	case core.ActionPause:
		err = m.ctrl.TogglePause()
	case core.ActionStart:
		// Enter only starts a game that is not running; use r to abandon one.
		if !m.state.Playing {
			err = m.ctrl.Start()
		}
	case core.ActionRestart:
		err = m.ctrl.Restart()
	}

	if errors.Is(err, tetris.ErrStopped) {
		m.quitting = true
		return m, tea.Quit
	}
	if err != nil {
		m.logger.Warn("action rejected", "key", msg.String(), "err", err)
	}
	return m, nil
}

// View renders the current snapshot and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys)
	m.screen.Resize(m.width, max(m.height-lipgloss.Height(helpView), 0))
	tetris.Render(m.state, m.screen, m.opts)

	return RenderScreen(m.screen) + "\n" + helpView
}

// Run drives ctrl on its own goroutine and shows it until the user quits.
func Run(ctrl *tetris.Controller, cfg core.RuntimeConfig, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- ctrl.Run(ctx) }()

	p := tea.NewProgram(NewModel(ctrl, cfg, logger), tea.WithAltScreen())
	_, err := p.Run()

	cancel()
	if runErr := <-done; runErr != nil && !errors.Is(runErr, context.Canceled) {
		return errors.Join(err, runErr)
	}
	return err
}
