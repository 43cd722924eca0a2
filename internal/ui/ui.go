// Package ui is the bubbletea shell around the app engine. It owns the
// terminal, translates key presses into engine calls, and drains the
// sampler stream on a fast tick so a slow render never blocks polling.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/obadao/gribble/internal/app"
	"github.com/obadao/gribble/internal/config"
	"github.com/obadao/gribble/internal/fsnav"
	"github.com/obadao/gribble/internal/logger"
	"github.com/obadao/gribble/internal/sampler"
)

// Model adapts app.State to the bubbletea Init/Update/View contract. All
// engine mutation happens here in Update, on the program goroutine.
type Model struct {
	state   *app.State
	sampler *sampler.Sampler
	stream  <-chan sampler.Result
	cancel  context.CancelFunc
	help    viewport.Model
	width   int
	height  int
}

func New(cfg config.Config, log logger.Logger) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	nav := fsnav.New(fsnav.DirLister{}, cfg.StartDir, 10, log)
	s := sampler.New(log)
	m := &Model{
		state:   app.NewState(nav, log),
		sampler: s,
		stream:  s.Stream(ctx, cfg.Interval),
		cancel:  cancel,
		help:    viewport.New(60, 20),
		width:   120,
		height:  40,
	}
	m.help.SetContent(helpText)
	return m
}

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/5, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) Init() tea.Cmd { return tickCmd() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.state.SetViewports(listRows(msg.Height), listRows(msg.Height))
		m.help.Width = min(msg.Width-4, 64)
		m.help.Height = msg.Height - 4
	case tea.KeyMsg:
		key := msg.String()
		if m.state.View().HelpOpen {
			// Let the viewport scroll before the engine sees close keys.
			switch key {
			case app.KeyUp, app.KeyDown, app.KeyVimUp, app.KeyVimDown,
				app.KeyPageUp, app.KeyPageDown:
				var cmd tea.Cmd
				m.help, cmd = m.help.Update(msg)
				return m, cmd
			}
		}
		switch m.state.HandleKey(key) {
		case app.EffectQuit:
			m.cancel()
			return m, tea.Quit
		case app.EffectRefresh:
			m.sampler.Refresh()
		}
	case tickMsg:
		select {
		case res, ok := <-m.stream:
			if ok {
				m.state.HandleTick(res)
			}
		default:
		}
		return m, tickCmd()
	}
	return m, nil
}

// listRows derives the scrolling-list height from the terminal height:
// header, footer, borders and column headers eat the rest.
func listRows(termHeight int) int {
	rows := termHeight - 12
	if rows < 3 {
		rows = 3
	}
	return rows
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Run starts the program in the alternate screen.
func Run(cfg config.Config, log logger.Logger) error {
	prog := tea.NewProgram(New(cfg, log), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
