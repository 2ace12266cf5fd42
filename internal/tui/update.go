package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"wintitle/internal/watch"
)

// MsgLine carries a freshly built status line.
type MsgLine string

// MsgError indicates the watcher stopped with an error.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case MsgLine:
		m.Waiting = false
		m.Line = string(msg)
		m.Updates++
		return m, nil

	case MsgError:
		m.Err = msg
		m.Waiting = false
		return m, nil

	case spinner.TickMsg:
		if !m.Waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}

	return m, nil
}

// Sink forwards watcher lines into a running program.
func Sink(p *tea.Program) watch.Sink {
	return watch.SinkFunc(func(line string) error {
		p.Send(MsgLine(line))
		return nil
	})
}
