package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the preview state.
type AppModel struct {
	// Data
	Line    string // Last line the watcher produced
	Updates int    // Lines received so far
	Backend string
	Err     error

	// UI State
	Waiting    bool
	WindowSize tea.WindowSizeMsg

	// Components
	Spinner spinner.Model
}

// InitialModel returns the state shown before the first line arrives.
func InitialModel(backend string) AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return AppModel{
		Backend: backend,
		Waiting: true,
		Spinner: s,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.Spinner.Tick
}
