package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"wintitle/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")) // Pinkish

	lineStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

func (m AppModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wintitle " + model.Version))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(m.Backend))
	b.WriteString("\n\n")

	switch {
	case m.Err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.Err)))
	case m.Waiting:
		b.WriteString(m.Spinner.View() + " Waiting for the window manager...")
	default:
		b.WriteString(lineStyle.Render(fitWidth(m.Line, m.WindowSize.Width)))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d updates", m.Updates)))
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("q: quit"))
	b.WriteString("\n")
	return b.String()
}

// fitWidth cuts line to the cells left inside the bordered box. Width 0
// means no WindowSizeMsg yet.
func fitWidth(line string, width int) string {
	if width <= 0 {
		return line
	}
	// Border and padding take four cells.
	room := width - 4
	if room < 1 {
		room = 1
	}
	return runewidth.Truncate(line, room, model.Ellipsis)
}
