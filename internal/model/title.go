package model

import "strings"

// DefaultMaxLen is the title length, in runes, beyond which titles are cut.
const DefaultMaxLen = 50

// Ellipsis is appended to a truncated title.
const Ellipsis = "…"

// NoWindowLine is printed when the window manager reports no focused node.
const NoWindowLine = IconWindow + " No window"

// FormatTitle shortens title to maxLen runes followed by an ellipsis.
// Titles that already fit are returned unchanged. maxLen <= 0 disables
// truncation.
func FormatTitle(title string, maxLen int) string {
	if maxLen <= 0 {
		return title
	}
	runes := []rune(title)
	if len(runes) <= maxLen {
		return title
	}
	return string(runes[:maxLen]) + Ellipsis
}

// Line builds the status bar line for win. A nil win yields NoWindowLine.
func Line(icons IconTable, win *FocusedWindow, maxLen int) string {
	if win == nil {
		return NoWindowLine
	}
	var b strings.Builder
	b.WriteString(icons.Resolve(win.Class))
	b.WriteByte(' ')
	b.WriteString(FormatTitle(win.Title, maxLen))
	return b.String()
}
