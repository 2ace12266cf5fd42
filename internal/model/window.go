package model

// FocusedWindow is what the window manager reports for the focused node.
// Either field may be empty (focused workspace, windows without WM_CLASS).
type FocusedWindow struct {
	Title string // Window title (i3 node name)
	Class string // WM_CLASS class, or the app_id of a native Wayland window under sway
}

// EventKind identifies a window notification the watcher reacts to.
type EventKind string

const (
	EventFocus EventKind = "focus" // window::focus
	EventTitle EventKind = "title" // window::title
)
