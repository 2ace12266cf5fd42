package ipc

import (
	"testing"

	"go.i3wm.org/i3/v4"

	"wintitle/internal/model"
)

// layout builds root > output > workspace "1" holding a tiled split with
// two windows and one floating window. focus picks the focused leaf.
func layout(focus i3.NodeID) i3.Tree {
	editor := &i3.Node{ID: 11, Name: "main.go - Code", WindowProperties: i3.WindowProperties{Class: "Code"}}
	term := &i3.Node{ID: 12, Name: "~", WindowProperties: i3.WindowProperties{Class: "Alacritty"}}
	player := &i3.Node{ID: 21, Name: "song.mp3 - mpv", WindowProperties: i3.WindowProperties{Class: "mpv"}}
	floating := &i3.Node{ID: 20, Nodes: []*i3.Node{player}, Focus: []i3.NodeID{21}}
	split := &i3.Node{ID: 10, Nodes: []*i3.Node{editor, term}, Focus: []i3.NodeID{12, 11}}
	ws := &i3.Node{ID: 3, Name: "1", Nodes: []*i3.Node{split}, FloatingNodes: []*i3.Node{floating}}
	output := &i3.Node{ID: 2, Name: "eDP-1", Nodes: []*i3.Node{ws}, Focus: []i3.NodeID{3}}
	root := &i3.Node{ID: 1, Name: "root", Nodes: []*i3.Node{output}, Focus: []i3.NodeID{2}}

	for _, n := range []*i3.Node{editor, term, player} {
		n.Focused = n.ID == focus
	}
	if focus == 21 {
		ws.Focus = []i3.NodeID{20, 10}
	} else {
		ws.Focus = []i3.NodeID{10, 20}
	}
	return i3.Tree{Root: root}
}

func TestFocusedWindow_Tree(t *testing.T) {
	emptyWS := &i3.Node{ID: 4, Name: "2", Focused: true}
	emptyOut := &i3.Node{ID: 2, Nodes: []*i3.Node{emptyWS}, Focus: []i3.NodeID{4}}

	short := layout(12)
	short.Root.Focus = []i3.NodeID{99}

	cases := []struct {
		name string
		tree i3.Tree
		want *model.FocusedWindow
	}{
		{"nested tiled window", layout(12), &model.FocusedWindow{Title: "~", Class: "Alacritty"}},
		{"floating window", layout(21), &model.FocusedWindow{Title: "song.mp3 - mpv", Class: "mpv"}},
		{"empty workspace", i3.Tree{Root: &i3.Node{ID: 1, Nodes: []*i3.Node{emptyOut}, Focus: []i3.NodeID{2}}}, &model.FocusedWindow{Title: "2"}},
		{"nil root", i3.Tree{}, nil},
		{"focus chain stops short", short, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := focusedWindow(tc.tree)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("got %+v want nil", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("got nil want %+v", *tc.want)
			}
			if *got != *tc.want {
				t.Fatalf("got %+v want %+v", *got, *tc.want)
			}
		})
	}
}

func TestEventKind(t *testing.T) {
	cases := map[string]model.EventKind{
		"focus": model.EventFocus,
		"title": model.EventTitle,
		"new":   "new",
	}
	for change, want := range cases {
		if got := eventKind(&i3.WindowEvent{Change: change}); got != want {
			t.Fatalf("eventKind(%q)=%q want %q", change, got, want)
		}
	}
}
