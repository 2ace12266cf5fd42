package ipc

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"go.i3wm.org/i3/v4"

	"wintitle/internal/model"
)

// I3Conn implements Conn over the i3 IPC protocol.
type I3Conn struct {
	connState

	backend Backend
	log     *logrus.Entry
}

// Connect points the i3 library at backend's socket and checks that the
// window manager answers.
func Connect(backend Backend, log *logrus.Entry) (*I3Conn, error) {
	if path := backend.SocketPath(); path != "" {
		i3.SocketPathHook = func() (string, error) {
			return path, nil
		}
		i3.IsRunningHook = func() bool {
			_, err := os.Stat(path)
			return err == nil
		}
	}

	v, err := i3.GetVersion()
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", backend.Name(), err)
	}

	log = log.WithField("backend", backend.Name())
	log.WithField("version", v.HumanReadable).Debug("Connected to window manager")

	return &I3Conn{
		backend: backend,
		log:     log,
	}, nil
}

func (c *I3Conn) FocusedWindow() (*model.FocusedWindow, error) {
	if c.closed.Load() {
		return nil, ErrNotConnected
	}
	tree, err := i3.GetTree()
	if err != nil {
		return nil, fmt.Errorf("get tree: %w", err)
	}
	return focusedWindow(tree), nil
}

// focusedWindow follows the focus stack from the root of the layout tree.
// A focused workspace with no windows is reported with its name as title
// and an empty class.
func focusedWindow(tree i3.Tree) *model.FocusedWindow {
	if tree.Root == nil {
		return nil
	}
	node := tree.Root.FindFocused(func(n *i3.Node) bool {
		return n.Focused
	})
	if node == nil {
		return nil
	}
	return &model.FocusedWindow{
		Title: node.Name,
		Class: node.WindowProperties.Class,
	}
}

// eventKind maps a window event to the kind handlers subscribe to.
func eventKind(ev *i3.WindowEvent) model.EventKind {
	return model.EventKind(ev.Change)
}

// Run subscribes to window events and dispatches focus and title changes.
// The i3 library reconnects on its own when the window manager restarts.
func (c *I3Conn) Run(ctx context.Context) error {
	if c.closed.Load() {
		return ErrNotConnected
	}

	recv := i3.Subscribe(i3.WindowEventType)
	stop := context.AfterFunc(ctx, func() {
		recv.Close()
	})
	defer func() {
		if stop() {
			recv.Close()
		}
	}()

	for recv.Next() {
		ev, ok := recv.Event().(*i3.WindowEvent)
		if !ok {
			continue
		}
		if c.handlers.dispatch(eventKind(ev)) {
			c.log.WithField("change", ev.Change).Debug("Handled window event")
		}
	}

	if ctx.Err() != nil {
		return nil
	}
	if err := recv.Err(); err != nil {
		return fmt.Errorf("%s event stream: %w", c.backend.Name(), err)
	}
	return nil
}
