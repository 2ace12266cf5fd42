package ipc

import (
	"context"
	"fmt"
	"os"

	"github.com/joshuarubin/go-sway"
	"github.com/sirupsen/logrus"

	"wintitle/internal/model"
)

// SwayConn implements Conn for sway. Unlike the i3 client it sees the
// app_id of native Wayland windows.
type SwayConn struct {
	connState

	client sway.Client
	log    *logrus.Entry
}

// ConnectSway opens a sway client on backend's socket.
func ConnectSway(ctx context.Context, backend *SwayBackend, log *logrus.Entry) (*SwayConn, error) {
	// Subscribe dials its own socket from $SWAYSOCK.
	if path := backend.SocketPath(); path != "" {
		if err := os.Setenv("SWAYSOCK", path); err != nil {
			return nil, fmt.Errorf("set SWAYSOCK: %w", err)
		}
	}

	client, err := sway.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", backend.Name(), err)
	}

	v, err := client.GetVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", backend.Name(), err)
	}

	log = log.WithField("backend", backend.Name())
	log.WithField("version", v.HumanReadable).Debug("Connected to window manager")

	return &SwayConn{client: client, log: log}, nil
}

func (c *SwayConn) FocusedWindow() (*model.FocusedWindow, error) {
	if c.closed.Load() {
		return nil, ErrNotConnected
	}
	root, err := c.client.GetTree(context.Background())
	if err != nil {
		return nil, fmt.Errorf("get tree: %w", err)
	}
	return swayFocusedWindow(root), nil
}

// swayFocusedWindow reports the focused node of root. WM_CLASS wins for
// Xwayland windows; native windows fall back to their app_id.
func swayFocusedWindow(root *sway.Node) *model.FocusedWindow {
	if root == nil {
		return nil
	}
	node := root.FocusedNode()
	if node == nil {
		return nil
	}

	win := &model.FocusedWindow{Title: node.Name}
	if node.WindowProperties != nil {
		win.Class = node.WindowProperties.Class
	}
	if win.Class == "" && node.AppID != nil {
		win.Class = *node.AppID
	}
	return win
}

// swayHandler forwards window events and ignores the rest.
type swayHandler struct {
	sway.EventHandler

	conn *SwayConn
}

func (h swayHandler) Window(_ context.Context, ev sway.WindowEvent) {
	if h.conn.handlers.dispatch(model.EventKind(ev.Change)) {
		h.conn.log.WithField("change", ev.Change).Debug("Handled window event")
	}
}

func (c *SwayConn) Run(ctx context.Context) error {
	if c.closed.Load() {
		return ErrNotConnected
	}

	h := swayHandler{EventHandler: sway.NoOpEventHandler(), conn: c}
	err := sway.Subscribe(ctx, h, sway.EventTypeWindow)
	if ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("sway event stream: %w", err)
	}
	return nil
}
