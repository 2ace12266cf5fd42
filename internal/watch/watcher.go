// Package watch prints the focused window line on startup and after every
// focus or title change.
package watch

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"wintitle/internal/ipc"
	"wintitle/internal/model"
)

// Watcher ties a window manager connection to a line sink.
type Watcher struct {
	Icons  model.IconTable
	MaxLen int

	conn ipc.Conn
	sink Sink
	log  *logrus.Entry
}

// New returns a Watcher using the built-in icon table and title length.
func New(conn ipc.Conn, sink Sink, log *logrus.Entry) *Watcher {
	return &Watcher{
		Icons:  model.DefaultIcons(),
		MaxLen: model.DefaultMaxLen,
		conn:   conn,
		sink:   sink,
		log:    log,
	}
}

// Emit queries the focused window and writes its line. A failed query is
// logged and shown as the no-window line.
func (w *Watcher) Emit() error {
	win, err := w.conn.FocusedWindow()
	if err != nil {
		w.log.WithError(err).Warn("Focused window query failed")
		win = nil
	}
	return w.sink.WriteLine(model.Line(w.Icons, win, w.MaxLen))
}

// Run emits the current line, then re-emits on every focus and title event
// until ctx is done or the connection's event loop ends. A sink failure
// (usually the status bar closing the pipe) stops the loop and is returned.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Emit(); err != nil {
		return fmt.Errorf("write line: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var sinkErr error
	onEvent := func() {
		if sinkErr != nil {
			return
		}
		if err := w.Emit(); err != nil {
			sinkErr = fmt.Errorf("write line: %w", err)
			cancel()
		}
	}
	w.conn.Subscribe(model.EventFocus, onEvent)
	w.conn.Subscribe(model.EventTitle, onEvent)

	if err := w.conn.Run(ctx); err != nil {
		return err
	}
	return sinkErr
}
