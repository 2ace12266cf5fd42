// Package ipc connects to the window manager and reports focus changes.
package ipc

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"wintitle/internal/model"
)

// ErrNotConnected is returned by a Conn that has been closed.
var ErrNotConnected = errors.New("ipc: connection closed")

// Conn is a live window manager connection.
//
// Subscribe must be called before Run. Close may be called from any
// goroutine.
type Conn interface {
	// FocusedWindow returns the focused node, or nil when nothing has focus.
	FocusedWindow() (*model.FocusedWindow, error)
	// Subscribe registers handler for kind. Handlers run on the Run
	// goroutine, one event at a time, in delivery order.
	Subscribe(kind model.EventKind, handler func())
	// Run blocks dispatching events until ctx is done or the event stream
	// fails. Cancellation is not an error.
	Run(ctx context.Context) error
	Close() error
}

// Dial connects to the window manager behind backend.
func Dial(ctx context.Context, backend Backend, log *logrus.Entry) (Conn, error) {
	if b, ok := backend.(*SwayBackend); ok {
		c, err := ConnectSway(ctx, b, log)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	c, err := Connect(backend, log)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// handlers holds subscriptions per event kind.
type handlers map[model.EventKind][]func()

func (h handlers) add(kind model.EventKind, fn func()) {
	h[kind] = append(h[kind], fn)
}

// dispatch runs the handlers for kind and reports whether any ran.
func (h handlers) dispatch(kind model.EventKind) bool {
	fns := h[kind]
	for _, fn := range fns {
		fn()
	}
	return len(fns) > 0
}

// connState is shared by the Conn implementations.
type connState struct {
	handlers handlers
	closed   atomic.Bool
}

func (s *connState) Subscribe(kind model.EventKind, handler func()) {
	if s.handlers == nil {
		s.handlers = handlers{}
	}
	s.handlers.add(kind, handler)
}

func (s *connState) Close() error {
	s.closed.Store(true)
	return nil
}
