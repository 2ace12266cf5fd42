package ipc

import (
	"strings"
)

// Backend describes which window manager socket to talk to.
type Backend interface {
	// SocketPath returns the IPC socket, or "" to let the i3 library ask
	// `i3 --get-socketpath`.
	SocketPath() string
	Name() string
}

// I3Backend implements Backend for i3.
type I3Backend struct {
	Socket string
}

func (b *I3Backend) SocketPath() string {
	return b.Socket
}

func (b *I3Backend) Name() string {
	return "i3"
}

// SwayBackend implements Backend for sway, which speaks the i3 protocol.
type SwayBackend struct {
	Socket string
}

func (b *SwayBackend) SocketPath() string {
	return b.Socket
}

func (b *SwayBackend) Name() string {
	return "sway"
}

// DetectBackend picks the backend from an explicit socket path, then
// $SWAYSOCK, then $I3SOCK. With none of them set it falls back to i3 with
// the library's own socket discovery.
func DetectBackend(socket string, getenv func(string) string) Backend {
	if socket != "" {
		if strings.Contains(socket, "sway") {
			return &SwayBackend{Socket: socket}
		}
		return &I3Backend{Socket: socket}
	}
	if s := getenv("SWAYSOCK"); s != "" {
		return &SwayBackend{Socket: s}
	}
	if s := getenv("I3SOCK"); s != "" {
		return &I3Backend{Socket: s}
	}
	return &I3Backend{}
}
