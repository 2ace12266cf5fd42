package watch

import (
	"bufio"
	"io"
)

// Sink receives one display line per update.
type Sink interface {
	WriteLine(line string) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(line string) error

func (f SinkFunc) WriteLine(line string) error {
	return f(line)
}

// WriterSink writes newline-terminated lines and flushes after each one so
// a status bar reading the pipe sees the update immediately.
type WriterSink struct {
	w *bufio.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: bufio.NewWriter(w)}
}

func (s *WriterSink) WriteLine(line string) error {
	if _, err := s.w.WriteString(line); err != nil {
		return err
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return err
	}
	return s.w.Flush()
}
