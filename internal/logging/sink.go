package logging

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

// Sink accepts lines of text. It is fire-and-forget: it never reports
// failure back to the caller.
type Sink interface {
	Line(text string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(text string)

// Line calls f(text).
func (f SinkFunc) Line(text string) { f(text) }

// Discard drops every line.
var Discard Sink = SinkFunc(func(string) {})

// WriterSink writes each line, newline-terminated, to an io.Writer.
// Safe for concurrent use.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink over w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Line writes text followed by a newline. Write errors are ignored.
func (s *WriterSink) Line(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.w, text)
}

// LoggerSink forwards lines to a zap logger at info level.
type LoggerSink struct {
	log *zap.Logger
}

// NewLoggerSink creates a sink that logs each line under the "line" key.
func NewLoggerSink(log *zap.Logger) *LoggerSink {
	return &LoggerSink{log: log}
}

// Line logs text.
func (s *LoggerSink) Line(text string) {
	s.log.Info("output", zap.String("line", text))
}

// Tee fans each line out to every sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(text string) {
		for _, s := range sinks {
			s.Line(text)
		}
	})
}
