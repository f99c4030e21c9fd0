package dbg

import (
	"io"
	"os"
	"sync"
)

// Sink receives accepted, fully-formatted log lines. It is the
// external collaborator at the bottom of the pipeline: the core makes
// no assumption about a sink's synchronicity, durability, or
// destination, and imposes no coordination between concurrent writes
// beyond what the sink itself requires.
type Sink interface {
	Write(level Level, line string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(level Level, line string)

func (f SinkFunc) Write(level Level, line string) {
	f(level, line)
}

// WriterSink adapts an io.Writer to the Sink interface, appending a
// newline per line. Writes are serialized under a mutex so the sink is
// safe for concurrent emitters even when the underlying writer is not.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink wraps w in a WriterSink.
func NewWriterSink(w io.Writer) (*WriterSink, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &WriterSink{w: w}, nil
}

func (s *WriterSink) Write(_ Level, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Write errors are deliberately dropped: the emit path is total
	// and has no error channel to surface them on.
	_, _ = io.WriteString(s.w, line)
	_, _ = io.WriteString(s.w, "\n")
}

// stderrSink is the fallback sink used when a logger is built without
// any explicit sink.
func stderrSink() Sink {
	return &WriterSink{w: os.Stderr}
}
