package dbg

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// lineBuilderPool pools builders for line rendering to reduce
// allocations on hot logging paths.
var lineBuilderPool = sync.Pool{
	New: func() any {
		sb := &strings.Builder{}
		sb.Grow(lineBuilderCapacity)
		return sb
	},
}

// Logger decides, per log call, whether to emit and how to format.
// All public methods are goroutine-safe. A Logger holds no per-call
// state: each Emit is an independent computation over its inputs plus
// the process-wide filter string, which is re-read on every call so
// runtime filter changes take effect immediately.
type Logger struct {
	enabled atomic.Bool
	closed  atomic.Bool

	appLayer atomic.Pointer[Layer]
	filter   filterCache

	mu    sync.RWMutex
	sinks []Sink
}

// New creates a Logger dispatching to the given sinks. With no sinks,
// lines go to stderr. Nil sinks are rejected.
func New(sinks ...Sink) (*Logger, error) {
	l := &Logger{}
	l.enabled.Store(true)

	if len(sinks) == 0 {
		sinks = []Sink{stderrSink()}
	}
	for _, sink := range sinks {
		if err := l.AddSink(sink); err != nil {
			return nil, fmt.Errorf("failed to add sink: %w", err)
		}
	}
	return l, nil
}

// SetEnabled flips the logger-wide enable flag (thread-safe). This
// gate is orthogonal to the namespace filter: both must pass for a
// line to be emitted, and disabling one never touches the other.
func (l *Logger) SetEnabled(enabled bool) {
	l.enabled.Store(enabled)
}

// Enabled reports the logger-wide enable flag (thread-safe).
func (l *Logger) Enabled() bool {
	return l.enabled.Load()
}

// SetAppLayer installs the application-wide configuration layer
// (thread-safe). It sits between the built-in defaults and each
// module's declared layer in resolution precedence.
func (l *Logger) SetAppLayer(layer Layer) {
	l.appLayer.Store(&layer)
}

// AppLayer returns the current application-wide layer (thread-safe).
func (l *Logger) AppLayer() Layer {
	if layer := l.appLayer.Load(); layer != nil {
		return *layer
	}
	return Layer{}
}

// AddSink attaches a sink to the logger (thread-safe).
func (l *Logger) AddSink(sink Sink) error {
	if sink == nil {
		return ErrNilSink
	}
	if l.closed.Load() {
		return ErrLoggerClosed
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.sinks) >= MaxSinkCount {
		return ErrMaxSinksExceeded
	}
	l.sinks = append(l.sinks, sink)
	return nil
}

// RemoveSink detaches a previously added sink (thread-safe).
func (l *Logger) RemoveSink(sink Sink) error {
	if sink == nil {
		return ErrNilSink
	}
	if l.closed.Load() {
		return ErrLoggerClosed
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.sinks {
		if l.sinks[i] == sink {
			last := len(l.sinks) - 1
			l.sinks[i] = l.sinks[last]
			l.sinks[last] = nil
			l.sinks = l.sinks[:last]
			return nil
		}
	}
	return ErrSinkNotFound
}

// SinkCount returns the number of attached sinks (thread-safe).
func (l *Logger) SinkCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sinks)
}

// Close marks the logger closed and drops its sinks (thread-safe,
// idempotent). Sinks implementing io.Closer are not closed; the core
// does not own sink lifecycles.
func (l *Logger) Close() error {
	if !l.closed.CompareAndSwap(false, true) {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = nil
	return nil
}

// IsClosed reports whether the logger has been closed (thread-safe).
func (l *Logger) IsClosed() bool {
	return l.closed.Load()
}

// Emit runs the full decision pipeline for one log call: severity
// gate, enable gates, namespace filter, formatting, dispatch.
// overrides is the call-site configuration layer, highest in
// precedence; pass the zero Layer when there is nothing to override.
//
// Emit never fails and never panics, whatever its inputs — rejected
// events are silently dropped, unrenderable metadata values are
// substituted, and sink panics are swallowed.
func (l *Logger) Emit(level Level, namespace, message string, md Metadata, overrides Layer) {
	l.emit(level, namespace, message, md, Layer{}, overrides)
}

// emit is the shared pipeline behind Logger.Emit and ModuleLogger.
func (l *Logger) emit(level Level, namespace, message string, md Metadata, module, callSite Layer) {
	if l.closed.Load() || !l.enabled.Load() {
		return
	}

	cfg := Resolve(Layer{}, l.AppLayer(), module, callSite)

	// Severity gate. An unknown severity is a gating outcome, not an
	// error condition.
	if !cfg.Levels.Has(level) {
		return
	}
	if !cfg.Enabled {
		return
	}

	// Namespace gate, against a pattern set derived from the current
	// filter string. The cache is keyed on the raw string, so a filter
	// changed at runtime is honored on this very call.
	if !l.filter.patternSet(CurrentFilter()).Matches(namespace) {
		return
	}

	line := renderLine(displayNamespace(namespace), message, md, cfg)
	l.dispatch(level, line)
}

// NamespaceEnabled reports whether the namespace passes the current
// filter. Call sites use it to skip building expensive metadata for
// statements that would be dropped anyway.
func (l *Logger) NamespaceEnabled(namespace string) bool {
	if l.closed.Load() || !l.enabled.Load() {
		return false
	}
	return l.filter.patternSet(CurrentFilter()).Matches(namespace)
}

// renderLine produces "[namespace] message" plus, when metadata
// renders non-empty, a single space and the rendered metadata.
func renderLine(namespace, message string, md Metadata, cfg Config) string {
	sb := lineBuilderPool.Get().(*strings.Builder)
	sb.Reset()
	defer func() {
		if sb.Cap() <= maxPooledBuilderCapacity {
			lineBuilderPool.Put(sb)
		}
	}()

	sb.WriteByte('[')
	sb.WriteString(namespace)
	sb.WriteString("] ")
	sb.WriteString(message)

	if meta := FormatMetadata(md, cfg.Truncate, cfg.MaxDepth); meta != "" {
		sb.WriteByte(' ')
		sb.WriteString(meta)
	}

	return sb.String()
}

// displayNamespace normalizes a namespace for presentation: a
// qualifier prefix ending in '/' — the import-path convention for
// fully-qualified namespaces like "github.com/acme/payment:init" — is
// stripped. Presentation only; matching always sees the full string.
func displayNamespace(namespace string) string {
	if i := strings.LastIndexByte(namespace, '/'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// dispatch fans the line out to every attached sink at the given
// severity. A panicking sink is skipped; the remaining sinks still
// receive the line.
func (l *Logger) dispatch(level Level, line string) {
	l.mu.RLock()
	if len(l.sinks) == 0 {
		l.mu.RUnlock()
		return
	}
	sinks := make([]Sink, len(l.sinks))
	copy(sinks, l.sinks)
	l.mu.RUnlock()

	for _, sink := range sinks {
		writeSink(sink, level, line)
	}
}

func writeSink(sink Sink, level Level, line string) {
	defer func() {
		_ = recover()
	}()
	sink.Write(level, line)
}

var defaultLogger atomic.Pointer[Logger]

// Default returns the process-wide default logger, created on first
// use with a stderr sink (thread-safe). Package-level convenience
// functions use this logger.
func Default() *Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}

	logger, err := New()
	if err != nil {
		// New without arguments cannot fail; keep a usable fallback
		// anyway.
		logger = &Logger{sinks: []Sink{stderrSink()}}
		logger.enabled.Store(true)
	}

	if defaultLogger.CompareAndSwap(nil, logger) {
		return logger
	}
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide default logger (thread-safe).
// Passing nil is ignored.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// Package-level convenience functions over the default logger.

func Debug(namespace, message string, fields ...Field) {
	Default().Emit(LevelDebug, namespace, message, Fields(fields...), Layer{})
}

func Error(namespace, message string, fields ...Field) {
	Default().Emit(LevelError, namespace, message, Fields(fields...), Layer{})
}

func Debugf(namespace, format string, args ...any) {
	Default().Emit(LevelDebug, namespace, fmt.Sprintf(format, args...), nil, Layer{})
}

func Errorf(namespace, format string, args ...any) {
	Default().Emit(LevelError, namespace, fmt.Sprintf(format, args...), nil, Layer{})
}

// Enabled reports whether the namespace passes the current filter on
// the default logger.
func Enabled(namespace string) bool {
	return Default().NamespaceEnabled(namespace)
}
