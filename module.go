package dbg

import (
	"fmt"
	"time"

	"github.com/cybergodev/dbg/internal"
)

// ModuleLogger is a logger bound to one namespace and one declared
// configuration layer. It is the registration-time instrumentation
// boundary: a module registers once, and every statement it logs goes
// through the bound layer without re-supplying it.
//
// ModuleLogger is immutable — WithLayer returns a new instance — and
// safe for concurrent use.
type ModuleLogger struct {
	logger    *Logger
	namespace string
	layer     Layer

	// disabled is decided once, at registration: when the module's
	// resolved config turns logging off statically, every method
	// short-circuits to a no-op, so instrumented call sites cost
	// nothing beyond the call itself.
	disabled bool
}

// Module registers a namespace with its declared configuration layer
// and returns the bound ModuleLogger. The layer sits between the
// application layer and call-site overrides in resolution precedence.
//
// When the resolved config disables logging for the module at
// registration time, the returned logger is a static no-op. Runtime
// state that can change later — the filter string, the logger-wide
// enable flag — is still consulted per call.
func (l *Logger) Module(namespace string, layer Layer) *ModuleLogger {
	cfg := Resolve(Layer{}, l.AppLayer(), layer, Layer{})
	return &ModuleLogger{
		logger:    l,
		namespace: namespace,
		layer:     layer,
		disabled:  !cfg.Enabled,
	}
}

// Module registers a namespace on the default logger.
func Module(namespace string, layer Layer) *ModuleLogger {
	return Default().Module(namespace, layer)
}

// WithLayer returns a new ModuleLogger whose declared layer is the
// given one applied over the existing layer's keys.
func (m *ModuleLogger) WithLayer(layer Layer) *ModuleLogger {
	merged := m.layer
	if layer.Enabled != nil {
		merged.Enabled = layer.Enabled
	}
	if layer.Levels != nil {
		merged.Levels = layer.Levels
	}
	if layer.MaxDepth != nil {
		merged.MaxDepth = layer.MaxDepth
	}
	if layer.IncludeTiming != nil {
		merged.IncludeTiming = layer.IncludeTiming
	}
	if layer.IncludeStack != nil {
		merged.IncludeStack = layer.IncludeStack
	}
	if layer.Truncate != nil {
		merged.Truncate = layer.Truncate
	}
	if layer.TruncateThreshold != nil {
		merged.TruncateThreshold = layer.TruncateThreshold
	}
	return m.logger.Module(m.namespace, merged)
}

// Namespace returns the bound namespace.
func (m *ModuleLogger) Namespace() string {
	return m.namespace
}

// Enabled reports whether the bound namespace currently passes both
// gates: module statically enabled and the namespace filter matching.
func (m *ModuleLogger) Enabled() bool {
	if m.disabled {
		return false
	}
	return m.logger.NamespaceEnabled(m.namespace)
}

// Emit logs one event through the bound namespace and layer, with an
// optional call-site override layer on top.
func (m *ModuleLogger) Emit(level Level, message string, md Metadata, overrides Layer) {
	if m.disabled {
		return
	}
	m.logger.emit(level, m.namespace, message, md, m.layer, overrides)
}

func (m *ModuleLogger) Debug(message string, fields ...Field) {
	m.Emit(LevelDebug, message, Fields(fields...), Layer{})
}

func (m *ModuleLogger) Error(message string, fields ...Field) {
	m.Emit(LevelError, message, Fields(fields...), Layer{})
}

func (m *ModuleLogger) Debugf(format string, args ...any) {
	if m.disabled {
		return
	}
	m.Emit(LevelDebug, fmt.Sprintf(format, args...), nil, Layer{})
}

func (m *ModuleLogger) Errorf(format string, args ...any) {
	if m.disabled {
		return
	}
	m.Emit(LevelError, fmt.Sprintf(format, args...), nil, Layer{})
}

// DebugMap logs at debug level with map-shaped metadata. The map is
// normalized into ordered pairs at this boundary.
func (m *ModuleLogger) DebugMap(message string, values map[string]any) {
	m.Emit(LevelDebug, message, FromMap(values), Layer{})
}

// ErrorMap logs at error level with map-shaped metadata.
func (m *ModuleLogger) ErrorMap(message string, values map[string]any) {
	m.Emit(LevelError, message, FromMap(values), Layer{})
}

// Trace runs fn bracketed by debug events. The exit event carries the
// elapsed time when the resolved config has IncludeTiming, and the
// caller's site when it has IncludeStack. When the module is
// statically disabled, Trace degrades to calling fn directly.
func (m *ModuleLogger) Trace(message string, fn func()) {
	if m.disabled {
		fn()
		return
	}

	cfg := Resolve(Layer{}, m.logger.AppLayer(), m.layer, Layer{})

	var site string
	if cfg.IncludeStack {
		site = internal.CallSite(1)
	}

	m.Emit(LevelDebug, message, nil, Layer{})
	start := time.Now()
	fn()

	md := make(Metadata, 0, 2)
	if cfg.IncludeTiming {
		md = append(md, Duration("elapsed", time.Since(start).Round(time.Microsecond)))
	}
	if site != "" {
		md = append(md, String("at", site))
	}
	m.Emit(LevelDebug, message+" done", md, Layer{})
}
