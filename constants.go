package dbg

import "github.com/cybergodev/dbg/internal"

// Level identifies the severity of a log event.
type Level = internal.Level

const (
	LevelDebug = internal.LevelDebug
	LevelInfo  = internal.LevelInfo
	LevelWarn  = internal.LevelWarn
	LevelError = internal.LevelError
)

// LevelSet is a set of severities. A Config's Levels set decides which
// severities a call site may emit at.
type LevelSet = internal.LevelSet

// Levels builds a LevelSet from the given levels.
func Levels(levels ...Level) LevelSet {
	return internal.NewLevelSet(levels...)
}

const (
	// FilterEnvVar is the environment variable the namespace filter is
	// read from. The variable is re-read on every emit so operators and
	// test harnesses can change it at runtime.
	FilterEnvVar = "DEBUG"

	// DefaultTruncateThreshold is the rendered-length limit applied to
	// metadata values when truncation is enabled without an explicit
	// threshold.
	DefaultTruncateThreshold = 100

	// DefaultMaxDepth bounds how many levels of nesting the metadata
	// renderer descends into composite values.
	DefaultMaxDepth = 3

	// TruncationMarker is appended to a metadata value that was cut at
	// the truncation threshold.
	TruncationMarker = "... (truncated)"
)

const (
	// MaxSinkCount limits the sinks attached to one logger.
	// Prevents resource exhaustion from misconfigured loggers while
	// allowing reasonable multi-output scenarios.
	MaxSinkCount = 100

	// lineBuilderCapacity is the initial capacity for pooled line
	// builders. 256 bytes covers typical formatted lines without
	// reallocation.
	lineBuilderCapacity = 256

	// maxPooledBuilderCapacity is the largest builder capacity returned
	// to the pool. Larger builders are dropped to prevent memory bloat
	// from occasional oversized lines.
	maxPooledBuilderCapacity = 4 * 1024
)
