package dbg

import "errors"

// Sentinel errors returned by constructor and mutation APIs.
// The emit path itself never returns or raises an error: a debug
// facility must never be the reason a consuming program fails, so
// anything that goes wrong while formatting or dispatching degrades to
// "omit or substitute" instead.
//
// Use errors.Is() for matching:
//
//	if err := logger.AddSink(sink); errors.Is(err, dbg.ErrMaxSinksExceeded) {
//	    // too many outputs configured
//	}
var (
	// ErrNilSink is returned when a nil sink is added or removed.
	ErrNilSink = errors.New("sink cannot be nil")

	// ErrNilWriter is returned when a writer sink is built from nil.
	ErrNilWriter = errors.New("writer cannot be nil")

	// ErrSinkNotFound is returned when removing an unregistered sink.
	ErrSinkNotFound = errors.New("sink not found")

	// ErrLoggerClosed is returned on mutation of a closed logger.
	ErrLoggerClosed = errors.New("logger is closed")

	// ErrInvalidLevel is returned for severities outside the known range.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrMaxSinksExceeded is returned when the sink limit is reached.
	ErrMaxSinksExceeded = errors.New("maximum sink count exceeded")

	// ErrEmptyNamespace is returned when registering a module with an
	// empty namespace.
	ErrEmptyNamespace = errors.New("namespace cannot be empty")
)
