// Package dbg provides a namespace-filtered conditional debug logging
// facility for Go.
//
// dbg decides, for every log statement tagged with a namespace (a
// free-form string identifying its origin, conventionally hierarchical
// like "payment:worker"), whether to emit the statement and how to
// format it. Filtering is driven by a wildcard pattern string read
// from the DEBUG environment variable, in the style popularized by the
// classic debug utilities:
//
//	DEBUG="*"                 everything
//	DEBUG="payment:*"         one area
//	DEBUG="*,-payment:noisy"  everything except one namespace
//
// # Features
//
//   - Thread-safe: all operations are safe for concurrent use
//   - Namespace filtering: '*' globs with include/exclude patterns,
//     re-read every call so runtime filter changes apply immediately
//   - Layered configuration: defaults < application < module < call
//     site, merged per key
//   - Bounded metadata: generic value rendering with depth limits and
//     inclusive-boundary truncation
//   - Total emit path: malformed patterns, unrenderable values and
//     panicking sinks never propagate a failure to the caller
//   - Pluggable sinks: any io.Writer, or a custom Sink
//   - Zero dependencies
//
// # Quick Start
//
//	package main
//
//	import "github.com/cybergodev/dbg"
//
//	func main() {
//	    // Package-level logging through the default logger
//	    dbg.Debug("payment:worker", "starting", dbg.Int("batch", 42))
//
//	    // Or register a module once and log through it
//	    log := dbg.Module("payment:worker", dbg.Layer{})
//	    log.Debug("queue drained")
//	    log.Errorf("retry %d failed", 3)
//	}
//
// Nothing is printed unless the DEBUG environment variable (or a
// SetFilter override) enables the namespace.
//
// # Configuration
//
// Options resolve through four ordered layers; each layer overrides
// only the keys it sets:
//
//	logger, _ := dbg.New()
//	logger.SetAppLayer(dbg.Layer{}.WithTruncate(dbg.TruncateAt(50)))
//
//	log := logger.Module("svc", dbg.Layer{}.WithLevels(dbg.LevelError))
//	log.Emit(dbg.LevelError, "boom", nil,
//	    dbg.Layer{}.WithTruncate(dbg.TruncateOff())) // call-site override
//
// # Filtering
//
// The filter string is comma- or whitespace-separated glob tokens; a
// leading '-' excludes. '*' is the only metacharacter — every other
// character matches literally, so arbitrary user strings cannot inject
// matching behavior. An empty or unset filter matches everything: the
// filter gate and the enable flag are deliberately orthogonal, and
// both must pass.
package dbg
