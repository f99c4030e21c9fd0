package dbg

import (
	"os"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/cybergodev/dbg/internal"
)

// PatternSet is the compiled form of a namespace filter string: ordered
// include and exclude glob patterns. A PatternSet is immutable once
// compiled; loggers derive a fresh one from the current filter string
// rather than holding on to a stale compilation.
type PatternSet struct {
	includes []string
	excludes []string
}

// Compile parses a raw filter string into a PatternSet.
//
// Tokens are separated by commas and/or whitespace (both work, mixed
// and repeated), trimmed, and dropped when empty. A token with a
// leading '-' is an exclude pattern, recorded with the sign stripped;
// every other token is an include pattern. First-seen order is kept in
// both lists, though order carries no matching semantics — only
// membership does.
//
// Compile is pure and total: every input yields a valid PatternSet.
// The empty string compiles to the empty PatternSet, which means "no
// filtering configured" and matches every namespace — deliberately
// distinct from "nothing matches".
func Compile(filter string) PatternSet {
	tokens := strings.FieldsFunc(filter, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	var ps PatternSet
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "-") {
			ps.excludes = append(ps.excludes, tok[1:])
		} else {
			ps.includes = append(ps.includes, tok)
		}
	}
	return ps
}

// Matches reports whether the namespace is enabled under the set.
//
// An empty set matches everything (unset filter means "show it all").
// Otherwise the namespace must match at least one include — or the
// include list must be empty — and must match no exclude. Matching is
// anchored, case-sensitive, and treats '*' as the only metacharacter.
func (ps PatternSet) Matches(namespace string) bool {
	if ps.IsEmpty() {
		return true
	}

	included := len(ps.includes) == 0
	for _, pat := range ps.includes {
		if internal.GlobMatch(pat, namespace) {
			included = true
			break
		}
	}
	if !included {
		return false
	}

	for _, pat := range ps.excludes {
		if internal.GlobMatch(pat, namespace) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the set contains no patterns at all.
func (ps PatternSet) IsEmpty() bool {
	return len(ps.includes) == 0 && len(ps.excludes) == 0
}

// Includes returns a copy of the include patterns in first-seen order.
func (ps PatternSet) Includes() []string {
	out := make([]string, len(ps.includes))
	copy(out, ps.includes)
	return out
}

// Excludes returns a copy of the exclude patterns in first-seen order.
func (ps PatternSet) Excludes() []string {
	out := make([]string, len(ps.excludes))
	copy(out, ps.excludes)
	return out
}

// filterOverride, when set, shadows the environment variable as the
// process-wide filter source. Stored behind an atomic pointer so test
// harnesses can flip it concurrently with emitters.
var filterOverride atomic.Pointer[string]

// SetFilter overrides the namespace filter for the whole process,
// shadowing the FilterEnvVar environment variable until ResetFilter is
// called (thread-safe).
func SetFilter(filter string) {
	filterOverride.Store(&filter)
}

// ResetFilter removes any SetFilter override; the filter is sourced
// from the environment again (thread-safe).
func ResetFilter() {
	filterOverride.Store(nil)
}

// CurrentFilter returns the raw filter string currently in effect: the
// SetFilter override when present, otherwise the FilterEnvVar
// environment variable.
func CurrentFilter() string {
	if f := filterOverride.Load(); f != nil {
		return *f
	}
	return os.Getenv(FilterEnvVar)
}

// cachedFilterEntry pairs a raw filter string with its compilation.
type cachedFilterEntry struct {
	raw string
	set PatternSet
}

// filterCache memoizes the most recent compilation, keyed on the raw
// filter string value. The key check makes runtime filter changes take
// effect on the very next emit; the cache is never trusted past the
// raw string it was built from. Lock-free reads via atomic pointer.
type filterCache struct {
	current atomic.Pointer[cachedFilterEntry]
}

// patternSet returns the compilation of raw, reusing the cached entry
// when the raw string is unchanged. Concurrent callers may race on the
// slow path; they all compile the same string, so last-write-wins is
// harmless.
func (fc *filterCache) patternSet(raw string) PatternSet {
	if cached := fc.current.Load(); cached != nil && cached.raw == raw {
		return cached.set
	}

	entry := &cachedFilterEntry{raw: raw, set: Compile(raw)}
	fc.current.Store(entry)
	return entry.set
}
