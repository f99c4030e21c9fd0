package dbg

import (
	"strings"
	"testing"

	"github.com/cybergodev/dbg/internal"
)

// FuzzCompile tests filter compilation with random inputs.
func FuzzCompile(f *testing.F) {
	// Seed corpus with known shapes
	f.Add("")
	f.Add("*")
	f.Add("payment:*")
	f.Add("*,-myapp:secret")
	f.Add("a b\tc,d")
	f.Add("-")
	f.Add("--x")
	f.Add("((((.*+?")
	f.Add("\x00\xff")

	f.Fuzz(func(t *testing.T, filter string) {
		ps := Compile(filter)

		// Compilation is total: every token ends up in exactly one list
		// with no sign prefix on excludes and no empty includes.
		for _, inc := range ps.Includes() {
			if inc == "" {
				t.Error("include list contains an empty pattern")
			}
			if strings.HasPrefix(inc, "-") {
				t.Errorf("include pattern %q keeps a leading '-'", inc)
			}
		}

		// The empty set must match everything; a non-empty set must
		// still never panic on arbitrary namespaces.
		if ps.IsEmpty() && !ps.Matches("any:namespace") {
			t.Error("empty PatternSet must match every namespace")
		}
		_ = ps.Matches(filter)
		_ = ps.Matches("")
	})
}

// FuzzGlobMatch tests the matcher with random pattern/input pairs.
func FuzzGlobMatch(f *testing.F) {
	f.Add("*", "anything")
	f.Add("a*b", "axxb")
	f.Add("", "")
	f.Add("a.b+c", "a.b+c")
	f.Add("****", "x")
	f.Add("\\d+", "\\d+")

	f.Fuzz(func(t *testing.T, pattern, input string) {
		got := internal.GlobMatch(pattern, input)

		// A star-free pattern is an exact-match predicate.
		if !strings.Contains(pattern, "*") {
			if want := pattern == input; got != want {
				t.Errorf("GlobMatch(%q, %q) = %v, want exact comparison %v", pattern, input, got, want)
			}
		}

		// "*" + pattern + "*" must match any input that contains a
		// literal occurrence of the star-free pattern.
		if !strings.Contains(pattern, "*") && strings.Contains(input, pattern) {
			if !internal.GlobMatch("*"+pattern+"*", input) {
				t.Errorf("GlobMatch(%q, %q) = false, want substring match", "*"+pattern+"*", input)
			}
		}
	})
}

// FuzzFormatMetadata tests truncation invariants with random values.
func FuzzFormatMetadata(f *testing.F) {
	f.Add("key", "value", 10)
	f.Add("k", "", 0)
	f.Add("", "v", 100)
	f.Add("k", strings.Repeat("x", 500), 7)

	f.Fuzz(func(t *testing.T, key, value string, threshold int) {
		if threshold < 0 {
			threshold = -threshold
		}
		if threshold < 0 || threshold > 1<<20 {
			threshold = 1 << 20
		}

		got := FormatMetadata(Fields(String(key, value)), TruncateAt(threshold), DefaultMaxDepth)

		prefix := key + ": "
		if !strings.HasPrefix(got, prefix) {
			t.Fatalf("FormatMetadata() = %q, want %q prefix", got, prefix)
		}
		rendered := got[len(prefix):]

		if len(value) > threshold {
			want := value[:threshold] + TruncationMarker
			if rendered != want {
				t.Errorf("rendered = %q, want %q", rendered, want)
			}
		} else if rendered != value {
			t.Errorf("rendered = %q, want %q untouched (len <= threshold)", rendered, value)
		}

		// Truncation off never marks, whatever the value.
		off := FormatMetadata(Fields(String(key, value)), TruncateOff(), DefaultMaxDepth)
		if off != prefix+value {
			t.Errorf("truncation off = %q, want full value", off)
		}
	})
}
