package dbg

import (
	"strings"
	"testing"
)

func TestFormatMetadataEmpty(t *testing.T) {
	if got := FormatMetadata(nil, TruncateOn(), DefaultMaxDepth); got != "" {
		t.Errorf("FormatMetadata(nil) = %q, want empty", got)
	}
	if got := FormatMetadata(Fields(), TruncateOn(), DefaultMaxDepth); got != "" {
		t.Errorf("FormatMetadata(no fields) = %q, want empty", got)
	}
}

func TestFormatMetadataBasic(t *testing.T) {
	tests := []struct {
		name string
		md   Metadata
		want string
	}{
		{"single int", Fields(Int("size", 42)), "size: 42"},
		{"single string", Fields(String("user", "ada")), "user: ada"},
		{"pair join", Fields(Int("a", 1), Bool("z", true)), "a: 1, z: true"},
		{"order preserved", Fields(String("z", "1"), String("a", "2")), "z: 1, a: 2"},
		{"nested value", Fields(Any("p", map[string]int{"x": 1})), `p: {"x":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMetadata(tt.md, TruncateOn(), DefaultMaxDepth); got != tt.want {
				t.Errorf("FormatMetadata() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromMapStableOrder(t *testing.T) {
	values := map[string]any{"c": 3, "a": 1, "b": 2}

	want := "a: 1, b: 2, c: 3"
	for i := 0; i < 10; i++ {
		got := FormatMetadata(FromMap(values), TruncateOn(), DefaultMaxDepth)
		if got != want {
			t.Fatalf("render %d = %q, want %q (map order must be stable)", i, got, want)
		}
	}
}

func TestFromMapEmpty(t *testing.T) {
	if md := FromMap(nil); md != nil {
		t.Errorf("FromMap(nil) = %v, want nil", md)
	}
	if md := FromMap(map[string]any{}); md != nil {
		t.Errorf("FromMap(empty) = %v, want nil", md)
	}
}

// ============================================================================
// TRUNCATION TESTS
// ============================================================================

func TestTruncationBoundary(t *testing.T) {
	value := strings.Repeat("x", 10)

	tests := []struct {
		name      string
		threshold int
		wantValue string
	}{
		{"over threshold truncates", 9, strings.Repeat("x", 9) + TruncationMarker},
		{"exactly threshold untouched", 10, value},
		{"under threshold untouched", 11, value},
		{"zero threshold cuts everything", 0, TruncationMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMetadata(Fields(String("k", value)), TruncateAt(tt.threshold), DefaultMaxDepth)
			want := "k: " + tt.wantValue
			if got != want {
				t.Errorf("threshold %d: got %q, want %q", tt.threshold, got, want)
			}
		})
	}
}

func TestTruncationSliceLength(t *testing.T) {
	// A truncated value is sliced to exactly the threshold before the
	// marker is appended.
	got := FormatMetadata(Fields(String("k", strings.Repeat("ab", 50))), TruncateAt(7), DefaultMaxDepth)

	want := "k: " + "abababa" + TruncationMarker
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTruncationOffNeverMarks(t *testing.T) {
	huge := strings.Repeat("y", 50_000)

	got := FormatMetadata(Fields(String("k", huge)), TruncateOff(), DefaultMaxDepth)
	if strings.Contains(got, TruncationMarker) {
		t.Error("truncation off must never append the marker")
	}
	if got != "k: "+huge {
		t.Error("truncation off must render the full value")
	}
}

func TestTruncationAppliesPerValue(t *testing.T) {
	md := Fields(
		String("long", strings.Repeat("a", 20)),
		String("short", "ok"),
	)

	got := FormatMetadata(md, TruncateAt(5), DefaultMaxDepth)
	want := "long: aaaaa" + TruncationMarker + ", short: ok"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatMetadataUnprintableEntryIsolated(t *testing.T) {
	// One bad value must not take down the rest of the entry.
	md := Fields(
		Any("bad", make(chan int)),
		Int("good", 7),
	)

	got := FormatMetadata(md, TruncateOff(), DefaultMaxDepth)
	if !strings.Contains(got, "good: 7") {
		t.Errorf("got %q, want remaining entries rendered", got)
	}
}

func TestFormatMetadataMaxDepth(t *testing.T) {
	nested := map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}}

	shallow := FormatMetadata(Fields(Any("v", nested)), TruncateOff(), 1)
	if strings.Contains(shallow, `"b"`) {
		t.Errorf("depth 1 render = %q, should not descend past one level", shallow)
	}

	deep := FormatMetadata(Fields(Any("v", nested)), TruncateOff(), 5)
	if !strings.Contains(deep, `"c":1`) {
		t.Errorf("depth 5 render = %q, should reach the leaf", deep)
	}
}
