package dbg

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cybergodev/dbg/internal"
)

// Field is a single metadata entry: a key and an arbitrary value.
type Field struct {
	Key   string
	Value any
}

// Type-safe field constructors.

func String(key, value string) Field { return Field{Key: key, Value: value} }

func Int(key string, value int) Field { return Field{Key: key, Value: value} }

func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

func Err(err error) Field { return Field{Key: "error", Value: err} }

func Any(key string, value any) Field { return Field{Key: key, Value: value} }

// Metadata is the normalized, ordered key-value collection attached to
// a log event. Both accepted input shapes — an ordered field sequence
// and a plain map — normalize into this one representation at the
// boundary; nothing deeper in the pipeline branches on shape.
type Metadata []Field

// Fields builds Metadata from ordered fields, keeping their order.
func Fields(fields ...Field) Metadata {
	return Metadata(fields)
}

// FromMap builds Metadata from a map. Map iteration order is not
// deterministic, so keys are sorted to make each render stable.
func FromMap(values map[string]any) Metadata {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	md := make(Metadata, 0, len(keys))
	for _, k := range keys {
		md = append(md, Field{Key: k, Value: values[k]})
	}
	return md
}

// metaBuilderPool pools builders for metadata rendering to reduce
// allocations on hot logging paths.
var metaBuilderPool = sync.Pool{
	New: func() any {
		sb := &strings.Builder{}
		sb.Grow(lineBuilderCapacity)
		return sb
	},
}

// FormatMetadata renders metadata into a single "key: value, key:
// value" string. Empty metadata renders as "" — the caller appends no
// separator in that case.
//
// Each value renders through the generic converter (nested structures
// clamped at maxDepth levels), then truncation applies per the
// threshold: a rendered value strictly longer than the threshold is
// sliced to exactly the threshold and suffixed with TruncationMarker;
// a value of exactly the threshold length passes through untouched.
// With truncation off, values render at full length, always.
func FormatMetadata(md Metadata, truncate Truncation, maxDepth int) string {
	if len(md) == 0 {
		return ""
	}

	sb := metaBuilderPool.Get().(*strings.Builder)
	sb.Reset()
	defer func() {
		if sb.Cap() <= maxPooledBuilderCapacity {
			metaBuilderPool.Put(sb)
		}
	}()

	for i, field := range md {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(field.Key)
		sb.WriteString(": ")
		sb.WriteString(truncateValue(internal.RenderValue(field.Value, maxDepth), truncate))
	}

	return sb.String()
}

// truncateValue applies the truncation policy to one rendered value.
// The boundary is inclusive: only lengths strictly over the threshold
// are cut. Truncation touches metadata rendering only, never message
// content.
func truncateValue(rendered string, truncate Truncation) string {
	if truncate.Off() {
		return rendered
	}
	threshold := truncate.Threshold()
	if len(rendered) <= threshold {
		return rendered
	}
	return rendered[:threshold] + TruncationMarker
}
