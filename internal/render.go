package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// UnprintablePlaceholder replaces a metadata value that cannot be
// rendered (unsupported leaf types, marshal failures). Substituting a
// fixed token keeps the emit path total: one bad value never costs the
// rest of the entry, let alone the caller.
const UnprintablePlaceholder = "<unprintable>"

// ElidedPlaceholder marks nested structure cut off by the depth limit.
const ElidedPlaceholder = "..."

// RenderValue converts an arbitrary metadata value to a human-readable
// string. Simple types render directly; composite types render as JSON
// clamped to maxDepth levels of nesting. The depth clamp doubles as
// cycle protection: a self-referential structure bottoms out at the
// limit instead of recursing forever.
//
// RenderValue never panics and never returns an error; values that
// defeat rendering come back as UnprintablePlaceholder.
func RenderValue(v any, maxDepth int) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = UnprintablePlaceholder
		}
	}()

	switch val := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.FormatInt(int64(val), 10)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case time.Duration:
		return val.String()
	case time.Time:
		return val.Format(time.RFC3339)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}

	clamped := clampDepth(reflect.ValueOf(v), maxDepth)
	if s, ok := clamped.(string); ok && s == UnprintablePlaceholder {
		// The whole value was an unsupported leaf; substitute the bare
		// placeholder rather than a JSON-quoted one.
		return UnprintablePlaceholder
	}
	return marshalClamped(clamped)
}

// marshalClamped renders a depth-clamped structure as compact JSON
// without HTML escaping, so placeholders and plain text survive
// verbatim.
func marshalClamped(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return UnprintablePlaceholder
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// clampDepth copies v into a JSON-friendly structure at most depth
// levels deep. Deeper values and unsupported leaves are replaced with
// placeholder strings so the subsequent marshal cannot fail on them.
// Because the copy is depth-bounded it is always acyclic and finite,
// whatever the input contains.
func clampDepth(v reflect.Value, depth int) any {
	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		// Bounded dereference: a self-referential pointer type must not
		// recurse past the clamp.
		for hops := 0; hops < maxPointerHops; hops++ {
			if v.IsNil() {
				return nil
			}
			v = v.Elem()
			if k := v.Kind(); k != reflect.Interface && k != reflect.Pointer {
				return clampDepth(v, depth)
			}
		}
		return UnprintablePlaceholder

	case reflect.Map:
		if depth <= 0 {
			return ElidedPlaceholder
		}
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[mapKeyString(iter.Key())] = clampDepth(iter.Value(), depth-1)
		}
		return out

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			return string(v.Bytes())
		}
		if depth <= 0 {
			return ElidedPlaceholder
		}
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			out[i] = clampDepth(v.Index(i), depth-1)
		}
		return out

	case reflect.Struct:
		if depth <= 0 {
			return ElidedPlaceholder
		}
		t := v.Type()
		out := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			out[f.Name] = clampDepth(v.Field(i), depth-1)
		}
		return out

	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f != f || f > maxJSONFloat || f < -maxJSONFloat {
			// NaN and infinities are not valid JSON numbers.
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return f

	default:
		// Chan, Func, Complex, UnsafePointer.
		return UnprintablePlaceholder
	}
}

const maxJSONFloat = 1.7976931348623157e+308

// maxPointerHops caps consecutive pointer/interface dereferences.
const maxPointerHops = 32

// mapKeyString renders a map key for use as a JSON object key.
func mapKeyString(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}
