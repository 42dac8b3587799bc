package requirement

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// formatValue renders a value for use inside a display string. Absent values
// render as "null", pointers render as their pointee, and collections render
// with comma-separated elements ("[5, 7]") so that messages stay readable
// regardless of how the caller represents absence.
func formatValue(v any) string {
	if v == nil {
		return "null"
	}
	return formatReflected(reflect.ValueOf(v))
}

func formatReflected(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Invalid:
		return "null"
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return formatReflected(rv.Elem())
	case reflect.Slice:
		if rv.IsNil() {
			return "null"
		}
		return formatSequence(rv)
	case reflect.Array:
		return formatSequence(rv)
	case reflect.Map:
		if rv.IsNil() {
			return "null"
		}
		return formatMap(rv)
	case reflect.String:
		return rv.String()
	default:
		return fmt.Sprint(rv.Interface())
	}
}

func formatSequence(rv reflect.Value) string {
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = formatReflected(rv.Index(i))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatMap(rv reflect.Value) string {
	parts := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		parts = append(parts, formatReflected(iter.Key())+"="+formatReflected(iter.Value()))
	}
	// Map iteration order is random; sort for stable messages.
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}
