package requirement

import (
	"cmp"
	"fmt"
	"reflect"
)

// The six ordering predicates operate on pointers so that absence is part of
// the ordered domain: nil sorts strictly below any present value, and nil
// compares equal to nil. All six apply that rule consistently.

// Lt matches a value strictly less than val.
func Lt[T cmp.Ordered](val *T) Predicate[*T] {
	return Predicate[*T]{
		test: func(v *T) bool { return compareNilable(v, val) < 0 },
		msg:  fmt.Sprintf("Must be less than %s", formatValue(val)),
	}
}

// Gt matches a value strictly greater than val.
func Gt[T cmp.Ordered](val *T) Predicate[*T] {
	return Predicate[*T]{
		test: func(v *T) bool { return compareNilable(v, val) > 0 },
		msg:  fmt.Sprintf("Must be greater than %s", formatValue(val)),
	}
}

// Le matches a value less than or equal to val.
func Le[T cmp.Ordered](val *T) Predicate[*T] {
	return Predicate[*T]{
		test: func(v *T) bool { return compareNilable(v, val) <= 0 },
		msg:  fmt.Sprintf("Must be less than or equal to %s", formatValue(val)),
	}
}

// Ge matches a value greater than or equal to val.
func Ge[T cmp.Ordered](val *T) Predicate[*T] {
	return Predicate[*T]{
		test: func(v *T) bool { return compareNilable(v, val) >= 0 },
		msg:  fmt.Sprintf("Must be greater than or equal to %s", formatValue(val)),
	}
}

// Eq matches a value ordering equal to val.
func Eq[T cmp.Ordered](val *T) Predicate[*T] {
	return Predicate[*T]{
		test: func(v *T) bool { return compareNilable(v, val) == 0 },
		msg:  fmt.Sprintf("Must be equal to %s", formatValue(val)),
	}
}

// Ne matches a value ordering unequal to val.
func Ne[T cmp.Ordered](val *T) Predicate[*T] {
	return Predicate[*T]{
		test: func(v *T) bool { return compareNilable(v, val) != 0 },
		msg:  fmt.Sprintf("Must be not equal to %s", formatValue(val)),
	}
}

func compareNilable[T cmp.Ordered](a, b *T) int {
	if a == nil {
		if b == nil {
			return 0
		}
		return -1
	}
	if b == nil {
		return 1
	}
	return cmp.Compare(*a, *b)
}

// EqualTo matches a value structurally equal to val: element-wise for slices
// and arrays, recursive for nested structures, standard equality for plain
// values, with two absent values equal.
func EqualTo[T any](val T) Predicate[T] {
	return Predicate[T]{
		test: func(v T) bool { return reflect.DeepEqual(v, val) },
		msg:  fmt.Sprintf("Must be equal to %s", formatValue(val)),
	}
}

// Same matches a value identical to val: the same pointer, map, channel,
// function or slice header, not merely structurally equal. Comparable plain
// values fall back to ==.
func Same[T any](val T) Predicate[T] {
	return Predicate[T]{
		test: func(v T) bool { return sameObject(v, val) },
		msg:  fmt.Sprintf("Must be same object as %s", formatValue(val)),
	}
}

func sameObject(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !ra.IsValid() || !rb.IsValid() {
		return ra.IsValid() == rb.IsValid()
	}
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len() && ra.Cap() == rb.Cap()
	default:
		return ra.Comparable() && ra.Equal(rb)
	}
}
