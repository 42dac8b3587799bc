package requirement

import (
	"fmt"
	"hash/fnv"
)

// Named projection functions for use with Chain. Each returns its result as
// the pointer form the corresponding predicates consume, so projections and
// ordering predicates compose directly.

// Length is the string-length function, named "length". Applying it to an
// absent string panics, and Chain propagates that panic to the caller.
func Length() Func[*string, *int] {
	return Func[*string, *int]{
		apply: func(s *string) *int {
			n := len(*s)
			return &n
		},
		name: "length",
	}
}

// Size is the slice-length function, named "size".
func Size[E any]() Func[[]E, *int] {
	return Func[[]E, *int]{
		apply: func(s []E) *int {
			n := len(s)
			return &n
		},
		name: "size",
	}
}

// MapSize is the map-length function, named "size".
func MapSize[K comparable, V any]() Func[map[K]V, *int] {
	return Func[map[K]V, *int]{
		apply: func(m map[K]V) *int {
			n := len(m)
			return &n
		},
		name: "size",
	}
}

// Keys projects a map to its keys, named "keys". Key order is unspecified.
func Keys[K comparable, V any]() Func[map[K]V, []K] {
	return Func[map[K]V, []K]{
		apply: func(m map[K]V) []K {
			keys := make([]K, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			return keys
		},
		name: "keys",
	}
}

// Values projects a map to its values, named "values". Order is unspecified.
func Values[K comparable, V any]() Func[map[K]V, []V] {
	return Func[map[K]V, []V]{
		apply: func(m map[K]V) []V {
			vals := make([]V, 0, len(m))
			for _, v := range m {
				vals = append(vals, v)
			}
			return vals
		},
		name: "values",
	}
}

// Stringify renders a value to its display form, named "string". Absent
// values render as "null".
func Stringify[T any]() Func[T, *string] {
	return Func[T, *string]{
		apply: func(v T) *string {
			s := formatValue(v)
			return &s
		},
		name: "string",
	}
}

// Hash is a 64-bit FNV-1a hash of the value's verbose representation,
// named "hash".
func Hash[T any]() Func[T, *uint64] {
	return Func[T, *uint64]{
		apply: func(v T) *uint64 {
			h := fnv.New64a()
			fmt.Fprintf(h, "%#v", v)
			n := h.Sum64()
			return &n
		},
		name: "hash",
	}
}
