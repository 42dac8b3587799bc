package requirement

import (
	"fmt"
	"reflect"
)

// NotEmpty matches a present, non-empty slice.
func NotEmpty[E any]() Predicate[[]E] {
	return Predicate[[]E]{
		test: func(s []E) bool { return s != nil && len(s) > 0 },
		msg:  "Must not be empty",
	}
}

// MinSize matches a present slice with at least n elements. n must be >= 0.
// A nil slice fails even for n == 0.
func MinSize[E any](n int) Predicate[[]E] {
	mustNonNegative("n", n)
	return Predicate[[]E]{
		test: func(s []E) bool { return s != nil && len(s) >= n },
		msg:  fmt.Sprintf("Must have a size of at least %d", n),
	}
}

// MaxSize matches a present slice with at most n elements. n must be >= 0.
func MaxSize[E any](n int) Predicate[[]E] {
	mustNonNegative("n", n)
	return Predicate[[]E]{
		test: func(s []E) bool { return s != nil && len(s) <= n },
		msg:  fmt.Sprintf("Must have a size of at most %d", n),
	}
}

// Contains matches a present slice containing val. Elements are compared
// structurally, so pointer elements match by pointee.
func Contains[E any](val E) Predicate[[]E] {
	return Predicate[[]E]{
		test: func(s []E) bool {
			if s == nil {
				return false
			}
			for _, e := range s {
				if reflect.DeepEqual(e, val) {
					return true
				}
			}
			return false
		},
		msg: fmt.Sprintf("Must contain %s", formatValue(val)),
	}
}

// ContainsKey matches a present map containing key.
func ContainsKey[K comparable, V any](key K) Predicate[map[K]V] {
	return Predicate[map[K]V]{
		test: func(m map[K]V) bool {
			if m == nil {
				return false
			}
			_, ok := m[key]
			return ok
		},
		msg: fmt.Sprintf("Must contain key %s", formatValue(key)),
	}
}

// MapNotEmpty matches a present, non-empty map.
func MapNotEmpty[K comparable, V any]() Predicate[map[K]V] {
	return Predicate[map[K]V]{
		test: func(m map[K]V) bool { return m != nil && len(m) > 0 },
		msg:  "Must not be empty",
	}
}

// SuperSetOf matches a present slice containing every one of vals.
// Duplicates in vals collapse; first-seen order is kept for the message.
func SuperSetOf[E any](vals ...E) Predicate[[]E] {
	set := newOrderedSet(vals)
	return Predicate[[]E]{
		test: func(s []E) bool {
			if s == nil {
				return false
			}
			for _, want := range set.elems {
				if !sliceContains(s, want) {
					return false
				}
			}
			return true
		},
		msg: fmt.Sprintf("Must be a superset of %s", set),
	}
}

// SubSetOf matches a present slice whose every element is one of vals.
// Duplicates in vals collapse; first-seen order is kept for the message.
func SubSetOf[E any](vals ...E) Predicate[[]E] {
	set := newOrderedSet(vals)
	return Predicate[[]E]{
		test: func(s []E) bool {
			if s == nil {
				return false
			}
			for _, e := range s {
				if !set.contains(e) {
					return false
				}
			}
			return true
		},
		msg: fmt.Sprintf("Must be a subset of %s", set),
	}
}

// MemberOf matches a value equal to one of vals. An absent value is a valid
// member when explicitly listed:
//
//	requirement.MemberOf(requirement.Ptr(5), nil) // admits nil
func MemberOf[E any](vals ...E) Predicate[E] {
	set := newOrderedSet(vals)
	return Predicate[E]{
		test: set.contains,
		msg:  fmt.Sprintf("Must be a member of %s", set),
	}
}

// AllMembers matches a slice whose every element satisfies p, stopping at the
// first failure. An empty or nil slice matches vacuously.
func AllMembers[E any](p Predicate[E]) Predicate[[]E] {
	mustPredicate("p", p)
	return Predicate[[]E]{
		test: func(s []E) bool {
			for _, e := range s {
				if !p.test(e) {
					return false
				}
			}
			return true
		},
		msg: "Must have every member (" + stripMust(p.msg) + ")",
	}
}

// AnyMember matches a slice with at least one element satisfying p, stopping
// at the first success. An empty or nil slice never matches.
func AnyMember[E any](p Predicate[E]) Predicate[[]E] {
	mustPredicate("p", p)
	return Predicate[[]E]{
		test: func(s []E) bool {
			for _, e := range s {
				if p.test(e) {
					return true
				}
			}
			return false
		},
		msg: "Must have at least one member (" + stripMust(p.msg) + ")",
	}
}

// orderedSet is a deduplicated element list preserving first-seen order, so
// that display strings render the caller's ordering. Membership is structural.
type orderedSet[E any] struct {
	elems []E
}

func newOrderedSet[E any](vals []E) orderedSet[E] {
	var set orderedSet[E]
	for _, v := range vals {
		if !set.contains(v) {
			set.elems = append(set.elems, v)
		}
	}
	return set
}

func (s orderedSet[E]) contains(v E) bool {
	return sliceContains(s.elems, v)
}

func (s orderedSet[E]) String() string {
	if s.elems == nil {
		return "[]"
	}
	return formatValue(s.elems)
}

func sliceContains[E any](s []E, v E) bool {
	for _, e := range s {
		if reflect.DeepEqual(e, v) {
			return true
		}
	}
	return false
}
