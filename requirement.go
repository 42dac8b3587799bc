package requirement

import "reflect"

// Predicate pairs a boolean test with an immutable display string.
// The display string doubles as the failure message reported by Require,
// so it is always phrased as a complete "Must ..." sentence.
//
// The zero value is invalid; predicates are created by Name or by the
// factory functions in this package.
type Predicate[T any] struct {
	test func(T) bool
	msg  string
}

// Test reports whether v satisfies the predicate.
func (p Predicate[T]) Test(v T) bool {
	return p.test(v)
}

// String returns the predicate's display string.
func (p Predicate[T]) String() string {
	return p.msg
}

// Name attaches a display string to a test function. This is the mechanism
// by which every predicate in this package carries its failure message.
//
//	p := requirement.Name(func(n int) bool { return n%2 == 0 }, "Must be even")
//	p.String() // "Must be even"
func Name[T any](test func(T) bool, msg string) Predicate[T] {
	if test == nil {
		panic(&Error{msg: "test: Must not be null"})
	}
	return Predicate[T]{test: test, msg: msg}
}

// Func pairs a projection function with a display string. It is consumed by
// Chain, which prefixes its failure messages with the function's name.
type Func[T, U any] struct {
	apply func(T) U
	name  string
}

// Apply invokes the function on v.
func (f Func[T, U]) Apply(v T) U {
	return f.apply(v)
}

// String returns the function's display string.
func (f Func[T, U]) String() string {
	return f.name
}

// NameFunc attaches a display string to a projection function.
func NameFunc[T, U any](fn func(T) U, name string) Func[T, U] {
	if fn == nil {
		panic(&Error{msg: "fn: Must not be null"})
	}
	return Func[T, U]{apply: fn, name: name}
}

// Ptr returns a pointer to v. Absent values are represented as nil pointers
// throughout this package, so Ptr keeps call sites with literal bounds short:
//
//	requirement.Lt(requirement.Ptr(10))
func Ptr[T any](v T) *T {
	return &v
}

// NotNull matches any present value. Nil pointers, slices, maps, funcs,
// channels and nil interfaces are all absent.
func NotNull[T any]() Predicate[T] {
	return Predicate[T]{
		test: func(v T) bool { return !isAbsent(v) },
		msg:  "Must not be null",
	}
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// mustPredicate guards factory arguments: combinators reject zero-value
// sub-predicates at construction time, before any value is tested.
func mustPredicate[T any](name string, p Predicate[T]) Predicate[T] {
	if p.test == nil {
		panic(&Error{msg: name + ": Must not be null"})
	}
	return p
}

func mustFunc[T, U any](name string, f Func[T, U]) Func[T, U] {
	if f.apply == nil {
		panic(&Error{msg: name + ": Must not be null"})
	}
	return f
}

func mustNonNegative(name string, n int) int {
	if n < 0 {
		panic(&Error{msg: name + ": Must be greater than or equal to 0"})
	}
	return n
}
