package requirement

// Require tests v against p and returns v unchanged when the test holds.
// On failure it returns an error whose text is exactly p's display string.
// The pass-through return value lets it serve as an inline guard clause:
//
//	name, err := requirement.Require(name, requirement.NotBlank())
func Require[T any](v T, p Predicate[T]) (T, error) {
	mustPredicate("validator", p)
	if !p.test(v) {
		return v, &Error{msg: p.msg}
	}
	return v, nil
}

// RequirePrefixed is Require with a caller-supplied message prefix. On
// failure the error text is "<prefix>: <predicate message>". The prefix
// supplier is invoked only when the test fails.
//
//	port, err := requirement.RequirePrefixed(port, requirement.Ge(requirement.Ptr(1)),
//		func() string { return "port" })
func RequirePrefixed[T any](v T, p Predicate[T], prefix func() string) (T, error) {
	mustPredicate("validator", p)
	if prefix == nil {
		panic(&Error{msg: "prefix: Must not be null"})
	}
	if !p.test(v) {
		return v, &Error{msg: prefix() + ": " + p.msg}
	}
	return v, nil
}

// RequireWith is the most general form of Require: on failure the returned
// error is built by the caller's factory from the offending value and the
// failed predicate, allowing caller-defined failure types.
func RequireWith[T any](v T, p Predicate[T], fail func(T, Predicate[T]) error) (T, error) {
	mustPredicate("validator", p)
	if fail == nil {
		panic(&Error{msg: "fail: Must not be null"})
	}
	if !p.test(v) {
		return v, fail(v, p)
	}
	return v, nil
}
