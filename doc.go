// Package requirement provides composable, named validation predicates and a
// small Require family that tests a value against a predicate, returning the
// value unchanged on success or a descriptive error on failure.
//
// Every predicate pairs its test function with an immutable display string,
// phrased as a "Must ..." sentence. That string is exactly what Require
// reports when the test fails, and combinators rewrite the strings of their
// sub-predicates so that composed messages still read as one sentence.
//
// # Core Concepts
//
// Predicates are built by factory functions and composed with combinators:
//
//	p := requirement.And(
//		requirement.Ge(requirement.Ptr(2)),
//		requirement.Le(requirement.Ptr(5)),
//	)
//	p.String() // "Must (be greater than or equal to 2) and (be less than or equal to 5)"
//
//	v, err := requirement.Require(requirement.Ptr(3), p) // v == Ptr(3), err == nil
//	_, err = requirement.Require(requirement.Ptr(6), p)  // err.Error() == p.String()
//
// Chain projects a value through a named function before testing it:
//
//	p := requirement.Chain(requirement.Length(), requirement.Gt(requirement.Ptr(2)))
//	p.String() // "length: Must be greater than 2"
//
// # Absent Values
//
// Absence is represented with nil: nil pointers for strings and ordered
// values, nil slices and maps for collections. The ordering predicates place
// nil strictly below every present value and treat two nils as equal, so
// Le(Ptr(2)) admits nil while Ge(Ptr(2)) rejects it.
//
// # Error Handling
//
// Test-time failures are returned as *Error; check for them through wrapped
// chains with IsRequirementError. Factory misuse (a negative length bound, a
// zero-value sub-predicate, a nil function argument) is a programmer error
// and panics at construction time, before any value is tested.
//
// DoesNotFail is the one predicate that swallows failures: a non-nil error or
// a panic from its consumer makes the predicate false and never propagates.
// Chain is the inverse: a panic raised while projecting propagates unchanged.
//
// # Concurrency
//
// Predicates and named functions are immutable once constructed and safe for
// concurrent reuse; evaluation touches only captured, never-mutated state.
package requirement
