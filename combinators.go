package requirement

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// And matches values satisfying both p1 and p2. p2 is evaluated only when p1
// holds. Display: "Must (<p1>) and (<p2>)" with the sub-messages' leading
// "Must " stripped.
func And[T any](p1, p2 Predicate[T]) Predicate[T] {
	mustPredicate("p1", p1)
	mustPredicate("p2", p2)
	return Predicate[T]{
		test: func(v T) bool { return p1.test(v) && p2.test(v) },
		msg:  "Must (" + stripMust(p1.msg) + ") and (" + stripMust(p2.msg) + ")",
	}
}

// Or matches values satisfying p1 or p2. p2 is evaluated only when p1 fails.
func Or[T any](p1, p2 Predicate[T]) Predicate[T] {
	mustPredicate("p1", p1)
	mustPredicate("p2", p2)
	return Predicate[T]{
		test: func(v T) bool { return p1.test(v) || p2.test(v) },
		msg:  "Must (" + stripMust(p1.msg) + ") or (" + stripMust(p2.msg) + ")",
	}
}

// Negate matches values failing p. Display: "Must not (<p>)".
func Negate[T any](p Predicate[T]) Predicate[T] {
	mustPredicate("p", p)
	return Predicate[T]{
		test: func(v T) bool { return !p.test(v) },
		msg:  "Must not (" + stripMust(p.msg) + ")",
	}
}

// IfThen matches values failing ifP, or satisfying both ifP and thenP.
// thenP is evaluated only when ifP holds.
func IfThen[T any](ifP, thenP Predicate[T]) Predicate[T] {
	mustPredicate("ifP", ifP)
	mustPredicate("thenP", thenP)
	return Predicate[T]{
		test: func(v T) bool {
			if ifP.test(v) {
				return thenP.test(v)
			}
			return true
		},
		msg: "Must (" + stripMust(thenP.msg) + ") if (" + stripMust(ifP.msg) + ")",
	}
}

// IfThenElse matches via thenP when ifP holds and via elseP otherwise.
// Exactly one of thenP and elseP is evaluated per test.
func IfThenElse[T any](ifP, thenP, elseP Predicate[T]) Predicate[T] {
	mustPredicate("ifP", ifP)
	mustPredicate("thenP", thenP)
	mustPredicate("elseP", elseP)
	return Predicate[T]{
		test: func(v T) bool {
			if ifP.test(v) {
				return thenP.test(v)
			}
			return elseP.test(v)
		},
		msg: "Must (" + stripMust(thenP.msg) + ") if (" + stripMust(ifP.msg) + "), else (" + stripMust(elseP.msg) + ")",
	}
}

// Chain projects the value through f, then tests the result with p. A panic
// raised by f propagates to the caller unmodified. Display:
// "<function name>: <predicate message>".
//
//	requirement.Chain(requirement.Length(), requirement.Gt(requirement.Ptr(2)))
//	// "length: Must be greater than 2"
func Chain[T, U any](f Func[T, U], p Predicate[U]) Predicate[T] {
	mustFunc("f", f)
	mustPredicate("p", p)
	return Predicate[T]{
		test: func(v T) bool { return p.test(f.apply(v)) },
		msg:  f.name + ": " + p.msg,
	}
}

// DoesNotFail matches values the consumer accepts without failing. A non-nil
// error and a panic both count as failure; neither propagates.
func DoesNotFail[T any](fn func(T) error) Predicate[T] {
	if fn == nil {
		panic(&Error{msg: "fn: Must not be null"})
	}
	return Predicate[T]{
		test: func(v T) (ok bool) {
			defer func() {
				if recover() != nil {
					ok = false
				}
			}()
			return fn(v) == nil
		},
		msg: "Must not fail",
	}
}

// stripMust rewrites a sub-message for embedding in a composed message:
// a leading "Must " is removed and the following rune lower-cased, so that
// "Must be less than 2" joins as "Must (be less than 2) and (...)".
func stripMust(msg string) string {
	rest, ok := strings.CutPrefix(msg, "Must ")
	if !ok {
		return msg
	}
	r, size := utf8.DecodeRuneInString(rest)
	if r == utf8.RuneError {
		return rest
	}
	return string(unicode.ToLower(r)) + rest[size:]
}
