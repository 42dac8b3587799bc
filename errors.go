package requirement

import "errors"

// Error reports a requirement that does not hold. Its Error text is exactly
// the display string of the failed predicate (optionally prefixed, see
// RequirePrefixed). Factory misuse, such as a negative length bound or a
// zero-value sub-predicate, panics with an *Error instead of returning one.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

// IsRequirementError reports whether err is, or wraps, a requirement failure.
func IsRequirementError(err error) bool {
	var re *Error
	return errors.As(err, &re)
}
