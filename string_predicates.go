package requirement

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// NotBlank matches a present, non-empty string.
func NotBlank() Predicate[*string] {
	return Predicate[*string]{
		test: func(s *string) bool { return s != nil && len(*s) > 0 },
		msg:  "Must not be blank",
	}
}

// MinLength matches a present string of length >= n. n must be >= 0.
func MinLength(n int) Predicate[*string] {
	mustNonNegative("n", n)
	return Predicate[*string]{
		test: func(s *string) bool { return s != nil && len(*s) >= n },
		msg:  fmt.Sprintf("Must have a length of at least %d", n),
	}
}

// MaxLength matches a present string of length <= n. n must be >= 0.
func MaxLength(n int) Predicate[*string] {
	mustNonNegative("n", n)
	return Predicate[*string]{
		test: func(s *string) bool { return s != nil && len(*s) <= n },
		msg:  fmt.Sprintf("Must have a length of at most %d", n),
	}
}

// Matches matches a present string containing a match of re. The pattern is
// not anchored; anchor it explicitly to require a full-string match.
func Matches(re *regexp.Regexp) Predicate[*string] {
	if re == nil {
		panic(&Error{msg: "re: Must not be null"})
	}
	return Predicate[*string]{
		test: func(s *string) bool { return s != nil && re.MatchString(*s) },
		msg:  fmt.Sprintf("Must match %s", re.String()),
	}
}

// MatchesPattern is Matches for a textual pattern. An invalid pattern panics
// at construction time.
func MatchesPattern(pattern string) Predicate[*string] {
	return Matches(regexp.MustCompile(pattern))
}

// ValidUUID matches a present string holding a canonical 36-character UUID.
func ValidUUID() Predicate[*string] {
	return Predicate[*string]{
		test: func(s *string) bool {
			if s == nil {
				return false
			}
			v := *s
			// Fast rejection: check length and hyphen positions before parsing.
			if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
				return false
			}
			_, err := uuid.Parse(v)
			return err == nil
		},
		msg: "Must be a valid UUID",
	}
}

// ValidEmail matches a present string holding a single email address suitable
// for typical web use: parseable by net/mail, with a non-empty local part and
// a dotted domain.
func ValidEmail() Predicate[*string] {
	return Predicate[*string]{
		test: func(s *string) bool {
			if s == nil || strings.TrimSpace(*s) == "" {
				return false
			}
			addr, err := mail.ParseAddress(*s)
			if err != nil {
				return false
			}
			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}
			if !strings.Contains(domain, ".") {
				return false
			}
			for _, part := range strings.Split(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		msg: "Must be a valid email address",
	}
}
