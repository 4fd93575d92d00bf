// Package vercheck inspects a runtime's self-reported version string and
// checks the release token it advertises against an expected release.
package vercheck

import (
	"errors"
	"fmt"
	"regexp"
)

const (
	// DefaultWord is the implementation name that precedes the release token.
	DefaultWord = "PyPy"
	// DefaultExpected is the release token accepted by [Default] checkers.
	DefaultExpected = "7.3.16"

	// MatchMessage is printed when the captured token equals the expected release.
	MatchMessage = "Hello World!"
	// MismatchMessage is printed when a token is present but differs.
	MismatchMessage = ":("
)

// ErrPatternNotFound reports that the version string contains no word
// followed by a release token. Distinct from a mismatch, which is a
// normal [Result].
var ErrPatternNotFound = errors.New("pattern not found in version string")

// Checker extracts the release token following a literal word in a
// version string and compares it to an expected release.
type Checker struct {
	re       *regexp.Regexp
	word     string
	expected string
}

// New returns a [Checker] matching `word <token>`, where the token is the
// maximal non-whitespace run after a single space.
func New(word, expected string) *Checker {
	return &Checker{
		re:       regexp.MustCompile(regexp.QuoteMeta(word) + ` (\S+)`),
		word:     word,
		expected: expected,
	}
}

// Default returns a [Checker] for [DefaultWord] and [DefaultExpected].
func Default() *Checker {
	return New(DefaultWord, DefaultExpected)
}

// Result is the outcome of a single check.
type Result struct {
	// Token is the captured release token.
	Token string
	// OK reports whether Token equals the expected release exactly.
	OK bool
}

// Message returns the fixed output line for the result.
func (r *Result) Message() string {
	if r.OK {
		return MatchMessage
	}

	return MismatchMessage
}

// Check searches version for the checker's pattern. An absent pattern
// returns [ErrPatternNotFound]; a captured token always yields a Result.
// Equality is exact, a token merely prefixed by the expected release is a
// mismatch.
func (c *Checker) Check(version string) (*Result, error) {
	m := c.re.FindStringSubmatch(version)
	if m == nil {
		return nil, fmt.Errorf("%w: no %q release token", ErrPatternNotFound, c.word)
	}

	return &Result{
		Token: m[1],
		OK:    m[1] == c.expected,
	}, nil
}
