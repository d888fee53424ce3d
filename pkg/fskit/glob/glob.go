// Package glob compiles shell-style glob patterns into matchers over file
// base names.
//
// Supported syntax:
//   - '*' matches any run of non-separator characters
//   - '?' matches a single non-separator character
//   - '{a,b,c}' matches any of the comma-separated alternatives
//   - '\x' matches the character x literally
//
// Wildcards never cross a '/' and never match names starting with '.' unless
// the pattern itself starts with '.'.
package glob

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// ErrUnbalancedBraces is returned by Compile when the brace nesting of a
// pattern does not close back to zero.
var ErrUnbalancedBraces = errors.New("unbalanced braces")

// PatternError records a pattern that failed to compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return "glob: invalid pattern " + strconv.Quote(e.Pattern) + ": " + e.Err.Error()
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Matcher is a compiled glob pattern. Two matchers compiled from equal
// patterns behave identically; a Matcher holds no hidden state.
type Matcher struct {
	pattern string
	re      *regexp2.Regexp
}

// metachars are regex metacharacters with no glob meaning. They are emitted
// escaped so they match themselves.
const metachars = ".()|+^$@%"

// Compile translates pattern into a Matcher.
//
// The translation is a single left-to-right scan with one character of
// lookahead, tracking brace nesting depth. Unbalanced braces are rejected
// eagerly rather than mis-compiled.
func Compile(pattern string) (*Matcher, error) {
	var re strings.Builder
	depth := 0

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '\\':
			re.WriteRune(c)
			if i+1 < len(runes) {
				re.WriteRune(runes[i+1])
				i++
			}
		case c == '/':
			// An explicit dot segment after the separator disables
			// the hidden-file guard for that segment.
			if i+1 < len(runes) && runes[i+1] == '.' {
				re.WriteRune('/')
			} else {
				re.WriteString("/(?=[^.])")
			}
		case c == '*':
			re.WriteString("[^/]*")
		case c == '?':
			re.WriteString("[^/]")
		case c == '{':
			re.WriteRune('(')
			depth++
		case c == '}':
			depth--
			if depth < 0 {
				return nil, &PatternError{Pattern: pattern, Err: ErrUnbalancedBraces}
			}
			re.WriteRune(')')
		case c == ',':
			if depth > 0 {
				re.WriteRune('|')
			} else {
				re.WriteString("\\,")
			}
		case strings.ContainsRune(metachars, c):
			re.WriteRune('\\')
			re.WriteRune(c)
		default:
			re.WriteRune(c)
		}
	}

	if depth != 0 {
		return nil, &PatternError{Pattern: pattern, Err: ErrUnbalancedBraces}
	}

	expr := re.String()

	// Globs do not match hidden files unless the pattern itself starts
	// with a dot.
	prefix := "^"
	if !strings.HasPrefix(pattern, ".") {
		prefix = "^(?=[^.])"
	}

	// A trailing '*' leaves the pattern open-ended; anything else is
	// anchored to the end of the name.
	if !strings.HasSuffix(expr, "[^/]*") {
		expr += "$"
	}

	compiled, err := regexp2.Compile(prefix+expr, regexp2.None)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	return &Matcher{
		pattern: pattern,
		re:      compiled,
	}, nil
}

// MustCompile is like Compile but panics on invalid patterns. It simplifies
// package-level matcher variables.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// Match reports whether name matches the compiled pattern.
func (m *Matcher) Match(name string) bool {
	// The only error regexp2 can return here is a match timeout, and no
	// timeout is configured.
	matched, _ := m.re.MatchString(name)
	return matched
}

// Pattern returns the glob pattern the Matcher was compiled from.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// String returns the regular expression the pattern was translated into.
func (m *Matcher) String() string {
	return m.re.String()
}
