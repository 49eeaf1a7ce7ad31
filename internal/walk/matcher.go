package findr

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NameSources holds the raw name patterns. Exactly one must be set.
type NameSources struct {
	Regex string // Raw regular expression
	Glob  string // Glob where * matches any sequence
	IGlob string // Case-insensitive glob
}

func (s NameSources) count() int {
	n := 0
	for _, v := range []string{s.Regex, s.Glob, s.IGlob} {
		if v != "" {
			n++
		}
	}
	return n
}

// NameMatcher matches the final component of a path against a compiled pattern.
type NameMatcher struct {
	re *regexp.Regexp
}

// NewNameMatcher compiles exactly one of the sources.
func NewNameMatcher(src NameSources) (*NameMatcher, error) {
	switch src.count() {
	case 0:
		return nil, ErrNoNameMatcher
	case 1:
	default:
		return nil, fmt.Errorf("%w: regex=%q name=%q iname=%q",
			ErrAmbiguousNameMatcher, src.Regex, src.Glob, src.IGlob)
	}

	var expr string
	switch {
	case src.Regex != "":
		expr = src.Regex
	case src.Glob != "":
		expr = globToRegexp(src.Glob)
	default:
		expr = "(?i)" + globToRegexp(src.IGlob)
	}

	re, err := regexp.Compile(norm.NFC.String(expr))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return &NameMatcher{re: re}, nil
}

// globToRegexp anchors the pattern and expands each * into .*; every other
// character is literal.
func globToRegexp(glob string) string {
	parts := strings.Split(glob, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return "^" + strings.Join(parts, ".*") + "$"
}

// MatchName reports whether name matches. Names that are not valid UTF-8
// never match.
func (m *NameMatcher) MatchName(name string) bool {
	if !utf8.ValidString(name) {
		return false
	}
	return m.re.MatchString(norm.NFC.String(name))
}

// String returns the compiled expression.
func (m *NameMatcher) String() string {
	return m.re.String()
}
