// Package globwalk implements a shell-style glob matcher and a file path
// walker that uses it. Patterns support *, ?, ** (matching whole path
// segments), [...] character classes and {a,b} alternation, possibly nested.
//
// Patterns are never compiled: every match re-scans the pattern text, and
// malformed syntax (an unterminated class or brace group, a trailing escape)
// simply fails to match rather than returning an error. Matching is pure and
// safe to call from any number of goroutines.
package globwalk

// IsMatch reports whether path matches pattern under flags.
//
// Matching proceeds a whole segment at a time. Consecutive separators
// collapse, and leading or trailing separators on either input are ignored,
// so "a//b/" matches "a/b". A ** segment matches zero or more path segments.
func IsMatch(path, pattern string, flags MatchFlags) bool {
	return matchPath(path, pattern, flags.resolve())
}

// IsMatchAny reports whether any of the patterns matches path. An empty
// pattern set matches nothing.
func IsMatchAny(path string, patterns []string, flags MatchFlags) bool {
	f := flags.resolve()
	for _, pattern := range patterns {
		if matchPath(path, pattern, f) {
			return true
		}
	}
	return false
}
