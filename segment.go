package globwalk

// Segments are never materialised as a slice: both the matcher and the
// partial-pattern resolver step through paths and patterns with a pair of
// cursor helpers, locating one separator at a time.

// skipSeparators returns the index of the first byte at or after i that is
// not a separator, or len(s).
func skipSeparators(s string, i int, flags MatchFlags) int {
	for i < len(s) && flags.isSeparator(s[i]) {
		i++
	}
	return i
}

// nextSeparator returns the index of the first separator at or after i, or
// len(s).
func nextSeparator(s string, i int, flags MatchFlags) int {
	for i < len(s) && !flags.isSeparator(s[i]) {
		i++
	}
	return i
}

// CountSegments returns the number of non-empty separator-delimited segments
// in s under flags. Empty and all-separator strings count as one segment, so
// the result is always at least 1.
func CountSegments(s string, flags MatchFlags) int {
	f := flags.resolve()
	n := 0
	for i := skipSeparators(s, 0, f); i < len(s); i = skipSeparators(s, i, f) {
		n++
		i = nextSeparator(s, i, f)
	}
	if n == 0 {
		return 1
	}
	return n
}
