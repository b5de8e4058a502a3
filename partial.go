package globwalk

// PartialPattern returns the prefix of pattern that decides whether a
// directory at the given 1-based segment depth can still lead to matches.
// The prefix stops at whichever comes first: depth segments, the end of the
// pattern, or a ** segment. Once a pattern reaches an unbounded wildcard no
// depth-based truncation is meaningful - everything below is a candidate -
// so the prefix ends with the ** itself.
//
// A walker prunes by matching the returned prefix against the directory's
// path with IsMatch: a non-match means nothing under that directory can
// match the full pattern, so the subtree need not be listed at all.
//
// Depths below 1 are clamped to 1. The result is a slice of the original
// pattern text, never a copy.
func PartialPattern(pattern string, flags MatchFlags, depth int) string {
	f := flags.resolve()
	if depth < 1 {
		depth = 1
	}

	end := len(pattern)
	for i := skipSeparators(pattern, 0, f); i < len(pattern); {
		segEnd := nextSeparator(pattern, i, f)
		depth--
		if depth == 0 || pattern[i:segEnd] == "**" {
			end = segEnd
			break
		}
		i = skipSeparators(pattern, segEnd, f)
	}
	return pattern[:end]
}
