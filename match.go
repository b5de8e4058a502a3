package globwalk

// matchPath steps path and pattern one segment at a time. flags must be
// resolved. A ** pattern segment is the only point where matching recurses
// across segments: the remaining pattern is retried with the path advanced
// one segment per attempt, bounding the work to O(segments) recursive calls
// instead of general backtracking over the whole string.
func matchPath(path, pattern string, flags MatchFlags) bool {
	s := skipSeparators(path, 0, flags)
	p := skipSeparators(pattern, 0, flags)
	root := true

	for {
		if p >= len(pattern) {
			// Success requires simultaneous exhaustion.
			return s >= len(path)
		}

		pEnd := nextSeparator(pattern, p, flags)
		if pattern[p:pEnd] == "**" {
			rest := skipSeparators(pattern, pEnd, flags)
			if rest >= len(pattern) {
				// A trailing ** absorbs everything.
				return true
			}
			for {
				if matchPath(path[s:], pattern[rest:], flags) {
					return true
				}
				if s >= len(path) {
					return false
				}
				// Let ** swallow one more path segment and retry.
				s = skipSeparators(path, nextSeparator(path, s, flags), flags)
			}
		}

		sEnd := nextSeparator(path, s, flags)
		if s == sEnd && !root {
			// The pattern expects another path component and there is
			// none. An empty segment is only valid at the very start,
			// which is how * matches the empty root but */* still
			// requires a real second component.
			return false
		}

		end, res := matchChunk(pattern, p, pEnd, path[s:sEnd], 0, true, flags)
		if res != segMatched || end != sEnd-s {
			return false
		}

		s = skipSeparators(path, sEnd, flags)
		p = skipSeparators(pattern, pEnd, flags)
		root = false
	}
}
