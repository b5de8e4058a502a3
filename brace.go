package globwalk

// matchBrace tries each alternative of the brace group opening at
// pattern[p] against seg from cursor s, in left-to-right order. Empty
// alternatives and nested groups are allowed; commas and braces belonging
// to a nested group are skipped by depth counting, as are escaped
// characters in Unix mode.
//
// The returned cursor is the rightmost (furthest-advancing) successful
// alternative's, not the first: a later alternative may consume more of the
// path, which matters when more pattern follows the closing brace and a
// shorter partial match would wrongly block a fuller one. after is the
// pattern index just past the closing brace.
//
// An unterminated group matches nothing.
func matchBrace(pattern string, p, pEnd int, seg string, s int, flags MatchFlags) (end, after int, res segResult) {
	closing := braceEnd(pattern, p, pEnd, flags)
	if closing < 0 {
		return 0, 0, segFailed
	}

	best := -1
	alt := p + 1
	depth := 0
	for q := p + 1; q <= closing; q++ {
		c := pattern[q]
		if flags.escapes() && c == '\\' {
			// The escaped character cannot split or terminate the group.
			q++
			continue
		}
		switch c {
		case '{':
			depth++
			continue
		case '}':
			if q != closing {
				depth--
				continue
			}
			// The group's own closing brace ends the final alternative.
		case ',':
			if depth != 0 {
				continue
			}
		default:
			continue
		}

		// pattern[alt:q] is one alternative. A failed alternative never
		// abandons the search; the remaining alternatives still count.
		if e, r := matchChunk(pattern, alt, q, seg, s, false, flags); r == segMatched && e > best {
			best = e
		}
		alt = q + 1
	}

	if best < 0 {
		return 0, 0, segFailed
	}
	return best, closing + 1, segMatched
}

// braceEnd returns the index of the brace closing the group that opens at
// pattern[p], or -1 if the group is unterminated.
func braceEnd(pattern string, p, pEnd int, flags MatchFlags) int {
	depth := 0
	for q := p; q < pEnd; q++ {
		c := pattern[q]
		if flags.escapes() && c == '\\' {
			q++
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return q
			}
		}
	}
	return -1
}
