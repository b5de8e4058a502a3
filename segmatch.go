package globwalk

import "unicode/utf8"

// segResult is the outcome of matching a pattern chunk against (part of) a
// path segment.
type segResult int

const (
	segMatched segResult = iota
	segFailed

	// segAbandon is a failure that additionally tells any enclosing star
	// scan to stop trying later positions: the scan that failed already
	// covered every suffix a shorter star could offer it, so retrying from
	// further right cannot succeed. This is what keeps chained-star
	// patterns like a*a*a*a*c linear instead of quadratic.
	segAbandon
)

// matchChunk matches the pattern chunk pattern[p:pEnd] against the path
// segment seg starting at cursor s. A chunk is either a whole pattern
// segment or one brace alternative; it never contains a separator.
//
// When toEnd is set the chunk must consume seg completely. Brace
// alternatives are matched with toEnd unset, since pattern text after the
// closing brace continues from wherever the alternative stopped.
//
// On success the returned int is the new path cursor.
func matchChunk(pattern string, p, pEnd int, seg string, s int, toEnd bool, flags MatchFlags) (int, segResult) {
	for p < pEnd {
		if s >= len(seg) {
			// Path exhausted with pattern remaining. Only tokens that can
			// match zero characters may be left.
			if chunkMatchesEmpty(pattern, p, pEnd, flags) {
				return s, segMatched
			}
			return 0, segFailed
		}

		c := pattern[p]
		switch {
		case c == '*':
			// A run of stars is one star.
			for p < pEnd && pattern[p] == '*' {
				p++
			}
			if p == pEnd {
				// Trailing star: the rest of the segment matches.
				return len(seg), segMatched
			}
			// Try the rest of the chunk at every remaining cursor
			// position, nearest first.
			for pos := s; pos <= len(seg); pos++ {
				end, res := matchChunk(pattern, p, pEnd, seg, pos, toEnd, flags)
				switch res {
				case segMatched:
					return end, segMatched
				case segAbandon:
					return 0, segAbandon
				}
			}
			if pattern[p] == '{' {
				// A brace group follows: its alternatives belong to the
				// caller, which may still have some to explore.
				return 0, segFailed
			}
			return 0, segAbandon

		case c == '[':
			r, w := utf8.DecodeRuneInString(seg[s:])
			matched, after, ok := matchClass(pattern, p, pEnd, r, flags)
			if !ok || !matched {
				return 0, segFailed
			}
			p = after
			s += w

		case c == '{':
			end, after, res := matchBrace(pattern, p, pEnd, seg, s, flags)
			if res != segMatched {
				return 0, res
			}
			p = after
			s = end

		case c == '\\' && flags.escapes():
			if p+1 >= pEnd {
				// Trailing escape: malformed, matches nothing.
				return 0, segFailed
			}
			pr, pw := utf8.DecodeRuneInString(pattern[p+1 : pEnd])
			sr, sw := utf8.DecodeRuneInString(seg[s:])
			if pr != sr {
				return 0, segFailed
			}
			p += 1 + pw
			s += sw

		case c == '?':
			_, w := utf8.DecodeRuneInString(seg[s:])
			p++
			s += w

		default:
			pr, pw := utf8.DecodeRuneInString(pattern[p:pEnd])
			sr, sw := utf8.DecodeRuneInString(seg[s:])
			if pr != sr {
				return 0, segFailed
			}
			p += pw
			s += sw
		}
	}

	if toEnd && s != len(seg) {
		return 0, segFailed
	}
	return s, segMatched
}

// matchClass matches one path rune r against the character class opening at
// pattern[p] (which must be '['). A leading ! negates the class; members are
// single runes or inclusive lo-hi ranges. The returned index is just past
// the closing ]. ok is false for an unterminated class, which makes the
// whole segment a non-match.
func matchClass(pattern string, p, pEnd int, r rune, flags MatchFlags) (matched bool, after int, ok bool) {
	p++ // consume [
	negate := false
	if p < pEnd && pattern[p] == '!' {
		negate = true
		p++
	}
	for {
		if p >= pEnd {
			return false, 0, false
		}
		if pattern[p] == ']' {
			return matched != negate, p + 1, true
		}
		lo, next, valid := classRune(pattern, p, pEnd, flags)
		if !valid {
			return false, 0, false
		}
		p = next
		hi := lo
		if p+1 < pEnd && pattern[p] == '-' && pattern[p+1] != ']' {
			hi, next, valid = classRune(pattern, p+1, pEnd, flags)
			if !valid {
				return false, 0, false
			}
			p = next
		}
		if lo <= r && r <= hi {
			// Keep scanning: the terminating ] still has to be found.
			matched = true
		}
	}
}

// classRune decodes one class member, honouring \ escapes in Unix mode.
func classRune(pattern string, p, pEnd int, flags MatchFlags) (rune, int, bool) {
	if flags.escapes() && pattern[p] == '\\' {
		p++
		if p >= pEnd {
			return 0, 0, false
		}
	}
	r, w := utf8.DecodeRuneInString(pattern[p:pEnd])
	return r, p + w, true
}

// chunkMatchesEmpty reports whether pattern[p:pEnd] can match zero
// characters: star runs, and brace groups all of whose alternatives match
// empty.
func chunkMatchesEmpty(pattern string, p, pEnd int, flags MatchFlags) bool {
	for p < pEnd {
		switch pattern[p] {
		case '*':
			p++

		case '{':
			closing := braceEnd(pattern, p, pEnd, flags)
			if closing < 0 {
				return false
			}
			alt := p + 1
			depth := 0
			for q := p + 1; q <= closing; q++ {
				c := pattern[q]
				if flags.escapes() && c == '\\' {
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
					// The group's own terminator: fall out to close the
					// final alternative.
				case ',':
					if depth != 0 {
						continue
					}
				default:
					continue
				}
				if !chunkMatchesEmpty(pattern, alt, q, flags) {
					return false
				}
				alt = q + 1
			}
			p = closing + 1

		default:
			return false
		}
	}
	return true
}
