package globwalk

// literalRoot returns the longest metacharacter-free prefix of pattern, up
// to (excluding) the final separator before the first metacharacter. This
// is where directory walking can start without missing matches. flags must
// be resolved.
//
// An escape also ends the literal prefix: the escaped name is a valid match
// target but not valid path text, so walking starts one directory up.
func literalRoot(pattern string, flags MatchFlags) string {
	lastSep := -1
scan:
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case flags.isSeparator(c):
			lastSep = i
		case c == '*' || c == '?' || c == '[' || c == '{':
			break scan
		case c == '\\' && flags.escapes():
			break scan
		}
	}
	if lastSep < 0 {
		return ""
	}
	return pattern[:lastSep]
}
