package globwalk

import (
	"path/filepath"
	"strings"
)

// MatchFlags selects the separator and escaping convention for a single
// call. It is threaded through every matching function rather than stored,
// so the same pattern text can be matched under different conventions.
type MatchFlags int

const (
	// Auto resolves to Windows or Unix from the host platform's native
	// separator, once per call. Identical inputs can therefore match
	// differently across platforms; this is deliberate, not a default to
	// be papered over.
	Auto MatchFlags = iota

	// Windows treats both / and \ as path separators. Backslash escaping
	// is disabled, since \ cannot be both a separator and an escape.
	Windows

	// Unix treats only / as a path separator, and \ escapes the next
	// character.
	Unix
)

// resolve maps Auto to the convention matching filepath.Separator.
func (f MatchFlags) resolve() MatchFlags {
	if f != Auto {
		return f
	}
	if filepath.Separator == '\\' {
		return Windows
	}
	return Unix
}

// isSeparator reports whether b separates segments. f must be resolved.
func (f MatchFlags) isSeparator(b byte) bool {
	return b == '/' || (f == Windows && b == '\\')
}

// escapes reports whether \ escapes the following character. f must be
// resolved.
func (f MatchFlags) escapes() bool {
	return f == Unix
}

// ConvertSeparators rewrites every \ in path to /. Callers forcing Unix
// matching on a platform whose native separator is \ should convert paths
// first, so that separators produced by the OS are not misread as escapes.
func ConvertSeparators(path string) string {
	if strings.IndexByte(path, '\\') < 0 {
		return path
	}
	return strings.ReplaceAll(path, `\`, "/")
}
