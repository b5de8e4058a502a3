package globwalk

import (
	"path/filepath"
	"testing"
)

func TestAutoResolvesPerCall(t *testing.T) {
	want := Unix
	if filepath.Separator == '\\' {
		want = Windows
	}
	if got := Auto.resolve(); got != want {
		t.Errorf("Auto.resolve() = %d, want %d", got, want)
	}

	// Auto follows the host convention at call time, so a backslash path
	// matches a slash pattern exactly when the host separator is \.
	want2 := filepath.Separator == '\\'
	if got := IsMatch(`a\b`, "a/b", Auto); got != want2 {
		t.Errorf("IsMatch(%q, %q, Auto) = %v, want %v", `a\b`, "a/b", got, want2)
	}
}

func TestConvertSeparators(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a/b", "a/b"},
		{`a\b`, "a/b"},
		{`a\b\c.txt`, "a/b/c.txt"},
		{`\\`, "//"},
	}
	for _, test := range tests {
		if got := ConvertSeparators(test.in); got != test.want {
			t.Errorf("ConvertSeparators(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}
