package globwalk

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type walkFuncArgs struct {
	Path string
	Err  error
}

type walkFuncCalls []walkFuncArgs

func (c *walkFuncCalls) walkFunc(path string, d fs.DirEntry, err error) error {
	*c = append(*c, walkFuncArgs{path, err})
	return nil
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"a/b/c.txt":           {},
		"a/b/d.txt":           {},
		"a/b/sub/e.txt":       {},
		"a/c/f.txt":           {},
		"m":                   {},
		"z/deep/deeper/g.txt": {},
	}
}

func TestWalk(t *testing.T) {
	var got walkFuncCalls
	err := Walk("a/*/[cf].txt", got.walkFunc, WithFilesystem(testFS()))
	require.NoError(t, err)

	want := walkFuncCalls{
		{Path: "a/b/c.txt"},
		{Path: "a/c/f.txt"},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("walked paths diff (-got +want):\n%s", diff)
	}
}

func TestWalk_DoubleStar(t *testing.T) {
	var got walkFuncCalls
	err := Walk("**/*.txt", got.walkFunc, WithFilesystem(testFS()))
	require.NoError(t, err)

	want := walkFuncCalls{
		{Path: "a/b/c.txt"},
		{Path: "a/b/d.txt"},
		{Path: "a/b/sub/e.txt"},
		{Path: "a/c/f.txt"},
		{Path: "z/deep/deeper/g.txt"},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("walked paths diff (-got +want):\n%s", diff)
	}
}

func TestWalk_MatchesDirectories(t *testing.T) {
	var got walkFuncCalls
	err := Walk("a/*", got.walkFunc, WithFilesystem(testFS()))
	require.NoError(t, err)

	want := walkFuncCalls{
		{Path: "a/b"},
		{Path: "a/c"},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("walked paths diff (-got +want):\n%s", diff)
	}
}

// readDirCounter records which directories a walk actually lists, to prove
// that pruned subtrees are never read.
type readDirCounter struct {
	fstest.MapFS
	calls map[string]int
}

func (c *readDirCounter) ReadDir(name string) ([]fs.DirEntry, error) {
	c.calls[name]++
	return c.MapFS.ReadDir(name)
}

func TestWalk_PrunesUnmatchableSubtrees(t *testing.T) {
	counter := &readDirCounter{MapFS: testFS(), calls: map[string]int{}}

	var got walkFuncCalls
	err := Walk("[az]/b/*.txt", got.walkFunc, WithFilesystem(counter))
	require.NoError(t, err)

	want := walkFuncCalls{
		{Path: "a/b/c.txt"},
		{Path: "a/b/d.txt"},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("walked paths diff (-got +want):\n%s", diff)
	}

	// Directories on the pattern's spine are listed...
	assert.Contains(t, counter.calls, ".")
	assert.Contains(t, counter.calls, "a")
	assert.Contains(t, counter.calls, "a/b")
	assert.Contains(t, counter.calls, "z")

	// ...subtrees the pattern can never reach are not.
	assert.NotContains(t, counter.calls, "a/c")
	assert.NotContains(t, counter.calls, "a/b/sub")
	assert.NotContains(t, counter.calls, "z/deep")
}

func TestWalk_StartsAtLiteralRoot(t *testing.T) {
	counter := &readDirCounter{MapFS: testFS(), calls: map[string]int{}}

	var got walkFuncCalls
	err := Walk("a/b/*.txt", got.walkFunc, WithFilesystem(counter))
	require.NoError(t, err)

	want := walkFuncCalls{
		{Path: "a/b/c.txt"},
		{Path: "a/b/d.txt"},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("walked paths diff (-got +want):\n%s", diff)
	}

	// The walk begins at the pattern's literal prefix, so nothing above or
	// beside it is ever listed.
	assert.NotContains(t, counter.calls, ".")
	assert.NotContains(t, counter.calls, "a")
	assert.NotContains(t, counter.calls, "z")
}

func TestWalk_MissingRootReportedToCallback(t *testing.T) {
	var got walkFuncCalls
	err := Walk("nope/*.txt", got.walkFunc, WithFilesystem(testFS()))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "nope", got[0].Path)
	assert.Error(t, got[0].Err)
}

func TestWalk_CallbackErrorStopsWalk(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Walk("**", func(path string, d fs.DirEntry, err error) error {
		calls++
		return boom
	}, WithFilesystem(testFS()))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestWalk_NilCallback(t *testing.T) {
	require.Error(t, Walk("*", nil))
}
