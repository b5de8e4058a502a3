package globwalk

import (
	"io"
	"io/fs"
)

// WalkOption functions optionally alter how Walk and MultiWalk operate.
type WalkOption = func(*walkConfig)

type walkConfig struct {
	flags            MatchFlags
	traverseSymlinks bool
	traceLogger      io.Writer
	callback         fs.WalkDirFunc
	filesystem       fs.FS
	goroutines       int
}

// WithFilesystem allows overriding the default filesystem (os.DirFS(".")).
// Symlinks cannot be read through an fs.FS, so symlink traversal is
// disabled whenever a filesystem is supplied.
func WithFilesystem(fsys fs.FS) WalkOption {
	return func(cfg *walkConfig) {
		cfg.filesystem = fsys
	}
}

// WithMatchFlags sets the separator and escaping convention used for
// matching and pruning. The default is Auto.
func WithMatchFlags(flags MatchFlags) WalkOption {
	return func(cfg *walkConfig) {
		cfg.flags = flags
	}
}

// TraverseSymlinks enables or disables the traversal of symlinked
// directories during a walk. It is enabled by default, and only effective
// when walking the real filesystem (see WithFilesystem).
func TraverseSymlinks(traverse bool) WalkOption {
	return func(cfg *walkConfig) {
		cfg.traverseSymlinks = traverse
	}
}

// WithTraceLogs logs walking and pruning decisions to the provided writer,
// for debugging the walk itself. Disabled by default.
func WithTraceLogs(out io.Writer) WalkOption {
	return func(cfg *walkConfig) {
		cfg.traceLogger = out
	}
}

// WithGoroutineLimit caps the number of goroutines MultiWalk uses to walk
// distinct pattern roots. The default is one per root. Walk ignores it.
func WithGoroutineLimit(n int) WalkOption {
	return func(cfg *walkConfig) {
		cfg.goroutines = n
	}
}

func newWalkConfig(f fs.WalkDirFunc, opts []WalkOption) *walkConfig {
	cfg := &walkConfig{
		flags:            Auto,
		traverseSymlinks: true,
		callback:         f,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}
	return cfg
}
