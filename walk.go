package globwalk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Walk walks a filesystem, calling f for every entry whose path matches
// pattern. Walking starts at the pattern's literal directory prefix, and
// directories that cannot contain matches - decided by matching the
// directory's path against PartialPattern at its depth - are skipped
// without being listed.
//
// By default Walk uses os.DirFS(".") and follows symlinked directories
// that survive pruning; see WithFilesystem and TraverseSymlinks.
func Walk(pattern string, f fs.WalkDirFunc, opts ...WalkOption) error {
	if f == nil {
		return errors.New("nil WalkDirFunc in arg to Walk")
	}
	cfg := newWalkConfig(f, opts)
	flags := cfg.flags.resolve()
	return walkPatterns(context.Background(), cfg, flags, walkStart(pattern, flags), []string{pattern})
}

// walkStart converts a pattern's literal root into an fs.WalkDir starting
// point.
func walkStart(pattern string, flags MatchFlags) string {
	root := literalRoot(pattern, flags)
	if flags == Windows {
		root = ConvertSeparators(root)
	}
	root = strings.Trim(root, "/")
	if root == "" {
		return "."
	}
	return root
}

// walkRoot is one entry in the queue of walks. New roots are appended in
// order to traverse symlinks: paths found under a symlink target are
// reported under the symlink's own path, held in prefix.
type walkRoot struct {
	fsys   fs.FS
	start  string // where fs.WalkDir begins within fsys
	prefix string // virtual prefix for matching and reporting
	osDir  string // OS path backing fsys; empty if not OS-backed
}

// walkPatterns walks one root, testing inclusion against all patterns and
// pruning a directory only when every pattern's partial pattern rejects it.
func walkPatterns(ctx context.Context, cfg *walkConfig, flags MatchFlags, start string, patterns []string) error {
	fsys := cfg.filesystem
	osDir := ""
	if fsys == nil {
		fsys = os.DirFS(".")
		osDir = "."
	}
	queue := []walkRoot{{fsys: fsys, start: start, prefix: "", osDir: osDir}}

	for len(queue) > 0 {
		wr := queue[0]
		queue = queue[1:]

		cfg.logf("starting walk at %q (prefix %q) with %d patterns\n", wr.start, wr.prefix, len(patterns))
		err := fs.WalkDir(wr.fsys, wr.start, func(p string, d fs.DirEntry, err error) error {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
			if p == "." {
				return nil
			}

			full := joinPath(wr.prefix, p)
			if err != nil {
				// Report the error to the callback.
				return cfg.callback(full, d, err)
			}

			if IsMatchAny(full, patterns, flags) {
				if cberr := cfg.callback(full, d, nil); cberr != nil {
					return cberr
				}
			}

			isDir := d.IsDir()
			isLink := d.Type()&fs.ModeSymlink != 0
			if !isDir && !isLink {
				return nil
			}

			// Could anything under this entry still match? Truncate each
			// pattern to this entry's depth and match the prefix.
			depth := CountSegments(full, flags)
			descend := false
			for _, pattern := range patterns {
				if IsMatch(full, PartialPattern(pattern, flags, depth), flags) {
					descend = true
					break
				}
			}

			if isDir {
				if !descend {
					cfg.logf("pruning %q at depth %d\n", full, depth)
					return fs.SkipDir
				}
				return nil
			}

			// A symlink. fs.WalkDir never descends these, so a symlinked
			// directory that could hold matches becomes a new walk root.
			if !descend || !cfg.traverseSymlinks || wr.osDir == "" {
				return nil
			}
			osPath := filepath.Join(wr.osDir, filepath.FromSlash(p))
			target, rerr := os.Readlink(osPath)
			if rerr != nil {
				return cfg.callback(full, d, rerr)
			}
			if !filepath.IsAbs(target) {
				target = filepath.Join(filepath.Dir(osPath), target)
			}
			fi, serr := os.Stat(target)
			if serr != nil {
				return cfg.callback(full, d, serr)
			}
			if !fi.IsDir() {
				return nil
			}
			cfg.logf("traversing symlink %q -> %q\n", full, target)
			queue = append(queue, walkRoot{
				fsys:   os.DirFS(target),
				start:  ".",
				prefix: full,
				osDir:  target,
			})
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (cfg *walkConfig) logf(f string, v ...any) {
	if cfg.traceLogger == nil {
		return
	}
	fmt.Fprintf(cfg.traceLogger, f, v...)
}
