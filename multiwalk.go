package globwalk

import (
	"context"
	"errors"
	"io/fs"
	"sync"
)

// MultiWalk is like [Walk], but walks for multiple patterns simultaneously.
// Patterns are grouped by their literal root so that overlapping patterns
// share a single filesystem walk, and distinct roots are walked in parallel
// (capped by WithGoroutineLimit). An entry matching several patterns is
// reported once.
//
// You should either make sure that the callback f is safe to call
// concurrently from multiple goroutines, or set WithGoroutineLimit(1).
// Cancelling ctx stops all walks; the first error from any walk cancels the
// rest and is returned.
func MultiWalk(ctx context.Context, patterns []string, f fs.WalkDirFunc, opts ...WalkOption) error {
	if f == nil {
		return errors.New("nil WalkDirFunc in arg to MultiWalk")
	}
	cfg := newWalkConfig(f, opts)
	flags := cfg.flags.resolve()

	// Group patterns by walk root to avoid walking a subtree once per
	// pattern.
	byRoot := make(map[string][]string)
	for _, pattern := range patterns {
		root := walkStart(pattern, flags)
		byRoot[root] = append(byRoot[root], pattern)
	}
	if len(byRoot) == 0 {
		return nil
	}

	if cfg.goroutines <= 0 || cfg.goroutines > len(byRoot) {
		cfg.goroutines = len(byRoot)
	}
	workCh := make(chan multiWalkWork)
	wctx, cancel := context.WithCancelCause(ctx)
	var wg sync.WaitGroup
	for i := 0; i < cfg.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := multiWalkWorker(wctx, cfg, flags, workCh); err != nil {
				cancel(err)
			}
		}()
	}

	// Feed work to the workers.
	for root, patts := range byRoot {
		work := multiWalkWork{root: root, patterns: patts}
		select {
		case <-wctx.Done():
			return context.Cause(wctx)

		case workCh <- work:
			// work has been fed
		}
	}
	close(workCh)

	wg.Wait()
	return context.Cause(wctx)
}

type multiWalkWork struct {
	root     string
	patterns []string
}

func multiWalkWorker(ctx context.Context, cfg *walkConfig, flags MatchFlags, workCh <-chan multiWalkWork) error {
	for {
		select {
		case work, open := <-workCh:
			if !open {
				return nil
			}
			if err := walkPatterns(ctx, cfg, flags, work.root, work.patterns); err != nil {
				return err
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
