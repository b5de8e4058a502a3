// The globwalk command searches for files with paths matching one or more
// patterns.
//
// Example:
//
//	$ globwalk '**/*_test.go'
//	match_test.go
//	multiwalk_test.go
//	partial_test.go
//	segment_test.go
//	walk_test.go
package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/wildhaven/globwalk"
)

var (
	patterns = kingpin.Arg("patterns", "Glob patterns to search for.").Required().Strings()
	mode     = kingpin.Flag("mode", "Separator convention to match with.").
			Default("auto").Enum("auto", "unix", "windows")
	symlinks = kingpin.Flag("follow-symlinks", "Traverse symlinked directories.").
			Default("true").Bool()
	jobs     = kingpin.Flag("jobs", "Max concurrent walks (0 = one per pattern root).").Int()
	dirsOnly = kingpin.Flag("dirs", "Print only matching directories.").Bool()
	trace    = kingpin.Flag("trace", "Write walk trace logs to stderr.").Bool()
)

func main() {
	kingpin.Parse()

	flags := globwalk.Auto
	switch *mode {
	case "unix":
		flags = globwalk.Unix
	case "windows":
		flags = globwalk.Windows
	}

	opts := []globwalk.WalkOption{
		globwalk.WithMatchFlags(flags),
		globwalk.TraverseSymlinks(*symlinks),
		globwalk.WithGoroutineLimit(*jobs),
	}
	if *trace {
		opts = append(opts, globwalk.WithTraceLogs(os.Stderr))
	}

	// Roots walk concurrently, so printing needs a lock.
	var mu sync.Mutex
	dir := color.New(color.FgBlue, color.Bold)
	err := globwalk.MultiWalk(context.Background(), *patterns, func(path string, d fs.DirEntry, err error) error {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error at path %q: %v\n", path, err)
			return nil
		}
		if d.IsDir() {
			dir.Println(path)
		} else if !*dirsOnly {
			fmt.Println(path)
		}
		return nil
	}, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't perform file system walk: %v\n", err)
		os.Exit(1)
	}
}
