// The globprune command prints the partial pattern a walker would use at
// each directory depth to decide whether to descend, for debugging pruning
// behaviour.
//
// Example:
//
//	$ globprune 'src/**/testdata/*.golden'
//	depth 1: src
//	depth 2: src/**
package main

import (
	"fmt"
	"os"

	"github.com/wildhaven/globwalk"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s pattern\n", os.Args[0])
		os.Exit(1)
	}
	pattern := os.Args[1]

	prev := ""
	for depth := 1; depth <= globwalk.CountSegments(pattern, globwalk.Auto); depth++ {
		partial := globwalk.PartialPattern(pattern, globwalk.Auto, depth)
		if partial == prev {
			// Truncation stopped growing: a ** segment was reached.
			break
		}
		fmt.Printf("depth %d: %s\n", depth, partial)
		prev = partial
	}
}
