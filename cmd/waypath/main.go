// Command waypath answers shortest-path queries over a weighted undirected
// graph read from an edge-list file or generated at random.
//
// Usage:
//
//	waypath [flags] [src->dst ...]
//
// Each query prints one line, "a->b->c (distance N)", in the order given.
// Flags override values read from the -config file (TOML or YAML).
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
