// Package edgelist reads and writes the plain-text edge-list format used to
// hand graphs to the shortest-path engine, and parses "src->dst" queries.
//
// Format (one record per line):
//
//	# comment
//	a, b, 3     undirected edge a-b with weight 3
//	d           isolated vertex d
//
// Fields are comma separated and surrounding blanks are ignored. Vertices
// are registered in order of first appearance. A later line for the same
// pair overwrites the earlier weight.
//
// Parse validates the whole input before returning: every malformed line is
// reported in one aggregated error (github.com/hashicorp/go-multierror), each
// entry wrapping ErrMalformedLine or core.ErrInvalidEdge with its line number.
package edgelist
