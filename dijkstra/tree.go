package dijkstra

import (
	"fmt"
	"slices"
	"strings"
)

// PathSeparator joins vertex IDs in Result.String.
const PathSeparator = "->"

// Result is the answer to a single source→destination query.
type Result struct {
	Path     []string // vertex IDs, source first, destination last
	Distance int64    // total weight of Path
	Tree     *Tree    // full shortest-path tree of the query
}

// String renders the path as "A->B->C".
func (r *Result) String() string {
	return strings.Join(r.Path, PathSeparator)
}

// Tree is the query-scoped shortest-path state: one Node per vertex of the
// graph at the time the query started. A Tree is never shared with the graph,
// so reading it is safe while other queries run.
type Tree struct {
	source string
	order  []string
	nodes  map[string]*Node
}

// newTree allocates a Tree with every vertex reset to (Infinity, none).
func newTree(source string, order []string) *Tree {
	t := &Tree{
		source: source,
		order:  order,
		nodes:  make(map[string]*Node, len(order)),
	}
	for _, id := range order {
		n := NewNode(id)
		t.nodes[id] = &n
	}

	return t
}

// Source returns the vertex the tree is rooted at.
func (t *Tree) Source() string { return t.source }

// Vertices returns the vertex IDs covered by the tree in graph insertion order.
func (t *Tree) Vertices() []string {
	return slices.Clone(t.order)
}

// Node returns a copy of the Node state recorded for id.
func (t *Tree) Node(id string) (Node, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// DistanceTo returns the shortest distance from the source to id, or
// Infinity if id is unreachable or unknown.
func (t *Tree) DistanceTo(id string) int64 {
	n, ok := t.nodes[id]
	if !ok {
		return Infinity
	}

	return n.Priority
}

// Reachable reports whether id has a finite distance from the source.
func (t *Tree) Reachable(id string) bool {
	return t.DistanceTo(id) != Infinity
}

// PredecessorOf returns the vertex preceding id on its shortest path.
// ok is false for the source, unreachable vertices and unknown IDs.
func (t *Tree) PredecessorOf(id string) (pred string, ok bool) {
	n, found := t.nodes[id]
	if !found || !n.HasPredecessor() {
		return "", false
	}

	return n.Predecessor, true
}

// Distances returns a map of every reachable vertex to its distance.
func (t *Tree) Distances() map[string]int64 {
	out := make(map[string]int64, len(t.nodes))
	for id, n := range t.nodes {
		if n.Reachable() {
			out[id] = n.Priority
		}
	}

	return out
}

// PathTo walks predecessor links back from dest to the source and returns
// the path in source→dest order along with its distance.
//
// Errors:
//   - ErrUnknownVertex if dest is not covered by the tree.
//   - ErrNoPathFound if dest has no predecessor and is not the source.
func (t *Tree) PathTo(dest string) ([]string, int64, error) {
	n, ok := t.nodes[dest]
	if !ok {
		return nil, 0, fmt.Errorf("%w: destination %q", ErrUnknownVertex, dest)
	}
	if dest == t.source {
		return []string{dest}, 0, nil
	}
	if !n.HasPredecessor() {
		return nil, 0, fmt.Errorf("%w: %s%s%s", ErrNoPathFound, t.source, PathSeparator, dest)
	}

	path := []string{dest}
	for cur := n; cur.HasPredecessor(); {
		cur = t.nodes[cur.Predecessor]
		path = append(path, cur.ID)
	}
	slices.Reverse(path)

	return path, n.Priority, nil
}
