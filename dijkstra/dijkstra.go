package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// ShortestPath computes the shortest path from source to dest in g.
//
// Returns:
//
//   - res.Path:     vertex IDs from source to dest inclusive.
//   - res.Distance: sum of edge weights along res.Path.
//   - res.Tree:     the full shortest-path tree of the query, for inspection.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and dest must be vertices of g (ErrUnknownVertex).
//
// dest unreachable from source yields ErrNoPathFound. source == dest yields
// Path [source] with Distance 0.
//
// Complexity:
//
//   - StrategyLazyHeap: Time O((V + E) log V), Space O(V + E)
//   - StrategyRebuild:  Time O(V²), Space O(V)
func ShortestPath(g *core.Graph, source, dest string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	// Both endpoints are checked before any work is done.
	if !g.HasVertex(dest) {
		return nil, fmt.Errorf("%w: destination %q", ErrUnknownVertex, dest)
	}

	tree, err := Run(g, source, opts...)
	if err != nil {
		return nil, err
	}

	path, dist, err := tree.PathTo(dest)
	if err != nil {
		return nil, err
	}

	return &Result{Path: path, Distance: dist, Tree: tree}, nil
}

// Run computes the shortest-path tree rooted at source over every vertex of g.
//
// Validation order: ErrNilGraph, then ErrUnknownVertex for source.
//
// Every vertex of g appears in the returned Tree; unreachable vertices keep
// Priority == Infinity and no predecessor.
func Run(g *core.Graph, source string, opts ...Option) (*Tree, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrUnknownVertex, source)
	}

	// 3) Reset: one fresh Node per vertex, in insertion order.
	order := g.Vertices()
	tree := newTree(source, order)
	nodes := make([]*Node, len(order))
	for i, id := range order {
		nodes[i] = tree.nodes[id]
	}

	// 4) Seed the source.
	src := tree.nodes[source]
	src.Priority = 0

	// 5) Relax until the frontier is exhausted.
	r := &runner{
		g:        g,
		options:  cfg,
		tree:     tree,
		explored: make(map[string]bool, len(order)),
		queue:    newFrontier(cfg.Strategy, nodes, src),
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return tree, nil
}

// runner holds the mutable state for a single query.
type runner struct {
	g        *core.Graph     // read-only within a query
	options  Options         // resolved configuration
	tree     *Tree           // query-owned Node table
	explored map[string]bool // vertices whose distance is final
	queue    frontier        // min-priority structure
}

// process is the relaxation loop. It repeatedly extracts the unexplored
// vertex with minimal (Priority, ID), relaxes its neighbors and marks it
// explored.
//
// Loop termination conditions:
//
//   - The frontier becomes empty.
//   - The minimum priority is Infinity: every remaining vertex is unreachable
//     and relaxing from it cannot change anything.
func (r *runner) process() error {
	for r.queue.Len() > 0 {
		// 1) Extract the minimum; skip stale or finalized entries.
		u := r.queue.pop()
		if u == nil || r.explored[u.ID] {
			continue
		}

		// 2) Nothing left is reachable.
		if !u.Reachable() {
			break
		}

		// 3) Relax all unexplored neighbors of u.
		if err := r.relax(u); err != nil {
			return err
		}

		// 4) u is final; restore the frontier ordering.
		r.explored[u.ID] = true
		r.queue.endRound()
	}

	return nil
}

// relax lowers the priority of every unexplored neighbor v of u for which
// u.Priority + w(u,v) is strictly smaller than v.Priority.
func (r *runner) relax(u *Node) error {
	err := r.g.ForEachNeighbor(u.ID, func(id string, w int64) {
		if r.explored[id] {
			return
		}
		v, ok := r.tree.nodes[id]
		if !ok {
			// Vertex added to g after the query snapshot; not part of this run.
			return
		}

		// Saturate instead of overflowing int64.
		if w > Infinity-u.Priority {
			return
		}
		candidate := u.Priority + w
		if candidate > r.options.MaxDistance {
			return
		}
		if candidate >= v.Priority {
			return
		}

		v.Priority = candidate
		v.Predecessor = u.ID
		r.queue.touch(v)
	})
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u.ID, err)
	}

	return nil
}
