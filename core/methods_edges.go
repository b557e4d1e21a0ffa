// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge stores the undirected edge {u,v} with the given weight,
// overwriting any weight previously stored for the same pair.
//
// Steps:
//  1. Validate IDs (ErrEmptyVertexID).
//  2. Reject self-loops and non-positive weights (ErrInvalidEdge).
//  3. Under write lock, register missing endpoints, then store the weight
//     in the edge catalog and in both adjacency buckets.
//
// The call is atomic: on error the graph is left untouched.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight int64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return fmt.Errorf("%w: self-loop on %q", ErrInvalidEdge, u)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: %s-%s weight=%d must be positive", ErrInvalidEdge, u, v, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(u)
	g.addVertexLocked(v)
	g.edges[NewEdgeKey(u, v)] = weight
	g.adjacency[u][v] = weight
	g.adjacency[v][u] = weight

	return nil
}

// RemoveEdge deletes the edge {u,v}. Endpoints stay in the graph.
// Returns ErrEdgeNotFound if the pair is not connected.
func (g *Graph) RemoveEdge(u, v string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := NewEdgeKey(u, v)
	if _, ok := g.edges[key]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, key)
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return nil
}

// HasEdge reports whether {u,v} is connected.
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[NewEdgeKey(u, v)]

	return ok
}

// Weight returns the weight stored for {u,v}.
func (g *Graph) Weight(u, v string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.edges[NewEdgeKey(u, v)]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Edges returns a snapshot of every edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	for k, w := range g.edges {
		out = append(out, Edge{From: k.A, To: k.B, Weight: w})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
