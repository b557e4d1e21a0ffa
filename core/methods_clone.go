// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with the same vertices in the same
// insertion order, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for _, id := range g.order {
		clone.addVertexLocked(id)
	}

	return clone
}

// Clone returns a deep copy of the Graph: vertices (order preserved), edges
// and adjacency. Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for _, id := range g.order {
		clone.addVertexLocked(id)
	}
	for k, w := range g.edges {
		clone.edges[k] = w
		clone.adjacency[k.A][k.B] = w
		clone.adjacency[k.B][k.A] = w
	}

	return clone
}
