// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under write lock, register the vertex at the end of the
//     insertion order and bootstrap its adjacency bucket.
//
// Returns:
//   - error: nil on success; ErrEmptyVertexID on invalid input.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id if missing. Caller must hold g.mu for writing.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return // no-op for existing vertex
	}
	g.vertices[id] = Vertex{ID: id}
	g.order = append(g.order, id)
	g.adjacency[id] = make(map[string]int64)
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the Vertex registered under id.
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return v, nil
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy; callers may modify it freely.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Neighbors returns the mapping neighbor ID → edge weight for every edge
// incident to id. The map is a fresh copy owned by the caller.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if id is not in the graph.
//
// Complexity: O(deg(id)) thanks to the adjacency list.
func (g *Graph) Neighbors(id string) (map[string]int64, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make(map[string]int64, len(adj))
	for v, w := range adj {
		out[v] = w
	}

	return out, nil
}

// Degree returns the number of distinct neighbors of id.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(adj), nil
}

// ForEachNeighbor calls fn for every neighbor of id without copying the
// adjacency bucket. The read lock is held for the duration of the walk, so
// fn must not mutate g.
//
// Iteration order is unspecified.
func (g *Graph) ForEachNeighbor(id string, fn func(neighbor string, weight int64)) error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return ErrVertexNotFound
	}
	for v, w := range adj {
		fn(v, w)
	}

	return nil
}
