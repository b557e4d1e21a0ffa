// Package core provides a thread-safe in-memory weighted undirected Graph
// with a minimal, composable API surface.
//
// The Graph G = (V,E) keeps:
//
//   - Vertices in insertion order (Vertices() is a stable enumeration surface).
//   - One strictly positive weight per unordered vertex pair, keyed by EdgeKey.
//   - An adjacency list mirrored on both endpoints, so Neighbors(v) is O(deg(v)).
//   - A single sync.RWMutex: concurrent readers never block each other.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                    // O(1), idempotent
//	HasVertex(id string) bool                     // O(1)
//	Vertices() []string                           // O(V), insertion order
//
//	// Edge lifecycle
//	AddEdge(u, v string, weight int64) error      // O(1), overwrites {u,v}
//	RemoveEdge(u, v string) error                 // O(1)
//	HasEdge(u, v string) bool                     // O(1)
//	Weight(u, v string) (int64, error)            // O(1)
//	Edges() []Edge                                // O(E log E), sorted
//
//	// Adjacency
//	Neighbors(id string) (map[string]int64, error) // O(deg)
//
//	// Cloning
//	Clone() *Graph                                // O(V+E)
//	CloneEmpty() *Graph                           // O(V)
//
// AddEdge validates before it touches any state: self-loops and weights ≤ 0
// return ErrInvalidEdge and leave the graph unchanged. Missing endpoints are
// registered automatically, so every edge always refers to known vertices.
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	nbs, _ := g.Neighbors("B") // map[A:1 C:2]
package core
