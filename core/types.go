// File: types.go
// Role: Vertex, Edge, EdgeKey, Graph, sentinel errors and NewGraph.
// Concurrency:
//   - A single sync.RWMutex guards every Graph field.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidEdge indicates a self-loop or a non-positive weight was passed to AddEdge.
	ErrInvalidEdge = errors.New("core: invalid edge")
)

// Vertex represents a node in the graph.
//
// A Vertex is a small value type: two Vertex values with the same ID are the
// same vertex, whatever else the caller carries around with them.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string
}

// EdgeKey is the canonical form of an unordered vertex pair {A,B}.
// NewEdgeKey always stores the lexicographically smaller ID in A, so
// {A,B} and {B,A} produce equal keys and can be used as map keys.
type EdgeKey struct {
	A, B string
}

// NewEdgeKey returns the canonical key for the unordered pair {u,v}.
func NewEdgeKey(u, v string) EdgeKey {
	if v < u {
		u, v = v, u
	}

	return EdgeKey{A: u, B: v}
}

// Other returns the endpoint of k opposite to id, or "" if id is not an endpoint.
func (k EdgeKey) Other(id string) string {
	switch id {
	case k.A:
		return k.B
	case k.B:
		return k.A
	default:
		return ""
	}
}

// Edge represents an undirected weighted connection between two vertices.
//
// From and To follow the canonical EdgeKey order (From < To); the edge is
// traversable both ways.
type Edge struct {
	// From is the lexicographically smaller endpoint.
	From string

	// To is the lexicographically larger endpoint.
	To string

	// Weight is the strictly positive cost of the edge.
	Weight int64
}

// Key returns the canonical EdgeKey for e.
func (e Edge) Key() EdgeKey { return EdgeKey{A: e.From, B: e.To} }

// Graph is the core in-memory undirected weighted graph.
//
// mu guards every field below it. order keeps vertex insertion order,
// edges holds one weight per unordered pair, and adjacency mirrors edges
// per endpoint so Neighbors costs O(deg) instead of O(E).
type Graph struct {
	mu sync.RWMutex

	// Storage
	order    []string          // vertex IDs in insertion order
	vertices map[string]Vertex // vertex ID → Vertex
	edges    map[EdgeKey]int64 // {u,v} → weight

	// adjacency[u][v] = weight, mirrored for v.
	adjacency map[string]map[string]int64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]Vertex),
		edges:     make(map[EdgeKey]int64),
		adjacency: make(map[string]map[string]int64),
	}
}
