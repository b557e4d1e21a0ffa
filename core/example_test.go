package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty graph.
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices A, B, C in that order).
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 4)

	// 3) Inspect vertices and edges.
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge C–A exists?", g.HasEdge("C", "A"))
	w, _ := g.Weight("C", "B")
	fmt.Println("Weight B–C:", w)

	// Output:
	// Vertices: [A B C]
	// Edge C–A exists? true
	// Weight B–C: 2
}

// ExampleGraph_AddEdge shows the edge validation rules.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()

	err := g.AddEdge("A", "A", 5)
	fmt.Println(errors.Is(err, core.ErrInvalidEdge))

	err = g.AddEdge("A", "B", -1)
	fmt.Println(errors.Is(err, core.ErrInvalidEdge))
	fmt.Println("vertices:", g.VertexCount())

	// Output:
	// true
	// true
	// vertices: 0
}
