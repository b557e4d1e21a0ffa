// Package dijkstra_test provides examples demonstrating the shortest-path API.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
)

// ExampleShortestPath shows that a two-hop route beats a heavier direct edge.
func ExampleShortestPath() {
	// 1) Build the triangle A-B(1), B-C(2), A-C(4).
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 4)

	// 2) Query A→C.
	res, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res, res.Distance)
	// Output: A->B->C 3
}

// ExampleShortestPath_unreachable shows the error for a disconnected destination.
func ExampleShortestPath_unreachable() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddVertex("C")

	_, err := dijkstra.ShortestPath(g, "A", "C")
	fmt.Println(errors.Is(err, dijkstra.ErrNoPathFound))
	fmt.Println(err)
	// Output:
	// true
	// dijkstra: no path found: A->C
}

// ExampleRun inspects the whole shortest-path tree, e.g. for highlighting a route.
func ExampleRun() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 4)

	tree, err := dijkstra.Run(g, "A", dijkstra.WithStrategy(dijkstra.StrategyRebuild))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range tree.Vertices() {
		pred, _ := tree.PredecessorOf(id)
		fmt.Printf("%s dist=%d pred=%q\n", id, tree.DistanceTo(id), pred)
	}
	// Output:
	// A dist=0 pred=""
	// B dist=1 pred="A"
	// C dist=3 pred="B"
}
