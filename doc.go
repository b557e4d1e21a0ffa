// Package waypath answers single-source shortest-path queries over weighted
// undirected graphs.
//
// The module is organized in small packages:
//
//	core/      - thread-safe Graph with vertices, weighted edges and adjacency
//	dijkstra/  - shortest-path engine: Run builds a query-scoped Tree,
//	             ShortestPath extracts one source->destination route
//	builder/   - deterministic graph constructors (Path, Cycle, Complete,
//	             RandomSparse, RandomAttach) with pluggable IDs and weights
//	edgelist/  - "a, b, weight" text format reader/writer and "src->dst" queries
//	cmd/waypath - command-line driver
//	examples/  - runnable scenarios
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	_ = g.AddEdge("A", "C", 4)
//	res, _ := dijkstra.ShortestPath(g, "A", "C")
//	fmt.Println(res, res.Distance) // A->B->C 3
//
// Queries never write to the graph: every call to dijkstra.Run owns its own
// priorities and predecessors, so one populated graph can serve many
// goroutines at once.
package waypath
