// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on weighted undirected core.Graph values with strictly positive
// edge weights.
//
// Overview:
//
//   - ShortestPath(g, source, dest) returns the ordered vertex path and its
//     total distance, or ErrNoPathFound when dest is unreachable.
//   - Run(g, source) computes the whole shortest-path Tree; callers that
//     render or inspect results use Tree.DistanceTo and Tree.PredecessorOf
//     instead of reaching into graph state.
//   - All per-query state (priority and predecessor of every Node) lives in
//     the Tree owned by the call. The graph is only read, so any number of
//     queries may run concurrently against the same *core.Graph.
//
// Relaxation loop:
//
//  1. Reset every vertex to (Infinity, no predecessor); the source gets 0.
//  2. Extract the unexplored vertex with minimal priority. Ties are broken
//     by the lowest vertex ID, so results never depend on map order.
//  3. For each unexplored neighbor v of u with weight w, lower v's priority
//     to u.Priority+w if that is strictly smaller, and point v back at u.
//  4. Mark u explored and repeat until the frontier is exhausted.
//
// Strategies:
//
//   - StrategyLazyHeap (default): binary heap with lazy deletion. A lowered
//     priority is pushed again and stale entries are skipped on pop.
//     Time O((V + E) log V), space O(V + E).
//   - StrategyRebuild: every vertex sits in one heap and the heap is rebuilt
//     after each extraction round. Time O(V²), space O(V). Kept for
//     comparison and for very small dense graphs.
//
// Both strategies finalize vertices in the same (priority, ID) order and use
// strict "<" relaxation, so they produce identical trees.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       g is nil.
//   - ErrUnknownVertex:  source or destination is not a vertex of g.
//   - ErrNoPathFound:    destination is unreachable from source.
//   - ErrBadMaxDistance: WithMaxDistance received a negative value (panics).
//   - ErrBadStrategy:    unknown Strategy passed to WithStrategy (panics) or
//     to ParseStrategy (returned).
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//	_ = g.AddEdge("A", "C", 4)
//	res, err := dijkstra.ShortestPath(g, "A", "C")
//	// res.Path == [A B C], res.Distance == 3
package dijkstra
