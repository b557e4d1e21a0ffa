package dijkstra

import "container/heap"

// frontier is the min-priority structure driving the relaxation loop.
//
// pop returns the next candidate in (Priority, ID) order, or nil when the
// popped entry turned out to be stale. touch is called after n.Priority was
// lowered; endRound after every extraction round.
type frontier interface {
	Len() int
	pop() *Node
	touch(n *Node)
	endRound()
}

// newFrontier builds the frontier for strategy s over nodes (in graph
// insertion order) with source already seeded at priority 0.
func newFrontier(s Strategy, nodes []*Node, source *Node) frontier {
	if s == StrategyRebuild {
		q := &rebuildQueue{items: make(nodeHeap, len(nodes))}
		copy(q.items, nodes)
		heap.Init(&q.items)

		return q
	}

	q := &lazyQueue{items: make(entryHeap, 0, len(nodes))}
	heap.Push(&q.items, entry{node: source, priority: source.Priority})

	return q
}

// entry is a (node, priority) snapshot stored in the lazy heap. An entry is
// stale once node.Priority has moved below the snapshot.
type entry struct {
	node     *Node
	priority int64
}

// entryHeap is a min-heap of entries ordered by priority, then node ID.
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }
func (h entryHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].node.ID < h[j].node.ID
}
func (h entryHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// lazyQueue implements the "lazy decrease-key" pattern: a lowered priority
// is pushed as a new entry, and outdated entries are dropped on pop.
type lazyQueue struct {
	items entryHeap
}

func (q *lazyQueue) Len() int { return q.items.Len() }

func (q *lazyQueue) pop() *Node {
	e := heap.Pop(&q.items).(entry)
	if e.priority != e.node.Priority {
		return nil // stale
	}

	return e.node
}

func (q *lazyQueue) touch(n *Node) {
	heap.Push(&q.items, entry{node: n, priority: n.Priority})
}

func (q *lazyQueue) endRound() {}

// nodeHeap is a min-heap of *Node ordered by Node.Less.
type nodeHeap []*Node

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].Less(*h[j]) }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*Node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}

// rebuildQueue holds every vertex at once. Priorities are mutated in place
// during relaxation, so the heap invariant is restored with a full
// heap.Init after each round: O(V) per extraction.
type rebuildQueue struct {
	items nodeHeap
}

func (q *rebuildQueue) Len() int { return q.items.Len() }

func (q *rebuildQueue) pop() *Node { return heap.Pop(&q.items).(*Node) }

func (q *rebuildQueue) touch(*Node) {}

func (q *rebuildQueue) endRound() { heap.Init(&q.items) }
