package dijkstra

import (
	"fmt"
	"strconv"
)

// Node is the per-query shortest-path state of one vertex.
//
// Nodes are owned by a Tree, never by the graph. Identity is the vertex ID:
// two Nodes describe the same vertex iff their IDs match, whatever their
// Priority or Predecessor.
type Node struct {
	// ID is the vertex identifier.
	ID string

	// Priority is the best known distance from the source; Infinity until relaxed.
	// It only ever decreases during a query.
	Priority int64

	// Predecessor is the previous vertex on the best known path; "" for none.
	Predecessor string
}

// NewNode returns a Node for id with Priority = Infinity and no predecessor.
func NewNode(id string) Node {
	return Node{ID: id, Priority: Infinity}
}

// Equal reports whether n and o refer to the same vertex.
func (n Node) Equal(o Node) bool { return n.ID == o.ID }

// Less orders nodes by Priority ascending, breaking ties by the lowest ID.
func (n Node) Less(o Node) bool {
	if n.Priority != o.Priority {
		return n.Priority < o.Priority
	}
	return n.ID < o.ID
}

// Reachable reports whether a finite distance is known for n.
func (n Node) Reachable() bool { return n.Priority != Infinity }

// HasPredecessor reports whether n has a predecessor link.
func (n Node) HasPredecessor() bool { return n.Predecessor != "" }

// String renders the node as Node(id, priority, predecessor).
func (n Node) String() string {
	prio := "inf"
	if n.Reachable() {
		prio = strconv.FormatInt(n.Priority, 10)
	}
	return fmt.Sprintf("Node(%q, %s, %q)", n.ID, prio, n.Predecessor)
}

// reset puts n back into its initial state.
func (n *Node) reset() {
	n.Priority = Infinity
	n.Predecessor = ""
}
