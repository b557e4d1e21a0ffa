package dijkstra_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/stretchr/testify/assert"
)

func TestNewNode_Defaults(t *testing.T) {
	n := dijkstra.NewNode("a")
	assert.Equal(t, "a", n.ID)
	assert.Equal(t, dijkstra.Infinity, n.Priority)
	assert.False(t, n.HasPredecessor())
	assert.False(t, n.Reachable())
	assert.Equal(t, `Node("a", inf, "")`, n.String())
}

func TestNode_EqualIgnoresState(t *testing.T) {
	a1 := dijkstra.Node{ID: "a", Priority: 3, Predecessor: "b"}
	a2 := dijkstra.NewNode("a")
	assert.True(t, a1.Equal(a2))
	assert.False(t, a1.Equal(dijkstra.NewNode("b")))
}

func TestNode_LessOrdersByPriorityThenID(t *testing.T) {
	nodes := []dijkstra.Node{
		{ID: "d", Priority: dijkstra.Infinity},
		{ID: "c", Priority: 2},
		{ID: "b", Priority: 2},
		{ID: "a", Priority: 5},
		{ID: "e", Priority: 0},
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Less(nodes[j]) })

	var ids []string
	for _, n := range nodes {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"e", "b", "c", "a", "d"}, ids)
}

func TestNode_String(t *testing.T) {
	n := dijkstra.Node{ID: "c", Priority: 3, Predecessor: "b"}
	assert.Equal(t, `Node("c", 3, "b")`, n.String())
}
