package dijkstra_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/waypath/builder"
	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForce returns the minimal weight over all simple paths src→dst, or
// dijkstra.Infinity when none exists.
func bruteForce(t *testing.T, g *core.Graph, src, dst string) int64 {
	t.Helper()
	best := dijkstra.Infinity
	visited := map[string]bool{src: true}

	var walk func(at string, acc int64)
	walk = func(at string, acc int64) {
		if at == dst {
			if acc < best {
				best = acc
			}
			return
		}
		nbs, err := g.Neighbors(at)
		require.NoError(t, err)
		for v, w := range nbs {
			if visited[v] {
				continue
			}
			visited[v] = true
			walk(v, acc+w)
			visited[v] = false
		}
	}
	walk(src, 0)

	return best
}

// pathWeight sums the weights along path, failing if a hop is not an edge.
func pathWeight(t *testing.T, g *core.Graph, path []string) int64 {
	t.Helper()
	var total int64
	for i := 1; i < len(path); i++ {
		w, err := g.Weight(path[i-1], path[i])
		require.NoError(t, err, "hop %s-%s", path[i-1], path[i])
		total += w
	}

	return total
}

func TestShortestPath_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		cons := builder.RandomAttach(7)
		if seed%2 == 0 {
			cons = builder.RandomSparse(7, 0.4)
		}
		g, err := builder.BuildGraph([]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithLetterIDs(),
			builder.WithWeightFn(builder.UniformWeightFn(1, 10)),
		}, cons)
		require.NoError(t, err)

		for _, src := range g.Vertices() {
			for _, dst := range g.Vertices() {
				want := bruteForce(t, g, src, dst)
				for _, s := range strategies {
					name := fmt.Sprintf("seed=%d/%s->%s/%s", seed, src, dst, s)
					res, err := dijkstra.ShortestPath(g, src, dst, dijkstra.WithStrategy(s))
					if want == dijkstra.Infinity {
						assert.True(t, errors.Is(err, dijkstra.ErrNoPathFound), name)
						continue
					}
					require.NoError(t, err, name)
					assert.Equal(t, want, res.Distance, name)
					assert.Equal(t, src, res.Path[0], name)
					assert.Equal(t, dst, res.Path[len(res.Path)-1], name)
					assert.Equal(t, res.Distance, pathWeight(t, g, res.Path), name)
				}
			}
		}
	}
}

func TestStrategies_ProduceIdenticalTrees(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(99),
		builder.WithWeightFn(builder.UniformWeightFn(1, 3)), // many ties
	}, builder.RandomSparse(40, 0.15))
	require.NoError(t, err)

	for _, src := range []string{"0", "13", "39"} {
		lazy, err := dijkstra.Run(g, src, dijkstra.WithStrategy(dijkstra.StrategyLazyHeap))
		require.NoError(t, err)
		rebuild, err := dijkstra.Run(g, src, dijkstra.WithStrategy(dijkstra.StrategyRebuild))
		require.NoError(t, err)

		for _, id := range g.Vertices() {
			ln, _ := lazy.Node(id)
			rn, _ := rebuild.Node(id)
			assert.Equal(t, ln, rn, "src=%s vertex=%s", src, id)
		}
	}
}
