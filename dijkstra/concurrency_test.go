package dijkstra_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/katalvlaran/waypath/builder"
	"github.com/katalvlaran/waypath/dijkstra"
	"github.com/stretchr/testify/require"
)

// TestShortestPath_ConcurrentQueries runs many queries against one shared
// graph; per-query state must never bleed between them.
func TestShortestPath_ConcurrentQueries(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(30))
	require.NoError(t, err)

	const workers = 32
	type outcome struct {
		src  string
		dist int64
		err  error
	}
	results := make(chan outcome, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			src := builder.DefaultIDFn(i % 30)
			res, err := dijkstra.ShortestPath(g, src, "29")
			if err != nil {
				results <- outcome{src: src, err: err}
				return
			}
			results <- outcome{src: src, dist: res.Distance}
		}(i)
	}
	wg.Wait()
	close(results)

	for r := range results {
		require.NoError(t, r.err)
		idx, err := strconv.Atoi(r.src)
		require.NoError(t, err)
		require.Equal(t, int64(29-idx), r.dist, "from %s", r.src)
	}
}
