// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/waypath/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	errs := make(chan error, num)
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddEdge("X", fmt.Sprintf("V%d", id), int64(id+1))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num+1, g.VertexCount())
}

// TestConcurrentReadsAndClone validates concurrent readers and clones do not race with a writer.
func TestConcurrentReadsAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 1; i <= 50; i++ {
		require.NoError(t, g.AddEdge("A", fmt.Sprintf("N%d", i), int64(i)))
	}

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers + 1)
	go func() {
		defer wg.Done()
		for i := 0; i < readers; i++ {
			_ = g.AddEdge("B", fmt.Sprintf("M%d", i), 1)
		}
	}()
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_, _ = g.Neighbors("A")
			_ = g.Edges()
			_ = g.Clone()
		}()
	}
	wg.Wait()
}
