package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/waypath/builder"
	"github.com/katalvlaran/waypath/dijkstra"
)

func benchmarkRun(b *testing.B, s dijkstra.Strategy, n int, p float64) {
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(1),
		builder.WithWeightFn(builder.UniformWeightFn(1, 100)),
	}, builder.RandomSparse(n, p))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Run(g, "0", dijkstra.WithStrategy(s)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_LazyHeap_Sparse: O((V+E) log V) on a sparse graph.
func BenchmarkRun_LazyHeap_Sparse(b *testing.B) {
	benchmarkRun(b, dijkstra.StrategyLazyHeap, 1000, 0.005)
}

// BenchmarkRun_Rebuild_Sparse: O(V²) on the same graph.
func BenchmarkRun_Rebuild_Sparse(b *testing.B) {
	benchmarkRun(b, dijkstra.StrategyRebuild, 1000, 0.005)
}

func BenchmarkRun_LazyHeap_Dense(b *testing.B) {
	benchmarkRun(b, dijkstra.StrategyLazyHeap, 200, 0.5)
}

func BenchmarkRun_Rebuild_Dense(b *testing.B) {
	benchmarkRun(b, dijkstra.StrategyRebuild, 200, 0.5)
}
