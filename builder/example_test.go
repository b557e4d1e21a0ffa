package builder_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/builder"
)

// ExampleBuildGraph builds a lettered 4-cycle with unit weights.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithLetterIDs()},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices())
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s:%d\n", e.From, e.To, e.Weight)
	}
	// Output:
	// [a b c d]
	// a-b:1
	// a-d:1
	// b-c:1
	// c-d:1
}
