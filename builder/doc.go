// Package builder provides reusable "functional-options"-style graph
// constructors that populate a core.Graph for shortest-path queries:
// deterministic fixtures (Path, Cycle, Complete) and seeded random
// generators (RandomAttach, RandomSparse).
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates a graph and applies constructors in order.
//     – Constructor:       a closure that mutates a graph using builderConfig.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: explicit RNG; no hidden global random state.
//     – WithIDScheme:      vertex naming; WithWeightFn: edge weight policy.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – LetterIDFn:        "a".."z","A".."Z","aa",… (classic demo labels).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn:  fixed value (default DefaultEdgeWeight).
//     – UniformWeightFn:   uniform integer in [min,max].
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with %w.
package builder
