package builder

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// Method names used to prefix constructor errors.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
	methodRandomAttach = "RandomAttach"
)

// addVertices inserts idFn(0..n-1) into g in index order and returns the IDs.
func addVertices(method string, g *core.Graph, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge draws a weight from cfg and stores {u,v}.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
