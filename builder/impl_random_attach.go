// SPDX-License-Identifier: MIT
// Package: waypath/builder
//
// impl_random_attach.go - implementation of RandomAttach(n) constructor.
//
// Model:
//   - Vertices arrive one at a time in index order 0..n-1.
//   - Before vertex i is inserted, k is drawn uniformly from [0, i] and k
//     distinct vertices are sampled from the i already present.
//   - The new vertex is linked to each sampled vertex with weight
//     cfg.weightFn(cfg.rng). Pairs already connected in g keep their weight.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) worst case. Space: O(n).
//
// Determinism:
//   - For a fixed seed, draw order is k, then the sample, then one weight per new edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

const minRandomAttachVertices = 1

// RandomAttach returns a Constructor that grows a random graph by attaching
// each new vertex to a random subset of the vertices before it. The result
// may be disconnected, since k = 0 is a valid draw.
func RandomAttach(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomAttachVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomAttach, n, minRandomAttachVertices, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomAttach, ErrNeedRandSource)
		}

		ids := make([]string, 0, n)
		for i := 0; i < n; i++ {
			// 1) Choose which existing vertices the newcomer links to.
			k := cfg.rng.Intn(i + 1)
			sample := cfg.rng.Perm(i)[:k]

			// 2) Insert the newcomer.
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomAttach, id, err)
			}

			// 3) Link it, never overwriting an existing pair.
			for _, j := range sample {
				if g.HasEdge(id, ids[j]) {
					continue
				}
				if err := addEdge(methodRandomAttach, g, cfg, id, ids[j]); err != nil {
					return err
				}
			}
			ids = append(ids, id)
		}

		return nil
	}
}
