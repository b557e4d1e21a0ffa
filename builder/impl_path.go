// SPDX-License-Identifier: MIT
// Package: waypath/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2; Cycle: n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges {i-1,i} for i=1..n-1 in increasing order; Cycle closes {n-1,0}.
//   - Weight policy: cfg.weightFn(cfg.rng).
//
// Complexity:
//   - Time: O(n). Space: O(n) for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

const (
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(methodPath, g, cfg, n, false)
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(methodCycle, g, cfg, n, true)
	}
}

// chain emits 0-1-…-(n-1), plus (n-1)-0 when closed.
func chain(method string, g *core.Graph, cfg builderConfig, n int, closed bool) error {
	ids, err := addVertices(method, g, n, cfg.idFn)
	if err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err = addEdge(method, g, cfg, ids[i-1], ids[i]); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(method, g, cfg, ids[n-1], ids[0])
	}

	return nil
}
