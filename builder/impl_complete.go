// SPDX-License-Identifier: MIT
// Package: hopdom/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   • Edges for every unordered pair i<j, i ascending then j ascending.
//
// In K_n every vertex reaches every other in one hop, so no vertex has a
// neighbor at exactly two hops.

package builder

import "github.com/katalvlaran/hopdom/core"

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, MethodComplete, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
