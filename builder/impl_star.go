// SPDX-License-Identifier: MIT
// Package: hopdom/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is idFn(0) so the default labels stay within "1".."n";
//     leaves are idFn(1..n-1).
//   • Spokes in stable order hub-leaf[i].

package builder

import "github.com/katalvlaran/hopdom/core"

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, MethodStar, n, cfg.idFn)
		if err != nil {
			return err
		}
		for _, leaf := range ids[1:] {
			if err = addEdge(g, MethodStar, ids[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
