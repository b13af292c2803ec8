// Package heuristic computes hop Italian domination labelings with two
// independent greedy strategies.
//
// What
//
//   - H1: degree-first, 0/1-valued. Vertices are visited in descending
//     neighbor-list length (stable). All start at 1; a 1-vertex that already
//     sees two 1s at exactly two hops is demoted to 0.
//   - H2: insertion-order, 0/2-valued. All start at 2; every vertex still at
//     2 demotes one random 2-valued vertex at exactly two hops to 0.
//
// "Exactly two hops" means hop.Index members minus direct neighbors; the
// index itself keeps direct neighbors reachable through short cycles.
//
// Both passes are sequential folds over a precomputed order: each step sees
// the effects of the previous ones, so results depend on order.
//
// Neither heuristic is exact and neither repairs violations at the end;
// use labeling.Violations to audit a result.
//
// # Randomness
//
// All sampling goes through Options.Rand. The initialization candidate
// sets are singletons by default ({1} for H1, {2} for H2), so initialization
// is deterministic and draws nothing. WithInitialCandidates widens them,
// e.g. {0,1} for H1 makes the zero-enforcement pass reachable.
//
// Usage
//
//	idx, _ := hop.Build(g)
//	f1, err := heuristic.H1(g, idx, heuristic.WithSeed(7))
//	f2, err := heuristic.H2(g, idx,
//	    heuristic.WithSeed(8),
//	    heuristic.WithLogger(logger),
//	    heuristic.WithOnAssign(func(v string, w labeling.Weight, r heuristic.Reason) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrIndexNil         if the index pointer is nil.
//   - ErrOptionViolation  for an invalid Option.
//   - ctx.Err()           if the context is cancelled mid-pass.
package heuristic
