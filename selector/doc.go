// Package selector runs both hop Italian heuristics side by side and keeps
// the lighter labeling.
//
// Run fans H1 and H2 out on an errgroup. The graph and its distance-2 index
// are shared read-only; each heuristic owns its output labeling and its
// random source (H1 seeded with the base seed, H2 with seed+1), so a fixed
// seed reproduces the run exactly regardless of scheduling.
//
// Selection is by total weight with ties going to H1:
//
//	res, err := selector.Run(ctx, g, idx, selector.WithSeed(42))
//	if err != nil { ... }
//	fmt.Println(res.Best, res.BestWeight)
//
// Violations found by labeling.Violations are attached to the Result for
// reporting but never influence the choice.
package selector
