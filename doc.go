// Package hopdom computes hop Italian domination labelings of undirected
// graphs with two greedy heuristics and keeps the lighter result.
//
// A hop Italian domination function assigns every vertex a weight in
// {0,1,2} such that each 0-vertex sees a total weight of at least 2 among
// the vertices at exactly distance two from it. The goal is a small total
// weight; the heuristics here are best-effort, not exact.
//
// Layout:
//
//	core/       Graph: thread-safe undirected adjacency lists in edge input order
//	hop/        Index: distance-2 sets (sorted treesets) and the strict filter
//	labeling/   Function, Weight, TotalWeight and the violation audit
//	heuristic/  H1 (degree-first, 0/1) and H2 (insertion order, 0/2)
//	selector/   fork-join of H1 and H2 on an errgroup, ties go to H1
//	builder/    deterministic fixtures: Cycle, Path, Star, Complete, RandomSparse
//	input/      edge-list reader/writer over the label space "1".."V"
//	report/     text, JSON and YAML rendering
//	config/     viper-backed settings (flags, HOPDOM_* env, YAML file)
//	logging/    zap loggers with optional lumberjack rotation
//	cmd/hopdom  the CLI: `hopdom solve`, `hopdom generate`
//
// Quick start:
//
//	g, _ := builder.Build(builder.Cycle(6))
//	idx, _ := hop.Build(g)
//	res, err := selector.Run(ctx, g, idx, selector.WithSeed(7))
//	if err != nil { ... }
//	_ = report.Text(os.Stdout, res)
package hopdom
