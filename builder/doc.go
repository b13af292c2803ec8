// Package builder assembles deterministic core.Graph fixtures from small
// topology constructors.
//
// The package offers:
//
//   - BuildGraph / Build: run Constructors in order against one graph.
//   - Constructors: Cycle, Path, Star, Complete, RandomSparse.
//   - BuilderOption: WithIDScheme, WithSeed, WithRand, WithSymbNumb,
//     WithDefaultIDs.
//   - IDFn schemes: DefaultIDFn ("1","2",…), ZeroBasedIDFn, SymbolNumberIDFn.
//
// The default labels are one-based so a built graph round-trips through the
// edge-list format read by package input, which only accepts "1".."V".
//
// Guarantees:
//
//   - Same constructors, options and seed ⇒ identical vertex and edge order.
//   - Invalid parameters are rejected before the graph is touched, with
//     ErrTooFewVertices, ErrInvalidProbability or ErrNeedRNG.
//   - Option constructors panic on nil arguments; constructors never panic.
package builder
