// Package builder defines shared constants used by graph builders.
package builder

// Constructor names, used to prefix errors.
const (
	MethodCycle        = "Cycle"
	MethodPath         = "Path"
	MethodStar         = "Star"
	MethodComplete     = "Complete"
	MethodRandomSparse = "RandomSparse"
)

// Minimum vertex counts.
const (
	// MinCycleNodes: fewer than 3 cannot close a ring without repeated pairs.
	MinCycleNodes = 3
	// MinPathNodes: a path of one vertex has no edges.
	MinPathNodes = 2
	// MinStarNodes: one center plus at least one leaf.
	MinStarNodes = 2
	// MinCompleteNodes: K_1 is a single isolated vertex.
	MinCompleteNodes = 1
	// MinRandomSparseNodes: at least one vertex to sample over.
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
