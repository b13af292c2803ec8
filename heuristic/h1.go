package heuristic

import (
	"github.com/katalvlaran/hopdom/core"
	"github.com/katalvlaran/hopdom/hop"
	"github.com/katalvlaran/hopdom/labeling"
)

// minSupport is the number of weight-1 distance-2 neighbors a 0-vertex
// needs under H1.
const minSupport = 2

// H1 labels g degree-first, preferring weight 1.
//
// Vertices are processed in DegreeOrder(g). Three sequential passes run over
// that order, each reading the labeling as already mutated:
//
//  1. Initialization: every vertex draws from the initial candidate set
//     (default {1}, i.e. every vertex becomes 1).
//  2. Zero enforcement: a 0-vertex seeing fewer than two 1s at exactly two
//     hops gets two of its non-1 strict distance-2 neighbors raised to 1,
//     chosen at random; if fewer than two exist, all of them are raised.
//     With the default initialization no vertex is 0 here.
//  3. Surplus reduction: a 1-vertex seeing at least two 1s at exactly two
//     hops is demoted to 0. Earlier demotions shrink later counts.
//
// No repair pass follows, so a 0-vertex whose supporters were demoted later
// in step 3 stays in violation.
//
// Returns ErrGraphNil, ErrIndexNil, ErrOptionViolation, or the context error
// on cancellation.
func H1(g *core.Graph, idx *hop.Index, opts ...Option) (*labeling.Function, error) {
	l, err := newLabeler("H1", g, idx, opts)
	if err != nil {
		return nil, err
	}

	order := DegreeOrder(g)
	if err = l.initialize(order, labeling.One); err != nil {
		return nil, err
	}
	if err = l.enforceZeros(order); err != nil {
		return nil, err
	}
	if err = l.reduceSurplus(order); err != nil {
		return nil, err
	}

	return l.finish(), nil
}

// enforceZeros is H1 step 2.
func (l *labeler) enforceZeros(order []string) error {
	for _, v := range order {
		if err := l.checkCtx(); err != nil {
			return err
		}
		if l.f.Get(v) != labeling.Zero {
			continue
		}
		if l.countAt(v, labeling.One) >= minSupport {
			continue
		}

		cands := l.filterStrict(v, func(w labeling.Weight) bool { return w != labeling.One })
		if len(cands) >= minSupport {
			i := l.opts.Rand.Intn(len(cands))
			j := l.opts.Rand.Intn(len(cands) - 1)
			if j >= i {
				j++
			}
			if err := l.assign(cands[i], labeling.One, ReasonSupport); err != nil {
				return err
			}
			if err := l.assign(cands[j], labeling.One, ReasonSupport); err != nil {
				return err
			}
			continue
		}
		for _, c := range cands {
			if err := l.assign(c, labeling.One, ReasonFallback); err != nil {
				return err
			}
		}
	}

	return nil
}

// reduceSurplus is H1 step 3.
func (l *labeler) reduceSurplus(order []string) error {
	for _, v := range order {
		if err := l.checkCtx(); err != nil {
			return err
		}
		if l.f.Get(v) != labeling.One {
			continue
		}
		if l.countAt(v, labeling.One) >= minSupport {
			if err := l.assign(v, labeling.Zero, ReasonSurplus); err != nil {
				return err
			}
		}
	}

	return nil
}
