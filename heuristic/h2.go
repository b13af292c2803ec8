package heuristic

import (
	"github.com/katalvlaran/hopdom/core"
	"github.com/katalvlaran/hopdom/hop"
	"github.com/katalvlaran/hopdom/labeling"
)

// H2 labels g in vertex registration order, preferring weight 2.
//
//  1. Initialization: every Unset vertex draws from the initial candidate
//     set (default {2}).
//  2. Pairwise reduction: for each vertex still at 2, one of its strict
//     distance-2 neighbors also at 2 is chosen at random and set to 0. The
//     originating vertex keeps its 2. A vertex demoted earlier is skipped
//     when its own turn comes.
//
// A demoted vertex's justifying 2-neighbor may itself be demoted later;
// such violations are left as they are.
//
// Returns ErrGraphNil, ErrIndexNil, ErrOptionViolation, or the context error
// on cancellation.
func H2(g *core.Graph, idx *hop.Index, opts ...Option) (*labeling.Function, error) {
	l, err := newLabeler("H2", g, idx, opts)
	if err != nil {
		return nil, err
	}

	order := g.Vertices()
	if err = l.initialize(order, labeling.Two); err != nil {
		return nil, err
	}
	if err = l.reducePairs(order); err != nil {
		return nil, err
	}

	return l.finish(), nil
}

// reducePairs is H2 step 2.
func (l *labeler) reducePairs(order []string) error {
	for _, v := range order {
		if err := l.checkCtx(); err != nil {
			return err
		}
		if l.f.Get(v) != labeling.Two {
			continue
		}
		cands := l.filterStrict(v, func(w labeling.Weight) bool { return w == labeling.Two })
		if len(cands) == 0 {
			continue
		}
		chosen := cands[l.opts.Rand.Intn(len(cands))]
		if err := l.assign(chosen, labeling.Zero, ReasonPairwise); err != nil {
			return err
		}
	}

	return nil
}
