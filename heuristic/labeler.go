package heuristic

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/hopdom/core"
	"github.com/katalvlaran/hopdom/hop"
	"github.com/katalvlaran/hopdom/labeling"
)

// labeler encapsulates the mutable state of one heuristic run.
// Only f is written; g and idx are shared read-only.
type labeler struct {
	name   string
	g      *core.Graph
	idx    *hop.Index
	opts   Options
	f      *labeling.Function
	strict map[string][]string // memoized hop.Index.Strict
}

func newLabeler(name string, g *core.Graph, idx *hop.Index, opts []Option) (*labeler, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if idx == nil {
		return nil, ErrIndexNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return &labeler{
		name:   name,
		g:      g,
		idx:    idx,
		opts:   o,
		f:      labeling.New(g.Vertices()),
		strict: make(map[string][]string),
	}, nil
}

// strictOf returns v's distance-2 neighbors that are not direct neighbors.
func (l *labeler) strictOf(v string) []string {
	if s, ok := l.strict[v]; ok {
		return s
	}
	s := l.idx.Strict(l.g, v)
	l.strict[v] = s

	return s
}

// countAt counts strict distance-2 neighbors of v currently at weight w.
func (l *labeler) countAt(v string, w labeling.Weight) int {
	n := 0
	for _, u := range l.strictOf(v) {
		if l.f.Get(u) == w {
			n++
		}
	}

	return n
}

// filterStrict returns strict distance-2 neighbors of v satisfying keep.
func (l *labeler) filterStrict(v string, keep func(labeling.Weight) bool) []string {
	var out []string
	for _, u := range l.strictOf(v) {
		if u != v && keep(l.f.Get(u)) {
			out = append(out, u)
		}
	}

	return out
}

// assign writes w to v, then traces and fires the hook.
func (l *labeler) assign(v string, w labeling.Weight, reason Reason) error {
	if err := l.f.Set(v, w); err != nil {
		return fmt.Errorf("heuristic %s: %w", l.name, err)
	}
	l.opts.Logger.Debug("vertex assigned",
		zap.String("heuristic", l.name),
		zap.String("vertex", v),
		zap.Stringer("weight", w),
		zap.Stringer("reason", reason),
	)
	l.opts.OnAssign(v, w, reason)

	return nil
}

// initialize assigns every vertex in order a draw from the candidate set.
func (l *labeler) initialize(order []string, fallback labeling.Weight) error {
	cands := l.opts.Initial
	if len(cands) == 0 {
		cands = []labeling.Weight{fallback}
	}
	for _, v := range order {
		if err := l.checkCtx(); err != nil {
			return err
		}
		if l.f.Get(v) != labeling.Unset {
			continue
		}
		if err := l.assign(v, l.pickWeight(cands), ReasonInit); err != nil {
			return err
		}
	}

	return nil
}

// pickWeight draws uniformly from cands; a singleton is returned without
// consuming randomness.
func (l *labeler) pickWeight(cands []labeling.Weight) labeling.Weight {
	if len(cands) == 1 {
		return cands[0]
	}

	return cands[l.opts.Rand.Intn(len(cands))]
}

// checkCtx returns the context error once the run is cancelled.
func (l *labeler) checkCtx() error {
	select {
	case <-l.opts.Ctx.Done():
		return l.opts.Ctx.Err()
	default:
		return nil
	}
}

// finish logs the final weight and hands the function to the caller.
func (l *labeler) finish() *labeling.Function {
	l.opts.Logger.Debug("heuristic finished",
		zap.String("heuristic", l.name),
		zap.Int("vertices", l.f.Len()),
		zap.Int("total_weight", labeling.TotalWeight(l.f)),
	)

	return l.f
}

// DegreeOrder returns g's vertices stably sorted by descending neighbor-list
// length; ties keep registration order.
func DegreeOrder(g *core.Graph) []string {
	order := g.Vertices()
	deg := make(map[string]int, len(order))
	for _, v := range order {
		deg[v] = g.Degree(v)
	}
	sort.SliceStable(order, func(i, j int) bool { return deg[order[i]] > deg[order[j]] })

	return order
}
