package labeling

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hopdom/bfs"
	"github.com/katalvlaran/hopdom/core"
)

// Violation describes a 0-vertex whose exact distance-2 vertices sum to
// less than 2.
type Violation struct {
	Vertex  string
	Support int // Σ f(w) over w at distance exactly 2
}

// Violations audits f against the hop Italian domination condition and
// returns the failing vertices in f's domain order.
//
// Distances come from a fresh BFS per 0-vertex, not from hop.Index, so the
// audit also checks the index the heuristics relied on. A vertex g does not
// know has nothing at distance 2. Unset vertices are ignored. A nil g is an
// error, not an empty audit.
func Violations(f *Function, g *core.Graph) ([]Violation, error) {
	if g == nil {
		return nil, fmt.Errorf("labeling: audit: %w", bfs.ErrGraphNil)
	}
	var out []Violation
	for _, v := range f.order {
		if f.weights[v] != Zero {
			continue
		}
		layer, err := bfs.ExactDistance(g, v, 2)
		if err != nil && !errors.Is(err, bfs.ErrStartVertexNotFound) {
			return nil, fmt.Errorf("labeling: audit %s: %w", v, err)
		}
		support := 0
		for _, w := range layer {
			if x := f.Get(w); x > 0 {
				support += int(x)
			}
		}
		if support < 2 {
			out = append(out, Violation{Vertex: v, Support: support})
		}
	}

	return out, nil
}

// IsHopItalian reports whether f is complete and has no violations.
func IsHopItalian(f *Function, g *core.Graph) (bool, error) {
	vs, err := Violations(f, g)
	if err != nil {
		return false, err
	}

	return f.Complete() && len(vs) == 0, nil
}
