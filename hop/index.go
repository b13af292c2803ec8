// Package hop builds the distance-2 neighborhood index of a core.Graph.
//
// For every vertex v that appears in at least one edge, the index stores
//
//	D2(v) = { w : ∃u ∈ N(v), w ∈ N(u), w ≠ v }
//
// as a true set. Direct neighbors of v are NOT removed: on a triangle
// (a,b,c), c is reached from a via b and therefore a member of D2(a) even
// though it is adjacent to a. Consumers that need "exactly two hops" call
// Strict, which filters out direct neighbors.
package hop

import (
	"errors"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/hopdom/core"
)

// ErrGraphNil is returned when Build receives a nil graph.
var ErrGraphNil = errors.New("hop: graph is nil")

// Index maps each vertex to its distance-2 set. It is immutable after Build
// and safe for concurrent readers.
type Index struct {
	order []string                // adjacency vertices, first-touch order
	sets  map[string]*treeset.Set // vertex → ordered set of distance-2 vertices
}

// Build computes the distance-2 index of g.
//
// Only vertices with an adjacency entry get a set (possibly empty); lookups
// for any other vertex behave as an empty set.
//
// Complexity: O(Σ_v deg(v)² · log d2) time, O(Σ_v |D2(v)|) space.
func Build(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	order := g.AdjacencyVertices()
	idx := &Index{
		order: order,
		sets:  make(map[string]*treeset.Set, len(order)),
	}

	var v, u, w string
	for _, v = range order {
		set := treeset.NewWithStringComparator()
		for _, u = range g.Neighbors(v) {
			for _, w = range g.Neighbors(u) {
				if w != v {
					set.Add(w)
				}
			}
		}
		idx.sets[v] = set
	}

	return idx, nil
}

// Of returns the members of D2(v) in ascending order. Unknown v ⇒ empty.
// The slice is freshly allocated.
func (x *Index) Of(v string) []string {
	set, ok := x.sets[v]
	if !ok {
		return []string{}
	}

	vals := set.Values()
	out := make([]string, len(vals))
	for i, val := range vals {
		out[i] = val.(string)
	}

	return out
}

// Contains reports whether w ∈ D2(v).
func (x *Index) Contains(v, w string) bool {
	set, ok := x.sets[v]
	if !ok {
		return false
	}

	return set.Contains(w)
}

// Len returns |D2(v)|; unknown v ⇒ 0.
func (x *Index) Len(v string) int {
	set, ok := x.sets[v]
	if !ok {
		return 0
	}

	return set.Size()
}

// Size returns the number of indexed vertices.
func (x *Index) Size() int { return len(x.order) }

// Vertices returns the indexed vertices in the order they first appeared
// in an edge.
func (x *Index) Vertices() []string {
	out := make([]string, len(x.order))
	copy(out, x.order)

	return out
}

// Strict returns the members of D2(v) that are not direct neighbors of v in
// g, ascending. This is the "exactly two hops" view the heuristics use.
func (x *Index) Strict(g *core.Graph, v string) []string {
	all := x.Of(v)
	if len(all) == 0 {
		return all
	}

	direct := g.NeighborSet(v)
	out := all[:0]
	for _, w := range all {
		if _, adj := direct[w]; adj {
			continue
		}
		out = append(out, w)
	}

	return out
}

// Equal reports whether x and other index the same vertices with the same
// sets. Set order and vertex order are ignored.
func (x *Index) Equal(other *Index) bool {
	if x == nil || other == nil {
		return x == other
	}
	if len(x.sets) != len(other.sets) {
		return false
	}
	for v, set := range x.sets {
		os, ok := other.sets[v]
		if !ok || os.Size() != set.Size() {
			return false
		}
		if !os.Contains(set.Values()...) {
			return false
		}
	}

	return true
}
