// Package labeling holds vertex weightings in {0,1,2} and the helpers that
// measure them: total weight and the hop Italian domination audit.
package labeling

import (
	"errors"
	"fmt"
	"strconv"
)

// Weight is a vertex label. Unset marks a vertex not yet assigned.
type Weight int8

// Vertex weights.
const (
	Unset Weight = -1
	Zero  Weight = 0
	One   Weight = 1
	Two   Weight = 2
)

// ErrUnknownVertex is returned by Set for a vertex outside the function's domain.
var ErrUnknownVertex = errors.New("labeling: vertex not in domain")

// ErrBadWeight is returned by Set for a value outside {Unset,0,1,2}.
var ErrBadWeight = errors.New("labeling: weight out of range")

// Valid reports whether w is one of Unset, Zero, One, Two.
func (w Weight) Valid() bool { return w >= Unset && w <= Two }

func (w Weight) String() string {
	if w == Unset {
		return "unset"
	}

	return strconv.Itoa(int(w))
}

// Function maps every vertex of a fixed domain to a Weight.
//
// The domain and its order are fixed by New; Set never adds vertices.
// A Function is owned by one goroutine at a time.
type Function struct {
	order   []string
	weights map[string]Weight
}

// New creates a Function over vertices with every vertex Unset.
// Repeated IDs are kept once, at their first position.
func New(vertices []string) *Function {
	f := &Function{
		order:   make([]string, 0, len(vertices)),
		weights: make(map[string]Weight, len(vertices)),
	}
	for _, v := range vertices {
		if _, dup := f.weights[v]; dup {
			continue
		}
		f.order = append(f.order, v)
		f.weights[v] = Unset
	}

	return f
}

// Get returns v's weight; vertices outside the domain read as Unset.
func (f *Function) Get(v string) Weight {
	w, ok := f.weights[v]
	if !ok {
		return Unset
	}

	return w
}

// Set assigns w to v.
func (f *Function) Set(v string, w Weight) error {
	if !w.Valid() {
		return fmt.Errorf("%w: %d", ErrBadWeight, w)
	}
	if _, ok := f.weights[v]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, v)
	}
	f.weights[v] = w

	return nil
}

// Vertices returns the domain in creation order.
func (f *Function) Vertices() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)

	return out
}

// Len returns the domain size.
func (f *Function) Len() int { return len(f.order) }

// Complete reports whether no vertex is Unset.
func (f *Function) Complete() bool {
	for _, w := range f.weights {
		if w == Unset {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (f *Function) Clone() *Function {
	c := &Function{
		order:   make([]string, len(f.order)),
		weights: make(map[string]Weight, len(f.weights)),
	}
	copy(c.order, f.order)
	for v, w := range f.weights {
		c.weights[v] = w
	}

	return c
}

// Map returns v → int(weight) for rendering.
func (f *Function) Map() map[string]int {
	out := make(map[string]int, len(f.weights))
	for v, w := range f.weights {
		out[v] = int(w)
	}

	return out
}

// Equal reports whether both functions have the same domain order and weights.
func (f *Function) Equal(other *Function) bool {
	if f == nil || other == nil {
		return f == other
	}
	if len(f.order) != len(other.order) {
		return false
	}
	for i, v := range f.order {
		if other.order[i] != v || other.weights[v] != f.weights[v] {
			return false
		}
	}

	return true
}

// Count returns how many vertices carry weight w.
func (f *Function) Count(w Weight) int {
	n := 0
	for _, x := range f.weights {
		if x == w {
			n++
		}
	}

	return n
}

// TotalWeight sums all weights. It is recomputed on every call; Unset
// entries contribute -1 each, so only complete functions give meaningful
// totals.
func TotalWeight(f *Function) int {
	sum := 0
	for _, w := range f.weights {
		sum += int(w)
	}

	return sum
}
