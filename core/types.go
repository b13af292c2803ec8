// Package core defines the Graph and Edge types used by every hopdom
// algorithm: an undirected, unweighted graph whose adjacency lists keep
// edge input order and keep duplicates.
//
// This file declares Graph, Edge, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID - vertex ID is the empty string.
//	ErrGraphNil      - a nil *Graph was passed where one is required.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrGraphNil indicates a nil *Graph was supplied.
	ErrGraphNil = errors.New("core: graph is nil")
)

// Edge is one undirected input pair. The order of From/To is the order the
// pair was supplied in; it only matters for the order of neighbor lists.
type Edge struct {
	From string
	To   string
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithVertices registers the given vertex IDs, in order, before any edge is
// added. Empty IDs are skipped. Use it to fix the vertex label space
// ("1".."V") independently of which vertices appear in edges.
func WithVertices(ids ...string) GraphOption {
	return func(g *Graph) {
		for _, id := range ids {
			if id == "" {
				continue
			}
			g.addVertexLocked(id)
		}
	}
}

// Graph is an undirected, unweighted graph.
//
// order holds vertex IDs in first-registration order; adjacency maps a
// vertex to its neighbor list in edge input order. A vertex that was only
// registered (never part of an edge) has no adjacency entry at all, which is
// observable through AdjacencyVertices. mu guards all fields; algorithms in
// this module only read a Graph once it is built.
type Graph struct {
	mu sync.RWMutex

	order     []string            // vertex IDs, registration order
	known     map[string]struct{} // membership for order
	adjacency map[string][]string // vertex → neighbors, edge input order, duplicates kept
	adjOrder  []string            // vertices in the order they entered adjacency
	edgeLog   []Edge              // inserted pairs, input order
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts) + registered vertices).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		known:     make(map[string]struct{}),
		adjacency: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromEdges builds a Graph over vertices (registered first, in order) and
// inserts edges in slice order. Edge endpoints that are not in vertices are
// registered on first use; validation of the label space belongs to the
// caller (see package input).
//
// Returns ErrEmptyVertexID (wrapped with the edge position) if any endpoint
// is empty.
// Complexity: O(V + E).
func FromEdges(vertices []string, edges []Edge) (*Graph, error) {
	g := NewGraph(WithVertices(vertices...))
	for i, e := range edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, &EdgeError{Index: i, Edge: e, Err: err}
		}
	}

	return g, nil
}

// EdgeError reports which input edge could not be inserted.
type EdgeError struct {
	Index int
	Edge  Edge
	Err   error
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("core: edge #%d (%s,%s): %v", e.Index, e.Edge.From, e.Edge.To, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *EdgeError) Unwrap() error { return e.Err }
