// File: methods_edges.go
// Role: Edge insertion and neighborhood queries.
//
// Determinism:
//   - Neighbor lists keep edge input order; nothing is sorted or deduplicated.
//   - AdjacencyVertices() lists vertices in the order they first gained a neighbor.
//
// Concurrency:
//   - AddEdge takes the write lock; every query takes the read lock and
//     returns copies, so callers never alias internal slices.
package core

// AddEdge inserts the undirected pair (from, to): to is appended to from's
// neighbor list and from is appended to to's neighbor list. Both endpoints
// are registered if missing.
//
// Repeated pairs are stored again (no dedup). A self-loop appends the vertex
// to its own list twice; hop semantics for loops are undefined.
//
// Errors:
//   - ErrEmptyVertexID: if either endpoint is empty.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.appendNeighborLocked(from, to)
	g.appendNeighborLocked(to, from)
	g.edgeLog = append(g.edgeLog, Edge{From: from, To: to})

	return nil
}

func (g *Graph) appendNeighborLocked(v, w string) {
	if _, ok := g.adjacency[v]; !ok {
		g.adjOrder = append(g.adjOrder, v)
	}
	g.adjacency[v] = append(g.adjacency[v], w)
}

// Neighbors returns a copy of id's neighbor list in edge input order.
// An unknown vertex, or one that no edge mentions, yields an empty slice
// rather than an error: lookups on sparse inputs must not fail.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs := g.adjacency[id]
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out
}

// IsAdjacent reports whether v occurs in u's neighbor list.
// Complexity: O(deg(u)).
func (g *Graph) IsAdjacent(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, w := range g.adjacency[u] {
		if w == v {
			return true
		}
	}

	return false
}

// NeighborSet returns id's neighbors as a set; duplicates collapse.
// Complexity: O(deg(id)).
func (g *Graph) NeighborSet(id string) map[string]struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set := make(map[string]struct{}, len(g.adjacency[id]))
	for _, w := range g.adjacency[id] {
		set[w] = struct{}{}
	}

	return set
}

// AdjacencyVertices returns the vertices that have an adjacency entry,
// i.e. appear in at least one edge, in the order they first did.
// Complexity: O(V).
func (g *Graph) AdjacencyVertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.adjOrder))
	copy(out, g.adjOrder)

	return out
}

// EdgeCount returns the number of AddEdge calls that succeeded,
// counting repeated pairs each time.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeLog)
}

// Edges returns every inserted pair in input order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edgeLog))
	copy(out, g.edgeLog)

	return out
}
