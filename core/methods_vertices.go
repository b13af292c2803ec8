// File: methods_vertices.go
// Role: Vertex registration & queries.
//
// Determinism:
//   - Vertices() returns IDs in registration order (NOT sorted). Insertion
//     order is part of the contract: heuristic H2 walks it directly.
//
// Concurrency:
//   - All fields guarded by mu; queries take the read lock.
package core

// AddVertex registers id if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id; caller holds mu (or owns g exclusively).
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.known[id]; ok {
		return
	}
	g.known[id] = struct{}{}
	g.order = append(g.order, id)
}

// HasVertex reports whether id is registered (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.known[id]

	return ok
}

// Vertices returns all vertex IDs in registration order.
// The returned slice is a copy and may be retained by the caller.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns the length of id's neighbor list. Repeated edges count
// once per occurrence; an unknown vertex has degree 0.
// Complexity: O(1).
func (g *Graph) Degree(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}
