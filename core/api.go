// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary facade over Graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Stats() is an O(V) snapshot taken under a single read lock.

package core

// GraphStats is a snapshot of catalog sizes and degree extremes.
type GraphStats struct {
	VertexCount int // registered vertices
	EdgeCount   int // inserted pairs, duplicates included
	Isolated    int // registered vertices with no adjacency entry
	MaxDegree   int // longest neighbor list
	MinDegree   int // shortest neighbor list among registered vertices
}

// Stats produces a deterministic snapshot of g's sizes.
//
// Isolated counts vertices that no edge mentions; their degree is 0 and
// they contribute to MinDegree.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.order),
		EdgeCount:   len(g.edgeLog),
	}
	for i, id := range g.order {
		d := len(g.adjacency[id])
		if d == 0 {
			stats.Isolated++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
		if i == 0 || d < stats.MinDegree {
			stats.MinDegree = d
		}
	}

	return &stats
}
