// Package core provides the undirected, unweighted Graph that the hop
// indexing and labeling packages read from.
//
// The Graph G = (V,E) is deliberately minimal and keeps input faithfully:
//
//   - Vertices() enumerates IDs in registration order, not sorted.
//   - AddEdge(u,v) appends v to u's neighbor list and u to v's, in call order.
//   - Repeated pairs are NOT deduplicated; they lengthen neighbor lists and
//     therefore change Degree().
//   - A vertex that no edge mentions has no adjacency entry. Neighbors()
//     and Degree() treat it as having no neighbors instead of failing.
//
// Construction:
//
//	g := core.NewGraph(core.WithVertices("1", "2", "3", "4"))
//	_ = g.AddEdge("1", "2")
//	_ = g.AddEdge("2", "3")
//
//	// or, from an edge list:
//	g, err := core.FromEdges([]string{"1", "2"}, []core.Edge{{From: "1", To: "2"}})
//
// Queries:
//
//	Vertices() []string            // O(V), registration order
//	AdjacencyVertices() []string   // O(V), vertices with ≥1 edge, first-touch order
//	Neighbors(id) []string         // O(d), edge input order, copy
//	NeighborSet(id)                // O(d), duplicates collapsed
//	IsAdjacent(u,v) bool           // O(d)
//	Degree(id) int                 // O(1), duplicates counted
//	Edges() []Edge                 // O(E), input order
//	Stats() *GraphStats            // O(V)
//
// Concurrency: a sync.RWMutex guards every field. Builders mutate; the
// heuristics only read, so one Graph can be shared by concurrent runs.
package core
