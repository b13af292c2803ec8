// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - BFSResult carries the visit Order, the Depth of every reached vertex and
//     its Parent in the BFS tree.
//   - ExactDistance(g, v, 2) gives the true distance-2 layer of v, which the
//     labeling audit uses to check labelings independently of hop.Index.
//
// Determinism
//
//	Neighbors are expanded in edge input order, so the visit sequence is
//	reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
