// Package core defines the Edge and Graph types of an undirected, weighted,
// integer-vertex graph and computes its Minimum Spanning Tree with Kruskal's
// algorithm.
//
// What & Why
//
//   - Vertices are the integers 0..n-1, where n is fixed by NewGraph.
//   - An Edge is an immutable value that orders its endpoints (Low <= High).
//     Its identity inside a Graph is the vertex pair alone: a second AddEdge
//     for the same pair is rejected whatever its weight, and the first weight
//     is kept.
//   - Graph.Edges returns every stored edge, self-loops included, ascending by
//     weight with ties broken by Low then High. This order is what makes the
//     MST reproducible.
//
// Kruskal
//
//	Kruskal streams the sorted edges into a fresh disjointset.Sets, skips
//	self-loops, keeps every edge joining two different components, and stops
//	once n-1 edges are collected. A disconnected graph yields a spanning
//	forest with fewer than n-1 edges; that is a normal result, not an error.
//
//	Graph.MinimumSpanningTree memoizes the Kruskal result until the next
//	successful AddEdge.
//
// Errors
//
//   - ErrInvalidArgument: negative vertex count, negative vertex ID, negative or NaN weight.
//   - ErrOutOfRange: vertex outside [0, n).
//   - ErrEmptyGraph: vertex passed to a graph with no vertices (wraps ErrOutOfRange).
//
// Complexity
//
//   - AddEdge:             O(1) amortized.
//   - Edges:               O(E log E) after a mutation, O(E) copy otherwise.
//   - MinimumSpanningTree: O(E log E + E log V) on a cache miss, O(V) copy on a hit.
//
// Concurrency
//
//	Graph guards its catalog, sort state and MST cache with a sync.RWMutex, so
//	a Graph may be shared between goroutines.
package core
