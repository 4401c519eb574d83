// Package kruskal is a small library for Minimum Spanning Trees over
// undirected, weighted graphs whose vertices are the integers 0..n-1.
//
// Under the hood, everything is organized under two packages:
//
//	disjointset/: union-find forest with union by size and optional path compression
//	core/: Edge and Graph types, Kruskal's algorithm, memoized MST
//
// and one command:
//
//	cmd/kruskal-bench: times Kruskal on random graphs of doubling size
//
// Quick example:
//
//	g, _ := core.NewGraph(3)
//	g.AddEdge(0, 1, 0.5)
//	g.AddEdge(0, 2, 0.5)
//	g.AddEdge(1, 2, 0.5)
//	mst, _ := g.MinimumSpanningTree() // [{0,1} {0,2}]: lower vertex pairs win ties
//
//	    0
//	   / \
//	  1───2
//
//	go get github.com/katalvlaran/kruskal
package kruskal
