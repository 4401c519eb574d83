// File: kruskal.go
// Role: Kruskal's greedy edge selection over a disjoint-set forest.

package core

import "github.com/katalvlaran/kruskal/disjointset"

// EdgeSource is anything that can feed Kruskal: a vertex count and the edges
// in ascending Edge.Compare order. *Graph satisfies it.
type EdgeSource interface {
	VertexCount() int
	Edges() []Edge
}

// Kruskal computes the minimum spanning tree of src.
//
// Steps:
//  1. n := src.VertexCount(); create a fresh disjointset of n elements.
//  2. Walk src.Edges() in order, skipping self-loops.
//  3. Union the endpoints of each edge; keep the edge when the union merged
//     two components.
//  4. Stop once n-1 edges are kept.
//
// A disconnected source yields fewer than n-1 edges and no error.
// opts are passed to disjointset.New (e.g. disjointset.WithPathCompression()).
//
// Errors: disjointset.ErrOutOfRange if an edge endpoint is outside [0, n).
// Complexity: O(E log V) here plus whatever src spends sorting.
func Kruskal(src EdgeSource, opts ...disjointset.Option) ([]Edge, error) {
	return kruskal(src.VertexCount(), src.Edges(), opts...)
}

// kruskal runs the selection over edges already in canonical order.
func kruskal(n int, sorted []Edge, opts ...disjointset.Option) ([]Edge, error) {
	sets, err := disjointset.New(n, opts...)
	if err != nil {
		return nil, err
	}

	mst := make([]Edge, 0, max(n-1, 0))
	for _, e := range sorted {
		if len(mst) >= n-1 {
			break
		}
		if e.IsLoop() {
			continue
		}
		merged, err := sets.Union(e.low, e.high)
		if err != nil {
			return nil, err
		}
		if merged {
			mst = append(mst, e)
		}
	}

	return mst, nil
}
