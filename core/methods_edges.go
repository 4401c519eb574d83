// File: methods_edges.go
// Role: edge insertion, the sorted edge view and the memoized spanning tree.
// Determinism:
//   - Edges() is ascending by Edge.Compare (weight, Low, High).
//   - MinimumSpanningTree() is a pure function of the stored edge set.
// Concurrency:
//   - AddEdge and cache fills under the write lock.
//   - Readers take the read lock and upgrade only when the slice is dirty.

package core

import "slices"

// AddEdge inserts an undirected edge between v1 and v2.
//
// Steps:
//  1. Validate both vertices (ErrEmptyGraph / ErrOutOfRange).
//  2. Build the Edge (ErrInvalidArgument for a bad weight).
//  3. Under the write lock, reject an existing vertex pair with (false, nil);
//     the stored weight is kept.
//  4. Append, mark the catalog unsorted and drop the cached MST.
//
// Nothing is mutated when an error is returned or the pair already exists.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v1, v2 int, weight float64) (bool, error) {
	if err := g.checkBounds(v1); err != nil {
		return false, err
	}
	if err := g.checkBounds(v2); err != nil {
		return false, err
	}
	e, err := NewEdge(v1, v2, weight)
	if err != nil {
		return false, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.index[e.key()] {
		return false, nil
	}
	g.index[e.key()] = true
	g.edges = append(g.edges, e)
	g.sorted = false
	g.mst = nil

	return true, nil
}

// Edges returns a copy of every stored edge, self-loops included, ascending
// by weight with ties broken by Low then High.
//
// Complexity: O(E log E) on the first call after a mutation, O(E) otherwise.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	if g.sorted {
		out := slices.Clone(g.edges)
		g.mu.RUnlock()
		return out
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.sortLocked()

	return slices.Clone(g.edges)
}

// MinimumSpanningTree returns the edges of the minimum spanning tree (or
// spanning forest, if the graph is disconnected) in the order Kruskal picked
// them. The result is computed on first use and memoized until the next
// successful AddEdge; callers receive a copy.
//
// Errors: none for a Graph built through AddEdge; the error return carries
// disjoint-set failures from Kruskal.
func (g *Graph) MinimumSpanningTree() ([]Edge, error) {
	g.mu.RLock()
	if g.mst != nil {
		out := slices.Clone(g.mst)
		g.mu.RUnlock()
		return out, nil
	}
	g.mu.RUnlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.mst == nil {
		g.sortLocked()
		mst, err := kruskal(g.vertexCount, g.edges)
		if err != nil {
			return nil, err
		}
		g.mst = mst
	}

	return slices.Clone(g.mst), nil
}

// MinimumSpanningTreeWeight returns the summed weight of MinimumSpanningTree.
func (g *Graph) MinimumSpanningTreeWeight() (float64, error) {
	mst, err := g.MinimumSpanningTree()
	if err != nil {
		return 0, err
	}

	var total float64
	for _, e := range mst {
		total += e.weight
	}

	return total, nil
}

// IsConnected reports whether the graph forms a single component.
// An empty graph is never connected; otherwise the spanning tree must hold
// exactly VertexCount()-1 edges.
func (g *Graph) IsConnected() bool {
	if g.IsEmpty() {
		return false
	}
	mst, err := g.MinimumSpanningTree()
	if err != nil {
		return false
	}

	return len(mst) == g.vertexCount-1
}

// sortLocked restores the canonical order. Caller holds the write lock.
func (g *Graph) sortLocked() {
	if g.sorted {
		return
	}
	slices.SortFunc(g.edges, Edge.Compare)
	g.sorted = true
}
