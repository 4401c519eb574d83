// File: graph.go
// Role: Graph type, constructors and read-only getters.
// Concurrency:
//   - mu guards edges, index, sorted and mst.
//   - vertexCount is immutable after construction and read without locking.

package core

import (
	"fmt"
	"math/rand"
	"sync"
)

// Graph is an undirected weighted graph over the vertices 0..VertexCount()-1.
//
// Edges are unique by vertex pair. The edge slice is sorted lazily: AddEdge
// appends and marks it dirty, the next reader sorts it once.
type Graph struct {
	mu sync.RWMutex

	vertexCount int

	edges  []Edge        // catalog; ascending by Edge.Compare when sorted is true
	index  map[pair]bool // vertex pairs present in edges
	sorted bool

	mst []Edge // memoized spanning tree, nil when invalid
}

// NewGraph creates a graph with vertexCount isolated vertices.
//
// Errors: ErrInvalidArgument if vertexCount < 0.
// Complexity: O(1).
func NewGraph(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("size(%d): the size of a graph must be greater or equal than 0: %w",
			vertexCount, ErrInvalidArgument)
	}

	return &Graph{
		vertexCount: vertexCount,
		index:       make(map[pair]bool),
		sorted:      true,
	}, nil
}

// NewRandomGraph builds a connected random graph.
//
// Steps:
//  1. For v = 1..vertices-1 connect v to r.Intn(v); this spanning chain makes
//     the graph connected.
//  2. For i = vertices..edges-1 add an edge between two random vertices.
//
// Weights are drawn from r.Float64(). Duplicate pairs are skipped, so the
// resulting EdgeCount may be lower than edges. The same seed yields the same
// graph.
//
// Errors: ErrInvalidArgument if vertices < 0 or r is nil; ErrEmptyGraph if
// edges demands random pairs on a graph without vertices.
func NewRandomGraph(vertices, edges int, r *rand.Rand) (*Graph, error) {
	if r == nil {
		return nil, fmt.Errorf("random source is nil: %w", ErrInvalidArgument)
	}
	g, err := NewGraph(vertices)
	if err != nil {
		return nil, err
	}
	if vertices == 0 {
		if edges > 0 {
			return nil, fmt.Errorf("NewRandomGraph: %d edges requested: %w", edges, ErrEmptyGraph)
		}
		return g, nil
	}

	for v := 1; v < vertices; v++ {
		if _, err = g.AddEdge(v, r.Intn(v), r.Float64()); err != nil {
			return nil, err
		}
	}
	for i := vertices; i < edges; i++ {
		if _, err = g.AddEdge(r.Intn(vertices), r.Intn(vertices), r.Float64()); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// VertexCount returns the fixed number of vertices.
func (g *Graph) VertexCount() int { return g.vertexCount }

// IsEmpty reports whether the graph has no vertices.
func (g *Graph) IsEmpty() bool { return g.vertexCount == 0 }

// ContainsVertex reports whether v lies in [0, VertexCount()).
func (g *Graph) ContainsVertex(v int) bool { return v >= 0 && v < g.vertexCount }

// EdgeCount returns the number of stored edges, self-loops included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// TotalWeight returns the sum of the weights of every stored edge,
// self-loops included.
//
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total float64
	for _, e := range g.edges {
		total += e.weight
	}

	return total
}

// String summarizes the graph as
// "Graph { n vertices; m edges; total weight = w }".
func (g *Graph) String() string {
	return fmt.Sprintf("Graph { %d vertices; %d edges; total weight = %v }",
		g.vertexCount, g.EdgeCount(), g.TotalWeight())
}

// checkBounds validates v against the vertex range.
func (g *Graph) checkBounds(v int) error {
	if g.IsEmpty() {
		return fmt.Errorf("vertex(%d): is out of range [-]: %w", v, ErrEmptyGraph)
	}
	if !g.ContainsVertex(v) {
		return fmt.Errorf("vertex(%d): is out of range [0,%d]: %w", v, g.vertexCount-1, ErrOutOfRange)
	}

	return nil
}
