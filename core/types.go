// File: types.go
// Role: sentinel errors, the Edge value type and its ordering.

package core

import (
	"cmp"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument indicates a negative vertex count, vertex ID or weight.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrOutOfRange indicates a vertex outside [0, VertexCount()).
	ErrOutOfRange = errors.New("core: vertex out of range")

	// ErrEmptyGraph indicates a vertex was passed to a graph without vertices,
	// where no valid range exists at all.
	ErrEmptyGraph = fmt.Errorf("%w: graph has no vertices", ErrOutOfRange)
)

// pair identifies an undirected edge by its ordered endpoints.
type pair struct {
	low, high int
}

// Edge is an immutable undirected weighted edge.
//
// The endpoints are stored ordered, so Edge{3,1} and Edge{1,3} describe the
// same connection.
type Edge struct {
	low    int
	high   int
	weight float64
}

// NewEdge builds an Edge between v1 and v2.
//
// Errors: ErrInvalidArgument if a vertex is negative or the weight is
// negative or NaN.
func NewEdge(v1, v2 int, weight float64) (Edge, error) {
	if v1 < 0 {
		return Edge{}, fmt.Errorf("vertex(%d): vertices must not be negative: %w", v1, ErrInvalidArgument)
	}
	if v2 < 0 {
		return Edge{}, fmt.Errorf("vertex(%d): vertices must not be negative: %w", v2, ErrInvalidArgument)
	}
	if weight < 0 || math.IsNaN(weight) {
		return Edge{}, fmt.Errorf("weight(%v): weight must not be negative: %w", weight, ErrInvalidArgument)
	}

	return Edge{low: min(v1, v2), high: max(v1, v2), weight: weight}, nil
}

// Low returns the smaller endpoint.
func (e Edge) Low() int { return e.low }

// High returns the larger endpoint.
func (e Edge) High() int { return e.high }

// Weight returns the edge weight.
func (e Edge) Weight() float64 { return e.weight }

// IsLoop reports whether both endpoints are the same vertex.
func (e Edge) IsLoop() bool { return e.low == e.high }

// SamePair reports whether e and o connect the same two vertices.
func (e Edge) SamePair(o Edge) bool { return e.key() == o.key() }

// Equal reports whether e and o connect the same vertices with the same weight.
func (e Edge) Equal(o Edge) bool { return e.SamePair(o) && e.weight == o.weight }

// Compare orders edges by weight, then Low, then High.
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func (e Edge) Compare(o Edge) int {
	if c := cmp.Compare(e.weight, o.weight); c != 0 {
		return c
	}
	if c := cmp.Compare(e.low, o.low); c != 0 {
		return c
	}

	return cmp.Compare(e.high, o.high)
}

// String renders the edge as "Edge {low,high} weight {w}".
func (e Edge) String() string {
	return fmt.Sprintf("Edge {%d,%d} weight {%v}", e.low, e.high, e.weight)
}

func (e Edge) key() pair { return pair{low: e.low, high: e.high} }
