package disjointset

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for disjoint-set operations.
var (
	// ErrInvalidArgument indicates a negative number of elements.
	ErrInvalidArgument = errors.New("disjointset: invalid argument")

	// ErrOutOfRange indicates an element outside [0, n).
	ErrOutOfRange = errors.New("disjointset: element out of range")
)

// node is one slot of the forest. A root carries its size magnitude,
// a child carries the index of its parent.
type node struct {
	root   bool
	size   int // magnitude, meaningful only when root
	parent int // parent index, meaningful only when !root
}

// Option configures a Sets at construction time.
type Option func(*Sets)

// WithPathCompression makes Find point every visited element directly at
// its root.
func WithPathCompression() Option {
	return func(s *Sets) { s.compress = true }
}

// Sets is a union-find forest over the elements 0..Len()-1.
type Sets struct {
	nodes    []node
	count    int
	compress bool
}

// New creates a forest of n singleton components.
//
// Errors: ErrInvalidArgument if n < 0.
// Complexity: O(n).
func New(n int, opts ...Option) (*Sets, error) {
	if n < 0 {
		return nil, fmt.Errorf("size %d must not be negative: %w", n, ErrInvalidArgument)
	}

	s := &Sets{
		nodes: make([]node, n),
		count: n,
	}
	for i := range s.nodes {
		s.nodes[i] = node{root: true}
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Len returns the number of elements in the forest.
func (s *Sets) Len() int { return len(s.nodes) }

// Count returns the current number of components. It starts at Len() and
// drops by exactly one per successful Union.
func (s *Sets) Count() int { return s.count }

// String renders every slot as either its size magnitude (roots, prefixed
// by "r") or its parent index.
func (s *Sets) String() string {
	var b strings.Builder
	b.WriteString("DisjointSets {")
	for i, nd := range s.nodes {
		if i > 0 {
			b.WriteByte(',')
		}
		if nd.root {
			fmt.Fprintf(&b, " %d:r%d", i, nd.size)
		} else {
			fmt.Fprintf(&b, " %d:%d", i, nd.parent)
		}
	}
	b.WriteString(" }")

	return b.String()
}

// checkBounds validates that v is an element of the forest.
func (s *Sets) checkBounds(v int) error {
	if v < 0 || v >= len(s.nodes) {
		return fmt.Errorf("vertex %d out of range [0,%d]: %w", v, len(s.nodes)-1, ErrOutOfRange)
	}

	return nil
}
