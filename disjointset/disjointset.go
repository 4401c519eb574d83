package disjointset

// Find returns the root of v's component.
//
// The walk is iterative so adversarial inputs cannot exhaust the stack.
// With WithPathCompression the visited elements are re-pointed at the root.
//
// Errors: ErrOutOfRange if v is outside [0, Len()).
// Complexity: O(log n) without compression.
func (s *Sets) Find(v int) (int, error) {
	if err := s.checkBounds(v); err != nil {
		return 0, err
	}

	return s.find(v), nil
}

// find walks parent links from an already validated element.
func (s *Sets) find(v int) int {
	root := v
	for !s.nodes[root].root {
		root = s.nodes[root].parent
	}
	if s.compress {
		for v != root {
			next := s.nodes[v].parent
			s.nodes[v].parent = root
			v = next
		}
	}

	return root
}

// Connected reports whether v1 and v2 belong to the same component.
// Both elements are validated before anything is compared.
//
// Errors: ErrOutOfRange if either element is outside [0, Len()).
func (s *Sets) Connected(v1, v2 int) (bool, error) {
	if err := s.checkBounds(v1); err != nil {
		return false, err
	}
	if err := s.checkBounds(v2); err != nil {
		return false, err
	}

	return s.find(v1) == s.find(v2), nil
}

// Union merges the components of v1 and v2.
//
// Steps:
//  1. Validate both elements; if they are already connected return false.
//  2. Resolve r1 = Find(v1), r2 = Find(v2).
//  3. Equal magnitudes: hang r2 under r1 and grow r1 by one.
//     Different magnitudes: hang the smaller-magnitude root under the larger.
//  4. Decrement the component count and return true.
//
// Errors: ErrOutOfRange if either element is outside [0, Len()).
// Complexity: O(log n).
func (s *Sets) Union(v1, v2 int) (bool, error) {
	connected, err := s.Connected(v1, v2)
	if err != nil || connected {
		return false, err
	}

	r1, r2 := s.find(v1), s.find(v2)
	switch size1, size2 := s.nodes[r1].size, s.nodes[r2].size; {
	case size1 == size2:
		s.nodes[r1].size++
		s.nodes[r2] = node{parent: r1}
	case size1 > size2:
		s.nodes[r2] = node{parent: r1}
	default:
		s.nodes[r1] = node{parent: r2}
	}
	s.count--

	return true, nil
}
