// Package disjointset provides a union-find forest over the integer
// elements 0..n-1, the bookkeeping structure behind Kruskal's algorithm.
//
// What & Why
//
//   - A Sets value partitions [0, n) into disjoint components. Initially every
//     element is a singleton; Union merges two components, Connected tells
//     whether two elements share a component, Count reports how many
//     components remain.
//
// Representation
//
//   - Every element is a tagged node: either a root carrying a size magnitude,
//     or a child carrying the index of its parent. Following parent links from
//     any element always ends at a root.
//   - Singletons have magnitude 0. Union of two roots with equal magnitude
//     hangs the second under the first and grows the first by one; otherwise
//     the root with the smaller magnitude is hung under the larger one.
//     Tree height therefore stays O(log n).
//
// Path compression
//
//	Find does not rewrite parent links by default. WithPathCompression enables
//	it; membership answers are identical either way, only traversal cost
//	changes.
//
// Errors
//
//   - ErrInvalidArgument: negative size passed to New.
//   - ErrOutOfRange: element outside [0, n) passed to Find, Connected or Union.
//
// Complexity
//
//   - New:       O(n) time and memory.
//   - Find:      O(log n) without compression, amortized near O(1) with it.
//   - Connected: two Finds.
//   - Union:     two Finds + O(1).
//
// A Sets value is not safe for concurrent use; each MST computation owns one.
package disjointset
