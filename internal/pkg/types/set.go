// Package types holds small generic containers shared across packages.
package types

import (
	"iter"
	"maps"
	"slices"
)

// Set is an unordered collection of distinct values. It is not safe for
// concurrent mutation; build it first and share it read-only.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding values, duplicates collapsed.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	s.Add(values...)
	return s
}

// Add inserts values in place.
func (s Set[T]) Add(values ...T) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of distinct values.
func (s Set[T]) Len() int {
	return len(s)
}

// All iterates the values in no particular order.
func (s Set[T]) All() iter.Seq[T] {
	return maps.Keys(s)
}

// Sorted returns the values ordered by cmp.
func (s Set[T]) Sorted(cmp func(a, b T) int) []T {
	return slices.SortedFunc(s.All(), cmp)
}
