package collectable

import (
	"hash"

	"github.com/amp-labs/semtype/compare"
	"github.com/amp-labs/semtype/hashing"
)

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. This is useful for objects that need
// to be stored in a Set, where uniqueness is determined by
// the hashing value, and collisions are resolved by comparing
// the objects.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// Comparable wraps a plain comparable value so it can be stored in a Set.
type Comparable[T comparable] struct {
	Value T
}

var _ Collectable[Comparable[int]] = Comparable[int]{}

// UpdateHash implements hashing.Hashable.
func (w Comparable[T]) UpdateHash(h hash.Hash) error {
	return hashing.UpdateHashValue(h, w.Value)
}

// Equals implements compare.Comparable using the == operator.
func (w Comparable[T]) Equals(other Comparable[T]) bool {
	return w.Value == other.Value
}

// FromComparable creates a Collectable from any comparable value.
func FromComparable[T comparable](value T) Comparable[T] {
	return Comparable[T]{Value: value}
}
