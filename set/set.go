// Package set provides a hash-based Set for values that know how to hash and
// compare themselves, such as semantic types.
package set

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"facette.io/natsort"
	"github.com/amp-labs/semtype/collectable"
	"github.com/amp-labs/semtype/compare"
	"github.com/amp-labs/semtype/hashing"
)

// ErrHashCollision is returned when a hashing collision is detected.
// Specifically this refers to two different (non-equal) objects
// that have the same hashing value.
var ErrHashCollision = errors.New("hashing collision")

// A Set is a collection of unique elements. Uniqueness is
// determined by the HashFunc provided when the Set is created,
// as well as how the object has implemented the Hashable and
// Comparable interfaces. If a collision is detected, an error
// is returned.
type Set[T collectable.Collectable[T]] interface {
	// AddAll adds multiple elements to the set. Returns an error if any element
	// causes a hash collision or if hashing fails.
	AddAll(elements ...T) error

	// Add adds a single element to the set. Returns an error if the element
	// causes a hash collision or if hashing fails. If the element already exists
	// in the set, no error is returned.
	Add(element T) error

	// Remove removes an element from the set. Returns an error if hashing fails.
	// If the element is not in the set, no error is returned.
	Remove(element T) error

	// Clear removes all elements from the set.
	Clear()

	// Contains checks if an element exists in the set. Returns an error if
	// hashing fails or a collision is detected.
	Contains(element T) (bool, error)

	// Size returns the number of elements in the set.
	Size() int

	// Entries returns all elements in the set as a slice. The order is not guaranteed.
	Entries() []T

	// Seq ranges over the elements. The order is not guaranteed.
	Seq() iter.Seq[T]

	// Union returns a new set containing all elements from both sets.
	Union(other Set[T]) (Set[T], error)

	// Intersection returns a new set containing only elements present in both sets.
	Intersection(other Set[T]) (Set[T], error)

	// HashFunction returns the hash function used by this set.
	HashFunction() hashing.HashFunc
}

type setImpl[T collectable.Collectable[T]] struct {
	hash     hashing.HashFunc
	elements map[string]T
}

// NewSet creates a new Set with the provided hash function.
// The hash function is used to determine uniqueness of elements.
func NewSet[T collectable.Collectable[T]](hash hashing.HashFunc) Set[T] {
	return &setImpl[T]{
		hash:     hash,
		elements: make(map[string]T),
	}
}

// Of builds a Set holding the given elements.
func Of[T collectable.Collectable[T]](hash hashing.HashFunc, elements ...T) (Set[T], error) {
	s := NewSet[T](hash)

	if err := s.AddAll(elements...); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *setImpl[T]) AddAll(elements ...T) error {
	for _, elem := range elements {
		if err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

func (s *setImpl[T]) Add(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	prev, ok := s.elements[hashVal]
	if ok {
		if compare.Equals[T](prev, element) {
			return nil
		}

		return fmt.Errorf("%w: %s", ErrHashCollision, hashVal)
	}

	s.elements[hashVal] = element

	return nil
}

func (s *setImpl[T]) Clear() {
	s.elements = make(map[string]T)
}

func (s *setImpl[T]) Remove(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	prev, ok := s.elements[hashVal]
	if ok && compare.Equals[T](prev, element) {
		delete(s.elements, hashVal)
	}

	return nil
}

func (s *setImpl[T]) Contains(element T) (bool, error) {
	hashVal, err := s.hash(element)
	if err != nil {
		return false, err
	}

	prev, ok := s.elements[hashVal]
	if !ok {
		return false, nil
	}

	if compare.Equals[T](prev, element) {
		return true, nil
	}

	return false, fmt.Errorf("%w: %s", ErrHashCollision, hashVal)
}

func (s *setImpl[T]) Size() int {
	return len(s.elements)
}

func (s *setImpl[T]) Entries() []T {
	items := make([]T, 0, len(s.elements))
	for item := range maps.Values(s.elements) {
		items = append(items, item)
	}

	return items
}

func (s *setImpl[T]) Seq() iter.Seq[T] {
	return maps.Values(s.elements)
}

func (s *setImpl[T]) Union(other Set[T]) (Set[T], error) {
	ns := NewSet[T](s.hash)

	if err := ns.AddAll(s.Entries()...); err != nil {
		return nil, err
	}

	if err := ns.AddAll(other.Entries()...); err != nil {
		return nil, err
	}

	return ns, nil
}

func (s *setImpl[T]) Intersection(other Set[T]) (Set[T], error) {
	ns := NewSet[T](s.hash)

	for item := range s.Seq() {
		contains, err := other.Contains(item)
		if err != nil {
			return nil, err
		}

		if !contains {
			continue
		}

		if err := ns.Add(item); err != nil {
			return nil, err
		}
	}

	return ns, nil
}

func (s *setImpl[T]) HashFunction() hashing.HashFunc {
	return s.hash
}

// SortedStrings renders every element with fmt and returns the results in
// natural sort order ("id-2" before "id-10").
func SortedStrings[T collectable.Collectable[T]](s Set[T]) []string {
	out := make([]string, 0, s.Size())

	for item := range s.Seq() {
		out = append(out, fmt.Sprint(item))
	}

	natsort.Sort(out)

	return out
}
