// Package tagged provides identifier types that carry a phantom tag.
//
// ID[int, Book] and ID[int, Author] share a representation and a rule (the id
// must be positive) but are different types, so an author id cannot be passed
// where a book id is expected:
//
//	func BookByID(id tagged.ID[int, Book]) (*Book, error)
//
//	authorID := tagged.Must[Author](7)
//	BookByID(authorID) // does not compile
//
// The tag is never instantiated; any type works, usually the entity itself.
package tagged

import (
	"reflect"

	"github.com/amp-labs/semtype/semantic"
)

// Integer is the set of primitives an ID may wrap.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Kind is the semantic kind of IDs tagged with Tag.
type Kind[T Integer, Tag any] struct{}

func (Kind[T, Tag]) Name() string {
	return "ID[" + tagName[Tag]() + "]"
}

// Valid requires ids to be strictly positive; zero is never a stored row.
func (Kind[T, Tag]) Valid(id T) bool {
	return id > 0
}

// ID is a positive integer identifier belonging to the Tag domain.
type ID[T Integer, Tag any] = semantic.Type[T, Kind[T, Tag]]

// New validates raw and wraps it as an ID in the Tag domain.
// Call it as tagged.New[Book](id); the integer type is inferred.
func New[Tag any, T Integer](raw T) (ID[T, Tag], error) {
	return semantic.New[Kind[T, Tag]](raw)
}

// Must is like New but panics on a non-positive id.
func Must[Tag any, T Integer](raw T) ID[T, Tag] {
	return semantic.Must[Kind[T, Tag]](raw)
}

func tagName[Tag any]() string {
	t := reflect.TypeFor[Tag]()
	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}
