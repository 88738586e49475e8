// Package semantic wraps primitive values in validated, named types.
//
// A semantic type is an instantiation of Type[T, K]: T is the primitive being
// wrapped and K is a zero-sized kind that names the type and, optionally,
// carries its validation rule. Because every kind is its own Go type,
// Type[string, EmailKind] and Type[string, PhoneKind] are different types:
// the compiler refuses to pass, assign or compare one as the other, and ==
// between two values of the same semantic type compares the wrapped values.
//
//	type kind struct{}
//
//	func (kind) Name() string          { return "Port" }
//	func (kind) Valid(p int) bool      { return p > 0 && p < 65536 }
//
//	type Port = semantic.Type[int, kind]
//
//	port, err := semantic.New[kind](8080)
//
// Instances can only be obtained through New (or Must/Maybe), so every
// constructed instance satisfies its kind's rule. The zero Type is the one
// exception: it represents "no value", the way a nil reference would, and
// reports IsZero.
package semantic

import (
	"fmt"
	"hash"
	"reflect"

	"github.com/amp-labs/semtype/assert"
	"github.com/amp-labs/semtype/collectable"
	"github.com/amp-labs/semtype/hashing"
	"github.com/amp-labs/semtype/optional"
	"github.com/amp-labs/semtype/utils"
	"github.com/amp-labs/semtype/zero"
	"github.com/zeebo/xxh3"
)

// Kind identifies a semantic type. Implementations are zero-sized structs;
// Name is used in error messages and is mixed into hashes.
type Kind interface {
	Name() string
}

// Rule is the optional validator of a Kind. A kind that does not implement
// Rule for its primitive accepts every present value.
type Rule[T any] interface {
	Valid(value T) bool
}

// Type is a primitive value of type T that has been validated against kind K.
type Type[T comparable, K Kind] struct {
	value   T
	present bool
}

var _ collectable.Collectable[Type[string, unnamed]] = Type[string, unnamed]{}

type unnamed struct{}

func (unnamed) Name() string { return "unnamed" }

// NameOf returns the name of kind K.
func NameOf[K Kind]() string {
	var k K

	return k.Name()
}

// New validates raw against kind K and wraps it.
//
// It fails with a *NullValueError when raw is an absence sentinel (a nil
// pointer, interface, channel or func, or an empty optional-like container),
// and with a *ValidationError when raw is not equal to itself (NaN, or an
// interface holding an uncomparable value) or K has a Rule that rejects raw. The value is
// stored unchanged.
func New[K Kind, T comparable](raw T) (Type[T, K], error) {
	if err := check[K](raw); err != nil {
		return zero.Value[Type[T, K]](), err
	}

	return Type[T, K]{value: raw, present: true}, nil
}

// Must is like New but panics on invalid input. Meant for constants and tests.
func Must[K Kind, T comparable](raw T) Type[T, K] {
	v, err := New[K](raw)
	if err != nil {
		panic(err)
	}

	return v
}

// Maybe is like New but reports failure as an empty optional.
func Maybe[K Kind, T comparable](raw T) optional.Value[Type[T, K]] {
	v, err := New[K](raw)
	if err != nil {
		return optional.None[Type[T, K]]()
	}

	return optional.Some(v)
}

// IsValid reports whether New[K](raw) would succeed.
func IsValid[K Kind, T comparable](raw T) bool {
	return check[K](raw) == nil
}

func check[K Kind, T comparable](raw T) error {
	var kind K

	if utils.IsAbsent(raw) {
		return &NullValueError{Type: kind.Name()}
	}

	// A value must equal itself to be a key: this rules out NaN, and
	// interface values holding slices, maps or funcs, on which == panics.
	if !reflect.ValueOf(raw).Comparable() || raw != raw { //nolint:gocritic,staticcheck
		return &ValidationError{Type: kind.Name(), Value: raw}
	}

	if rule, ok := any(kind).(Rule[T]); ok && !rule.Valid(raw) {
		return &ValidationError{Type: kind.Name(), Value: raw}
	}

	return nil
}

// Value returns the wrapped primitive. For the zero Type it is the zero T.
func (v Type[T, K]) Value() T {
	return v.value
}

// IsZero reports whether v was never constructed.
func (v Type[T, K]) IsZero() bool {
	return !v.present
}

// Name returns the semantic type's name.
func (v Type[T, K]) Name() string {
	return NameOf[K]()
}

// Validate returns nil for any constructed instance and a *NullValueError for
// the zero Type, which makes every semantic type a validate.HasValidate.
func (v Type[T, K]) Validate() error {
	if !v.present {
		return &NullValueError{Type: v.Name()}
	}

	return nil
}

// Equals reports whether v and other wrap equal values. Two zero instances
// are equal; a zero instance never equals a constructed one.
func (v Type[T, K]) Equals(other Type[T, K]) bool {
	return v == other
}

// EqualsAny is Equals for callers holding an untyped value. Anything that is
// not exactly Type[T, K] (nil, the bare primitive, another semantic type over
// the same primitive) is unequal.
func (v Type[T, K]) EqualsAny(other any) bool {
	typed, err := assert.Type[Type[T, K]](other)
	if err != nil {
		return false
	}

	return v.Equals(typed)
}

// UpdateHash implements hashing.Hashable. The kind name is hashed along with
// the value, so equal primitives of different semantic types hash apart.
func (v Type[T, K]) UpdateHash(h hash.Hash) error {
	if err := hashing.HashableString(v.Name()).UpdateHash(h); err != nil {
		return err
	}

	if !v.present {
		_, err := h.Write([]byte{0})

		return err
	}

	if _, err := h.Write([]byte{1}); err != nil {
		return err
	}

	return hashing.UpdateHashValue(h, v.value)
}

// Hash returns a 64-bit XXH3 hash of v. Equal instances hash equally.
// It panics only if T cannot be hashed at all, which no comparable type
// triggers.
func (v Type[T, K]) Hash() uint64 {
	h := xxh3.New()

	if err := v.UpdateHash(h); err != nil {
		panic(fmt.Sprintf("semantic: hashing %s: %v", v.Name(), err))
	}

	return h.Sum64()
}

// String renders the wrapped primitive with fmt.
func (v Type[T, K]) String() string {
	return fmt.Sprint(v.value)
}
