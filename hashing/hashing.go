// Package hashing lets values feed their contents into a hash.Hash, and turns
// that into string digests suitable for keying hash-based containers.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"
	"reflect"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// XXH3 returns the 64-bit XXH3 hashing of the given Hashable as a
// hex-encoded string. Much faster than Sha256, not cryptographic.
func XXH3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// XXHash64 returns the 64-bit xxHash of the given Hashable as a
// hex-encoded string.
func XXHash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))
	if err != nil {
		return err
	}

	return nil
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

// UpdateHashValue writes any comparable value into h such that two values
// that compare equal with == always produce the same bytes. Values that
// implement Hashable are asked to hash themselves. Everything else is walked
// by kind: numbers are written in fixed-width big-endian form (with -0.0
// folded into +0.0), strings and bools as bytes, arrays and structs field by
// field, and pointers, channels and unsafe pointers by address.
func UpdateHashValue(h hash.Hash, value any) error {
	if hashable, ok := value.(Hashable); ok {
		return hashable.UpdateHash(h)
	}

	return updateHashReflect(h, reflect.ValueOf(value))
}

//nolint:cyclop,exhaustive
func updateHashReflect(h hash.Hash, rv reflect.Value) error {
	var buf [8]byte

	if !rv.IsValid() {
		_, err := h.Write([]byte{0})

		return err
	}

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			buf[0] = 1
		}

		_, err := h.Write(buf[:1])

		return err
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		binary.BigEndian.PutUint64(buf[:], uint64(rv.Int())) //nolint:gosec

		_, err := h.Write(buf[:])

		return err
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		binary.BigEndian.PutUint64(buf[:], rv.Uint())

		_, err := h.Write(buf[:])

		return err
	case reflect.Float32, reflect.Float64:
		return writeFloat(h, rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		if err := writeFloat(h, real(c)); err != nil {
			return err
		}

		return writeFloat(h, imag(c))
	case reflect.String:
		binary.BigEndian.PutUint64(buf[:], uint64(rv.Len()))

		if _, err := h.Write(buf[:]); err != nil {
			return err
		}

		_, err := h.Write([]byte(rv.String()))

		return err
	case reflect.Array:
		for i := range rv.Len() {
			if err := updateHashReflect(h, rv.Index(i)); err != nil {
				return err
			}
		}

		return nil
	case reflect.Struct:
		for i := range rv.NumField() {
			if err := updateHashReflect(h, rv.Field(i)); err != nil {
				return err
			}
		}

		return nil
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		binary.BigEndian.PutUint64(buf[:], uint64(rv.Pointer()))

		_, err := h.Write(buf[:])

		return err
	case reflect.Interface:
		if rv.IsNil() {
			_, err := h.Write([]byte{0})

			return err
		}

		elem := rv.Elem()
		if _, err := h.Write([]byte(elem.Type().String())); err != nil {
			return err
		}

		return updateHashReflect(h, elem)
	default:
		return errUnsupportedKind(rv)
	}
}

func writeFloat(h hash.Hash, f float64) error {
	var buf [8]byte

	if f == 0 {
		f = 0 // -0.0 == +0.0, so they must hash alike
	}

	binary.BigEndian.PutUint64(buf[:], math.Float64bits(f))

	_, err := h.Write(buf[:])

	return err
}
