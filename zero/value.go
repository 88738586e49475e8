// Package zero provides utilities for working with zero values of generic types.
package zero

// Value returns the zero value for type T.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T, using ==.
// For a semantic type, the zero value is the instance that was never
// constructed.
func IsZero[T comparable](value T) bool {
	var zeroVal T

	return value == zeroVal
}
