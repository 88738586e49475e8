// Package compare provides utilities for comparing values.
package compare

// Comparable is implemented by values that decide their own equality.
// Semantic types implement it with their own type as T, which is what keeps
// an email address from ever being compared against an arbitrary string.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Symmetric reports whether a equals b and b equals a. Useful in tests to
// catch one-sided Equals implementations.
func Symmetric[T Comparable[T]](a, b T) bool {
	return a.Equals(b) && b.Equals(a)
}
