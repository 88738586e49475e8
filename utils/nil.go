// Package utils holds small reflection helpers shared by the semtype packages.
package utils //nolint:revive // utils is an appropriate package name for utility functions

import "reflect"

// IsNilish returns true if the value is a literal nil
// or if it points to something with a nil value.
func IsNilish(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}

// emptier is implemented by optional-like containers (optional.Value among
// them) that can hold nothing.
type emptier interface {
	Empty() bool
}

// IsAbsent reports whether val represents "no value": anything IsNilish
// accepts, or an optional-like container that is empty.
func IsAbsent(val any) bool {
	if IsNilish(val) {
		return true
	}

	if e, ok := val.(emptier); ok {
		return e.Empty()
	}

	return false
}
