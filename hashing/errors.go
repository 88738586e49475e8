package hashing

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/semtype/errors"
)

func errUnsupportedKind(rv reflect.Value) error {
	return fmt.Errorf("%w: cannot hash %s", errors.ErrUnsupportedType, rv.Type())
}
