package assert_test

import (
	"testing"

	"github.com/amp-labs/semtype/assert"
	commonerrors "github.com/amp-labs/semtype/errors"
	"github.com/stretchr/testify/require"
)

type celsius float64

type fahrenheit float64

func TestType_Success(t *testing.T) {
	t.Parallel()

	s, err := assert.Type[string]("hello")
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	c, err := assert.Type[celsius](celsius(21.5))
	require.NoError(t, err)
	require.InDelta(t, 21.5, float64(c), 0)

	var anyErr error = commonerrors.ErrWrongType

	e, err := assert.Type[error](anyErr)
	require.NoError(t, err)
	require.ErrorIs(t, e, commonerrors.ErrWrongType)
}

func TestType_Failure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
	}{
		{name: "nil", input: nil},
		{name: "string", input: "42"},
		{name: "same underlying type", input: fahrenheit(70)},
		{name: "underlying primitive", input: 21.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := assert.Type[celsius](tt.input)
			require.ErrorIs(t, err, commonerrors.ErrWrongType)
			require.Contains(t, err.Error(), "assert_test.celsius")
		})
	}
}
