package tagged_test

import (
	"testing"

	commonErrors "github.com/amp-labs/semtype/errors"
	"github.com/amp-labs/semtype/semantic"
	"github.com/amp-labs/semtype/tagged"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Book struct {
	ID       tagged.ID[int, Book]
	Title    string
	AuthorID tagged.ID[int, Author]
}

type Author struct {
	ID   tagged.ID[int, Author]
	Name string
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := tagged.New[Book](0)
	require.ErrorIs(t, err, commonErrors.ErrValidation)

	var verr *semantic.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ID[Book]", verr.Type)
	assert.Equal(t, 0, verr.Value)

	id, err := tagged.New[Book](1)
	require.NoError(t, err)
	assert.Equal(t, 1, id.Value())
}

func TestNew_Rule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw   int
		valid bool
	}{
		{raw: -100, valid: false},
		{raw: -1, valid: false},
		{raw: 0, valid: false},
		{raw: 1, valid: true},
		{raw: 5, valid: true},
		{raw: 1 << 40, valid: true},
	}

	for _, tt := range tests {
		id, err := tagged.New[Author](tt.raw)
		if tt.valid {
			require.NoError(t, err)
			assert.Equal(t, tt.raw, id.Value())
		} else {
			require.ErrorIs(t, err, commonErrors.ErrValidation)
			assert.True(t, id.IsZero())
		}
	}
}

func TestNew_IntegerKinds(t *testing.T) {
	t.Parallel()

	small, err := tagged.New[Book](int8(3))
	require.NoError(t, err)
	assert.Equal(t, int8(3), small.Value())

	_, err = tagged.New[Book](uint64(0))
	require.ErrorIs(t, err, commonErrors.ErrValidation)

	big := tagged.Must[Book](uint64(1) << 63)
	assert.Equal(t, uint64(1)<<63, big.Value())
}

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ID[Book]", tagged.Must[Book](1).Name())
	assert.Equal(t, "ID[Author]", tagged.Must[Author](1).Name())
	assert.Equal(t, "ID[*tagged_test.Book]", tagged.Must[*Book](1).Name())
}

func TestEquality(t *testing.T) {
	t.Parallel()

	a := tagged.Must[Book](5)
	b := tagged.Must[Book](5)
	c := tagged.Must[Book](6)

	assert.True(t, a.Equals(b))
	assert.True(t, a == b)
	assert.False(t, a.Equals(c))
	assert.Equal(t, a.Hash(), b.Hash())

	author := tagged.Must[Author](5)
	assert.False(t, a.EqualsAny(author), "same number, different id domain")
	assert.NotEqual(t, a.Hash(), author.Hash())
}

func TestMust_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { tagged.Must[Book](0) })
}

func TestModel(t *testing.T) {
	t.Parallel()

	hemingway := Author{ID: tagged.Must[Author](1), Name: "Ernest Hemingway"}
	book := Book{
		ID:       tagged.Must[Book](42),
		Title:    "The Old Man and the Sea",
		AuthorID: hemingway.ID,
	}

	index := map[tagged.ID[int, Book]]Book{book.ID: book}

	got, ok := index[tagged.Must[Book](42)]
	require.True(t, ok)
	assert.Equal(t, hemingway.ID, got.AuthorID)
}
