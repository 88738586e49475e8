package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUniqueContext(t *testing.T) {
	t.Parallel()

	ctx := GetUniqueContext(t)

	info, ok := GetTestInfo(ctx)
	require.True(t, ok)
	assert.Equal(t, "TestGetUniqueContext", info.Name)
	assert.True(t, strings.HasPrefix(info.Id, "test-"))
}

func TestGetUniqueContext_Distinct(t *testing.T) {
	t.Parallel()

	first, _ := GetTestInfo(GetUniqueContext(t))
	second, _ := GetTestInfo(GetUniqueContext(t))

	assert.NotEqual(t, first.Id, second.Id)
}

func TestGetTestInfo_Missing(t *testing.T) {
	t.Parallel()

	_, ok := GetTestInfo(context.Background())
	assert.False(t, ok)
}
