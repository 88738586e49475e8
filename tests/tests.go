// Package tests carries per-test metadata (test name, unique id) through
// context.Context so helpers and log lines can be correlated with the test
// that produced them.
//
//	func TestBooks(t *testing.T) {
//	    ctx := tests.GetUniqueContext(t)
//
//	    info, _ := tests.GetTestInfo(ctx)
//	    t.Log(info.Name, info.Id)
//	}
package tests

import (
	"context"
	"testing"

	"github.com/amp-labs/semtype/contexts"
	"github.com/amp-labs/semtype/logger"
	"github.com/google/uuid"
)

type contextKey string

const (
	// testIdKey holds "test-" followed by a random UUID.
	testIdKey contextKey = "testId"

	// testNameKey holds t.Name(), e.g. "TestBooks/subtest".
	testNameKey contextKey = "testName"
)

// TestInfo describes the test a context was created for.
type TestInfo struct {
	Id   string
	Name string
}

// GetUniqueContext returns a context derived from t.Context() that carries a
// unique test id and the test name. Both are also attached as logger
// attributes, so anything logged through logger.Get(ctx) names the test.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	id := "test-" + uuid.New().String()

	ctx := contexts.WithValue[contextKey, string](t.Context(), testIdKey, id)
	ctx = contexts.WithValue[contextKey, string](ctx, testNameKey, t.Name())

	return logger.With(ctx, "test_id", id, "test_name", t.Name())
}

// GetTestInfo returns the metadata stored by GetUniqueContext. The boolean is
// false when ctx was not created by GetUniqueContext.
func GetTestInfo(ctx context.Context) (TestInfo, bool) {
	id, ok := contexts.GetValue[contextKey, string](ctx, testIdKey)
	if !ok {
		return TestInfo{}, false
	}

	name, _ := contexts.GetValue[contextKey, string](ctx, testNameKey)

	return TestInfo{Id: id, Name: name}, true
}
