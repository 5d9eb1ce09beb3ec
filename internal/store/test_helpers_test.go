package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/tql/internal/pattern"
	"github.com/roach88/tql/internal/query"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestQuery builds `match $x is $y;` with an optional count.
func createTestQuery(count bool) query.Query {
	m := query.NewMatch(pattern.Var("x").Is(pattern.IsName("y")))
	if count {
		return m.Count().IntoQuery()
	}
	return m
}
