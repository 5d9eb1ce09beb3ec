package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tql/internal/pattern"
	"github.com/roach88/tql/internal/query"
)

func TestPutQuery_ContentAddressed(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	q := createTestQuery(true)
	rec, err := s.PutQuery(ctx, q)
	require.NoError(t, err)

	assert.Equal(t, query.Hash(q), rec.ID)
	assert.Equal(t, "match_aggregate", rec.Kind)
	assert.Equal(t, "match\n$x is $y;\ncount;", rec.Text)
	assert.NotEmpty(t, rec.Document)
	assert.Equal(t, int64(1), rec.Seq)
}

func TestPutQuery_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first, err := s.PutQuery(ctx, createTestQuery(false))
	require.NoError(t, err)
	second, err := s.PutQuery(ctx, createTestQuery(false))
	require.NoError(t, err)

	assert.Equal(t, first, second, "equal queries share one row")

	var count int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM queries").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestPutQuery_WithoutDocumentForm(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// The document form only expresses name targets for is.
	inner := pattern.Var("y").Is(pattern.IsName("z"))
	q := query.NewMatch(pattern.Var("x").Is(pattern.IsConcept(inner)))

	rec, err := s.PutQuery(ctx, q)
	require.NoError(t, err)
	assert.Empty(t, rec.Document)
	assert.Equal(t, q.String(), rec.Text)

	_, err = rec.Tree()
	assert.Error(t, err)
}

func TestQueryRecord_Tree(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	q := createTestQuery(true)
	rec, err := s.PutQuery(ctx, q)
	require.NoError(t, err)

	got, err := s.GetQuery(ctx, rec.ID)
	require.NoError(t, err)

	tree, err := got.Tree()
	require.NoError(t, err)
	assert.True(t, query.Equal(q, tree))
}

func TestGetQuery_NotFound(t *testing.T) {
	s := createTestStore(t)
	_, err := s.GetQuery(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSaveQuery_GetSaved(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	saved, err := s.SaveQuery(ctx, "people", createTestQuery(false))
	require.NoError(t, err)
	assert.Equal(t, "people", saved.Name)

	got, err := s.GetSaved(ctx, "people")
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.Equal(t, "match\n$x is $y;", got.Query.Text)
}

func TestSaveQuery_ReplacesName(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.SaveQuery(ctx, "q", createTestQuery(false))
	require.NoError(t, err)
	_, err = s.SaveQuery(ctx, "q", createTestQuery(true))
	require.NoError(t, err)

	got, err := s.GetSaved(ctx, "q")
	require.NoError(t, err)
	assert.Equal(t, "match_aggregate", got.Query.Kind)

	all, err := s.ListSaved(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetSaved_NotFound(t *testing.T) {
	s := createTestStore(t)
	_, err := s.GetSaved(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestListSaved_EmptyNotNil(t *testing.T) {
	s := createTestStore(t)
	saved, err := s.ListSaved(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Empty(t, saved)
}

func TestListSaved_OrderedBySeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := s.SaveQuery(ctx, name, createTestQuery(false))
		require.NoError(t, err)
	}

	saved, err := s.ListSaved(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 3)
	assert.Equal(t, "zeta", saved[0].Name)
	assert.Equal(t, "alpha", saved[1].Name)
	assert.Equal(t, "mid", saved[2].Name)
}

func TestRecordRender_History(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	var ids []string
	for _, src := range []string{"a.yaml", "b.yaml", "c.yaml"} {
		r, err := s.RecordRender(ctx, createTestQuery(false), src)
		require.NoError(t, err)
		assert.Len(t, r.ID, 36, "uuid string form")
		ids = append(ids, r.ID)
	}

	all, err := s.ListRenders(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a.yaml", all[0].Source)
	assert.Equal(t, "c.yaml", all[2].Source)
	assert.Equal(t, ids[0], all[0].ID)

	last, err := s.ListRenders(ctx, 2)
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, "b.yaml", last[0].Source)
	assert.Equal(t, "c.yaml", last[1].Source)
	assert.Equal(t, query.Hash(createTestQuery(false)), last[1].QueryID)
}

func TestListRenders_EmptyNotNil(t *testing.T) {
	s := createTestStore(t)
	renders, err := s.ListRenders(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, renders)
	assert.Empty(t, renders)
}
