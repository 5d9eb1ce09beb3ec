package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/tql/internal/document"
	"github.com/roach88/tql/internal/query"
)

// PutQuery stores q and returns its record. Uses ON CONFLICT(id) DO NOTHING
// for idempotency: storing an equal query again returns the existing row.
func (s *Store) PutQuery(ctx context.Context, q query.Query) (QueryRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return QueryRecord{}, fmt.Errorf("put query: %w", err)
	}
	defer tx.Rollback()

	rec, err := putQuery(ctx, tx, q)
	if err != nil {
		return QueryRecord{}, fmt.Errorf("put query: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return QueryRecord{}, fmt.Errorf("put query: %w", err)
	}
	return rec, nil
}

func putQuery(ctx context.Context, tx *sql.Tx, q query.Query) (QueryRecord, error) {
	id := query.Hash(q)

	// Queries the document form cannot express are still stored by text.
	doc, err := document.Marshal(q, document.FormatYAML)
	if err != nil {
		doc = nil
	}

	seq, err := nextSeq(ctx, tx, "queries")
	if err != nil {
		return QueryRecord{}, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO queries (id, kind, text, document, seq)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, id, q.Kind().String(), q.String(), string(doc), seq)
	if err != nil {
		return QueryRecord{}, err
	}

	return scanQueryRecord(tx.QueryRowContext(ctx, `
		SELECT id, kind, text, document, seq FROM queries WHERE id = ?
	`, id))
}

// SaveQuery stores q under name, replacing whatever the name pointed at.
func (s *Store) SaveQuery(ctx context.Context, name string, q query.Query) (SavedQuery, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SavedQuery{}, fmt.Errorf("save query: %w", err)
	}
	defer tx.Rollback()

	rec, err := putQuery(ctx, tx, q)
	if err != nil {
		return SavedQuery{}, fmt.Errorf("save query: %w", err)
	}
	seq, err := nextSeq(ctx, tx, "saved_queries")
	if err != nil {
		return SavedQuery{}, fmt.Errorf("save query: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO saved_queries (name, query_id, seq)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET query_id = excluded.query_id, seq = excluded.seq
	`, name, rec.ID, seq)
	if err != nil {
		return SavedQuery{}, fmt.Errorf("save query: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return SavedQuery{}, fmt.Errorf("save query: %w", err)
	}
	return SavedQuery{Name: name, Query: rec, Seq: seq}, nil
}

// RecordRender appends a render of q from source to the history.
func (s *Store) RecordRender(ctx context.Context, q query.Query, source string) (Render, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Render{}, fmt.Errorf("record render: %w", err)
	}
	defer tx.Rollback()

	rec, err := putQuery(ctx, tx, q)
	if err != nil {
		return Render{}, fmt.Errorf("record render: %w", err)
	}
	seq, err := nextSeq(ctx, tx, "renders")
	if err != nil {
		return Render{}, fmt.Errorf("record render: %w", err)
	}

	r := Render{ID: uuid.NewString(), QueryID: rec.ID, Source: source, Seq: seq}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO renders (id, query_id, source, seq) VALUES (?, ?, ?, ?)
	`, r.ID, r.QueryID, r.Source, r.Seq)
	if err != nil {
		return Render{}, fmt.Errorf("record render: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Render{}, fmt.Errorf("record render: %w", err)
	}
	return r, nil
}
