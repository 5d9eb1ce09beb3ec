package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanQueryRecord(row rowScanner) (QueryRecord, error) {
	var r QueryRecord
	if err := row.Scan(&r.ID, &r.Kind, &r.Text, &r.Document, &r.Seq); err != nil {
		return QueryRecord{}, err
	}
	return r, nil
}

// GetQuery returns the stored query with the given content hash.
func (s *Store) GetQuery(ctx context.Context, id string) (QueryRecord, error) {
	rec, err := scanQueryRecord(s.db.QueryRowContext(ctx, `
		SELECT id, kind, text, document, seq FROM queries WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return QueryRecord{}, fmt.Errorf("query %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return QueryRecord{}, fmt.Errorf("get query: %w", err)
	}
	return rec, nil
}

// GetSaved returns the query saved under name.
func (s *Store) GetSaved(ctx context.Context, name string) (SavedQuery, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT s.name, s.seq, q.id, q.kind, q.text, q.document, q.seq
		FROM saved_queries s JOIN queries q ON q.id = s.query_id
		WHERE s.name = ?
	`, name)

	sq, err := scanSaved(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedQuery{}, fmt.Errorf("saved query %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return SavedQuery{}, fmt.Errorf("get saved query: %w", err)
	}
	return sq, nil
}

// ListSaved returns every saved query.
// Ordered by seq ASC, name ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) when nothing is saved.
func (s *Store) ListSaved(ctx context.Context) ([]SavedQuery, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.name, s.seq, q.id, q.kind, q.text, q.document, q.seq
		FROM saved_queries s JOIN queries q ON q.id = s.query_id
		ORDER BY s.seq ASC, s.name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query saved queries: %w", err)
	}
	defer rows.Close()

	saved := []SavedQuery{}
	for rows.Next() {
		sq, err := scanSaved(rows)
		if err != nil {
			return nil, fmt.Errorf("scan saved query: %w", err)
		}
		saved = append(saved, sq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved queries: %w", err)
	}
	return saved, nil
}

func scanSaved(row rowScanner) (SavedQuery, error) {
	var sq SavedQuery
	q := &sq.Query
	if err := row.Scan(&sq.Name, &sq.Seq, &q.ID, &q.Kind, &q.Text, &q.Document, &q.Seq); err != nil {
		return SavedQuery{}, err
	}
	return sq, nil
}

// ListRenders returns the most recent limit renders, oldest first.
// A limit of zero or less returns the whole history.
//
// Returns an empty slice (not nil) when the history is empty.
func (s *Store) ListRenders(ctx context.Context, limit int) ([]Render, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query_id, source, seq FROM (
			SELECT id, query_id, source, seq FROM renders
			ORDER BY seq DESC, id COLLATE BINARY DESC
			LIMIT ?
		)
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query renders: %w", err)
	}
	defer rows.Close()

	renders := []Render{}
	for rows.Next() {
		var r Render
		if err := rows.Scan(&r.ID, &r.QueryID, &r.Source, &r.Seq); err != nil {
			return nil, fmt.Errorf("scan render: %w", err)
		}
		renders = append(renders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate renders: %w", err)
	}
	return renders, nil
}
