package store

import (
	"fmt"

	"github.com/roach88/tql/internal/document"
	"github.com/roach88/tql/internal/query"
)

// QueryRecord is a stored query.
type QueryRecord struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Text     string `json:"text"`
	Document string `json:"document,omitempty"`
	Seq      int64  `json:"seq"`
}

// Tree rebuilds the query from its stored document.
func (r QueryRecord) Tree() (query.Query, error) {
	if r.Document == "" {
		return nil, fmt.Errorf("query %s has no document form", r.ID)
	}
	return document.Parse([]byte(r.Document), document.FormatYAML, r.ID+".yaml")
}

// SavedQuery is a name bound to a stored query.
type SavedQuery struct {
	Name  string      `json:"name"`
	Query QueryRecord `json:"query"`
	Seq   int64       `json:"seq"`
}

// Render is one entry of the render history.
type Render struct {
	ID      string `json:"id"`
	QueryID string `json:"query_id"`
	Source  string `json:"source"`
	Seq     int64  `json:"seq"`
}
