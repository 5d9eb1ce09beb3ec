// Package store provides a SQLite-backed catalog of queries.
//
// The catalog holds:
//   - Queries: canonical renderings, content-addressed by query.Hash
//   - Saved queries: names pointing at a query
//   - Renders: a history of rendered documents
//
// Structurally equal queries share one row, because equal trees render to
// the same canonical text and so hash identically. A stored query also
// keeps its document form, from which the tree is rebuilt.
//
// # Ordering
//
// Rows carry a seq logical clock; every listing orders by
// seq ASC, id ASC COLLATE BINARY.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
