// Package store provides the tabular persistence layer behind the generated
// tools: single-row insert, filtered paginated list, update-by-id and
// delete-by-id over the tables declared in the schema registry.
//
// The store trusts its callers on shape: rows and patches reaching it have
// already been sanitised, so every key is a declared column with a validated
// value. Row-level authorization is not this layer's concern.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Update when no row matches the given id.
// Delete deliberately does not report it — deleting a missing row succeeds.
var ErrNotFound = errors.New("not found")

// Filter is one exact-match condition on a declared column.
type Filter struct {
	Column string
	Value  any
}

// ListParams describes a filtered, ordered, paginated read.
type ListParams struct {
	Filters    []Filter
	Search     string // case-insensitive partial match on the name column; empty = no search
	OrderBy    string // column to sort by; empty = created_at
	Descending bool
	Offset     int
	Limit      int
}

// Store is the tabular capability the dispatcher issues operations against.
type Store interface {
	// Insert writes one row and returns it as stored (including the
	// generated id and timestamps).
	Insert(ctx context.Context, table string, row map[string]any) (map[string]any, error)

	// List returns the rows matching p, in order, within the offset/limit
	// window.
	List(ctx context.Context, table string, p ListParams) ([]map[string]any, error)

	// Update applies patch to the row with the given id and returns the
	// updated row. Returns ErrNotFound if no such row exists.
	Update(ctx context.Context, table, id string, patch map[string]any) (map[string]any, error)

	// Delete removes the row with the given id. Deleting a row that does
	// not exist is not an error.
	Delete(ctx context.Context, table, id string) error
}
