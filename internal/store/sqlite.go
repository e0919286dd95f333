package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/promptai/ims-mcp/internal/schema"
)

// SQLite is a Store backed by a local SQLite database. Its DDL is derived
// from the schema registry: one table per registry entry, a uuid text
// primary key, and created_at/updated_at timestamps maintained by the store.
type SQLite struct {
	db     *sql.DB
	tables map[string]schema.TableSchema
}

// OpenSQLite opens (creating if needed) the database at path and ensures a
// table exists for every registry entry. The parent directory is created
// if missing.
func OpenSQLite(path string, tables []schema.TableSchema) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: pragma %q: %w", p, err)
		}
	}

	s := &SQLite{db: db, tables: make(map[string]schema.TableSchema, len(tables))}
	for _, t := range tables {
		s.tables[t.TableName] = t
	}
	if err := s.migrate(tables); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) migrate(tables []schema.TableSchema) error {
	for _, t := range tables {
		var cols []string
		cols = append(cols, "id TEXT PRIMARY KEY")
		for _, f := range t.Fields {
			cols = append(cols, fmt.Sprintf("%s %s", quoteIdent(f.Name), columnType(f.Type)))
		}
		cols = append(cols,
			"created_at TEXT NOT NULL DEFAULT (datetime('now'))",
			"updated_at TEXT NOT NULL DEFAULT (datetime('now'))",
		)

		ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n);",
			quoteIdent(t.TableName), strings.Join(cols, ",\n\t"))
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("create table %s: %w", t.TableName, err)
		}

		idx := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_created ON %s(created_at DESC);",
			t.TableName, quoteIdent(t.TableName))
		if _, err := s.db.Exec(idx); err != nil {
			return fmt.Errorf("index %s: %w", t.TableName, err)
		}
	}
	return nil
}

func columnType(ft schema.FieldType) string {
	switch ft {
	case schema.TypeInteger, schema.TypeBoolean:
		return "INTEGER"
	case schema.TypeNumber:
		return "REAL"
	default:
		// uuid, string, date, timestamp, string_array and json are all
		// stored as text; arrays and json are serialised on the way in.
		return "TEXT"
	}
}

// Insert implements Store.
func (s *SQLite) Insert(ctx context.Context, table string, row map[string]any) (map[string]any, error) {
	t, ok := s.tables[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	id := uuid.NewString()
	cols := []string{"id"}
	placeholders := []string{"?"}
	args := []any{id}

	// Registry order keeps the statement deterministic.
	for _, f := range t.Fields {
		v, present := row[f.Name]
		if !present {
			continue
		}
		enc, err := encodeValue(f, v)
		if err != nil {
			return nil, err
		}
		cols = append(cols, quoteIdent(f.Name))
		placeholders = append(placeholders, "?")
		args = append(args, enc)
	}

	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}

	return s.getRow(ctx, t, id)
}

// List implements Store.
func (s *SQLite) List(ctx context.Context, table string, p ListParams) ([]map[string]any, error) {
	t, ok := s.tables[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	var where []string
	var args []any
	fields := t.FieldMap()

	for _, f := range p.Filters {
		field, ok := fields[f.Column]
		if !ok {
			return nil, fmt.Errorf("unknown column %q in table %q", f.Column, table)
		}
		enc, err := encodeValue(field, f.Value)
		if err != nil {
			return nil, err
		}
		where = append(where, fmt.Sprintf("%s = ?", quoteIdent(f.Column)))
		args = append(args, enc)
	}

	if p.Search != "" {
		where = append(where, "lower(name) LIKE '%' || lower(?) || '%'")
		args = append(args, p.Search)
	}

	orderBy := p.OrderBy
	if orderBy == "" {
		orderBy = "created_at"
	}
	if !s.sortableColumn(t, orderBy) {
		return nil, fmt.Errorf("unknown order_by column %q in table %q", orderBy, table)
	}
	dir := "ASC"
	if p.Descending {
		dir = "DESC"
	}

	q := "SELECT * FROM " + quoteIdent(table)
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += fmt.Sprintf(" ORDER BY %s %s LIMIT ? OFFSET ?", quoteIdent(orderBy), dir)
	args = append(args, p.Limit, p.Offset)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		row, err := scanRow(rows, t)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Update implements Store.
func (s *SQLite) Update(ctx context.Context, table, id string, patch map[string]any) (map[string]any, error) {
	t, ok := s.tables[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}

	var sets []string
	var args []any
	for _, f := range t.Fields {
		v, present := patch[f.Name]
		if !present {
			continue
		}
		enc, err := encodeValue(f, v)
		if err != nil {
			return nil, err
		}
		sets = append(sets, fmt.Sprintf("%s = ?", quoteIdent(f.Name)))
		args = append(args, enc)
	}
	sets = append(sets, "updated_at = datetime('now')")
	args = append(args, id)

	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", quoteIdent(table), strings.Join(sets, ", "))
	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%s %s: %w", t.Singular, id, ErrNotFound)
	}

	return s.getRow(ctx, t, id)
}

// Delete implements Store.
func (s *SQLite) Delete(ctx context.Context, table, id string) error {
	if _, ok := s.tables[table]; !ok {
		return fmt.Errorf("unknown table %q", table)
	}
	_, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", quoteIdent(table)), id)
	return err
}

func (s *SQLite) getRow(ctx context.Context, t schema.TableSchema, id string) (map[string]any, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s WHERE id = ?", quoteIdent(t.TableName)), id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s %s: %w", t.Singular, id, ErrNotFound)
	}
	return scanRow(rows, t)
}

func (s *SQLite) sortableColumn(t schema.TableSchema, col string) bool {
	switch col {
	case "id", "created_at", "updated_at":
		return true
	}
	return t.HasField(col)
}

// encodeValue converts a validated field value into its column
// representation: arrays and json objects become JSON text, everything else
// passes through (database/sql handles bool and the numeric kinds).
func encodeValue(f schema.Field, v any) (any, error) {
	switch f.Type {
	case schema.TypeStringArray, schema.TypeJSON:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.Name, err)
		}
		return string(b), nil
	default:
		return v, nil
	}
}

// scanRow reads the current row generically and decodes column values back
// through the table schema: 0/1 integers become booleans, JSON text becomes
// arrays/objects again.
func scanRow(rows *sql.Rows, t schema.TableSchema) (map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	raw := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	fields := t.FieldMap()
	row := make(map[string]any, len(cols))
	for i, col := range cols {
		v := raw[i]
		if b, ok := v.([]byte); ok {
			v = string(b)
		}

		field, declared := fields[col]
		if !declared {
			row[col] = v // id, created_at, updated_at
			continue
		}

		switch field.Type {
		case schema.TypeBoolean:
			if n, ok := v.(int64); ok {
				v = n != 0
			}
		case schema.TypeStringArray, schema.TypeJSON:
			if s, ok := v.(string); ok {
				var decoded any
				if err := json.Unmarshal([]byte(s), &decoded); err == nil {
					v = decoded
				}
			}
		}
		row[col] = v
	}
	return row, nil
}

// quoteIdent quotes a table or column identifier. Identifiers come from the
// registry or are checked against it before reaching SQL.
func quoteIdent(name string) string {
	return `"` + name + `"`
}
