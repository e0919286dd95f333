// Package schema holds the declarative table registry the whole server is
// generated from: table and field definitions, field validation, and input
// sanitisation. Adding a table to the registry is all it takes to get a
// create/list/update/delete tool family for it — there is no per-table code
// anywhere else.
package schema

import "fmt"

// FieldType is the closed set of column types the engine understands.
// Each type carries exactly one validation rule (validate.go) and exactly
// one JSON-schema fragment (toolgen) — the two must stay in lockstep.
type FieldType string

const (
	TypeString      FieldType = "string"
	TypeNumber      FieldType = "number"
	TypeInteger     FieldType = "integer"
	TypeBoolean     FieldType = "boolean"
	TypeUUID        FieldType = "uuid"
	TypeDate        FieldType = "date"
	TypeTimestamp   FieldType = "timestamp"
	TypeStringArray FieldType = "string_array"
	TypeJSON        FieldType = "json"
)

// Field describes one column of a table.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool // enforced on create only
	Description string
	Enum        []string // legal values; only valid when Type is TypeString
}

// TableSchema describes one entity type. Every table also has an implicit
// id column (uuid primary key) plus created_at/updated_at timestamps; those
// are managed by the store and are never listed as Fields.
type TableSchema struct {
	TableName   string
	Singular    string
	Plural      string
	Description string
	Fields      []Field
}

// FieldMap returns the table's fields keyed by name.
func (t TableSchema) FieldMap() map[string]Field {
	m := make(map[string]Field, len(t.Fields))
	for _, f := range t.Fields {
		m[f.Name] = f
	}
	return m
}

// HasField reports whether the table declares a field with the given name.
func (t TableSchema) HasField(name string) bool {
	for _, f := range t.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// reservedKeys are operation metadata, never column data. The sanitizer
// skips them and the registry must not declare them as fields.
var reservedKeys = map[string]bool{
	"id":       true,
	"limit":    true,
	"offset":   true,
	"order_by": true,
	"search":   true,
}

// Check verifies the registry invariants: unique table names and
// singular/plural forms across the registry (generated tool names collide
// otherwise), unique field names within each table, no reserved names used
// as columns, and enums only on string fields. It is called once at startup;
// a failure is a configuration bug, not a runtime condition.
func Check(tables []TableSchema) error {
	tableNames := map[string]bool{}
	singulars := map[string]bool{}
	plurals := map[string]bool{}

	for _, t := range tables {
		if t.TableName == "" || t.Singular == "" || t.Plural == "" {
			return fmt.Errorf("schema: table %q: tableName, singular and plural are all mandatory", t.TableName)
		}
		if tableNames[t.TableName] {
			return fmt.Errorf("schema: duplicate table name %q", t.TableName)
		}
		if singulars[t.Singular] {
			return fmt.Errorf("schema: duplicate singular %q", t.Singular)
		}
		if plurals[t.Plural] {
			return fmt.Errorf("schema: duplicate plural %q", t.Plural)
		}
		tableNames[t.TableName] = true
		singulars[t.Singular] = true
		plurals[t.Plural] = true

		seen := map[string]bool{}
		for _, f := range t.Fields {
			if seen[f.Name] {
				return fmt.Errorf("schema: table %q: duplicate field %q", t.TableName, f.Name)
			}
			seen[f.Name] = true

			if reservedKeys[f.Name] {
				return fmt.Errorf("schema: table %q: field %q is a reserved key", t.TableName, f.Name)
			}
			if len(f.Enum) > 0 && f.Type != TypeString {
				return fmt.Errorf("schema: table %q: field %q: enum requires string type, got %s", t.TableName, f.Name, f.Type)
			}
		}
	}
	return nil
}
