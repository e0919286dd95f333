// Package toolgen derives the server's entire tool surface from the schema
// registry. Every table yields exactly four tools — create_<singular>,
// list_<plural>, update_<singular>, delete_<singular> — each with an input
// schema generated from the same field definitions the validator enforces.
package toolgen

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/promptai/ims-mcp/internal/schema"
)

// Operation is the verb half of a generated tool.
type Operation string

const (
	OpCreate Operation = "create"
	OpList   Operation = "list"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// GeneratedTool is one advertised tool plus the mapping the dispatcher
// needs to route a call for it.
type GeneratedTool struct {
	Tool      mcp.Tool
	Table     schema.TableSchema
	Operation Operation
}

// Generate derives the tool set for the given registry. It runs once at
// startup; a duplicate generated name means the registry itself is
// misconfigured and is returned as an error rather than handled.
func Generate(tables []schema.TableSchema) ([]GeneratedTool, error) {
	var out []GeneratedTool
	seen := map[string]bool{}

	add := func(name, description string, input map[string]any, table schema.TableSchema, op Operation) error {
		if seen[name] {
			return fmt.Errorf("toolgen: duplicate tool name %q", name)
		}
		seen[name] = true

		raw, err := json.Marshal(input)
		if err != nil {
			return fmt.Errorf("toolgen: marshal schema for %q: %w", name, err)
		}
		out = append(out, GeneratedTool{
			Tool:      mcp.NewToolWithRawSchema(name, description, raw),
			Table:     table,
			Operation: op,
		})
		return nil
	}

	for _, table := range tables {
		ops := []struct {
			name, description string
			input             map[string]any
			op                Operation
		}{
			{
				name:        "create_" + table.Singular,
				description: fmt.Sprintf("Create a new %s — %s", table.Singular, table.Description),
				input:       createSchema(table),
				op:          OpCreate,
			},
			{
				name:        "list_" + table.Plural,
				description: fmt.Sprintf("List %s with optional filters — %s", table.Plural, table.Description),
				input:       listSchema(table),
				op:          OpList,
			},
			{
				name:        "update_" + table.Singular,
				description: fmt.Sprintf("Update an existing %s by ID", table.Singular),
				input:       updateSchema(table),
				op:          OpUpdate,
			},
			{
				name:        "delete_" + table.Singular,
				description: fmt.Sprintf("Delete a %s by ID", table.Singular),
				input:       deleteSchema(table),
				op:          OpDelete,
			},
		}
		for _, o := range ops {
			if err := add(o.name, o.description, o.input, table, o.op); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// fieldSchema maps one field definition to its JSON-schema fragment. This
// mapping and schema.ValidateValue are two views of the same contract; a
// change to one without the other means the advertised schema and the
// validator disagree about what is legal.
func fieldSchema(f schema.Field) map[string]any {
	frag := map[string]any{"description": f.Description}

	switch f.Type {
	case schema.TypeString:
		frag["type"] = "string"
	case schema.TypeNumber:
		frag["type"] = "number"
	case schema.TypeInteger:
		frag["type"] = "integer"
	case schema.TypeBoolean:
		frag["type"] = "boolean"
	case schema.TypeUUID:
		frag["type"] = "string"
		frag["format"] = "uuid"
	case schema.TypeDate:
		frag["type"] = "string"
		frag["format"] = "date"
		frag["description"] = f.Description + " (YYYY-MM-DD)"
	case schema.TypeTimestamp:
		frag["type"] = "string"
		frag["format"] = "date-time"
	case schema.TypeStringArray:
		frag["type"] = "array"
		frag["items"] = map[string]any{"type": "string"}
	case schema.TypeJSON:
		// unconstrained — accepts any type
	}

	if len(f.Enum) > 0 {
		frag["enum"] = f.Enum
	}
	return frag
}

func createSchema(table schema.TableSchema) map[string]any {
	props := map[string]any{}
	var required []string
	for _, f := range table.Fields {
		props[f.Name] = fieldSchema(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}

	input := map[string]any{"type": "object", "properties": props}
	if len(required) > 0 {
		input["required"] = required
	}
	return input
}

func listSchema(table schema.TableSchema) map[string]any {
	props := map[string]any{
		"limit":    map[string]any{"type": "integer", "description": "Max records to return (default 50, max 200)"},
		"offset":   map[string]any{"type": "integer", "description": "Number of records to skip (for pagination)"},
		"order_by": map[string]any{"type": "string", "description": "Column to sort by (prefix with - for descending, e.g. '-created_at')"},
	}

	// Only exact-match-filterable fields are exposed as filters: uuids,
	// booleans, and enum-constrained strings. Free text, numbers and dates
	// are not list filters.
	for _, f := range table.Fields {
		if f.Type == schema.TypeUUID || f.Type == schema.TypeBoolean || len(f.Enum) > 0 {
			props[f.Name] = fieldSchema(f)
		}
	}

	if table.HasField("name") {
		props["search"] = map[string]any{"type": "string", "description": "Case-insensitive search on name field"}
	}

	return map[string]any{"type": "object", "properties": props}
}

func updateSchema(table schema.TableSchema) map[string]any {
	props := map[string]any{
		"id": map[string]any{
			"type":        "string",
			"format":      "uuid",
			"description": fmt.Sprintf("ID of the %s to update", table.Singular),
		},
	}
	for _, f := range table.Fields {
		props[f.Name] = fieldSchema(f)
	}

	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   []string{"id"},
	}
}

func deleteSchema(table schema.TableSchema) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "string",
				"format":      "uuid",
				"description": fmt.Sprintf("ID of the %s to delete", table.Singular),
			},
		},
		"required": []string{"id"},
	}
}
