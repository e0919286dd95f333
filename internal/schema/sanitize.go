package schema

import "fmt"

// Sanitize cleans a caller-supplied attribute bag against a table schema.
// It returns a new bag containing only declared fields whose values passed
// ValidateValue, or an error describing the first problem found.
//
// Rules:
//   - requireRequired (create only): every required field must have a
//     non-nil value in the raw bag, checked over the full field set before
//     anything else.
//   - Reserved keys (id, limit, offset, order_by, search) are operation
//     metadata and are always skipped.
//   - Undeclared keys are silently dropped. This is deliberate: callers can
//     pass extra metadata without breaking, and injected column names never
//     reach the store.
//   - Nil values are treated as "not provided", not as "clear this field".
//   - Validation is fail-fast: the first invalid declared field aborts.
//
// Values are copied verbatim — no coercion. The store receives exactly the
// representation that was validated.
func Sanitize(args map[string]any, table TableSchema, requireRequired bool) (map[string]any, error) {
	fields := table.FieldMap()

	if requireRequired {
		for _, f := range table.Fields {
			if f.Required && args[f.Name] == nil {
				return nil, fmt.Errorf("Missing required field: %s", f.Name)
			}
		}
	}

	data := make(map[string]any)
	for key, value := range args {
		if reservedKeys[key] {
			continue
		}
		field, ok := fields[key]
		if !ok {
			continue
		}
		if value == nil {
			continue
		}
		if msg := ValidateValue(value, field); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		data[key] = value
	}

	return data, nil
}
