package schema

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// Validation is purely syntactic. Dates and timestamps are checked for
// shape only — "2024-13-40" passes the date pattern. Calendar validity is
// deliberately not enforced; callers that need it do it upstream.
var (
	uuidRE      = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	dateRE      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timestampRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2})?(\.\d+)?(Z|[+-]\d{2}:\d{2})?)?$`)
)

// IsUUID reports whether s is a canonical 8-4-4-4-12 hex UUID.
// Non-canonical forms (braced, urn-prefixed, bare hex) are rejected.
func IsUUID(s string) bool {
	return uuidRE.MatchString(strings.ToLower(s))
}

// ValidateValue checks a raw value against a field definition and returns a
// human-readable rejection reason, or "" if the value is acceptable.
// Nil always passes: nullability is universal, and required-ness is enforced
// separately by Sanitize. No I/O, total for all inputs.
func ValidateValue(value any, field Field) string {
	if value == nil {
		return ""
	}

	switch field.Type {
	case TypeUUID:
		s, ok := value.(string)
		if !ok || !IsUUID(s) {
			return fmt.Sprintf("%s must be a valid UUID", field.Name)
		}
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("%s must be a string", field.Name)
		}
		if len(field.Enum) > 0 && !contains(field.Enum, s) {
			return fmt.Sprintf("%s must be one of: %s", field.Name, strings.Join(field.Enum, ", "))
		}
	case TypeNumber:
		if _, ok := asFloat(value); !ok {
			return fmt.Sprintf("%s must be a number", field.Name)
		}
	case TypeInteger:
		f, ok := asFloat(value)
		if !ok || f != math.Trunc(f) {
			return fmt.Sprintf("%s must be an integer", field.Name)
		}
	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("%s must be a boolean", field.Name)
		}
	case TypeDate:
		s, ok := value.(string)
		if !ok || !dateRE.MatchString(s) {
			return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field.Name)
		}
	case TypeTimestamp:
		s, ok := value.(string)
		if !ok || !timestampRE.MatchString(s) {
			return fmt.Sprintf("%s must be a valid timestamp", field.Name)
		}
	case TypeStringArray:
		if !isStringArray(value) {
			return fmt.Sprintf("%s must be an array of strings", field.Name)
		}
	case TypeJSON:
		switch value.(type) {
		case map[string]any, []any:
		default:
			return fmt.Sprintf("%s must be a JSON object or array", field.Name)
		}
	}
	return ""
}

// asFloat widens the numeric representations a JSON decoder or a test can
// hand us into a float64. JSON arguments always arrive as float64; the int
// cases keep in-process callers honest.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func isStringArray(v any) bool {
	switch arr := v.(type) {
	case []string:
		return true
	case []any:
		for _, el := range arr {
			if _, ok := el.(string); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
