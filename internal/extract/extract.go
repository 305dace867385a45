// Package extract turns an untrusted free-text LLM completion into a
// validated flat record, or fails loudly with a typed error.
package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FieldType is the expected semantic type of a required field.
type FieldType int

const (
	// String requires a non-empty JSON string.
	String FieldType = iota
	// Number requires a JSON number or a numeric string.
	Number
	// Enum requires a JSON string that is a member of Field.Allowed.
	Enum
)

func (t FieldType) String() string {
	switch t {
	case String:
		return "string"
	case Number:
		return "number"
	case Enum:
		return "enum"
	}
	return "unknown"
}

// Field describes one required field of the expected record.
type Field struct {
	Name    string
	Type    FieldType
	Allowed []string // Enum members; only consulted when Type is Enum.
}

// ExtractionError reports that no parsable JSON object could be isolated
// from the completion. Raw carries the full completion for diagnostics;
// it is meant for logs, never for API responses.
type ExtractionError struct {
	Reason string
	Raw    string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("extract: %s", e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ValidationError reports a required field that is missing or of the
// wrong type in an otherwise well-formed object.
type ValidationError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("extract: field %q: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// Extract locates a JSON object inside raw, parses it, and validates it
// against the required field set. On success it returns a map holding
// exactly the requested fields: strings and enum members as string,
// numbers as float64 (numeric strings are coerced).
//
// The locate step takes the substring from the first '{' to the last '}'.
// This heuristic cannot cope with unrelated braces around the intended
// object or with multiple objects in one completion; when the naive slice
// fails to parse, a balanced-brace scan from the first '{' is tried before
// giving up. Callers should prefer providers with native structured output
// and treat this as the documented best-effort fallback.
func Extract(raw string, fields []Field) (map[string]any, error) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start == -1 || end == -1 || end < start {
		return nil, &ExtractionError{Reason: "no JSON object found", Raw: raw}
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(raw[start:end+1]), &record); err != nil {
		balanced, ok := scanBalanced(raw[start:])
		if !ok {
			return nil, &ExtractionError{Reason: "malformed JSON", Raw: raw, Err: err}
		}
		if err2 := json.Unmarshal([]byte(balanced), &record); err2 != nil {
			return nil, &ExtractionError{Reason: "malformed JSON", Raw: raw, Err: err}
		}
	}

	out := make(map[string]any, len(fields))
	for _, f := range fields {
		val, ok := record[f.Name]
		if !ok || val == nil {
			return nil, &ValidationError{Field: f.Name, Expected: f.Type.String(), Actual: "missing"}
		}

		switch f.Type {
		case String:
			s, ok := val.(string)
			if !ok || s == "" {
				return nil, &ValidationError{Field: f.Name, Expected: "string", Actual: typeName(val)}
			}
			out[f.Name] = s

		case Number:
			n, ok := coerceNumber(val)
			if !ok {
				return nil, &ValidationError{Field: f.Name, Expected: "number", Actual: typeName(val)}
			}
			out[f.Name] = n

		case Enum:
			s, ok := val.(string)
			if !ok {
				return nil, &ValidationError{Field: f.Name, Expected: enumExpectation(f.Allowed), Actual: typeName(val)}
			}
			if !contains(f.Allowed, s) {
				return nil, &ValidationError{Field: f.Name, Expected: enumExpectation(f.Allowed), Actual: strconv.Quote(s)}
			}
			out[f.Name] = s
		}
	}

	return out, nil
}

// scanBalanced returns the prefix of s forming one balanced JSON object,
// starting at the leading '{'. Brace counting is string-literal aware.
func scanBalanced(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// coerceNumber accepts float64 (the only numeric type encoding/json
// produces for any) and numeric strings.
func coerceNumber(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func typeName(val any) string {
	switch val.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "bool"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case nil:
		return "null"
	}
	return fmt.Sprintf("%T", val)
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func enumExpectation(allowed []string) string {
	return "one of [" + strings.Join(allowed, ", ") + "]"
}
