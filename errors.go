package mnoda

import (
	"encoding/json"
	"fmt"
)

// ErrMissingField indicates that a required key was absent while decoding
// a JSON object into one of the mnoda types.
type ErrMissingField struct {
	Field     string // the missing key
	Enclosing string // the type being decoded, e.g. "Record"
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("%s is missing required field %q", e.Enclosing, e.Field)
}

// ErrInvalidFieldType indicates that a present key had the wrong JSON shape,
// e.g. a tags element that is not a string or a Datum value that is neither
// a string nor a number.
type ErrInvalidFieldType struct {
	Field     string // the offending key
	Enclosing string // the type being decoded
	Expected  string // the expected JSON kind, e.g. "a string"
	Actual    string // the JSON kind actually encountered
}

func (e *ErrInvalidFieldType) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s must be %s, found %s", e.Enclosing, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s field %q must be %s, found %s",
		e.Enclosing, e.Field, e.Expected, e.Actual)
}

// jsonKindName reports the JSON kind of a value produced by unmarshalling
// into any. Used for ErrInvalidFieldType messages.
func jsonKindName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// requiredString extracts a required string field from a decoded JSON
// object. It is the shared validation path for every type in this package.
func requiredString(obj map[string]json.RawMessage, field, enclosing string) (string, error) {
	raw, ok := obj[field]
	if !ok {
		return "", &ErrMissingField{Field: field, Enclosing: enclosing}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", invalidFieldType(raw, field, enclosing, "a string")
	}
	return s, nil
}

// optionalString extracts an optional string field; absence yields "".
func optionalString(obj map[string]json.RawMessage, field, enclosing string) (string, error) {
	raw, ok := obj[field]
	if !ok {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", invalidFieldType(raw, field, enclosing, "a string")
	}
	return s, nil
}

// optionalStringSlice extracts an optional array-of-strings field, failing
// with ErrInvalidFieldType when any element is not a string.
func optionalStringSlice(obj map[string]json.RawMessage, field, enclosing string) ([]string, error) {
	raw, ok := obj[field]
	if !ok {
		return nil, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, invalidFieldType(raw, field, enclosing, "an array of strings")
	}
	out := make([]string, len(elems))
	for i, e := range elems {
		if err := json.Unmarshal(e, &out[i]); err != nil {
			return nil, invalidFieldType(e, field, enclosing, "an array of strings")
		}
	}
	return out, nil
}

// invalidFieldType builds an ErrInvalidFieldType naming the JSON kind that
// was actually present in raw.
func invalidFieldType(raw json.RawMessage, field, enclosing, expected string) error {
	var v any
	// The kind is best-effort; malformed JSON still produces a usable error.
	_ = json.Unmarshal(raw, &v)
	return &ErrInvalidFieldType{
		Field:     field,
		Enclosing: enclosing,
		Expected:  expected,
		Actual:    jsonKindName(v),
	}
}
