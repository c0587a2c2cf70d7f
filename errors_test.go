package mnoda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrMissingField(t *testing.T) {
	err := &ErrMissingField{Field: "type", Enclosing: "Record"}
	assert.Equal(t, `Record is missing required field "type"`, err.Error())
}

func TestErrInvalidFieldType(t *testing.T) {
	err := &ErrInvalidFieldType{
		Field:     "tags",
		Enclosing: "Datum",
		Expected:  "an array of strings",
		Actual:    "number",
	}
	assert.Equal(t, `Datum field "tags" must be an array of strings, found number`, err.Error())

	topLevel := &ErrInvalidFieldType{
		Enclosing: "Document",
		Expected:  "an object",
		Actual:    "array",
	}
	assert.Equal(t, "Document must be an object, found array", topLevel.Error())
}

func TestJSONKindName(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{true, "boolean"},
		{float64(1), "number"},
		{"s", "string"},
		{[]any{}, "array"},
		{map[string]any{}, "object"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, jsonKindName(tt.in))
	}
}
