package mnoda

import (
	"encoding/json"

	"github.com/google/uuid"
)

// IDType identifies the scope in which an ID is unique.
type IDType uint8

const (
	// IDTypeLocal marks an ID that is unique within a single document.
	// Local IDs are replaced with global ones when a document is ingested
	// into a database; that resolution happens outside this library.
	IDTypeLocal IDType = iota
	// IDTypeGlobal marks an ID that is unique within an entire database.
	IDTypeGlobal
)

// String returns a human-readable name for the ID type.
func (t IDType) String() string {
	if t == IDTypeGlobal {
		return "global"
	}
	return "local"
}

// ID identifies a Record, either locally (unique within one document) or
// globally (unique within a database). IDs compare equal when both the
// value and the type match.
//
// The value is not validated; an empty value is accepted and round-trips
// unchanged. Callers that need guaranteed-unique identities should use
// NewLocalID.
type ID struct {
	value string
	typ   IDType
}

// NewID creates an ID from a value and its scope.
func NewID(value string, typ IDType) ID {
	return ID{value: value, typ: typ}
}

// NewLocalID creates a document-scoped ID with a generated UUID value.
func NewLocalID() ID {
	return ID{value: uuid.NewString(), typ: IDTypeLocal}
}

// Value returns the ID's value.
func (id ID) Value() string { return id.value }

// Type returns the scope of the ID.
func (id ID) Type() IDType { return id.typ }

// JSON keys for the two ID scopes. A serialized Record carries exactly one
// of the two, never both.
const (
	globalIDKey = "id"
	localIDKey  = "local_id"
)

// idKey returns the JSON key under which this ID serializes.
func (id ID) idKey() string {
	if id.typ == IDTypeGlobal {
		return globalIDKey
	}
	return localIDKey
}

// decodeID reads a Record-style identity from a decoded JSON object: the
// "id" key yields a global ID, otherwise "local_id" yields a local one.
// When neither key is present and generate is non-nil, a generated ID is
// returned; otherwise the absence is an ErrMissingField.
func decodeID(obj map[string]json.RawMessage, enclosing string, generate func() ID) (ID, error) {
	if raw, ok := obj[globalIDKey]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ID{}, invalidFieldType(raw, globalIDKey, enclosing, "a string")
		}
		return NewID(s, IDTypeGlobal), nil
	}
	if raw, ok := obj[localIDKey]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ID{}, invalidFieldType(raw, localIDKey, enclosing, "a string")
		}
		return NewID(s, IDTypeLocal), nil
	}
	if generate != nil {
		return generate(), nil
	}
	return ID{}, &ErrMissingField{Field: globalIDKey + "/" + localIDKey, Enclosing: enclosing}
}
