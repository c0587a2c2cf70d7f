package mnoda

import (
	"encoding/json"
)

// Record is the interface implemented by every entry in a Document's
// record list. BaseRecord is the canonical implementation; subtypes such
// as Run add their own typed fields while remaining encodable to the same
// JSON shape plus their extra keys.
type Record interface {
	// ID returns the record's identity.
	ID() ID
	// Type returns the record's type tag, e.g. "run" or "msub".
	Type() string
	// MarshalJSON encodes the record to its JSON representation.
	MarshalJSON() ([]byte, error)
}

// BaseRecord is the base of the record family: an identity, a type tag,
// an ordered list of data, an ordered list of files, and arbitrary
// user-defined content. It is also what RecordLoader falls back to when a
// document references a type it has no factory for, so documents written
// by newer tools still decode.
//
// A BaseRecord is exclusively owned by the Document holding it; it is not
// safe to share one record between documents.
type BaseRecord struct {
	id          ID
	typ         string
	data        []Datum
	files       []File
	userDefined any
}

var _ Record = (*BaseRecord)(nil)

const recordTypeName = "Record"

// JSON keys shared by the whole record family.
const (
	typeKey        = "type"
	dataKey        = "data"
	filesKey       = "files"
	userDefinedKey = "user_defined"
)

// NewBaseRecord creates a record with the given identity and type tag.
func NewBaseRecord(id ID, typ string) *BaseRecord {
	return &BaseRecord{id: id, typ: typ}
}

// DecodeBaseRecord creates a BaseRecord from its JSON representation.
//
// "type" is required, as is an identity under either the "id" (global) or
// "local_id" (local) key; the base record never invents an identity.
// "data", "files" and "user_defined" are optional. Array order is
// preserved, and any malformed element aborts the decode.
func DecodeBaseRecord(data json.RawMessage) (*BaseRecord, error) {
	return decodeBaseRecord(data, nil)
}

// decodeBaseRecord is the shared parsing routine subtypes delegate to.
// generate, when non-nil, supplies an identity for records that carry
// neither identity key.
func decodeBaseRecord(data json.RawMessage, generate func() ID) (*BaseRecord, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, invalidFieldType(data, "", recordTypeName, "an object")
	}

	r := &BaseRecord{}
	var err error
	if r.typ, err = requiredString(obj, typeKey, recordTypeName); err != nil {
		return nil, err
	}
	if r.id, err = decodeID(obj, recordTypeName, generate); err != nil {
		return nil, err
	}

	if raw, ok := obj[dataKey]; ok {
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, invalidFieldType(raw, dataKey, recordTypeName, "an array")
		}
		r.data = make([]Datum, 0, len(elems))
		for _, e := range elems {
			d, err := DecodeDatum(e)
			if err != nil {
				return nil, err
			}
			r.data = append(r.data, d)
		}
	}

	if raw, ok := obj[filesKey]; ok {
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, invalidFieldType(raw, filesKey, recordTypeName, "an array")
		}
		r.files = make([]File, 0, len(elems))
		for _, e := range elems {
			f, err := DecodeFile(e)
			if err != nil {
				return nil, err
			}
			r.files = append(r.files, f)
		}
	}

	if raw, ok := obj[userDefinedKey]; ok {
		if err := json.Unmarshal(raw, &r.userDefined); err != nil {
			return nil, invalidFieldType(raw, userDefinedKey, recordTypeName, "a JSON value")
		}
	}

	return r, nil
}

// ID returns the record's identity.
func (r *BaseRecord) ID() ID { return r.id }

// Type returns the record's type tag.
func (r *BaseRecord) Type() string { return r.typ }

// Data returns the record's data in insertion order.
func (r *BaseRecord) Data() []Datum { return r.data }

// Files returns the record's files in insertion order.
func (r *BaseRecord) Files() []File { return r.files }

// AddDatum appends a datum to the record.
func (r *BaseRecord) AddDatum(d Datum) { r.data = append(r.data, d) }

// AddFile appends a file reference to the record.
func (r *BaseRecord) AddFile(f File) { r.files = append(r.files, f) }

// UserDefinedContent returns the record's user-defined content as decoded
// JSON (map[string]any, []any, string, float64, bool), or nil when none is
// set. Maps and slices are returned live, so nested structure can be
// mutated in place without replacing the whole value.
func (r *BaseRecord) UserDefinedContent() any { return r.userDefined }

// SetUserDefinedContent replaces the user-defined content wholesale.
// Setting nil clears it, which omits the key on encode.
func (r *BaseRecord) SetUserDefinedContent(v any) { r.userDefined = v }

// UserDefinedObject returns the user-defined content as a mutable object,
// initializing an empty one when no content is set. It returns nil when
// the stored content exists but is not a JSON object.
func (r *BaseRecord) UserDefinedObject() map[string]any {
	switch v := r.userDefined.(type) {
	case nil:
		m := map[string]any{}
		r.userDefined = m
		return m
	case map[string]any:
		return v
	default:
		return nil
	}
}

// EncodeFields returns the record's common fields as a JSON object map.
// Subtypes call this from their own MarshalJSON, add their keys, and
// marshal the result.
func (r *BaseRecord) EncodeFields() map[string]any {
	obj := map[string]any{typeKey: r.typ}
	obj[r.id.idKey()] = r.id.value
	if len(r.data) > 0 {
		obj[dataKey] = r.data
	}
	if len(r.files) > 0 {
		obj[filesKey] = r.files
	}
	if r.userDefined != nil {
		obj[userDefinedKey] = r.userDefined
	}
	return obj
}

// MarshalJSON implements json.Marshaler. The identity serializes under
// "id" for global identities and "local_id" for local ones, never both;
// empty data/files and unset user-defined content are omitted.
func (r *BaseRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.EncodeFields())
}
