package mnoda

import (
	"encoding/json"
)

// Document is the top-level object of a JSON file conforming to the Mnoda
// schema. Serialized documents can be ingested into a Mnoda database and
// used with the Sina tool.
//
// A document holds at most two lists: records and relationships. An empty
// document serializes to
//
//	{"records":[],"relationships":[]}
//
// Documents can be assembled programmatically via AddRecord and
// AddRelationship, or decoded from existing JSON with DecodeDocument. The
// document exclusively owns its records; both lists keep insertion order,
// which is significant for round-trip fidelity.
type Document struct {
	records       []Record
	relationships []Relationship
}

const documentTypeName = "Document"

// Document JSON keys.
const (
	recordsKey       = "records"
	relationshipsKey = "relationships"
)

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// DecodeDocument creates a Document from its JSON representation, using
// the given loader to dispatch each element of the "records" array to its
// concrete record type. Absent "records" or "relationships" arrays are
// tolerated as empty; a single malformed element aborts the whole decode.
func DecodeDocument(data json.RawMessage, loader *RecordLoader) (*Document, error) {
	var obj struct {
		Records       []json.RawMessage `json:"records"`
		Relationships []json.RawMessage `json:"relationships"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, invalidFieldType(data, "", documentTypeName, "an object")
	}

	d := &Document{}
	for _, raw := range obj.Records {
		rec, err := loader.Load(raw)
		if err != nil {
			return nil, err
		}
		d.records = append(d.records, rec)
	}
	for _, raw := range obj.Relationships {
		rel, err := DecodeRelationship(raw)
		if err != nil {
			return nil, err
		}
		d.relationships = append(d.relationships, rel)
	}
	return d, nil
}

// AddRecord appends a record to the document, taking ownership of it.
// No identity-uniqueness check is performed.
func (d *Document) AddRecord(r Record) {
	d.records = append(d.records, r)
}

// AddRelationship appends a relationship to the document.
func (d *Document) AddRelationship(r Relationship) {
	d.relationships = append(d.relationships, r)
}

// Records returns the document's records in insertion order.
func (d *Document) Records() []Record { return d.records }

// Relationships returns the document's relationships in insertion order.
func (d *Document) Relationships() []Relationship { return d.relationships }

// MarshalJSON implements json.Marshaler. Both arrays are always present,
// even when empty, in insertion order.
func (d *Document) MarshalJSON() ([]byte, error) {
	records := d.records
	if records == nil {
		records = []Record{}
	}
	relationships := d.relationships
	if relationships == nil {
		relationships = []Relationship{}
	}
	aux := struct {
		Records       []Record       `json:"records"`
		Relationships []Relationship `json:"relationships"`
	}{
		Records:       records,
		Relationships: relationships,
	}
	return json.Marshal(aux)
}
