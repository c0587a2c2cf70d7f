package mnoda

import (
	"encoding/json"
)

// Relationship is a subject–predicate–object triple describing how two
// Records relate, read as "<subject> <predicate> <object>":
//
//	Task_22 contains Run_1024
//	msub_1_1 describes out_j_1_1
//
// Predicates in the active voice are recommended so the direction of the
// relationship stays constant; that convention is advisory, not enforced.
// A Relationship is immutable after construction.
type Relationship struct {
	subject   ID
	predicate string
	object    ID
}

const relationshipTypeName = "Relationship"

// Relationship JSON keys. Both endpoints serialize as bare strings; the
// local/global distinction of a relationship endpoint is resolved on the
// database side, not encoded here.
const (
	subjectKey   = "subject"
	predicateKey = "predicate"
	objectKey    = "object"
)

// NewRelationship creates a relationship between two record identities.
func NewRelationship(subject ID, predicate string, object ID) Relationship {
	return Relationship{subject: subject, predicate: predicate, object: object}
}

// DecodeRelationship creates a Relationship from its JSON representation.
// All three keys are required. Decoded endpoints carry global scope, since
// the JSON form does not distinguish local from global endpoints.
func DecodeRelationship(data json.RawMessage) (Relationship, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return Relationship{}, invalidFieldType(data, "", relationshipTypeName, "an object")
	}

	subject, err := requiredString(obj, subjectKey, relationshipTypeName)
	if err != nil {
		return Relationship{}, err
	}
	predicate, err := requiredString(obj, predicateKey, relationshipTypeName)
	if err != nil {
		return Relationship{}, err
	}
	object, err := requiredString(obj, objectKey, relationshipTypeName)
	if err != nil {
		return Relationship{}, err
	}
	return Relationship{
		subject:   NewID(subject, IDTypeGlobal),
		predicate: predicate,
		object:    NewID(object, IDTypeGlobal),
	}, nil
}

// Subject returns the subject of the relationship.
func (r Relationship) Subject() ID { return r.subject }

// Predicate returns the predicate of the relationship.
func (r Relationship) Predicate() string { return r.predicate }

// Object returns the object of the relationship.
func (r Relationship) Object() ID { return r.object }

// MarshalJSON implements json.Marshaler, emitting exactly the subject,
// predicate and object keys.
func (r Relationship) MarshalJSON() ([]byte, error) {
	aux := struct {
		Subject   string `json:"subject"`
		Predicate string `json:"predicate"`
		Object    string `json:"object"`
	}{
		Subject:   r.subject.value,
		Predicate: r.predicate,
		Object:    r.object.value,
	}
	return json.Marshal(aux)
}
