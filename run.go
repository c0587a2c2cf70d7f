package mnoda

import (
	"encoding/json"
)

// RunType is the type tag reserved for Run records.
const RunType = "run"

// Run is a Record subtype representing one finalized run of an
// application: a single set of inputs, their outputs, and metadata about
// how they were produced.
type Run struct {
	BaseRecord
	application string
	version     string
	user        string
}

var _ Record = (*Run)(nil)

const runTypeName = "Run"

// Run-specific JSON keys, appended to the base record shape.
const (
	applicationKey = "application"
	versionKey     = "version"
	userKey        = "user"
)

// NewRun creates a Run for the given application. Version and user are
// optional and may be left empty.
func NewRun(id ID, application, version, user string) *Run {
	return &Run{
		BaseRecord:  *NewBaseRecord(id, RunType),
		application: application,
		version:     version,
		user:        user,
	}
}

// DecodeRun creates a Run from its JSON representation.
//
// "application" is required on top of the base record fields. Unlike the
// base record, a run that carries neither "id" nor "local_id" is given a
// freshly generated local identity rather than rejected, so runs can be
// emitted without the producer coordinating identities.
func DecodeRun(data json.RawMessage) (*Run, error) {
	base, err := decodeBaseRecord(data, NewLocalID)
	if err != nil {
		return nil, err
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, invalidFieldType(data, "", runTypeName, "an object")
	}

	r := &Run{BaseRecord: *base}
	if r.application, err = requiredString(obj, applicationKey, runTypeName); err != nil {
		return nil, err
	}
	if r.version, err = optionalString(obj, versionKey, runTypeName); err != nil {
		return nil, err
	}
	if r.user, err = optionalString(obj, userKey, runTypeName); err != nil {
		return nil, err
	}
	return r, nil
}

// Application returns the application that produced the run.
func (r *Run) Application() string { return r.application }

// Version returns the application version, or "" when unset.
func (r *Run) Version() string { return r.version }

// User returns the user that produced the run, or "" when unset.
func (r *Run) User() string { return r.user }

// MarshalJSON implements json.Marshaler. It extends the base record shape
// with the run metadata keys, omitting the optional ones when empty.
func (r *Run) MarshalJSON() ([]byte, error) {
	obj := r.EncodeFields()
	obj[applicationKey] = r.application
	if r.version != "" {
		obj[versionKey] = r.version
	}
	if r.user != "" {
		obj[userKey] = r.user
	}
	return json.Marshal(obj)
}
