package mnoda

import (
	"encoding/json"
)

// RecordFactory constructs a concrete Record variant from its JSON
// representation. Factories receive the full record object, including the
// "type" key they were registered under.
type RecordFactory func(data json.RawMessage) (Record, error)

// RecordLoader resolves a record's "type" tag to the factory that builds
// the corresponding Record variant. It is the extensibility seam of this
// package: new record subtypes register here without the core knowing
// their concrete type, and documents referencing since-removed subtypes
// still decode as plain BaseRecords.
//
// A RecordLoader is a plain mutable registry with no synchronization;
// construct and populate it once, then share it read-only across decodes.
type RecordLoader struct {
	factories map[string]RecordFactory
}

// NewRecordLoader creates an empty RecordLoader. Every type tag decodes to
// a BaseRecord until factories are registered.
func NewRecordLoader() *RecordLoader {
	return &RecordLoader{factories: make(map[string]RecordFactory)}
}

// DefaultRecordLoader creates a RecordLoader pre-populated with all record
// types known to this package (currently "run").
func DefaultRecordLoader() *RecordLoader {
	l := NewRecordLoader()
	l.AddTypeLoader(RunType, func(data json.RawMessage) (Record, error) {
		return DecodeRun(data)
	})
	return l
}

// AddTypeLoader registers the factory for the given type tag, replacing
// any previous registration.
func (l *RecordLoader) AddTypeLoader(typ string, factory RecordFactory) {
	l.factories[typ] = factory
}

// CanLoad reports whether a factory is registered for the given type tag.
func (l *RecordLoader) CanLoad(typ string) bool {
	_, ok := l.factories[typ]
	return ok
}

// Load constructs a Record from its JSON representation, dispatching on
// the required "type" key. An unregistered type tag is not an error: the
// record degrades gracefully to a BaseRecord, keeping its original tag.
func (l *RecordLoader) Load(data json.RawMessage) (Record, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, invalidFieldType(data, "", recordTypeName, "an object")
	}
	typ, err := requiredString(obj, typeKey, recordTypeName)
	if err != nil {
		return nil, err
	}
	if factory, ok := l.factories[typ]; ok {
		return factory(data)
	}
	return DecodeBaseRecord(data)
}
