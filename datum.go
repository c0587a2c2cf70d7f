package mnoda

import (
	"encoding/json"
)

// ValueKind identifies the concrete type stored in a Datum value.
type ValueKind uint8

const (
	// ValueString marks a string-valued Datum.
	ValueString ValueKind = iota
	// ValueScalar marks a number-valued Datum.
	ValueScalar
)

// Datum is a named value attached to a Record: an input, an output, or any
// other measurement worth indexing. The value is exactly one of a string
// or a double-precision number; no other JSON type is legal.
//
// Datums are plain values owned by the Record that holds them.
type Datum struct {
	name   string
	kind   ValueKind
	str    string
	scalar float64
	units  string
	tags   []string
}

// StringDatum creates a string-valued Datum.
func StringDatum(name, value string) Datum {
	return Datum{name: name, kind: ValueString, str: value}
}

// ScalarDatum creates a number-valued Datum.
func ScalarDatum(name string, value float64) Datum {
	return Datum{name: name, kind: ValueScalar, scalar: value}
}

// Name returns the datum's name.
func (d Datum) Name() string { return d.name }

// Kind returns the kind of the stored value.
func (d Datum) Kind() ValueKind { return d.kind }

// AsString returns the string value if the datum is string-valued.
func (d Datum) AsString() (string, bool) {
	if d.kind != ValueString {
		return "", false
	}
	return d.str, true
}

// AsScalar returns the numeric value if the datum is number-valued.
func (d Datum) AsScalar() (float64, bool) {
	if d.kind != ValueScalar {
		return 0, false
	}
	return d.scalar, true
}

// Units returns the datum's units, or "" when unset.
func (d Datum) Units() string { return d.units }

// Tags returns the datum's tags in insertion order.
func (d Datum) Tags() []string { return d.tags }

// SetUnits sets the units emitted alongside the value.
func (d *Datum) SetUnits(units string) { d.units = units }

// SetTags replaces the datum's tags.
func (d *Datum) SetTags(tags []string) { d.tags = tags }

const datumTypeName = "Datum"

// DecodeDatum creates a Datum from its JSON representation.
// "name" and "value" are required; "units" and "tags" are optional.
func DecodeDatum(data json.RawMessage) (Datum, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return Datum{}, invalidFieldType(data, "", datumTypeName, "an object")
	}

	var d Datum
	var err error
	if d.name, err = requiredString(obj, "name", datumTypeName); err != nil {
		return Datum{}, err
	}

	raw, ok := obj["value"]
	if !ok {
		return Datum{}, &ErrMissingField{Field: "value", Enclosing: datumTypeName}
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return Datum{}, invalidFieldType(raw, "value", datumTypeName, "a string or number")
	}
	switch x := v.(type) {
	case string:
		d.kind = ValueString
		d.str = x
	case float64:
		d.kind = ValueScalar
		d.scalar = x
	default:
		return Datum{}, invalidFieldType(raw, "value", datumTypeName, "a string or number")
	}

	if d.units, err = optionalString(obj, "units", datumTypeName); err != nil {
		return Datum{}, err
	}
	if d.tags, err = optionalStringSlice(obj, "tags", datumTypeName); err != nil {
		return Datum{}, err
	}
	return d, nil
}

// MarshalJSON implements json.Marshaler. Empty units and tags are omitted.
func (d Datum) MarshalJSON() ([]byte, error) {
	var value any
	if d.kind == ValueScalar {
		value = d.scalar
	} else {
		value = d.str
	}
	aux := struct {
		Name  string   `json:"name"`
		Value any      `json:"value"`
		Units string   `json:"units,omitempty"`
		Tags  []string `json:"tags,omitempty"`
	}{
		Name:  d.name,
		Value: value,
		Units: d.units,
		Tags:  d.tags,
	}
	return json.Marshal(aux)
}
