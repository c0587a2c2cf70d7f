package mnoda

import (
	"encoding/json"
)

// File is a reference to a resource associated with a Record: an input
// deck, an output image, a mesh, and so on. The URI is the only required
// field; a MIME type and tags are optional.
//
// Files are plain values owned by the Record that holds them.
type File struct {
	uri      string
	mimeType string
	tags     []string
}

// NewFile creates a File referencing the given URI.
func NewFile(uri string) File {
	return File{uri: uri}
}

// URI returns the file's URI.
func (f File) URI() string { return f.uri }

// MimeType returns the file's MIME type, or "" when unset.
func (f File) MimeType() string { return f.mimeType }

// Tags returns the file's tags in insertion order.
func (f File) Tags() []string { return f.tags }

// SetMimeType sets the MIME type emitted alongside the URI.
func (f *File) SetMimeType(mimeType string) { f.mimeType = mimeType }

// SetTags replaces the file's tags.
func (f *File) SetTags(tags []string) { f.tags = tags }

const fileTypeName = "File"

// DecodeFile creates a File from its JSON representation.
// "uri" is required; "mimetype" and "tags" are optional.
func DecodeFile(data json.RawMessage) (File, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return File{}, invalidFieldType(data, "", fileTypeName, "an object")
	}

	var f File
	var err error
	if f.uri, err = requiredString(obj, "uri", fileTypeName); err != nil {
		return File{}, err
	}
	if f.mimeType, err = optionalString(obj, "mimetype", fileTypeName); err != nil {
		return File{}, err
	}
	if f.tags, err = optionalStringSlice(obj, "tags", fileTypeName); err != nil {
		return File{}, err
	}
	return f, nil
}

// MarshalJSON implements json.Marshaler. The empty MIME type and empty
// tags are omitted.
func (f File) MarshalJSON() ([]byte, error) {
	aux := struct {
		URI      string   `json:"uri"`
		MimeType string   `json:"mimetype,omitempty"`
		Tags     []string `json:"tags,omitempty"`
	}{
		URI:      f.uri,
		MimeType: f.mimeType,
		Tags:     f.tags,
	}
	return json.Marshal(aux)
}
