// Package docstore reads and writes Mnoda documents on the local file
// system.
//
// Save writes exactly the document's JSON encoding as UTF-8 text,
// overwriting any existing file; Load parses UTF-8 JSON text and feeds it
// through a RecordLoader. Paths ending in ".zst" are transparently
// zstd-compressed. Schema/validation failures are reported as
// *DecodeError so callers can tell them apart from I/O failures, which
// pass through unchanged.
package docstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/mnoda"
	"github.com/hupe1980/mnoda/codec"
)

// compressedExt marks document files that are zstd-compressed.
const compressedExt = ".zst"

// DecodeError is returned by Load when a file was read successfully but
// its contents failed schema or validation checks. The underlying decode
// failure (e.g. *mnoda.ErrMissingField) is available via errors.Unwrap.
type DecodeError struct {
	Path  string
	cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.cause)
}

func (e *DecodeError) Unwrap() error { return e.cause }

// Save writes the document to path, overwriting any existing file. The
// write is atomic: the document is written to a temp file in the same
// directory, synced, then renamed into place.
func Save(doc *mnoda.Document, path string, opts ...Option) error {
	o := applyOptions(opts)

	data, err := o.codec.Marshal(doc)
	if err != nil {
		return err
	}
	if o.indent != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", o.indent); err != nil {
			return err
		}
		data = buf.Bytes()
	}

	if isCompressed(path) {
		level := zstd.EncoderLevelFromZstd(o.compressionLevel)
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
		if err != nil {
			return err
		}
		data = enc.EncodeAll(data, nil)
		if err := enc.Close(); err != nil {
			return err
		}
	}

	tmpPath := path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}

	o.logger.Debug("saved document", "path", path,
		"records", len(doc.Records()), "relationships", len(doc.Relationships()),
		"bytes", len(data))

	return nil
}

// Load reads the document at path, dispatching record types through the
// given loader. I/O failures are returned as-is; malformed or invalid
// document contents are returned as *DecodeError.
func Load(path string, loader *mnoda.RecordLoader, opts ...Option) (*mnoda.Document, error) {
	o := applyOptions(opts)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if isCompressed(path) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		if data, err = dec.DecodeAll(data, nil); err != nil {
			return nil, &DecodeError{Path: path, cause: err}
		}
	}

	doc, err := mnoda.DecodeDocument(data, loader)
	if err != nil {
		return nil, &DecodeError{Path: path, cause: err}
	}

	o.logger.Debug("loaded document", "path", path,
		"records", len(doc.Records()), "relationships", len(doc.Relationships()))

	return doc, nil
}

// isCompressed reports whether a path names a zstd-compressed document.
func isCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), compressedExt)
}

type options struct {
	codec            codec.Codec
	logger           *mnoda.Logger
	compressionLevel int
	indent           string
	concurrency      int
}

// Option configures Save/Load behavior.
type Option func(*options)

func applyOptions(opts []Option) *options {
	o := &options{
		codec:            codec.Default,
		logger:           mnoda.NoopLogger(),
		compressionLevel: 3, // zstd default level
		concurrency:      8,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithCodec configures the codec used to marshal documents on Save.
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithLogger configures diagnostic logging. The default discards output.
func WithLogger(l *mnoda.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = mnoda.NoopLogger()
		}
		o.logger = l
	}
}

// WithCompressionLevel sets the zstd compression level (1-22) used for
// ".zst" paths. The default (3) balances speed and size.
func WithCompressionLevel(level int) Option {
	return func(o *options) {
		o.compressionLevel = level
	}
}

// WithIndent pretty-prints saved documents using the given indent string.
// The default writes compact JSON.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// WithConcurrency bounds the number of documents LoadDir decodes in
// parallel. Values below 1 are treated as 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}
