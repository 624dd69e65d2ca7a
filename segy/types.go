package segy

import (
	"github.com/robert-malhotra/go-segy/internal/dtype"
	"github.com/robert-malhotra/go-segy/internal/fileheader"
	"github.com/robert-malhotra/go-segy/internal/schema"
	"github.com/robert-malhotra/go-segy/internal/traceheader"
)

type (
	// Value is a decoded header value tagged with its numeric kind.
	Value = dtype.Value
	// Kind is a numeric kind.
	Kind = dtype.Kind
	// Field describes one header field.
	Field = schema.Field
	// Schema is an ordered set of header fields.
	Schema = schema.Schema
	// Revision is a normalized format revision.
	Revision = schema.Revision
	// SampleFormat describes a data sample format code.
	SampleFormat = schema.SampleFormat
	// FileHeader is the decoded textual and binary file header plus the
	// derived trace geometry.
	FileHeader = fileheader.Header
	// TraceHeaders holds trace header values column-wise.
	TraceHeaders = traceheader.Headers
)

// Numeric kinds.
const (
	Int8     = dtype.Int8
	Uint8    = dtype.Uint8
	Int16    = dtype.Int16
	Uint16   = dtype.Uint16
	Int32    = dtype.Int32
	Uint32   = dtype.Uint32
	Float32  = dtype.Float32
	Float64  = dtype.Float64
	IBMFloat = dtype.IBMFloat
)

// Revisions.
const (
	Rev0 = schema.Rev0
	Rev1 = schema.Rev1
)

// FileHeaderSchema returns the binary file header layout.
func FileHeaderSchema() *Schema { return schema.FileHeader }

// TraceHeaderSchema returns the standard trace header layout.
func TraceHeaderSchema() *Schema { return schema.TraceHeader }

// TraceHeaderFields returns the standard trace header restricted to the
// named fields, for reading only what is needed.
func TraceHeaderFields(names ...string) (*Schema, error) {
	return schema.TraceHeader.Subset(names...)
}

// NewTraceHeaderSchema builds a custom trace header layout. Offsets are
// relative to the start of the trace record.
func NewTraceHeaderSchema(fields ...Field) (*Schema, error) {
	return schema.NewTraceHeader(fields...)
}

// DefaultFileHeader returns a file header with every binary field at its
// default value.
func DefaultFileHeader() *FileHeader {
	return fileheader.Default()
}

// ResolveRevision maps a raw revision number to its normalized revision.
func ResolveRevision(raw int64) (Revision, error) {
	return schema.ResolveRevision(raw)
}
