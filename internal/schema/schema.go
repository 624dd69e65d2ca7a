// Package schema holds the static layout tables of the SEG-Y binary file
// header and trace header, the data sample format table and the revision
// resolver.
//
// Tables are built once at init and never mutated; they are safe to share
// between goroutines.
package schema

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/robert-malhotra/go-segy/internal/dtype"
	"github.com/robert-malhotra/go-segy/internal/errs"
)

// Field describes one fixed-position header field.
type Field struct {
	Name   string
	Offset int        // byte offset; absolute for the file header, relative to the trace start for trace headers
	Kind   dtype.Kind // numeric kind of each element
	Count  int        // number of consecutive elements; 0 means 1
	// Default is written when no value is supplied.
	Default int64
	// Descriptions maps revision to code to a human readable label.
	Descriptions map[Revision]map[int64]string
}

// Width returns the number of elements the field spans.
func (f Field) Width() int {
	if f.Count < 1 {
		return 1
	}
	return f.Count
}

// Size returns the field size in bytes.
func (f Field) Size() int {
	return f.Width() * f.Kind.Size()
}

// End returns the offset one past the field's last byte.
func (f Field) End() int {
	return f.Offset + f.Size()
}

// Schema is an ordered set of fields covering a fixed-size block.
type Schema struct {
	name   string
	base   int
	size   int
	fields []Field
	index  map[string]int
}

// New builds a schema for the block [base, base+size). Fields keep their
// declaration order. Names must be unique and every field must lie inside
// the block; fields may overlap.
func New(name string, base, size int, fields ...Field) (*Schema, error) {
	s := &Schema{
		name:   name,
		base:   base,
		size:   size,
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	copy(s.fields, fields)

	for i, f := range s.fields {
		if f.Name == "" {
			return nil, errors.Wrapf(errs.ErrInvalidArgument, "%s: field %d has no name", name, i)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, errors.Wrapf(errs.ErrInvalidArgument, "%s: duplicate field %q", name, f.Name)
		}
		if f.Kind.Size() == 0 {
			return nil, errors.Wrapf(errs.ErrUnsupportedDataType, "%s: field %q has kind %v", name, f.Name, f.Kind)
		}
		if f.Offset < base || f.End() > base+size {
			return nil, errors.Wrapf(errs.ErrInvalidArgument,
				"%s: field %q spans [%d, %d) outside [%d, %d)", name, f.Name, f.Offset, f.End(), base, base+size)
		}
		s.index[f.Name] = i
	}
	return s, nil
}

// MustNew is like New but panics on error. It is meant for package-level
// tables.
func MustNew(name string, base, size int, fields ...Field) *Schema {
	s, err := New(name, base, size, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewTraceHeader builds a trace header schema from caller-supplied fields.
// Trace header fields are scalar.
func NewTraceHeader(fields ...Field) (*Schema, error) {
	for _, f := range fields {
		if f.Width() != 1 {
			return nil, errors.Wrapf(errs.ErrInvalidArgument, "trace header field %q has width %d", f.Name, f.Width())
		}
	}
	return New(TraceHeader.name, 0, TraceHeaderSize, fields...)
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Base returns the offset of the block the schema covers.
func (s *Schema) Base() int { return s.base }

// Size returns the size of the block the schema covers.
func (s *Schema) Size() int { return s.size }

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Fields returns the fields in declaration order. The slice is a copy.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Names returns the field names in declaration order.
func (s *Schema) Names() []string {
	return lo.Map(s.fields, func(f Field, _ int) string { return f.Name })
}

// Lookup returns the named field.
func (s *Schema) Lookup(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Has reports whether the schema declares the named field.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Subset returns a schema holding only the named fields, kept in this
// schema's declaration order.
func (s *Schema) Subset(names ...string) (*Schema, error) {
	if missing := lo.Filter(names, func(n string, _ int) bool { return !s.Has(n) }); len(missing) > 0 {
		return nil, errors.Wrapf(errs.ErrUnknownField, "%s: %v", s.name, missing)
	}
	want := lo.SliceToMap(names, func(n string) (string, struct{}) { return n, struct{}{} })
	picked := lo.Filter(s.fields, func(f Field, _ int) bool {
		_, ok := want[f.Name]
		return ok
	})
	return New(s.name, s.base, s.size, picked...)
}

// Gaps returns the byte ranges of the block no field covers, as
// [start, end) pairs.
func (s *Schema) Gaps() [][2]int {
	spans := lo.Map(s.fields, func(f Field, _ int) [2]int { return [2]int{f.Offset, f.End()} })
	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })

	var gaps [][2]int
	pos := s.base
	for _, sp := range spans {
		if sp[0] > pos {
			gaps = append(gaps, [2]int{pos, sp[0]})
		}
		pos = max(pos, sp[1])
	}
	if end := s.base + s.size; pos < end {
		gaps = append(gaps, [2]int{pos, end})
	}
	return gaps
}

// Describe returns the label for code in the named field's description
// table for rev.
func (s *Schema) Describe(name string, rev Revision, code int64) (string, bool) {
	f, ok := s.Lookup(name)
	if !ok {
		return "", false
	}
	return f.Describe(rev, code)
}

// Describe returns the label for code in the field's description table
// for rev.
func (f Field) Describe(rev Revision, code int64) (string, bool) {
	table, ok := f.Descriptions[rev]
	if !ok {
		return "", false
	}
	label, ok := table[code]
	return label, ok
}
