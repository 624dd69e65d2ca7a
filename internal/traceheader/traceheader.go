// Package traceheader reads and writes the 240-byte headers that precede
// every trace record. Values are held column-wise: one slice per field,
// indexed by trace.
package traceheader

import (
	"reflect"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	binpkg "github.com/robert-malhotra/go-segy/internal/binary"
	"github.com/robert-malhotra/go-segy/internal/dtype"
	"github.com/robert-malhotra/go-segy/internal/errs"
	"github.com/robert-malhotra/go-segy/internal/fileheader"
	"github.com/robert-malhotra/go-segy/internal/schema"
)

// DefaultFieldRecord is the field record number synthesized headers carry.
const DefaultFieldRecord = 1000

// Headers is a columnar set of trace header values.
type Headers struct {
	schema   *schema.Schema
	revision schema.Revision
	columns  map[string][]dtype.Value
	count    int
}

func newHeaders(s *schema.Schema, rev schema.Revision, count int) *Headers {
	return &Headers{
		schema:   s,
		revision: rev,
		columns:  make(map[string][]dtype.Value, s.Len()),
		count:    count,
	}
}

// traceRange returns the 0-based [first, last) traces a traceIndex selects:
// 0 selects every trace, n > 0 selects trace n (1-based).
func traceRange(h *fileheader.Header, traceIndex int) (int, int, error) {
	switch {
	case traceIndex < 0:
		return 0, 0, errors.Wrapf(errs.ErrInvalidArgument, "trace index %d", traceIndex)
	case traceIndex == 0:
		return 0, h.TraceCount, nil
	case traceIndex > h.TraceCount:
		return 0, 0, errors.Wrapf(errs.ErrTruncatedPayload, "trace %d of %d", traceIndex, h.TraceCount)
	default:
		return traceIndex - 1, traceIndex, nil
	}
}

// ReadField decodes one field for the selected traces. If the field is dt
// and the first decoded value is zero, every value is replaced by the file
// header's dt.
func ReadField(h *fileheader.Header, buf []byte, codec *binpkg.Codec, f schema.Field, traceIndex int, logger *zap.Logger) ([]dtype.Value, error) {
	first, last, err := traceRange(h, traceIndex)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Debug("reading trace header",
			zap.String("field", f.Name),
			zap.Int("byte", f.Offset+1),
			zap.Stringer("kind", f.Kind))
	}

	out := make([]dtype.Value, last-first)
	for i := range out {
		pos := h.TraceOffset(first+i) + int64(f.Offset)
		v, err := codec.UnpackValue(buf, int(pos), f.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "trace %d field %s", first+i+1, f.Name)
		}
		out[i] = v
	}

	if f.Name == schema.FieldDt && len(out) > 0 && out[0].IsZero() {
		fallback := dtype.Int(f.Kind, int64(h.SampleInterval()))
		for i := range out {
			out[i] = fallback
		}
	}
	return out, nil
}

// ReadAll decodes every field of s for the selected traces. A nil s reads
// the standard trace header.
func ReadAll(h *fileheader.Header, buf []byte, codec *binpkg.Codec, s *schema.Schema, traceIndex int, logger *zap.Logger) (*Headers, error) {
	if s == nil {
		s = schema.TraceHeader
	}
	first, last, err := traceRange(h, traceIndex)
	if err != nil {
		return nil, err
	}

	out := newHeaders(s, h.Revision, last-first)
	for _, f := range s.Fields() {
		col, err := ReadField(h, buf, codec, f, traceIndex, logger)
		if err != nil {
			return nil, err
		}
		out.columns[f.Name] = col
	}
	return out, nil
}

// Synthesize builds headers for traces traces of ns samples at interval
// dt. Every field starts at zero; sequence numbers count from 1, the field
// record is DefaultFieldRecord and ns and dt are broadcast. Each override
// replaces a whole column: a slice must hold one value per trace, a scalar
// is broadcast.
func Synthesize(s *schema.Schema, traces, ns, dt int, overrides map[string]interface{}, logger *zap.Logger) (*Headers, error) {
	if s == nil {
		s = schema.TraceHeader
	}
	if traces < 0 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "trace count %d", traces)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	out := newHeaders(s, schema.Rev1, traces)
	for _, f := range s.Fields() {
		col := make([]dtype.Value, traces)
		for i := range col {
			var v int64
			switch f.Name {
			case schema.FieldTraceSequenceLine, schema.FieldTraceSequenceFile, schema.FieldTraceNumber:
				v = int64(i + 1)
			case schema.FieldFieldRecord:
				v = DefaultFieldRecord
			case schema.FieldNs:
				v = int64(ns)
			case schema.FieldDt:
				v = int64(dt)
			}
			col[i] = dtype.Int(f.Kind, v)
		}
		out.columns[f.Name] = col
	}

	for name, raw := range overrides {
		f, ok := s.Lookup(name)
		if !ok {
			return nil, errors.Wrapf(errs.ErrUnknownField, "trace header override %q", name)
		}
		col, err := coerceColumn(f, raw, traces)
		if err != nil {
			return nil, errors.Wrapf(err, "trace header override %q", name)
		}
		logger.Debug("custom trace header field", zap.String("field", name))
		out.columns[name] = col
	}
	return out, nil
}

func coerceColumn(f schema.Field, raw interface{}, traces int) ([]dtype.Value, error) {
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		v, err := coerceValue(f.Kind, raw)
		if err != nil {
			return nil, err
		}
		col := make([]dtype.Value, traces)
		for i := range col {
			col[i] = v
		}
		return col, nil
	}

	if rv.Len() != traces {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "%d values for %d traces", rv.Len(), traces)
	}
	col := make([]dtype.Value, traces)
	for i := range col {
		v, err := coerceValue(f.Kind, rv.Index(i).Interface())
		if err != nil {
			return nil, errors.Wrapf(err, "trace %d", i+1)
		}
		col[i] = v
	}
	return col, nil
}

func coerceValue(k dtype.Kind, raw interface{}) (dtype.Value, error) {
	if v, ok := raw.(dtype.Value); ok {
		return dtype.Float(k, v.Float64()), nil
	}
	if k.IsFloat() {
		f, err := cast.ToFloat64E(raw)
		if err != nil {
			return dtype.Value{}, errors.Wrap(errs.ErrInvalidArgument, err.Error())
		}
		return dtype.Float(k, f), nil
	}
	i, err := cast.ToInt64E(raw)
	if err != nil {
		return dtype.Value{}, errors.Wrap(errs.ErrInvalidArgument, err.Error())
	}
	return dtype.Int(k, i), nil
}

// EncodeTrace serializes the header of the 0-based trace i into a
// TraceHeaderSize block. Bytes no field covers are zero.
func (hs *Headers) EncodeTrace(codec *binpkg.Codec, i int) ([]byte, error) {
	if i < 0 || i >= hs.count {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "trace %d of %d", i, hs.count)
	}
	out := make([]byte, schema.TraceHeaderSize)
	for _, f := range hs.schema.Fields() {
		if err := codec.PackValue(out, f.Offset, f.Kind, hs.columns[f.Name][i]); err != nil {
			return nil, errors.Wrapf(err, "trace %d field %s", i+1, f.Name)
		}
	}
	return out, nil
}

// Schema returns the schema the headers were read or built with.
func (hs *Headers) Schema() *schema.Schema { return hs.schema }

// Revision returns the revision used for descriptions.
func (hs *Headers) Revision() schema.Revision { return hs.revision }

// Len returns the number of traces.
func (hs *Headers) Len() int { return hs.count }

// Names returns the field names in schema order.
func (hs *Headers) Names() []string { return hs.schema.Names() }

// Column returns every trace's value of the named field, or nil.
func (hs *Headers) Column(name string) []dtype.Value {
	return hs.columns[name]
}

// Value returns the named field of the 0-based trace i.
func (hs *Headers) Value(name string, i int) (dtype.Value, bool) {
	col, ok := hs.columns[name]
	if !ok || i < 0 || i >= len(col) {
		return dtype.Value{}, false
	}
	return col[i], true
}

// Int returns the named field of the 0-based trace i as an integer.
func (hs *Headers) Int(name string, i int) int64 {
	v, _ := hs.Value(name, i)
	return v.Int64()
}

// Row returns every field of the 0-based trace i.
func (hs *Headers) Row(i int) map[string]dtype.Value {
	row := make(map[string]dtype.Value, len(hs.columns))
	for name, col := range hs.columns {
		if i >= 0 && i < len(col) {
			row[name] = col[i]
		}
	}
	return row
}

// Describe returns the label of the named enumerated field's value on the
// 0-based trace i.
func (hs *Headers) Describe(name string, i int) (string, bool) {
	v, ok := hs.Value(name, i)
	if !ok {
		return "", false
	}
	return hs.schema.Describe(name, hs.revision, v.Int64())
}
