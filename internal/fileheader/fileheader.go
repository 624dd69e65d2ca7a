// Package fileheader reads and writes the SEG-Y file header: the 3200-byte
// textual header followed by the 400-byte binary header.
//
// Reading also derives the trace geometry (bytes per trace record and trace
// count) from the buffer length, since the format does not store it.
package fileheader

import (
	"bytes"
	"unicode"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	binpkg "github.com/robert-malhotra/go-segy/internal/binary"
	"github.com/robert-malhotra/go-segy/internal/dtype"
	"github.com/robert-malhotra/go-segy/internal/errs"
	"github.com/robert-malhotra/go-segy/internal/schema"
)

// Sizes of the fixed regions.
const (
	TextualSize     = schema.TextualHeaderSize
	BinarySize      = schema.BinaryHeaderSize
	Size            = schema.FileHeaderSize
	TraceHeaderSize = schema.TraceHeaderSize
)

// Header is a decoded (or to-be-encoded) file header.
type Header struct {
	// Text is the textual header, always TextualSize bytes.
	Text []byte

	values  map[string]dtype.Value
	vectors map[string][]dtype.Value

	// Resolved from the binary header.
	Revision schema.Revision
	Format   schema.SampleFormat

	// Derived geometry.
	TraceByteSize int
	TraceCount    int
	TrailingBytes int

	// Source names where the header was read from, if known.
	Source string
}

// Default returns a header with every binary field at its declared default
// and a blank textual header.
func Default() *Header {
	h := &Header{
		Text:    bytes.Repeat([]byte{' '}, TextualSize),
		values:  make(map[string]dtype.Value),
		vectors: make(map[string][]dtype.Value),
	}
	for _, f := range schema.FileHeader.Fields() {
		if f.Width() > 1 {
			vec := make([]dtype.Value, f.Width())
			for i := range vec {
				vec[i] = dtype.Int(f.Kind, f.Default)
			}
			h.vectors[f.Name] = vec
			continue
		}
		h.values[f.Name] = dtype.Int(f.Kind, f.Default)
	}
	return h
}

// Read decodes the file header at the start of buf and derives the trace
// geometry from len(buf).
func Read(buf []byte, codec *binpkg.Codec, logger *zap.Logger) (*Header, error) {
	if len(buf) < Size {
		return nil, errors.Wrapf(errs.ErrTruncatedHeader, "buffer holds %d bytes, need %d", len(buf), Size)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &Header{
		Text:    append([]byte(nil), buf[:TextualSize]...),
		values:  make(map[string]dtype.Value),
		vectors: make(map[string][]dtype.Value),
	}
	for _, f := range schema.FileHeader.Fields() {
		if f.Width() > 1 {
			vec, err := codec.UnpackValues(buf, f.Offset, f.Kind, f.Width())
			if err != nil {
				return nil, errors.Wrapf(err, "field %s", f.Name)
			}
			h.vectors[f.Name] = vec
			continue
		}
		v, err := codec.UnpackValue(buf, f.Offset, f.Kind)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", f.Name)
		}
		h.values[f.Name] = v
	}

	if err := h.Resolve(); err != nil {
		return nil, err
	}
	h.Layout(len(buf) - Size)

	logger.Debug("file header decoded",
		zap.Int("format", h.Format.Code),
		zap.String("description", h.Format.Description),
		zap.Stringer("revision", h.Revision),
		zap.Int("ns", h.SamplesPerTrace()),
		zap.Int("dt", h.SampleInterval()),
		zap.Int("traces", h.TraceCount))
	if h.TrailingBytes > 0 {
		logger.Warn("trailing bytes after last whole trace",
			zap.Int("bytes", h.TrailingBytes),
			zap.Int("traceByteSize", h.TraceByteSize))
	}
	return h, nil
}

// Resolve normalizes the revision field and looks up the data sample
// format it selects.
func (h *Header) Resolve() error {
	rev, err := schema.ResolveRevision(h.Int(schema.FieldRevision))
	if err != nil {
		return err
	}
	format, err := schema.LookupSampleFormat(rev, int(h.Int(schema.FieldFormat)))
	if err != nil {
		return err
	}
	h.Revision = rev
	h.Format = format
	h.TraceByteSize = TraceHeaderSize + h.SamplesPerTrace()*format.BytesPerSample
	return nil
}

// Layout derives the trace count and trailing byte count from the size of
// the payload following the file header. Resolve must have been called.
func (h *Header) Layout(payload int) {
	if payload < 0 {
		payload = 0
	}
	h.TraceCount = payload / h.TraceByteSize
	h.TrailingBytes = payload % h.TraceByteSize
}

// TraceOffset returns the file offset of the record of the 0-based trace i.
func (h *Header) TraceOffset(i int) int64 {
	return int64(Size) + int64(i)*int64(h.TraceByteSize)
}

// PayloadSize returns the bytes the trace records occupy.
func (h *Header) PayloadSize() int64 {
	return int64(h.TraceCount) * int64(h.TraceByteSize)
}

// SetText sets the textual header, padding with spaces or truncating to
// TextualSize bytes.
func (h *Header) SetText(text string) {
	b := bytes.Repeat([]byte{' '}, TextualSize)
	copy(b, text)
	h.Text = b
}

// Set assigns a scalar binary header field. The value wraps to the field
// width.
func (h *Header) Set(name string, v int64) error {
	f, ok := schema.FileHeader.Lookup(name)
	if !ok {
		return errors.Wrapf(errs.ErrUnknownField, "file header field %q", name)
	}
	if f.Width() > 1 {
		return errors.Wrapf(errs.ErrInvalidArgument, "file header field %q is a vector", name)
	}
	h.values[name] = dtype.Int(f.Kind, v)
	return nil
}

// Value returns a scalar field.
func (h *Header) Value(name string) (dtype.Value, bool) {
	v, ok := h.values[name]
	return v, ok
}

// Int returns a scalar field as an integer, or 0 when absent.
func (h *Header) Int(name string) int64 {
	return h.values[name].Int64()
}

// Vector returns a field with width > 1.
func (h *Header) Vector(name string) []dtype.Value {
	return h.vectors[name]
}

// Fields returns the scalar fields in schema order.
func (h *Header) Fields() []schema.Field {
	var out []schema.Field
	for _, f := range schema.FileHeader.Fields() {
		if f.Width() == 1 {
			out = append(out, f)
		}
	}
	return out
}

// SamplesPerTrace returns the ns field.
func (h *Header) SamplesPerTrace() int {
	return int(h.Int(schema.FieldNs))
}

// SampleInterval returns the dt field.
func (h *Header) SampleInterval() int {
	return int(h.Int(schema.FieldDt))
}

// Describe returns the revision-dependent label of an enumerated field's
// current value.
func (h *Header) Describe(name string) (string, bool) {
	return schema.FileHeader.Describe(name, h.Revision, h.Int(name))
}

// Encode serializes the textual and binary headers into one Size-byte
// block, fields in declaration order.
func (h *Header) Encode(codec *binpkg.Codec) ([]byte, error) {
	out := make([]byte, Size)
	copy(out[:TextualSize], h.Text)
	for i := len(h.Text); i < TextualSize; i++ {
		out[i] = ' '
	}

	for _, f := range schema.FileHeader.Fields() {
		if f.Width() > 1 {
			vec := h.vectors[f.Name]
			for i := 0; i < f.Width(); i++ {
				v := dtype.Int(f.Kind, f.Default)
				if i < len(vec) {
					v = vec[i]
				}
				if err := codec.PackValue(out, f.Offset+i*f.Kind.Size(), f.Kind, v); err != nil {
					return nil, errors.Wrapf(err, "field %s[%d]", f.Name, i)
				}
			}
			continue
		}
		v, ok := h.values[f.Name]
		if !ok {
			v = dtype.Int(f.Kind, f.Default)
		}
		if err := codec.PackValue(out, f.Offset, f.Kind, v); err != nil {
			return nil, errors.Wrapf(err, "field %s", f.Name)
		}
	}
	return out, nil
}

// Textual returns the textual header as a string. Headers that are not
// printable ASCII are decoded as EBCDIC (code page 037).
func (h *Header) Textual() string {
	if isASCII(h.Text) {
		return string(h.Text)
	}
	s, err := charmap.CodePage037.NewDecoder().Bytes(h.Text)
	if err != nil {
		return string(h.Text)
	}
	return string(s)
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c == 0 || c == '\n' || c == '\r' {
			continue
		}
		if c > unicode.MaxASCII || !unicode.IsPrint(rune(c)) {
			return false
		}
	}
	return true
}
