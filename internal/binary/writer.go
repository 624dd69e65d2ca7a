package binary

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-segy/internal/dtype"
	"github.com/robert-malhotra/go-segy/internal/errs"
)

func (c *Codec) float32At(b []byte) float32 {
	return math.Float32frombits(c.order.Uint32(b))
}

func float64FromBits(bits uint64) float64 {
	return math.Float64frombits(bits)
}

// PackValue encodes v as kind k into buf at offset. The value is converted
// to k first, so an out-of-range integer wraps to the field width.
func (c *Codec) PackValue(buf []byte, offset int, k dtype.Kind, v dtype.Value) error {
	size := k.Size()
	if size == 0 {
		return errors.Wrapf(errs.ErrUnsupportedDataType, "kind %v", k)
	}
	if k == dtype.IBMFloat {
		return errors.Wrap(errs.ErrUnsupportedEncode, "IBM floating point")
	}
	if err := checkSpan(buf, offset, size, 1); err != nil {
		return err
	}
	c.encodeValue(buf[offset:offset+size], k, v)
	return nil
}

// AppendValue appends the encoding of v as kind k to buf.
func (c *Codec) AppendValue(buf []byte, k dtype.Kind, v dtype.Value) ([]byte, error) {
	size := k.Size()
	if size == 0 {
		return buf, errors.Wrapf(errs.ErrUnsupportedDataType, "kind %v", k)
	}
	if k == dtype.IBMFloat {
		return buf, errors.Wrap(errs.ErrUnsupportedEncode, "IBM floating point")
	}
	n := len(buf)
	buf = append(buf, make([]byte, size)...)
	c.encodeValue(buf[n:], k, v)
	return buf, nil
}

func (c *Codec) encodeValue(b []byte, k dtype.Kind, v dtype.Value) {
	switch k {
	case dtype.Int8, dtype.Uint8:
		b[0] = byte(v.Int64())
	case dtype.Int16, dtype.Uint16:
		c.order.PutUint16(b, uint16(v.Int64()))
	case dtype.Int32, dtype.Uint32:
		c.order.PutUint32(b, uint32(v.Int64()))
	case dtype.Float32:
		c.order.PutUint32(b, math.Float32bits(float32(v.Float64())))
	case dtype.Float64:
		c.order.PutUint64(b, math.Float64bits(v.Float64()))
	}
}

// PackSamples encodes a typed sample slice as kind k. The slice element
// type must match k, except that []int8 may be written as Uint8 (the
// two's complement byte is stored).
func (c *Codec) PackSamples(samples interface{}, k dtype.Kind) ([]byte, error) {
	if k == dtype.IBMFloat {
		return nil, errors.Wrap(errs.ErrUnsupportedEncode, "IBM floating point")
	}
	n := dtype.Len(samples)
	if n < 0 {
		return nil, errors.Wrapf(errs.ErrUnsupportedDataType, "samples %T", samples)
	}
	size := k.Size()
	if size == 0 {
		return nil, errors.Wrapf(errs.ErrUnsupportedDataType, "kind %v", k)
	}
	out := make([]byte, n*size)

	switch s := samples.(type) {
	case []int8:
		if k != dtype.Int8 && k != dtype.Uint8 {
			return nil, mismatch(samples, k)
		}
		for i, v := range s {
			out[i] = byte(v)
		}
	case []uint8:
		if k != dtype.Uint8 {
			return nil, mismatch(samples, k)
		}
		copy(out, s)
	case []int16:
		if k != dtype.Int16 {
			return nil, mismatch(samples, k)
		}
		for i, v := range s {
			c.order.PutUint16(out[i*2:], uint16(v))
		}
	case []uint16:
		if k != dtype.Uint16 {
			return nil, mismatch(samples, k)
		}
		for i, v := range s {
			c.order.PutUint16(out[i*2:], v)
		}
	case []int32:
		if k != dtype.Int32 {
			return nil, mismatch(samples, k)
		}
		for i, v := range s {
			c.order.PutUint32(out[i*4:], uint32(v))
		}
	case []uint32:
		if k != dtype.Uint32 {
			return nil, mismatch(samples, k)
		}
		for i, v := range s {
			c.order.PutUint32(out[i*4:], v)
		}
	case []float32:
		if k != dtype.Float32 {
			return nil, mismatch(samples, k)
		}
		for i, v := range s {
			c.order.PutUint32(out[i*4:], math.Float32bits(v))
		}
	case []float64:
		if k != dtype.Float64 {
			return nil, mismatch(samples, k)
		}
		for i, v := range s {
			c.order.PutUint64(out[i*8:], math.Float64bits(v))
		}
	default:
		return nil, errors.Wrapf(errs.ErrUnsupportedDataType, "samples %T", samples)
	}
	return out, nil
}

func mismatch(samples interface{}, k dtype.Kind) error {
	return errors.Wrapf(errs.ErrInvalidArgument, "cannot pack %T as %v", samples, k)
}

// Writer writes bytes at tracked positions of an io.WriterAt.
type Writer struct {
	w     io.WriterAt
	order binary.ByteOrder
	pos   int64
}

// NewWriter creates a positioned writer using the codec's byte order.
func (c *Codec) NewWriter(w io.WriterAt) *Writer {
	return &Writer{w: w, order: c.order}
}

// At returns a new writer positioned at the given offset.
// The new writer shares the underlying io.WriterAt but has independent position.
func (w *Writer) At(offset int64) *Writer {
	return &Writer{w: w.w, order: w.order, pos: offset}
}

// Pos returns the current write position.
func (w *Writer) Pos() int64 {
	return w.pos
}

// WriteBytes writes the given bytes at the current position.
func (w *Writer) WriteBytes(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	n, err := w.w.WriteAt(data, w.pos)
	w.pos += int64(n)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	return err
}

// WriteUint16 writes an unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) error {
	buf := make([]byte, 2)
	w.order.PutUint16(buf, v)
	return w.WriteBytes(buf)
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) error {
	buf := make([]byte, 4)
	w.order.PutUint32(buf, v)
	return w.WriteBytes(buf)
}

// Skip advances the position by n bytes without writing.
func (w *Writer) Skip(n int64) {
	w.pos += n
}

// Buffer is a growable in-memory io.WriterAt.
type Buffer struct {
	data []byte
}

// NewBuffer returns a buffer with capacity for size bytes.
func NewBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, 0, size)}
}

// WriteAt implements io.WriterAt. Writing past the end grows the buffer,
// zero-filling any gap.
func (b *Buffer) WriteAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.Wrapf(errs.ErrInvalidArgument, "negative offset %d", off)
	}
	end := int(off) + len(p)
	if end > len(b.data) {
		if end > cap(b.data) {
			grown := make([]byte, end, max(end, 2*cap(b.data)))
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}
	return copy(b.data[off:], p), nil
}

// Bytes returns the buffer contents.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes written so far, including gaps.
func (b *Buffer) Len() int {
	return len(b.data)
}
