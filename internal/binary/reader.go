// Package binary provides fixed-width numeric packing and unpacking for
// SEG-Y headers and trace samples.
package binary

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-segy/internal/dtype"
	"github.com/robert-malhotra/go-segy/internal/errs"
)

// DefaultBlockSize caps the number of elements decoded per block.
const DefaultBlockSize = 100_000_000

// Config holds codec configuration.
type Config struct {
	ByteOrder binary.ByteOrder
	BlockSize int // elements per decode block; <= 0 selects DefaultBlockSize
}

// DefaultConfig returns the configuration mandated by the format:
// big-endian with the default block size.
func DefaultConfig() Config {
	return Config{
		ByteOrder: binary.BigEndian,
		BlockSize: DefaultBlockSize,
	}
}

// Codec packs and unpacks values of a dtype.Kind in a fixed byte order.
// A Codec holds no mutable state and may be shared.
type Codec struct {
	order     binary.ByteOrder
	blockSize int
	logger    *zap.Logger
}

// NewCodec creates a codec with the given configuration. A nil logger
// disables logging.
func NewCodec(cfg Config, logger *zap.Logger) *Codec {
	if cfg.ByteOrder == nil {
		cfg.ByteOrder = binary.BigEndian
	}
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Codec{
		order:     cfg.ByteOrder,
		blockSize: cfg.BlockSize,
		logger:    logger,
	}
}

// ByteOrder returns the configured byte order.
func (c *Codec) ByteOrder() binary.ByteOrder {
	return c.order
}

// BlockSize returns the configured decode block size in elements.
func (c *Codec) BlockSize() int {
	return c.blockSize
}

// checkSpan verifies that count elements of size bytes starting at offset
// lie inside buf.
func checkSpan(buf []byte, offset, size, count int) error {
	if offset < 0 || count < 0 {
		return errors.Wrapf(errs.ErrInvalidArgument, "offset %d count %d", offset, count)
	}
	end := offset + size*count
	if end > len(buf) {
		return errors.Wrapf(errs.ErrTruncatedPayload,
			"need bytes [%d, %d), buffer has %d", offset, end, len(buf))
	}
	return nil
}

// UnpackValue decodes one header value of kind k at offset.
func (c *Codec) UnpackValue(buf []byte, offset int, k dtype.Kind) (dtype.Value, error) {
	size := k.Size()
	if size == 0 {
		return dtype.Value{}, errors.Wrapf(errs.ErrUnsupportedDataType, "kind %v", k)
	}
	if err := checkSpan(buf, offset, size, 1); err != nil {
		return dtype.Value{}, err
	}
	return c.decodeValue(buf[offset:offset+size], k), nil
}

// UnpackValues decodes count consecutive header values of kind k.
func (c *Codec) UnpackValues(buf []byte, offset int, k dtype.Kind, count int) ([]dtype.Value, error) {
	size := k.Size()
	if size == 0 {
		return nil, errors.Wrapf(errs.ErrUnsupportedDataType, "kind %v", k)
	}
	if err := checkSpan(buf, offset, size, count); err != nil {
		return nil, err
	}
	out := make([]dtype.Value, count)
	for i := range out {
		p := offset + i*size
		out[i] = c.decodeValue(buf[p:p+size], k)
	}
	return out, nil
}

func (c *Codec) decodeValue(b []byte, k dtype.Kind) dtype.Value {
	switch k {
	case dtype.Int8:
		return dtype.Int(k, int64(int8(b[0])))
	case dtype.Uint8:
		return dtype.Int(k, int64(b[0]))
	case dtype.Int16:
		return dtype.Int(k, int64(int16(c.order.Uint16(b))))
	case dtype.Uint16:
		return dtype.Int(k, int64(c.order.Uint16(b)))
	case dtype.Int32:
		return dtype.Int(k, int64(int32(c.order.Uint32(b))))
	case dtype.Uint32:
		return dtype.Int(k, int64(c.order.Uint32(b)))
	case dtype.Float32:
		return dtype.Float(k, float64(c.float32At(b)))
	case dtype.Float64:
		return dtype.Float(k, float64FromBits(c.order.Uint64(b)))
	case dtype.IBMFloat:
		return dtype.Float(k, float64(dtype.IBMBitsToFloat32(c.order.Uint32(b))))
	default:
		return dtype.Value{}
	}
}

// UnpackSamples decodes count samples of kind k starting at offset into a
// newly allocated slice of the kind's Go type.
func (c *Codec) UnpackSamples(buf []byte, offset int, k dtype.Kind, count int) (interface{}, error) {
	dst, err := dtype.MakeSlice(k, count)
	if err != nil {
		return nil, err
	}
	if err := c.UnpackInto(dst, 0, buf, offset, k, count); err != nil {
		return nil, err
	}
	return dst, nil
}

// UnpackInto decodes count samples of kind k starting at offset into
// dst[at:at+count]. dst must be the slice type dtype.MakeSlice returns for k.
// Decoding proceeds in blocks of at most BlockSize elements.
func (c *Codec) UnpackInto(dst interface{}, at int, buf []byte, offset int, k dtype.Kind, count int) error {
	size := k.Size()
	if size == 0 {
		return errors.Wrapf(errs.ErrUnsupportedDataType, "kind %v", k)
	}
	if err := checkSpan(buf, offset, size, count); err != nil {
		return err
	}
	if n := dtype.Len(dst); n < at+count {
		return errors.Wrapf(errs.ErrInvalidArgument, "destination holds %d elements, need %d", n, at+count)
	}

	src := buf[offset : offset+size*count]
	switch d := dst.(type) {
	case []int8:
		unpackBlocks(c, d[at:at+count], src, size, func(b []byte) int8 { return int8(b[0]) })
	case []uint8:
		unpackBlocks(c, d[at:at+count], src, size, func(b []byte) uint8 { return b[0] })
	case []int16:
		unpackBlocks(c, d[at:at+count], src, size, func(b []byte) int16 { return int16(c.order.Uint16(b)) })
	case []uint16:
		unpackBlocks(c, d[at:at+count], src, size, c.order.Uint16)
	case []int32:
		unpackBlocks(c, d[at:at+count], src, size, func(b []byte) int32 { return int32(c.order.Uint32(b)) })
	case []uint32:
		unpackBlocks(c, d[at:at+count], src, size, c.order.Uint32)
	case []float32:
		if k == dtype.IBMFloat {
			unpackBlocks(c, d[at:at+count], src, size, func(b []byte) float32 {
				return dtype.IBMBitsToFloat32(c.order.Uint32(b))
			})
		} else {
			unpackBlocks(c, d[at:at+count], src, size, c.float32At)
		}
	case []float64:
		unpackBlocks(c, d[at:at+count], src, size, func(b []byte) float64 {
			return float64FromBits(c.order.Uint64(b))
		})
	default:
		return errors.Wrapf(errs.ErrUnsupportedDataType, "destination %T", dst)
	}
	return nil
}

// unpackBlocks decodes len(dst) elements of width size from src, at most
// c.blockSize elements per block. The final block holds the remainder.
func unpackBlocks[T any](c *Codec, dst []T, src []byte, size int, decode func([]byte) T) {
	total := len(dst)
	blocks := (total + c.blockSize - 1) / c.blockSize
	for blk := 0; blk < blocks; blk++ {
		start := blk * c.blockSize
		n := min(c.blockSize, total-start)
		if blocks > 1 {
			c.logger.Debug("decoding block",
				zap.Int("block", blk+1),
				zap.Int("blocks", blocks),
				zap.Int("elements", n))
		}
		chunk := src[start*size : (start+n)*size]
		out := dst[start : start+n]
		for i := range out {
			out[i] = decode(chunk[i*size : i*size+size])
		}
	}
}
