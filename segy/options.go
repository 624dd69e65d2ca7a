package segy

import (
	"encoding/binary"

	"go.uber.org/zap"

	binpkg "github.com/robert-malhotra/go-segy/internal/binary"
	"github.com/robert-malhotra/go-segy/internal/schema"
)

// DefaultSampleInterval is the sample interval written when none is given,
// in microseconds (or millimeters for depth data).
const DefaultSampleInterval = 1000

// DefaultRevision is the raw revision number written to new files.
const DefaultRevision = 100

// Option configures a read or write call. Options that do not apply to a
// call are ignored.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	order       binary.ByteOrder
	blockSize   int
	schema      *schema.Schema
	headersOnly bool
	strict      bool
	source      string

	sampleInterval int
	text           string
	overrides      map[string]interface{}
	format         int
	revision       int64
}

func defaultOptions() *options {
	return &options{
		logger:         zap.NewNop(),
		order:          binary.BigEndian,
		blockSize:      binpkg.DefaultBlockSize,
		schema:         schema.TraceHeader,
		sampleInterval: DefaultSampleInterval,
		revision:       DefaultRevision,
	}
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) codec() *binpkg.Codec {
	return binpkg.NewCodec(binpkg.Config{ByteOrder: o.order, BlockSize: o.blockSize}, o.logger)
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithByteOrder overrides the big-endian byte order the format mandates,
// for files from non-conforming producers.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *options) {
		if order != nil {
			o.order = order
		}
	}
}

// WithBlockSize caps the number of samples decoded per block.
func WithBlockSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.blockSize = n
		}
	}
}

// WithTraceHeaderSchema reads (or writes) only the fields of s instead of
// the full trace header.
func WithTraceHeaderSchema(s *Schema) Option {
	return func(o *options) {
		if s != nil {
			o.schema = s
		}
	}
}

// HeadersOnly skips decoding trace data.
func HeadersOnly() Option {
	return func(o *options) {
		o.headersOnly = true
	}
}

// WithStrictLength rejects files whose length leaves a partial trace
// record after the last whole trace.
func WithStrictLength() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithSource records where the buffer came from in FileHeader.Source.
func WithSource(name string) Option {
	return func(o *options) {
		o.source = name
	}
}

// WithSampleInterval sets the sample interval written to the file header
// and every trace header.
func WithSampleInterval(dt int) Option {
	return func(o *options) {
		o.sampleInterval = dt
	}
}

// WithTextualHeader sets the 3200-byte textual header. Shorter text is
// padded with spaces, longer text truncated.
func WithTextualHeader(text string) Option {
	return func(o *options) {
		o.text = text
	}
}

// WithTraceHeaders sets trace header columns. Each value is either a slice
// with one element per trace or a scalar applied to every trace; elements
// may be of any numeric type or a numeric string.
func WithTraceHeaders(values map[string]interface{}) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]interface{}, len(values))
		}
		for k, v := range values {
			o.overrides[k] = v
		}
	}
}

// WithSampleFormat states the data sample format code to write instead of
// inferring it from the grid's element type.
func WithSampleFormat(code int) Option {
	return func(o *options) {
		o.format = code
	}
}

// WithRevision sets the raw revision number written to the file header.
func WithRevision(raw int64) Option {
	return func(o *options) {
		o.revision = raw
	}
}
