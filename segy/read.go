package segy

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	binpkg "github.com/robert-malhotra/go-segy/internal/binary"
	"github.com/robert-malhotra/go-segy/internal/fileheader"
	"github.com/robert-malhotra/go-segy/internal/tracedata"
	"github.com/robert-malhotra/go-segy/internal/traceheader"
)

// File is a decoded SEG-Y file.
type File struct {
	Header *FileHeader
	Traces *TraceHeaders
	// Data is nil when read with HeadersOnly.
	Data *Grid
}

// Trace is one decoded trace.
type Trace struct {
	// Index is the 1-based trace number.
	Index   int
	Header  *TraceHeaders
	Samples interface{}
}

// Read decodes a whole SEG-Y file held in buf.
func Read(buf []byte, opts ...Option) (*File, error) {
	o := buildOptions(opts)
	codec := o.codec()

	h, err := readFileHeader(buf, codec, o)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("done reading file header")

	hs, err := traceheader.ReadAll(h, buf, codec, o.schema, 0, o.logger)
	if err != nil {
		return nil, errors.Wrap(err, "reading trace headers")
	}
	o.logger.Debug("done reading trace headers", zap.Int("fields", hs.Schema().Len()))

	f := &File{Header: h, Traces: hs}
	if o.headersOnly {
		return f, nil
	}

	data, err := tracedata.Read(h, buf, codec)
	if err != nil {
		return nil, errors.Wrap(err, "reading trace data")
	}
	f.Data, err = NewGrid(h.TraceCount, h.SamplesPerTrace(), data)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("done reading trace data",
		zap.Int("format", h.Format.Code),
		zap.String("description", h.Format.Description))
	return f, nil
}

// ReadTrace decodes the header and samples of the 1-based trace index.
func ReadTrace(buf []byte, index int, opts ...Option) (*Trace, error) {
	o := buildOptions(opts)
	codec := o.codec()

	h, err := readFileHeader(buf, codec, o)
	if err != nil {
		return nil, err
	}
	if index < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "trace index %d", index)
	}

	hs, err := traceheader.ReadAll(h, buf, codec, o.schema, index, o.logger)
	if err != nil {
		return nil, errors.Wrapf(err, "reading trace %d header", index)
	}
	samples, err := tracedata.ReadTrace(h, buf, codec, index)
	if err != nil {
		return nil, err
	}
	return &Trace{Index: index, Header: hs, Samples: samples}, nil
}

func readFileHeader(buf []byte, codec *binpkg.Codec, o *options) (*FileHeader, error) {
	h, err := fileheader.Read(buf, codec, o.logger)
	if err != nil {
		return nil, err
	}
	h.Source = o.source
	if o.strict && h.TrailingBytes > 0 {
		return nil, errors.Wrapf(ErrTruncatedPayload,
			"%d bytes after trace %d do not form a whole %d-byte trace",
			h.TrailingBytes, h.TraceCount, h.TraceByteSize)
	}
	return h, nil
}

// ReadFile reads and decodes the file at path.
func ReadFile(path string, opts ...Option) (*File, error) {
	buf, err := slurp(path, opts)
	if err != nil {
		return nil, err
	}
	return Read(buf, append([]Option{WithSource(path)}, opts...)...)
}

// ReadTraceFile decodes one trace of the file at path.
func ReadTraceFile(path string, index int, opts ...Option) (*Trace, error) {
	buf, err := slurp(path, opts)
	if err != nil {
		return nil, err
	}
	return ReadTrace(buf, index, append([]Option{WithSource(path)}, opts...)...)
}

// slurp reads the whole file into memory.
func slurp(path string, opts []Option) (buf []byte, err error) {
	o := buildOptions(opts)
	o.logger.Debug("reading file", zap.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	buf, err = io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return buf, nil
}
