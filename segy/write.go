package segy

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	binpkg "github.com/robert-malhotra/go-segy/internal/binary"
	"github.com/robert-malhotra/go-segy/internal/dtype"
	"github.com/robert-malhotra/go-segy/internal/fileheader"
	"github.com/robert-malhotra/go-segy/internal/schema"
	"github.com/robert-malhotra/go-segy/internal/tracedata"
	"github.com/robert-malhotra/go-segy/internal/traceheader"
)

// WriteResult describes a written file.
type WriteResult struct {
	TraceCount      int
	SamplesPerTrace int
	FormatCode      int
	Bytes           int64
	// PrecisionLoss is set when float64 samples were narrowed to float32.
	PrecisionLoss bool
}

// Encode encodes g as a complete SEG-Y file in memory.
func Encode(g *Grid, opts ...Option) ([]byte, *WriteResult, error) {
	buf := binpkg.NewBuffer(fileheader.Size)
	res, err := Write(buf, g, opts...)
	if err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), res, nil
}

// WriteFile encodes g to a new file at path. The file is removed if
// encoding fails. No sync is performed.
func WriteFile(path string, g *Grid, opts ...Option) (res *WriteResult, err error) {
	o := buildOptions(opts)
	o.logger.Debug("writing file", zap.String("path", path))

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "creating file")
	}
	defer func() {
		err = multierr.Append(err, f.Close())
		if err != nil {
			res = nil
			_ = os.Remove(path)
		}
	}()

	return Write(f, g, opts...)
}

// Write encodes g as a complete SEG-Y file to w: the file header at offset
// 0, then one positioned write per trace record.
//
// The data sample format is inferred from the grid's element type unless
// WithSampleFormat states it: int32 is format 2, int16 format 3, float32
// format 5 and int8 or uint8 format 8. float64 samples are narrowed to
// float32 (format 5), which is reported in WriteResult.PrecisionLoss.
func Write(w io.WriterAt, g *Grid, opts ...Option) (*WriteResult, error) {
	o := buildOptions(opts)
	if g == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil grid")
	}
	if g.samples > math.MaxUint16 {
		return nil, errors.Wrapf(ErrInvalidArgument, "%d samples per trace exceed the ns field", g.samples)
	}
	if o.sampleInterval < 0 || o.sampleInterval > math.MaxUint16 {
		return nil, errors.Wrapf(ErrInvalidArgument, "sample interval %d", o.sampleInterval)
	}

	rev, err := schema.ResolveRevision(o.revision)
	if err != nil {
		return nil, err
	}
	samples, format, lossy, err := selectFormat(g, rev, o.format)
	if err != nil {
		return nil, err
	}
	if lossy {
		o.logger.Warn("casting float64 samples to float32",
			zap.Int("traces", g.traces),
			zap.Int("samples", g.samples))
	}

	h := fileheader.Default()
	h.SetText(o.text)
	for name, v := range map[string]int64{
		schema.FieldNs:       int64(g.samples),
		schema.FieldDt:       int64(o.sampleInterval),
		schema.FieldFormat:   int64(format.Code),
		schema.FieldRevision: o.revision,
	} {
		if err := h.Set(name, v); err != nil {
			return nil, err
		}
	}
	if err := h.Resolve(); err != nil {
		return nil, err
	}
	h.TraceCount = g.traces

	hs, err := traceheader.Synthesize(o.schema, g.traces, g.samples, o.sampleInterval, o.overrides, o.logger)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("writing segy",
		zap.Int("traces", g.traces),
		zap.Int("ns", g.samples),
		zap.Int("format", format.Code),
		zap.String("description", format.Description))

	codec := o.codec()
	head, err := h.Encode(codec)
	if err != nil {
		return nil, err
	}
	bw := codec.NewWriter(w)
	if err := bw.WriteBytes(head); err != nil {
		return nil, errors.Wrap(err, "writing file header")
	}
	if err := tracedata.Write(bw, h, hs, samples, codec, o.logger); err != nil {
		return nil, err
	}

	return &WriteResult{
		TraceCount:      g.traces,
		SamplesPerTrace: g.samples,
		FormatCode:      format.Code,
		Bytes:           int64(fileheader.Size) + h.PayloadSize(),
		PrecisionLoss:   lossy,
	}, nil
}

// selectFormat picks the sample format for g and returns the samples to
// pack, narrowed to float32 when lossy is set.
func selectFormat(g *Grid, rev schema.Revision, code int) (samples interface{}, format schema.SampleFormat, lossy bool, err error) {
	samples = g.data
	kind := g.kind
	if kind == dtype.Float64 {
		samples = dtype.Float64ToFloat32(g.data.([]float64))
		kind = dtype.Float32
		lossy = true
	}

	if code == 0 {
		format, err = schema.FormatForKind(rev, kind)
		return samples, format, lossy, err
	}

	format, err = schema.LookupSampleFormat(rev, code)
	if err != nil {
		return nil, format, false, err
	}
	if !format.Writable() {
		return nil, format, false, errors.Wrapf(ErrUnsupportedEncode, "data sample format %d (%s)", code, format.Description)
	}
	if inferred, ferr := schema.FormatForKind(rev, kind); ferr != nil || inferred.Code != code {
		return nil, format, false, errors.Wrapf(ErrUnsupportedDataType,
			"%v samples cannot be written as format %d (%s)", g.kind, code, format.Description)
	}
	return samples, format, lossy, nil
}
