// Package tracedata reads and writes trace sample payloads.
//
// Trace i's samples start at Size + i*TraceByteSize + TraceHeaderSize; the
// header bytes between payloads are skipped, never decoded as samples.
// Grids are flat row-major typed slices of traces*samplesPerTrace elements.
package tracedata

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	binpkg "github.com/robert-malhotra/go-segy/internal/binary"
	"github.com/robert-malhotra/go-segy/internal/dtype"
	"github.com/robert-malhotra/go-segy/internal/errs"
	"github.com/robert-malhotra/go-segy/internal/fileheader"
	"github.com/robert-malhotra/go-segy/internal/traceheader"
)

// progressInterval is how many traces pass between write progress logs.
const progressInterval = 10000

// Read decodes every trace's samples into one flat slice. Format 8 yields
// []int8; every other format yields the slice type of its kind.
func Read(h *fileheader.Header, buf []byte, codec *binpkg.Codec) (interface{}, error) {
	ns := h.SamplesPerTrace()
	if need := h.TraceOffset(h.TraceCount); need > int64(len(buf)) {
		return nil, errors.Wrapf(errs.ErrTruncatedPayload,
			"%d traces need %d bytes, buffer has %d", h.TraceCount, need, len(buf))
	}

	dst, err := dtype.MakeSlice(h.Format.Kind, h.TraceCount*ns)
	if err != nil {
		return nil, err
	}
	for i := 0; i < h.TraceCount; i++ {
		off := int(h.TraceOffset(i)) + fileheader.TraceHeaderSize
		if err := codec.UnpackInto(dst, i*ns, buf, off, h.Format.Kind, ns); err != nil {
			return nil, errors.Wrapf(err, "trace %d", i+1)
		}
	}
	return recover8(h, dst), nil
}

// ReadTrace decodes the samples of the 1-based trace index.
func ReadTrace(h *fileheader.Header, buf []byte, codec *binpkg.Codec, index int) (interface{}, error) {
	if index < 1 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "trace index %d", index)
	}
	if index > h.TraceCount {
		return nil, errors.Wrapf(errs.ErrTruncatedPayload, "trace %d of %d", index, h.TraceCount)
	}
	off := int(h.TraceOffset(index-1)) + fileheader.TraceHeaderSize
	row, err := codec.UnpackSamples(buf, off, h.Format.Kind, h.SamplesPerTrace())
	if err != nil {
		return nil, errors.Wrapf(err, "trace %d", index)
	}
	return recover8(h, row), nil
}

func recover8(h *fileheader.Header, samples interface{}) interface{} {
	if u, ok := samples.([]uint8); ok && h.Format.SignRecovered() {
		return dtype.RecoverSigned8(u)
	}
	return samples
}

// Write writes one record per trace: the trace header followed by that
// trace's row of samples, with a single positioned write per trace.
// samples must hold hs.Len()*ns elements packable as h.Format.Kind.
func Write(w *binpkg.Writer, h *fileheader.Header, hs *traceheader.Headers, samples interface{}, codec *binpkg.Codec, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	ns := h.SamplesPerTrace()
	traces := hs.Len()
	if n := dtype.Len(samples); n != traces*ns {
		return errors.Wrapf(errs.ErrInvalidArgument, "%d samples for %d traces of %d", n, traces, ns)
	}

	for i := 0; i < traces; i++ {
		if i%progressInterval == 0 {
			logger.Debug("writing traces",
				zap.Int("trace", i),
				zap.Int("traces", traces),
				zap.Float64("progress", float64(i)/float64(traces)*100))
		}

		record, err := hs.EncodeTrace(codec, i)
		if err != nil {
			return err
		}
		payload, err := codec.PackSamples(dtype.Slice(samples, i*ns, (i+1)*ns), h.Format.Kind)
		if err != nil {
			return errors.Wrapf(err, "trace %d", i+1)
		}
		record = append(record, payload...)

		if err := w.At(h.TraceOffset(i)).WriteBytes(record); err != nil {
			return errors.Wrapf(err, "writing trace %d", i+1)
		}
	}
	return nil
}
