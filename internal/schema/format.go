package schema

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-segy/internal/dtype"
	"github.com/robert-malhotra/go-segy/internal/errs"
)

// Data sample format codes.
const (
	FormatIBMFloat  = 1
	FormatInt32     = 2
	FormatInt16     = 3
	FormatFixedGain = 4
	FormatFloat32   = 5
	FormatInt8      = 8
)

// SampleFormat describes how trace samples of one format code are stored.
type SampleFormat struct {
	Code           int
	Description    string
	BytesPerSample int
	Kind           dtype.Kind // kind the payload is decoded as
}

// SignRecovered reports whether decoded samples are reinterpreted as
// two's complement bytes after an unsigned decode.
func (f SampleFormat) SignRecovered() bool {
	return f.Code == FormatInt8
}

// Writable reports whether samples of this format can be encoded.
func (f SampleFormat) Writable() bool {
	return f.Kind != dtype.IBMFloat
}

var formatDescriptions = map[Revision]map[int64]string{
	Rev0: {
		FormatIBMFloat: "IBM Float",
		FormatInt32:    "32 bit Integer",
		FormatInt16:    "16 bit Integer",
		FormatInt8:     "8 bit Integer",
	},
	Rev1: {
		FormatIBMFloat:  "4-byte IBM floating point",
		FormatInt32:     "4-byte, two's complement integer",
		FormatInt16:     "2-byte, two's complement integer",
		FormatFixedGain: "4-byte, fixed-point with gain (obsolete)",
		FormatFloat32:   "4-byte IEEE floating point",
		FormatInt8:      "1-byte Integer",
	},
}

// sampleFormats lists the decodable formats per revision. Format 4 has a
// description but no layout.
var sampleFormats = map[Revision]map[int]SampleFormat{
	Rev0: formatTable(Rev0, map[int]dtype.Kind{
		FormatIBMFloat: dtype.IBMFloat,
		FormatInt32:    dtype.Int32,
		FormatInt16:    dtype.Int16,
		FormatInt8:     dtype.Uint8,
	}),
	Rev1: formatTable(Rev1, map[int]dtype.Kind{
		FormatIBMFloat: dtype.IBMFloat,
		FormatInt32:    dtype.Int32,
		FormatInt16:    dtype.Int16,
		FormatFloat32:  dtype.Float32,
		FormatInt8:     dtype.Uint8,
	}),
}

func formatTable(rev Revision, kinds map[int]dtype.Kind) map[int]SampleFormat {
	out := make(map[int]SampleFormat, len(kinds))
	for code, k := range kinds {
		out[code] = SampleFormat{
			Code:           code,
			Description:    formatDescriptions[rev][int64(code)],
			BytesPerSample: k.Size(),
			Kind:           k,
		}
	}
	return out
}

// LookupSampleFormat returns the layout of a data sample format code.
func LookupSampleFormat(rev Revision, code int) (SampleFormat, error) {
	f, ok := sampleFormats[rev][code]
	if !ok {
		return SampleFormat{}, errors.Wrapf(errs.ErrUnsupportedDataType,
			"data sample format %d not supported in %v", code, rev)
	}
	return f, nil
}

// FormatForKind returns the format used to write samples of Go kind k.
// Signed and unsigned bytes both map to format 8; float64 has no format of
// its own and must be narrowed by the caller first.
func FormatForKind(rev Revision, k dtype.Kind) (SampleFormat, error) {
	var code int
	switch k {
	case dtype.Int32:
		code = FormatInt32
	case dtype.Int16:
		code = FormatInt16
	case dtype.Float32:
		code = FormatFloat32
	case dtype.Int8, dtype.Uint8:
		code = FormatInt8
	default:
		return SampleFormat{}, errors.Wrapf(errs.ErrUnsupportedDataType, "no sample format for %v", k)
	}
	return LookupSampleFormat(rev, code)
}
