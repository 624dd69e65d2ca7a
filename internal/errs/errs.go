// Package errs defines the error kinds shared by every layer of the SEG-Y codec.
//
// Lower layers wrap these sentinels with context (github.com/pkg/errors);
// callers match them with the standard errors.Is.
package errs

import "github.com/pkg/errors"

var (
	// ErrUnknownRevision is returned when the raw revision field is outside
	// the set of codes the format tables support.
	ErrUnknownRevision = errors.New("unknown SEG-Y revision")

	// ErrTruncatedHeader is returned when a buffer is shorter than the
	// textual plus binary file header.
	ErrTruncatedHeader = errors.New("truncated SEG-Y file header")

	// ErrTruncatedPayload is returned when a decode request spans past the
	// end of the buffer.
	ErrTruncatedPayload = errors.New("truncated SEG-Y trace payload")

	// ErrUnsupportedDataType is returned for grid element types outside the
	// write set and for data sample format codes absent from the tables.
	ErrUnsupportedDataType = errors.New("unsupported data type")

	// ErrUnsupportedEncode is returned when packing the IBM float format.
	ErrUnsupportedEncode = errors.New("encoding not supported")

	// ErrUnknownField is returned when a schema or override names a field
	// that does not exist.
	ErrUnknownField = errors.New("unknown header field")

	// ErrInvalidArgument is returned for malformed caller input.
	ErrInvalidArgument = errors.New("invalid argument")
)
