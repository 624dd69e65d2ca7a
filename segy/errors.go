// Package segy reads and writes SEG-Y seismic files.
//
// A file is decoded whole from a byte buffer: the textual and binary file
// headers, every trace header and the traces x samples grid of trace data.
// Writing goes the other way, from a grid plus optional header values to a
// complete file.
package segy

import "github.com/robert-malhotra/go-segy/internal/errs"

// Errors returned by the codec. Test for them with errors.Is.
var (
	ErrUnknownRevision     = errs.ErrUnknownRevision
	ErrTruncatedHeader     = errs.ErrTruncatedHeader
	ErrTruncatedPayload    = errs.ErrTruncatedPayload
	ErrUnsupportedDataType = errs.ErrUnsupportedDataType
	ErrUnsupportedEncode   = errs.ErrUnsupportedEncode
	ErrUnknownField        = errs.ErrUnknownField
	ErrInvalidArgument     = errs.ErrInvalidArgument
)
