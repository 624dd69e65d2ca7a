// Package dtype provides the numeric kinds used by SEG-Y headers and trace
// samples, and conversion between their raw bytes and Go values.
//
// # Kind Mapping
//
// Every header field and sample format resolves to a [Kind]:
//
//	Kind      | Bytes | Go type
//	----------|-------|---------
//	Int8      | 1     | int8
//	Uint8     | 1     | uint8
//	Int16     | 2     | int16
//	Uint16    | 2     | uint16
//	Int32     | 4     | int32
//	Uint32    | 4     | uint32
//	Float32   | 4     | float32 (IEEE-754)
//	Float64   | 8     | float64 (IEEE-754)
//	IBMFloat  | 4     | float32 (decoded from IBM System/360 hexadecimal float)
//
// # Header Values
//
// Decoded header fields are held in a [Value], a tagged variant that keeps
// the field's kind next to its number. Integer values are wrapped to the
// width of their kind on construction, matching what a fixed-width write
// would store.
//
// # IBM Floating Point
//
// [IBMToFloat32] decodes the legacy 4-byte base-16 encoding. There is no
// inverse: the format is read-only in this module.
//
// # Grid Element Types
//
// [KindOf] maps a typed sample slice to its kind and [MakeSlice] allocates
// the slice type a kind decodes into.
package dtype
