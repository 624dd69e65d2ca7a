package dtype

import (
	"fmt"
	"reflect"
)

// Kind identifies a fixed-width numeric encoding.
type Kind uint8

// Numeric kinds.
const (
	Invalid Kind = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
	IBMFloat
)

var kindNames = [...]string{
	Invalid:  "invalid",
	Int8:     "int8",
	Uint8:    "uint8",
	Int16:    "int16",
	Uint16:   "uint16",
	Int32:    "int32",
	Uint32:   "uint32",
	Float32:  "float32",
	Float64:  "float64",
	IBMFloat: "ibm",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Size returns the encoded width of one element in bytes.
func (k Kind) Size() int {
	switch k {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32, IBMFloat:
		return 4
	case Float64:
		return 8
	default:
		return 0
	}
}

// IsFloat reports whether the kind holds floating-point values.
func (k Kind) IsFloat() bool {
	return k == Float32 || k == Float64 || k == IBMFloat
}

// IsSigned reports whether an integer kind is signed.
func (k Kind) IsSigned() bool {
	return k == Int8 || k == Int16 || k == Int32
}

// GoType returns the Go element type values of this kind decode into.
func (k Kind) GoType() (reflect.Type, error) {
	switch k {
	case Int8:
		return reflect.TypeOf(int8(0)), nil
	case Uint8:
		return reflect.TypeOf(uint8(0)), nil
	case Int16:
		return reflect.TypeOf(int16(0)), nil
	case Uint16:
		return reflect.TypeOf(uint16(0)), nil
	case Int32:
		return reflect.TypeOf(int32(0)), nil
	case Uint32:
		return reflect.TypeOf(uint32(0)), nil
	case Float32, IBMFloat:
		return reflect.TypeOf(float32(0)), nil
	case Float64:
		return reflect.TypeOf(float64(0)), nil
	default:
		return nil, fmt.Errorf("no Go type for %v", k)
	}
}

// wrap truncates v to the width of an integer kind, two's complement for
// signed kinds.
func (k Kind) wrap(v int64) int64 {
	switch k {
	case Int8:
		return int64(int8(v))
	case Uint8:
		return int64(uint8(v))
	case Int16:
		return int64(int16(v))
	case Uint16:
		return int64(uint16(v))
	case Int32:
		return int64(int32(v))
	case Uint32:
		return int64(uint32(v))
	default:
		return v
	}
}
