package dtype

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-segy/internal/errs"
)

// KindOf returns the kind of a typed sample slice. IBM floats are never
// inferred: a []float32 is always Float32.
func KindOf(samples interface{}) (Kind, error) {
	switch samples.(type) {
	case []int8:
		return Int8, nil
	case []uint8:
		return Uint8, nil
	case []int16:
		return Int16, nil
	case []uint16:
		return Uint16, nil
	case []int32:
		return Int32, nil
	case []uint32:
		return Uint32, nil
	case []float32:
		return Float32, nil
	case []float64:
		return Float64, nil
	default:
		return Invalid, errors.Wrapf(errs.ErrUnsupportedDataType, "element type %T", samples)
	}
}

// MakeSlice allocates a zeroed slice of n elements of the Go type k
// decodes into.
func MakeSlice(k Kind, n int) (interface{}, error) {
	switch k {
	case Int8:
		return make([]int8, n), nil
	case Uint8:
		return make([]uint8, n), nil
	case Int16:
		return make([]int16, n), nil
	case Uint16:
		return make([]uint16, n), nil
	case Int32:
		return make([]int32, n), nil
	case Uint32:
		return make([]uint32, n), nil
	case Float32, IBMFloat:
		return make([]float32, n), nil
	case Float64:
		return make([]float64, n), nil
	default:
		return nil, errors.Wrapf(errs.ErrUnsupportedDataType, "cannot allocate %v samples", k)
	}
}

// Len returns the length of a typed sample slice, or -1 for other values.
func Len(samples interface{}) int {
	switch s := samples.(type) {
	case []int8:
		return len(s)
	case []uint8:
		return len(s)
	case []int16:
		return len(s)
	case []uint16:
		return len(s)
	case []int32:
		return len(s)
	case []uint32:
		return len(s)
	case []float32:
		return len(s)
	case []float64:
		return len(s)
	default:
		return -1
	}
}

// Slice returns samples[lo:hi] keeping the element type.
func Slice(samples interface{}, lo, hi int) interface{} {
	switch s := samples.(type) {
	case []int8:
		return s[lo:hi]
	case []uint8:
		return s[lo:hi]
	case []int16:
		return s[lo:hi]
	case []uint16:
		return s[lo:hi]
	case []int32:
		return s[lo:hi]
	case []uint32:
		return s[lo:hi]
	case []float32:
		return s[lo:hi]
	case []float64:
		return s[lo:hi]
	default:
		panic(fmt.Sprintf("dtype: Slice of %T", samples))
	}
}

// At returns element i of a typed sample slice as a float64.
func At(samples interface{}, i int) float64 {
	switch s := samples.(type) {
	case []int8:
		return float64(s[i])
	case []uint8:
		return float64(s[i])
	case []int16:
		return float64(s[i])
	case []uint16:
		return float64(s[i])
	case []int32:
		return float64(s[i])
	case []uint32:
		return float64(s[i])
	case []float32:
		return float64(s[i])
	case []float64:
		return s[i]
	default:
		panic(fmt.Sprintf("dtype: At of %T", samples))
	}
}

// ToFloat64s copies a typed sample slice into a new []float64.
func ToFloat64s(samples interface{}) ([]float64, error) {
	n := Len(samples)
	if n < 0 {
		return nil, errors.Wrapf(errs.ErrUnsupportedDataType, "element type %T", samples)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = At(samples, i)
	}
	return out, nil
}
