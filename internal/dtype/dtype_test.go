package dtype

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/robert-malhotra/go-segy/internal/errs"
)

func TestKindSize(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected int
	}{
		{Int8, 1},
		{Uint8, 1},
		{Int16, 2},
		{Uint16, 2},
		{Int32, 4},
		{Uint32, 4},
		{Float32, 4},
		{IBMFloat, 4},
		{Float64, 8},
		{Invalid, 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.Size(); got != tt.expected {
				t.Errorf("Size() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestKindGoType(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected reflect.Type
	}{
		{Int8, reflect.TypeOf(int8(0))},
		{Uint16, reflect.TypeOf(uint16(0))},
		{Int32, reflect.TypeOf(int32(0))},
		{IBMFloat, reflect.TypeOf(float32(0))},
		{Float64, reflect.TypeOf(float64(0))},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, err := tt.kind.GoType()
			if err != nil {
				t.Fatalf("GoType failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}

	if _, err := Invalid.GoType(); err == nil {
		t.Error("expected error for Invalid kind")
	}
}

func TestIntValueWraps(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		in       int64
		expected int64
	}{
		{"int16 in range", Int16, -1234, -1234},
		{"int16 overflow", Int16, 70000, 4464},
		{"uint16 negative", Uint16, -1, 65535},
		{"int32", Int32, 1 << 31, -(1 << 31)},
		{"uint8", Uint8, 300, 44},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Int(tt.kind, tt.in)
			if v.Int64() != tt.expected {
				t.Errorf("Int(%v, %d) = %d, want %d", tt.kind, tt.in, v.Int64(), tt.expected)
			}
			if v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", v.Kind(), tt.kind)
			}
		})
	}
}

func TestFloatValue(t *testing.T) {
	v := Float(Float32, 1.1)
	if v.Float64() != float64(float32(1.1)) {
		t.Errorf("Float32 value not narrowed: %v", v.Float64())
	}
	if v.Int64() != 1 {
		t.Errorf("Int64() = %d, want 1", v.Int64())
	}

	// Integer kinds truncate.
	if got := Float(Int16, 3.9).Int64(); got != 3 {
		t.Errorf("Float(Int16, 3.9) = %d, want 3", got)
	}

	var zero Value
	if !zero.IsZero() || zero.String() != "0" {
		t.Errorf("zero Value = %q, IsZero=%v", zero.String(), zero.IsZero())
	}
}

func TestIBMToFloat32(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		expected float32
	}{
		{"zero", []byte{0x00, 0x00, 0x00, 0x00}, 0},
		{"minus one hundred", []byte{0xC2, 0x64, 0x00, 0x00}, -100},
		{"one hundred", []byte{0x42, 0x64, 0x00, 0x00}, 100},
		{"one", []byte{0x41, 0x10, 0x00, 0x00}, 1},
		{"0.15625", []byte{0x40, 0x28, 0x00, 0x00}, 0.15625},
		{"negative zero mantissa", []byte{0x80, 0x00, 0x00, 0x00}, 0},
		{"exponent without mantissa", []byte{0x45, 0x00, 0x00, 0x00}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IBMToFloat32(tt.in)
			if got != tt.expected {
				t.Errorf("IBMToFloat32(% x) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestIBMToFloat32AlwaysFinite(t *testing.T) {
	patterns := []uint32{0x7FFFFFFF, 0xFFFFFFFF, 0x00000001, 0x80000001, 0x7F100000}
	for _, p := range patterns {
		got := IBMBitsToFloat32(p)
		if math.IsInf(float64(got), 0) || math.IsNaN(float64(got)) {
			t.Errorf("IBMBitsToFloat32(%08x) = %v, want finite", p, got)
		}
	}
	if got := IBMBitsToFloat32(0x7FFFFFFF); got != math.MaxFloat32 {
		t.Errorf("largest IBM float = %v, want saturation at MaxFloat32", got)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		in       interface{}
		expected Kind
	}{
		{[]int8{1}, Int8},
		{[]uint8{1}, Uint8},
		{[]int16{1}, Int16},
		{[]int32{1}, Int32},
		{[]float32{1}, Float32},
		{[]float64{1}, Float64},
	}
	for _, tt := range tests {
		got, err := KindOf(tt.in)
		if err != nil {
			t.Fatalf("KindOf(%T) failed: %v", tt.in, err)
		}
		if got != tt.expected {
			t.Errorf("KindOf(%T) = %v, want %v", tt.in, got, tt.expected)
		}
	}

	if _, err := KindOf([]int64{1}); !errors.Is(err, errs.ErrUnsupportedDataType) {
		t.Errorf("KindOf([]int64) error = %v, want ErrUnsupportedDataType", err)
	}
}

func TestRecoverSigned8(t *testing.T) {
	got := RecoverSigned8([]uint8{200, 50, 0, 255, 127})
	expected := []int8{-56, 50, 0, -1, 127}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("RecoverSigned8 = %v, want %v", got, expected)
	}
}

func TestMakeSliceAndToFloat64s(t *testing.T) {
	s, err := MakeSlice(IBMFloat, 3)
	if err != nil {
		t.Fatalf("MakeSlice failed: %v", err)
	}
	if _, ok := s.([]float32); !ok {
		t.Fatalf("MakeSlice(IBMFloat) = %T, want []float32", s)
	}

	f, err := ToFloat64s([]int16{-2, 0, 7})
	if err != nil {
		t.Fatalf("ToFloat64s failed: %v", err)
	}
	if !reflect.DeepEqual(f, []float64{-2, 0, 7}) {
		t.Errorf("ToFloat64s = %v", f)
	}
}
