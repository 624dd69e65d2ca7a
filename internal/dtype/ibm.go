package dtype

import "math"

// IBMToFloat32 decodes a big-endian IBM System/360 single-precision float.
//
// Bit 7 of byte 0 is the sign, bits 0-6 a base-16 exponent biased by 64,
// and bytes 1-3 a 24-bit fraction. The IBM range exceeds float32, so
// magnitudes above math.MaxFloat32 saturate and tiny ones underflow toward
// zero; no bit pattern decodes to NaN or Inf.
func IBMToFloat32(b []byte) float32 {
	_ = b[3]
	return IBMBitsToFloat32(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// IBMBitsToFloat32 decodes an IBM float from its 32-bit pattern.
func IBMBitsToFloat32(bits uint32) float32 {
	mantissa := bits & 0x00ffffff
	if mantissa == 0 {
		return 0
	}
	exponent := int((bits>>24)&0x7f) - 64

	// value = mantissa / 16^6 * 16^exponent = mantissa * 2^(4*exponent - 24)
	v := math.Ldexp(float64(mantissa), 4*exponent-24)
	if v > math.MaxFloat32 {
		v = math.MaxFloat32
	}
	if bits&0x80000000 != 0 {
		v = -v
	}
	return float32(v)
}
