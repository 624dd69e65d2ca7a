package dtype

// Float64ToFloat32 narrows every element to float32. Precision beyond
// float32 is lost.
func Float64ToFloat32(src []float64) []float32 {
	dst := make([]float32, len(src))
	for i, v := range src {
		dst[i] = float32(v)
	}
	return dst
}

// RecoverSigned8 reinterprets unsigned bytes as two's complement int8, so a
// stored 200 reads back as -56.
func RecoverSigned8(src []uint8) []int8 {
	dst := make([]int8, len(src))
	for i, v := range src {
		dst[i] = int8(v)
	}
	return dst
}
