// SPDX-License-Identifier: EPL-2.0

package utils

// PCM16Scale is the factor used to map [-1, 1] onto 16-bit PCM.
// 32767 rather than 32768, so that 1.0 does not overflow.
const PCM16Scale float32 = 32767.0

// ClampAndScale clamps x to [-1, 1], multiplies it by scale and truncates
// toward zero. NaN maps to 0.
//
// With scale = PCM16Scale, 1.0 gives 32767 and -1.0 gives -32767.
// scale must not exceed 32767.
func ClampAndScale(x float32, scale float32) int16 {
	if x != x { // NaN
		return 0
	}

	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * scale)
}

// Float32ToInt16 quantizes one sample with PCM16Scale.
func Float32ToInt16(x float32) int16 {
	return ClampAndScale(x, PCM16Scale)
}

// Float32ToInt16Slice quantizes src into dst and returns the number of
// samples written, min(len(dst), len(src)).
func Float32ToInt16Slice(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = ClampAndScale(src[i], PCM16Scale)
	}

	return n
}
