// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF clips using github.com/go-audio/aiff.
//
// The whole file is read into an audio.Buffer. 8, 16, 24 and 32-bit signed
// big-endian PCM is supported; compressed AIFF-C is rejected.
//
//	buf, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not FORM/AIFF
//	}
//
// Samples are scaled by 2^(bits-1), so the most negative value maps to -1.
// go-audio needs an io.ReadSeeker; other readers are buffered in memory.
package aiff
