// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory audio model and the mixdown and
// concatenation primitives used to assemble drill tracks.
//
// This package contains:
//   - Buffer, a decoded clip with planar float32 channels
//   - Track, a mono sample sequence at a fixed sample rate
//   - Decoder and Registry for format decoders
//   - Context, a decoding handle scoped to one run
//   - Downmix and Concatenator for mono reduction and joining
//
// # Buffers
//
// A Buffer holds every channel of a clip:
//
//	buf, err := audio.NewBuffer(44100, left, right)
//
// All channels must have the same length and the sample rate must be
// positive. Decoders in the formats/ subpackages return Buffers.
//
// # Mono Reduction
//
// Downmix collapses a Buffer to one channel. Mono buffers are copied,
// stereo buffers are averaged sample by sample:
//
//	mono, err := audio.Downmix(buf)
//	// mono[i] == (left[i] + right[i]) / 2
//
// Buffers with more than two channels are rejected with
// ErrUnsupportedChannelLayout.
//
// # Concatenation
//
// Concat mono-reduces a list of buffers and joins them in the order given,
// with no crossfade and no inserted silence:
//
//	track, err := audio.Concat(main, breakdown, main)
//
// The track takes its sample rate from the first buffer. Buffers at other
// rates are joined as is unless a strict Concatenator is used:
//
//	track, err := audio.Concatenator{StrictSampleRate: true}.Concat(bufs...)
//
// # Decoding Context
//
// A Context wraps a Registry for the lifetime of one run:
//
//	ctx := audio.NewContext(registry)
//	defer ctx.Close()
//
//	buf, err := ctx.Decode("mp3", data)
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
package audio
