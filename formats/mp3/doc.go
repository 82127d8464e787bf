// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 clips and encodes mono tracks to MP3.
//
// Decoding uses github.com/hajimehoshi/go-mp3. The decoder always yields
// two channels, so mono files come back as identical left and right:
//
//	buf, err := mp3.Decoder{}.Decode(file)
//	mono, err := audio.Downmix(buf)
//
// # Encoding
//
// Encoder splits a mono track into BlockSize (1152) sample blocks,
// quantizes each block to int16 and hands it to a Codec. Chunks returned by
// the codec are written in the order produced. Flush is called exactly once
// after the last block, which may be short.
//
//	var enc mp3.Encoder // shine codec, 128 kbps
//	data, err := enc.EncodeTrack(track)
//
// The default codec is github.com/braheezy/shine-mp3, a pure Go port of the
// shine fixed-point encoder. Any other Layer III encoder can be plugged in
// through Encoder.NewCodec.
//
// # Limitations
//
//   - Encoding is mono only, at a fixed 128 kbps
//   - Only MPEG sample rates are accepted (8 kHz to 48 kHz)
//   - Decoding output is always stereo (use audio.Downmix)
package mp3
