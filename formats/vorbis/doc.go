// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis clips using github.com/jfreymuth/oggvorbis.
//
// The stream is read to the end and returned as a planar audio.Buffer with
// the channel count and sample rate from the Vorbis identification header.
// Vorbis decodes straight to float, so no integer scaling is involved.
//
//	buf, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // not Ogg, not Vorbis, or a corrupt packet
//	}
//	mono, err := audio.Downmix(buf)
//
// Streams with more than two channels decode fine but are rejected by
// audio.Downmix.
package vorbis
