// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audcat/audio"
	"github.com/jfreymuth/oggvorbis"
)

// readChunk is the number of interleaved samples requested per Read.
const readChunk = 4096

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

// Decode reads the whole Ogg Vorbis stream into a Buffer.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decodeAll(dec)
}

func decodeAll(dec oggReader) (*audio.Buffer, error) {
	channels := dec.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedVorbisLayout, channels)
	}

	// Read returns a count of interleaved values, always whole frames.
	chunk := make([]float32, readChunk-readChunk%channels)
	var interleaved []float32

	for {
		n, err := dec.Read(chunk)
		interleaved = append(interleaved, chunk[:n]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading vorbis packets: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return audio.Deinterleave(dec.SampleRate(), channels, interleaved)
}
