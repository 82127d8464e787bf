// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audcat/audio"
)

// readChunk is the number of interleaved samples requested per PCMBuffer call.
const readChunk = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Decode reads a whole uncompressed AIFF file into a Buffer.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	return decodePCM(dec, int(dec.BitDepth))
}

func decodePCM(dec aiffReader, bitDepth int) (*audio.Buffer, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	scale := float32(int64(1) << (bitDepth - 1))

	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, readChunk-readChunk%format.NumChannels),
		Format: format,
	}

	var interleaved []float32

	for {
		n, err := dec.PCMBuffer(intBuf)
		for _, v := range intBuf.Data[:n] {
			// go-audio/aiff hands 8-bit samples back as raw bytes
			if bitDepth == 8 {
				v = int(int8(v))
			}
			interleaved = append(interleaved, float32(v)/scale)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading aiff samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return audio.Deinterleave(format.SampleRate, format.NumChannels, interleaved)
}
