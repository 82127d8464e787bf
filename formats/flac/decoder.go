// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audcat/audio"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

// frameReader is an interface for flac.Stream to allow testing
type frameReader interface {
	ParseNext() (*frame.Frame, error)
}

type Decoder struct{}

// Decode reads every frame of a FLAC stream into a Buffer.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info

	return decodeFrames(stream, int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample))
}

func decodeFrames(stream frameReader, sampleRate, channels, bitDepth int) (*audio.Buffer, error) {
	if channels <= 0 || bitDepth <= 0 || bitDepth > 32 {
		return nil, fmt.Errorf("%w: %d channels, %d-bit", ErrUnsupportedFlacLayout, channels, bitDepth)
	}

	scale := float32(int64(1) << (bitDepth - 1))
	planar := make([][]float32, channels)

	for n := 0; ; n++ {
		f, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing flac frame %d: %w", n, err)
		}

		if len(f.Subframes) != channels {
			return nil, fmt.Errorf("%w: frame %d has %d subframes", ErrUnsupportedFlacLayout, n, len(f.Subframes))
		}

		for c, sub := range f.Subframes {
			for _, s := range sub.Samples {
				planar[c] = append(planar[c], float32(s)/scale)
			}
		}
	}

	return audio.NewBuffer(sampleRate, planar...)
}
