// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/ik5/audcat/audio"
)

// pcmReader is an interface for gowav.Decoder to allow testing
type pcmReader interface {
	FullPCMBuffer() (*goaudio.IntBuffer, error)
}

type Decoder struct{}

// Decode reads a whole integer PCM WAV file. Unknown chunks before the data
// chunk are skipped.
func (Decoder) Decode(r io.Reader) (*audio.Buffer, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	if dec.WavAudioFormat != 1 {
		return nil, fmt.Errorf("%w: format code %d", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d-bit", ErrOnlyPCMSupported, dec.BitDepth)
	}

	return decodePCM(dec, int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth))
}

func decodePCM(dec pcmReader, sampleRate, channels, bitDepth int) (*audio.Buffer, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedWavLayout, channels)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav samples: %w", err)
	}

	interleaved := make([]float32, len(buf.Data))

	// 8-bit WAV is unsigned, everything wider is signed.
	offset := 0
	if bitDepth == 8 {
		offset = 128
	}
	scale := float32(int64(1) << (bitDepth - 1))

	for i, v := range buf.Data {
		interleaved[i] = float32(v-offset) / scale
	}

	return audio.Deinterleave(sampleRate, channels, interleaved)
}
