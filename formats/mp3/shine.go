// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"slices"

	shine "github.com/braheezy/shine-mp3/pkg/mp3"
)

// Sample rates an MPEG-1/2/2.5 Layer III stream can carry.
var shineSampleRates = []int{8000, 11025, 12000, 16000, 22050, 24000, 32000, 44100, 48000}

// shineCodec adapts the pure Go shine encoder to Codec. shine writes
// complete frames on every call and keeps no tail, so Flush is empty.
//
// Mono input is fed to shine as dual-channel: its mono path is unreliable.
type shineCodec struct {
	enc    *shine.Encoder
	out    bytes.Buffer
	stereo []int16
}

// NewShineCodec returns the default CodecFactory. Only mono at 128 kbps is
// accepted, matching shine's fixed bitrate.
func NewShineCodec(channels, sampleRate, bitrateKbps int) (Codec, error) {
	if channels != 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedChannels, channels)
	}

	if bitrateKbps != Bitrate {
		return nil, fmt.Errorf("%w: %d kbps", ErrUnsupportedBitrate, bitrateKbps)
	}

	if !slices.Contains(shineSampleRates, sampleRate) {
		return nil, fmt.Errorf("%w: %d Hz", ErrUnsupportedSampleRate, sampleRate)
	}

	return &shineCodec{
		enc:    shine.NewEncoder(sampleRate, 2),
		stereo: make([]int16, 2*BlockSize),
	}, nil
}

func (c *shineCodec) EncodeBlock(pcm []int16) ([]byte, error) {
	if len(pcm) == 0 {
		return nil, nil
	}

	// shine always reads a whole frame; a short block is padded with silence
	for i, s := range pcm {
		c.stereo[2*i] = s
		c.stereo[2*i+1] = s
	}
	clear(c.stereo[2*len(pcm):])

	c.out.Reset()
	if err := c.enc.Write(&c.out, c.stereo); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return bytes.Clone(c.out.Bytes()), nil
}

func (c *shineCodec) Flush() ([]byte, error) { return nil, nil }
