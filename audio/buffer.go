// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Buffer is a decoded clip held entirely in memory.
// Channels are planar: Channels[c][i] is sample i of channel c, in [-1, 1].
// A Buffer is not modified after it is built.
type Buffer struct {
	SampleRate int
	Channels   [][]float32
}

// NewBuffer builds a Buffer and checks that it is well formed.
func NewBuffer(sampleRate int, channels ...[]float32) (*Buffer, error) {
	b := &Buffer{
		SampleRate: sampleRate,
		Channels:   channels,
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate reports ErrInvalidBuffer when the sample rate is not positive,
// there are no channels, or the channels differ in length.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}

	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidBuffer, b.SampleRate)
	}

	if len(b.Channels) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidBuffer)
	}

	n := len(b.Channels[0])
	for c, ch := range b.Channels[1:] {
		if len(ch) != n {
			return fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrInvalidBuffer, c+1, len(ch), n)
		}
	}

	return nil
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int { return len(b.Channels) }

// Len returns the number of samples per channel.
func (b *Buffer) Len() int {
	if len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

func (b *Buffer) Duration() time.Duration {
	return samplesToDuration(b.Len(), b.SampleRate)
}

// Deinterleave splits interleaved samples into a planar Buffer.
// A trailing partial frame is dropped.
func Deinterleave(sampleRate, channels int, interleaved []float32) (*Buffer, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidBuffer, channels)
	}

	frames := len(interleaved) / channels
	planar := make([][]float32, channels)
	for c := range planar {
		planar[c] = make([]float32, frames)
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			planar[c][f] = interleaved[base+c]
		}
	}

	return NewBuffer(sampleRate, planar...)
}

// Track is a single-channel sample sequence at a fixed rate, the output of
// mixdown and concatenation and the input of every encoder.
type Track struct {
	SampleRate int
	Samples    []float32
}

func (t *Track) Len() int { return len(t.Samples) }

func (t *Track) Duration() time.Duration {
	return samplesToDuration(len(t.Samples), t.SampleRate)
}

func samplesToDuration(n, rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Duration(int64(n) * int64(time.Second) / int64(rate))
}
