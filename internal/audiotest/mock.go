// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds deterministic audio buffers for tests.
package audiotest

import (
	"math"

	"github.com/ik5/audcat/audio"
)

// NewBuffer creates a buffer of totalSamples samples per channel.
// waveform generates the value for a given sample index and channel.
func NewBuffer(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *audio.Buffer {
	planar := make([][]float32, channels)
	for c := range planar {
		planar[c] = make([]float32, totalSamples)
		for i := range totalSamples {
			planar[c][i] = waveform(i, c)
		}
	}

	return &audio.Buffer{
		SampleRate: sampleRate,
		Channels:   planar,
	}
}

// NewSilentBuffer creates a buffer of zeros.
func NewSilentBuffer(sampleRate, channels, totalSamples int) *audio.Buffer {
	return NewBuffer(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineBuffer creates a sine wave, identical on every channel.
func NewSineBuffer(sampleRate, channels, totalSamples int, frequency float64) *audio.Buffer {
	return NewBuffer(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantBuffer creates a buffer where every sample equals value.
func NewConstantBuffer(sampleRate, channels, totalSamples int, value float32) *audio.Buffer {
	return NewBuffer(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

// NewRampBuffer creates a buffer whose samples step by 1/totalSamples,
// offset per channel so that channels differ. Useful for order checks.
func NewRampBuffer(sampleRate, channels, totalSamples int, start float32) *audio.Buffer {
	step := float32(1) / float32(max(totalSamples, 1))
	return NewBuffer(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return start + float32(sample)*step - float32(channel)*0.125
	})
}

// Interleave flattens planar channels into one interleaved slice.
func Interleave(b *audio.Buffer) []float32 {
	channels := b.NumChannels()
	out := make([]float32, b.Len()*channels)
	for i := range b.Len() {
		for c := range channels {
			out[i*channels+c] = b.Channels[c][i]
		}
	}

	return out
}
