package audio

import "fmt"

// Downmix reduces b to a single channel.
//
// Mono input is copied as is. Stereo input is averaged per sample,
// (left + right) / 2, with no equal-power weighting. Any other layout fails
// with ErrUnsupportedChannelLayout.
func Downmix(b *Buffer) ([]float32, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	out := make([]float32, b.Len())
	if err := downmixInto(out, b); err != nil {
		return nil, err
	}

	return out, nil
}

// downmixInto writes the mono reduction of b into dst, which must hold
// exactly b.Len() samples.
func downmixInto(dst []float32, b *Buffer) error {
	switch b.NumChannels() {
	case 1:
		copy(dst, b.Channels[0])
	case 2: // Stereo
		left, right := b.Channels[0], b.Channels[1]
		for i := range dst {
			dst[i] = (left[i] + right[i]) / 2
		}
	default:
		return fmt.Errorf("%w: %d channels", ErrUnsupportedChannelLayout, b.NumChannels())
	}

	return nil
}

// Concatenator joins buffers into one mono Track.
//
// The output rate is the rate of the first buffer. When StrictSampleRate is
// false, buffers with a different rate are joined anyway and will play back
// at the wrong speed; when true such input fails with ErrSampleRateMismatch.
type Concatenator struct {
	StrictSampleRate bool
}

// Concat mono-reduces every buffer and joins them in the given order.
// The output length is exactly the sum of the input lengths.
func (c Concatenator) Concat(bufs ...*Buffer) (*Track, error) {
	if len(bufs) == 0 {
		return nil, ErrEmptyInput
	}

	total := 0
	for i, b := range bufs {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("buffer %d: %w", i, err)
		}

		if b.NumChannels() > 2 {
			return nil, fmt.Errorf("buffer %d: %w: %d channels",
				i, ErrUnsupportedChannelLayout, b.NumChannels())
		}

		if c.StrictSampleRate && b.SampleRate != bufs[0].SampleRate {
			return nil, fmt.Errorf("buffer %d: %w: %d Hz, want %d Hz",
				i, ErrSampleRateMismatch, b.SampleRate, bufs[0].SampleRate)
		}

		total += b.Len()
	}

	samples := make([]float32, total)
	offset := 0
	for i, b := range bufs {
		n := b.Len()
		if err := downmixInto(samples[offset:offset+n], b); err != nil {
			return nil, fmt.Errorf("buffer %d: %w", i, err)
		}
		offset += n
	}

	return &Track{
		SampleRate: bufs[0].SampleRate,
		Samples:    samples,
	}, nil
}

// Concat is Concatenator{}.Concat: permissive about sample rates.
func Concat(bufs ...*Buffer) (*Track, error) {
	return Concatenator{}.Concat(bufs...)
}
