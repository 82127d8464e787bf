// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/audcat/audio"
	"github.com/ik5/audcat/utils"
)

// MIMEType is the content type of files written by this package.
const MIMEType = "audio/wav"

// Write 8KB of samples at a time
const chunkSize = 4096

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples must be int16 PCM.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if err := writeHeader(w, sampleRate, len(samples)); err != nil {
		return err
	}

	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*2)
	for i := 0; i < len(samples); i += chunkSize {
		chunk := samples[i:min(i+chunkSize, len(samples))]
		out := buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// EncodeMono quantizes float samples with utils.Float32ToInt16 and writes
// them as a mono 16-bit PCM WAV. The output is exactly
// HeaderSize + 2*len(samples) bytes.
func EncodeMono(w io.Writer, sampleRate int, samples []float32) error {
	if err := writeHeader(w, sampleRate, len(samples)); err != nil {
		return err
	}

	if len(samples) == 0 {
		return nil
	}

	pcm := make([]int16, min(len(samples), chunkSize))
	buf := make([]byte, len(pcm)*2)

	for i := 0; i < len(samples); i += chunkSize {
		n := utils.Float32ToInt16Slice(pcm, samples[i:min(i+chunkSize, len(samples))])
		out := buf[:n*2]

		for j, s := range pcm[:n] {
			binary.LittleEndian.PutUint16(out[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// EncodeTrack returns track as a complete WAV file.
func EncodeTrack(track *audio.Track) ([]byte, error) {
	out := bytes.NewBuffer(make([]byte, 0, HeaderSize+2*track.Len()))

	if err := EncodeMono(out, track.SampleRate, track.Samples); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func writeHeader(w io.Writer, sampleRate, numSamples int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	header, _ := NewPCM16Header(sampleRate, 1, numSamples).MarshalBinary()

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
