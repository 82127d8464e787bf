// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/audcat/audio"
	"github.com/ik5/audcat/utils"
)

const (
	// MIMEType is the content type of files written by this package.
	MIMEType = "audio/mp3"

	// BlockSize is the number of samples handed to the codec per call,
	// one MPEG-1 Layer III granule pair.
	BlockSize = 1152

	// Bitrate in kbps used for every encode.
	Bitrate = 128
)

// Codec is an MPEG Layer III block encoder. EncodeBlock may return an empty
// chunk while it buffers; Flush returns whatever is left and is called once.
type Codec interface {
	EncodeBlock(pcm []int16) ([]byte, error)
	Flush() ([]byte, error)
}

// CodecFactory builds a Codec for the given stream parameters.
type CodecFactory func(channels, sampleRate, bitrateKbps int) (Codec, error)

// Encoder frames mono samples into BlockSize blocks and drives a Codec.
// The zero value uses NewShineCodec.
type Encoder struct {
	NewCodec CodecFactory
}

// Encode quantizes samples and writes the codec output to w in the order
// produced: block 0, block 1, ..., then the flush tail. The last block may
// be shorter than BlockSize. Any codec error aborts the whole encode.
func (e Encoder) Encode(w io.Writer, sampleRate int, samples []float32) error {
	newCodec := e.NewCodec
	if newCodec == nil {
		newCodec = NewShineCodec
	}

	codec, err := newCodec(1, sampleRate, Bitrate)
	if err != nil {
		return &CodecError{Op: "init", Block: -1, Err: err}
	}

	block := make([]int16, BlockSize)

	for i := 0; i < len(samples); i += BlockSize {
		n := utils.Float32ToInt16Slice(block, samples[i:min(i+BlockSize, len(samples))])

		out, err := codec.EncodeBlock(block[:n])
		if err != nil {
			return &CodecError{Op: "encode", Block: i / BlockSize, Err: err}
		}

		if err := writeChunk(w, out); err != nil {
			return err
		}
	}

	tail, err := codec.Flush()
	if err != nil {
		return &CodecError{Op: "flush", Block: -1, Err: err}
	}

	return writeChunk(w, tail)
}

// EncodeTrack returns track as a complete MP3 stream.
func (e Encoder) EncodeTrack(track *audio.Track) ([]byte, error) {
	out := new(bytes.Buffer)

	if err := e.Encode(out, track.SampleRate, track.Samples); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func writeChunk(w io.Writer, chunk []byte) error {
	if len(chunk) == 0 {
		return nil
	}

	if _, err := w.Write(chunk); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
