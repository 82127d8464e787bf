// SPDX-License-Identifier: EPL-2.0

package audcat

import (
	"bytes"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/ik5/audcat/audio"
	"github.com/ik5/audcat/formats/aiff"
	"github.com/ik5/audcat/formats/flac"
	"github.com/ik5/audcat/formats/mp3"
	"github.com/ik5/audcat/formats/vorbis"
	"github.com/ik5/audcat/formats/wav"
	"github.com/ik5/audcat/utils"
)

// NewRegistry returns a registry with every bundled decoder:
//
//	wav        formats/wav
//	mp3        formats/mp3
//	ogg, oga   formats/vorbis
//	aiff, aif  formats/aiff
//	flac       formats/flac
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// DefaultRegistry is shared by callers that do not register their own decoders.
var DefaultRegistry = NewRegistry()

// DetectFormat picks a registry key for a clip.
//
// The leading bytes of data are checked first, so a mislabelled file still
// decodes. When no signature matches, the extension of ref is used; ref may
// be a URL (query and fragment are ignored) or a file path.
func DetectFormat(ref string, data []byte) (string, error) {
	if format := sniff(data); format != "" {
		return format, nil
	}

	if ext := extension(ref); ext != "" {
		return ext, nil
	}

	return "", fmt.Errorf("%w: %q", audio.ErrUnknownFormat, ref)
}

func sniff(data []byte) string {
	switch {
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == "WAVE":
		return "wav"
	case bytes.HasPrefix(data, []byte("OggS")):
		return "ogg"
	case bytes.HasPrefix(data, []byte("fLaC")):
		return "flac"
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("FORM")) &&
		(string(data[8:12]) == "AIFF" || string(data[8:12]) == "AIFC"):
		return "aiff"
	case bytes.HasPrefix(data, []byte("ID3")):
		return "mp3"
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		// MPEG audio frame sync
		return "mp3"
	}

	return ""
}

func extension(ref string) string {
	p := ref
	if u, err := url.Parse(ref); err == nil && u.Path != "" {
		p = u.Path
	}

	return strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
}

// ConcatToMono16 is a convenience function that joins decoded clips in order,
// reduces them to mono and quantizes the result to 16-bit PCM.
//
// Parameters:
//   - bufs: decoded clips, in playback order
//
// Returns:
//   - []int16: the joined samples, exactly the sum of the input lengths
//   - int: the sample rate of the first clip
//   - error: audio.ErrEmptyInput, audio.ErrUnsupportedChannelLayout or
//     audio.ErrInvalidBuffer
//
// Sample rates are not checked; use audio.Concatenator with
// StrictSampleRate for that.
//
// Example:
//
//	pcm16, rate, err := audcat.ConcatToMono16(main, breakdown, main)
//	if err != nil {
//	    return err
//	}
//	wav.WriteWAV16(out, rate, pcm16)
func ConcatToMono16(bufs ...*audio.Buffer) ([]int16, int, error) {
	track, err := audio.Concat(bufs...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}

	pcm16 := make([]int16, track.Len())
	utils.Float32ToInt16Slice(pcm16, track.Samples)

	return pcm16, track.SampleRate, nil
}
