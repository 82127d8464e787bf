// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and canonical PCM encoding.
//
// Decoding uses github.com/go-audio/wav, so files with extra chunks (LIST,
// INFO, fact, ...) are accepted. Encoding is done here, byte by byte, to
// guarantee the canonical 44-byte layout.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	buf, err := decoder.Decode(file)
//
// Integer PCM at 8, 16, 24 and 32 bits is supported. Samples are returned
// as planar float32 in [-1.0, 1.0).
//
// # Writing WAV Files
//
// EncodeMono quantizes float samples and writes a mono 16-bit file:
//
//	err := wav.EncodeMono(file, 44100, samples)
//
// WriteWAV16 does the same for samples that are already int16:
//
//	err := wav.WriteWAV16(file, 8000, []int16{100, -100, 200, -200})
//
// EncodeTrack returns the file for an audio.Track as a byte slice.
//
// # File Format
//
// Output files always have this layout, little-endian throughout:
//
//	offset size field
//	0      4    "RIFF"
//	4      4    file length - 8
//	8      4    "WAVE"
//	12     4    "fmt "
//	16     4    16
//	20     2    1 (PCM)
//	22     2    1 (channels)
//	24     4    sample rate
//	28     4    sample rate * 2
//	32     2    2 (block align)
//	34     2    16 (bits per sample)
//	36     4    "data"
//	40     4    number of samples * 2
//	44     ...  samples
//
// ParseHeader reads this layout back.
package wav
