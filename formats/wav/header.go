// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the size of a canonical PCM WAV header.
const HeaderSize = 44

// Header is the canonical 44-byte RIFF/WAVE header: a RIFF chunk holding one
// 16-byte fmt chunk followed directly by the data chunk.
type Header struct {
	ChunkSize     uint32 // total file length - 8
	AudioFormat   uint16 // 1 = PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// NewPCM16Header returns the header for numSamples frames of 16-bit PCM.
func NewPCM16Header(sampleRate, numChannels, numSamples int) Header {
	blockAlign := uint16(numChannels) * 2
	dataSize := uint32(numSamples) * uint32(blockAlign)

	return Header{
		ChunkSize:     36 + dataSize,
		AudioFormat:   1,
		NumChannels:   uint16(numChannels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * uint32(blockAlign),
		BlockAlign:    blockAlign,
		BitsPerSample: 16,
		DataSize:      dataSize,
	}
}

// NumSamples returns the number of frames described by DataSize.
func (h Header) NumSamples() int {
	if h.BlockAlign == 0 {
		return 0
	}
	return int(h.DataSize / uint32(h.BlockAlign))
}

// FileSize returns the total file length the header describes.
func (h Header) FileSize() int { return int(h.ChunkSize) + 8 }

// MarshalBinary encodes the header as 44 little-endian bytes.
func (h Header) MarshalBinary() ([]byte, error) {
	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], h.ChunkSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], h.AudioFormat)
	binary.LittleEndian.PutUint16(header[22:24], h.NumChannels)
	binary.LittleEndian.PutUint32(header[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], h.ByteRate)
	binary.LittleEndian.PutUint16(header[32:34], h.BlockAlign)
	binary.LittleEndian.PutUint16(header[34:36], h.BitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], h.DataSize)

	return header, nil
}

// ParseHeader reads a canonical 44-byte header. Files with extra chunks
// between fmt and data are rejected with ErrUnsupportedWavLayout; use
// Decoder for those.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrInvalidHeader, len(data))
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return Header{}, ErrNotWavFile
	}

	if string(data[12:16]) != "fmt " || binary.LittleEndian.Uint32(data[16:20]) != 16 {
		return Header{}, ErrUnsupportedWavLayout
	}

	if string(data[36:40]) != "data" {
		return Header{}, ErrUnsupportedWavLayout
	}

	return Header{
		ChunkSize:     binary.LittleEndian.Uint32(data[4:8]),
		AudioFormat:   binary.LittleEndian.Uint16(data[20:22]),
		NumChannels:   binary.LittleEndian.Uint16(data[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(data[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(data[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(data[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(data[34:36]),
		DataSize:      binary.LittleEndian.Uint32(data[40:44]),
	}, nil
}
