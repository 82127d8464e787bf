package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit)
	offset       int
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	// Calculate how many samples we can fit in the buffer
	bytesAvailable := (len(m.samples) - m.offset) * 2
	bytesToRead := min(len(buf), bytesAvailable)

	// Ensure we read complete samples (even number of bytes)
	samplesToRead := bytesToRead / 2

	// Write samples as little-endian int16
	for i := range samplesToRead {
		sample := m.samples[m.offset+i]
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(sample))
	}

	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return samplesToRead * 2, io.EOF
	}

	return samplesToRead * 2, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	// Invalid MP3 data
	invalidData := []byte("This is not MP3 data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestDecodeAll_Stereo(t *testing.T) {
	t.Parallel()

	// Stereo samples: L, R, L, R pattern
	testSamples := []int16{
		16384, -16384, // Frame 1
		32767, -32768, // Frame 2
		8192, 0, // Frame 3
	}

	buf, err := decodeAll(&mockMP3Reader{sampleRate: 44100, samples: testSamples})
	if err != nil {
		t.Fatalf("decodeAll() error = %v", err)
	}

	if buf.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", buf.SampleRate)
	}

	if buf.NumChannels() != 2 || buf.Len() != 3 {
		t.Fatalf("decodeAll() = %d channels x %d, want 2 x 3", buf.NumChannels(), buf.Len())
	}

	wantL := []float32{0.5, 32767.0 / 32768.0, 0.25}
	wantR := []float32{-0.5, -1, 0}

	for i := range wantL {
		if buf.Channels[0][i] != wantL[i] {
			t.Errorf("left[%d] = %v, want %v", i, buf.Channels[0][i], wantL[i])
		}
		if buf.Channels[1][i] != wantR[i] {
			t.Errorf("right[%d] = %v, want %v", i, buf.Channels[1][i], wantR[i])
		}
	}
}

func TestDecodeAll_ManyReads(t *testing.T) {
	t.Parallel()

	// Larger than io.ReadAll's first read so several Read calls are needed
	testSamples := make([]int16, 2*44100)
	for i := range testSamples {
		testSamples[i] = int16(i % 1000)
	}

	buf, err := decodeAll(&mockMP3Reader{sampleRate: 44100, samples: testSamples})
	if err != nil {
		t.Fatalf("decodeAll() error = %v", err)
	}

	if buf.Len() != 44100 {
		t.Errorf("Len() = %d, want 44100", buf.Len())
	}

	last := buf.Channels[1][buf.Len()-1]
	want := float32(testSamples[len(testSamples)-1]) / 32768.0
	if last != want {
		t.Errorf("last right sample = %v, want %v", last, want)
	}
}

func TestDecodeAll_OddSampleDropped(t *testing.T) {
	t.Parallel()

	buf, err := decodeAll(&mockMP3Reader{sampleRate: 8000, samples: []int16{1, 2, 3}})
	if err != nil {
		t.Fatalf("decodeAll() error = %v", err)
	}

	if buf.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (partial frame dropped)", buf.Len())
	}
}

func TestDecodeAll_ReadError(t *testing.T) {
	t.Parallel()

	_, err := decodeAll(&mockMP3Reader{sampleRate: 8000, returnErrors: true})

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("decodeAll() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestDecodeAll_VariousSampleRates(t *testing.T) {
	t.Parallel()

	sampleRates := []int{8000, 11025, 16000, 22050, 32000, 44100, 48000}

	for _, rate := range sampleRates {
		buf, err := decodeAll(&mockMP3Reader{sampleRate: rate, samples: make([]int16, 100)})
		if err != nil {
			t.Fatalf("decodeAll(%d Hz) error = %v", rate, err)
		}

		if buf.SampleRate != rate {
			t.Errorf("SampleRate = %d, want %d", buf.SampleRate, rate)
		}
	}
}

// BenchmarkDecodeAll benchmarks decoding one second of stereo PCM
func BenchmarkDecodeAll(b *testing.B) {
	samples := make([]int16, 44100*2)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	mockReader := &mockMP3Reader{
		sampleRate: 44100,
		samples:    samples,
	}

	b.ReportAllocs()

	for b.Loop() {
		mockReader.offset = 0
		_, _ = decodeAll(mockReader)
	}
}
