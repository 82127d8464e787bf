// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/ik5/audcat/audio"
)

func TestWriteWAV16_ValidFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, -100, 200, -200}
	buf := new(bytes.Buffer)

	err := WriteWAV16(buf, 8000, samples)
	if err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	data := buf.Bytes()
	if len(data) != HeaderSize+2*len(samples) {
		t.Fatalf("WAV file size = %d, want %d", len(data), HeaderSize+2*len(samples))
	}

	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF marker = %q, want \"RIFF\"", string(data[0:4]))
	}

	if string(data[8:12]) != "WAVE" {
		t.Errorf("WAVE marker = %q, want \"WAVE\"", string(data[8:12]))
	}
}

func TestWriteWAV16_EmptySamples(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	err := WriteWAV16(buf, 8000, nil)
	if err != nil {
		t.Fatalf("WriteWAV16() error = %v, want nil", err)
	}

	// Should still create valid WAV header
	if buf.Len() != HeaderSize {
		t.Errorf("WAV file size = %d, want 44 (header only)", buf.Len())
	}
}

func TestWriteWAV16_InvalidSampleRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{0, -44100} {
		err := WriteWAV16(new(bytes.Buffer), rate, []int16{1})
		if !errors.Is(err, ErrInvalidSampleRate) {
			t.Errorf("WriteWAV16(rate=%d) error = %v, want ErrInvalidSampleRate", rate, err)
		}
	}
}

func TestWriteWAV16_CorrectHeader(t *testing.T) {
	t.Parallel()

	samples := []int16{100, 200, 300, 400}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 44100, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()

	tests := []struct {
		name   string
		offset int
		size   int
		want   uint32
	}{
		{"chunk size", 4, 4, uint32(len(data) - 8)},
		{"fmt chunk size", 16, 4, 16},
		{"audio format", 20, 2, 1},
		{"channels", 22, 2, 1},
		{"sample rate", 24, 4, 44100},
		{"byte rate", 28, 4, 88200},
		{"block align", 32, 2, 2},
		{"bits per sample", 34, 2, 16},
		{"data size", 40, 4, uint32(len(samples) * 2)},
	}

	for _, tt := range tests {
		var got uint32
		if tt.size == 2 {
			got = uint32(binary.LittleEndian.Uint16(data[tt.offset : tt.offset+2]))
		} else {
			got = binary.LittleEndian.Uint32(data[tt.offset : tt.offset+4])
		}

		if got != tt.want {
			t.Errorf("%s at byte %d = %d, want %d", tt.name, tt.offset, got, tt.want)
		}
	}

	if string(data[12:16]) != "fmt " {
		t.Errorf("fmt marker = %q, want \"fmt \"", string(data[12:16]))
	}

	if string(data[36:40]) != "data" {
		t.Errorf("data marker = %q, want \"data\"", string(data[36:40]))
	}
}

func TestWriteWAV16_SampleData(t *testing.T) {
	t.Parallel()

	samples := []int16{100, -200, 300, -400, math.MaxInt16, math.MinInt16}
	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 8000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()

	// Sample data starts at byte 44
	for i, expected := range samples {
		offset := HeaderSize + (i * 2)
		actual := int16(binary.LittleEndian.Uint16(data[offset : offset+2]))
		if actual != expected {
			t.Errorf("sample[%d] = %d, want %d", i, actual, expected)
		}
	}
}

func TestWriteWAV16_ByteOrder(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)

	if err := WriteWAV16(buf, 8000, []int16{0x1234}); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	// Sample should be at byte 44, little-endian: 0x34, 0x12
	if data[44] != 0x34 || data[45] != 0x12 {
		t.Errorf("sample bytes = [%02x %02x], want [34 12]", data[44], data[45])
	}
}

func TestWriteWAV16_SpansChunks(t *testing.T) {
	t.Parallel()

	// More than one write chunk, with a partial last chunk
	samples := make([]int16, chunkSize*2+17)
	for i := range samples {
		samples[i] = int16(i % 3000)
	}

	buf := new(bytes.Buffer)
	if err := WriteWAV16(buf, 16000, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != HeaderSize+2*len(samples) {
		t.Fatalf("WAV file size = %d, want %d", len(data), HeaderSize+2*len(samples))
	}

	last := int16(binary.LittleEndian.Uint16(data[len(data)-2:]))
	if last != samples[len(samples)-1] {
		t.Errorf("last sample = %d, want %d", last, samples[len(samples)-1])
	}
}

func TestEncodeMono_Quantizes(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 1, -1, 0.5, 2, float32(math.NaN())}
	want := []int16{0, 32767, -32767, 16383, 32767, 0}

	buf := new(bytes.Buffer)
	if err := EncodeMono(buf, 22050, samples); err != nil {
		t.Fatalf("EncodeMono() error = %v", err)
	}

	data := buf.Bytes()
	if len(data) != HeaderSize+2*len(samples) {
		t.Fatalf("EncodeMono() size = %d, want %d", len(data), HeaderSize+2*len(samples))
	}

	for i, w := range want {
		got := int16(binary.LittleEndian.Uint16(data[HeaderSize+2*i:]))
		if got != w {
			t.Errorf("sample[%d] = %d, want %d", i, got, w)
		}
	}
}

func TestEncodeMono_MatchesWriteWAV16(t *testing.T) {
	t.Parallel()

	samples := make([]float32, chunkSize+100)
	pcm := make([]int16, len(samples))
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.05))
		pcm[i] = int16(samples[i] * 32767)
	}

	fromFloat := new(bytes.Buffer)
	fromInt := new(bytes.Buffer)

	if err := EncodeMono(fromFloat, 48000, samples); err != nil {
		t.Fatalf("EncodeMono() error = %v", err)
	}
	if err := WriteWAV16(fromInt, 48000, pcm); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	if !bytes.Equal(fromFloat.Bytes(), fromInt.Bytes()) {
		t.Error("EncodeMono() output differs from WriteWAV16() of the same samples")
	}
}

func TestEncodeTrack_OneSecondSilenceTwice(t *testing.T) {
	t.Parallel()

	track := &audio.Track{SampleRate: 44100, Samples: make([]float32, 88200)}

	data, err := EncodeTrack(track)
	if err != nil {
		t.Fatalf("EncodeTrack() error = %v", err)
	}

	if len(data) != 176444 {
		t.Errorf("EncodeTrack() size = %d, want 176444", len(data))
	}
}

func TestEncodeTrack_HeaderRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate int
		n    int
	}{
		{8000, 0},
		{16000, 1},
		{22050, 1153},
		{44100, 44100},
		{48000, 12345},
	}

	for _, tt := range tests {
		track := &audio.Track{SampleRate: tt.rate, Samples: make([]float32, tt.n)}

		data, err := EncodeTrack(track)
		if err != nil {
			t.Fatalf("EncodeTrack() error = %v", err)
		}

		if len(data) != HeaderSize+2*tt.n {
			t.Errorf("rate=%d n=%d: size = %d, want %d", tt.rate, tt.n, len(data), HeaderSize+2*tt.n)
		}

		h, err := ParseHeader(data)
		if err != nil {
			t.Fatalf("ParseHeader() error = %v", err)
		}

		if h.NumSamples() != tt.n || int(h.SampleRate) != tt.rate {
			t.Errorf("ParseHeader() = %d samples at %d Hz, want %d at %d",
				h.NumSamples(), h.SampleRate, tt.n, tt.rate)
		}

		if h.FileSize() != len(data) {
			t.Errorf("FileSize() = %d, want %d", h.FileSize(), len(data))
		}
	}
}

type failingWriter struct {
	after int
	n     int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n >= w.after {
		return 0, errors.New("disk full")
	}
	w.n++
	return len(p), nil
}

func TestEncodeMono_WriteError(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 10)

	if err := EncodeMono(&failingWriter{after: 0}, 8000, samples); err == nil {
		t.Error("EncodeMono() error = nil on header write failure")
	}

	if err := EncodeMono(&failingWriter{after: 1}, 8000, samples); err == nil {
		t.Error("EncodeMono() error = nil on data write failure")
	}
}

// BenchmarkWriteWAV16 benchmarks writing WAV files
func BenchmarkWriteWAV16(b *testing.B) {
	samples := make([]int16, 44100) // 1 second at 44.1kHz
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	b.ReportAllocs()

	for b.Loop() {
		buf := new(bytes.Buffer)
		_ = WriteWAV16(buf, 44100, samples)
	}
}

// BenchmarkEncodeTrack benchmarks encoding a 2 second drill track
func BenchmarkEncodeTrack(b *testing.B) {
	track := &audio.Track{SampleRate: 44100, Samples: make([]float32, 88200)}
	for i := range track.Samples {
		track.Samples[i] = float32(math.Sin(float64(i) * 0.01))
	}

	b.ReportAllocs()

	for b.Loop() {
		_, _ = EncodeTrack(track)
	}
}
