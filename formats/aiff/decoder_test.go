// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakeReader stands in for go-audio's aiff.Decoder, emitting canned int
// samples.
type fakeReader struct {
	format   *goaudio.Format
	samples  []int
	offset   int
	failWith error
}

func (f *fakeReader) Format() *goaudio.Format { return f.format }

func (f *fakeReader) PCMBuffer(ib *goaudio.IntBuffer) (int, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	if f.offset >= len(f.samples) {
		return 0, io.EOF
	}

	n := copy(ib.Data, f.samples[f.offset:])
	f.offset += n
	return n, nil
}

func TestDecodeAll(t *testing.T) {
	t.Parallel()

	fake := &fakeReader{
		format:  &goaudio.Format{NumChannels: 2, SampleRate: 22050},
		samples: []int{0, 16384, -16384, 32767, -32768, 0},
	}

	got, err := decodeAll(fake, 16)
	if err != nil {
		t.Fatalf("decodeAll() error = %v", err)
	}

	if got.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", got.SampleRate)
	}
	if got.Channels != 2 {
		t.Errorf("Channels = %d, want 2", got.Channels)
	}
	if got.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", got.Frames())
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1, 0}
	for i, w := range want {
		diff := got.Data[i] - w
		if diff < -0.0001 || diff > 0.0001 {
			t.Errorf("Data[%d] = %v, want ≈%v", i, got.Data[i], w)
		}
	}
}

func TestDecodeAll_BitDepths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		sample   int
		want     float32
	}{
		{"8-bit signed", 8, -128, -1},
		{"16-bit", 16, 16384, 0.5},
		{"24-bit", 24, -8388608, -1},
		{"32-bit", 32, 1073741824, 0.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fake := &fakeReader{
				format:  &goaudio.Format{NumChannels: 1, SampleRate: 44100},
				samples: []int{tt.sample},
			}
			got, err := decodeAll(fake, tt.bitDepth)
			if err != nil {
				t.Fatalf("decodeAll() error = %v", err)
			}
			diff := got.Data[0] - tt.want
			if diff < -0.0001 || diff > 0.0001 {
				t.Errorf("Data[0] = %v, want ≈%v", got.Data[0], tt.want)
			}
		})
	}
}

func TestDecodeAll_UnsupportedDepth(t *testing.T) {
	t.Parallel()

	fake := &fakeReader{
		format:  &goaudio.Format{NumChannels: 1, SampleRate: 44100},
		samples: []int{1},
	}
	if _, err := decodeAll(fake, 12); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("decodeAll(12-bit) error = %v, want %v", err, ErrUnsupportedBitDepth)
	}
}

func TestDecodeAll_ReadError(t *testing.T) {
	t.Parallel()

	fake := &fakeReader{
		format:   &goaudio.Format{NumChannels: 1, SampleRate: 44100},
		failWith: io.ErrUnexpectedEOF,
	}
	if _, err := decodeAll(fake, 16); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("decodeAll() error = %v, want wrapped %v", err, io.ErrUnexpectedEOF)
	}
}

func TestDecode_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("this is not an aiff file at all")},
		{"form only", []byte("FORM")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Decode() error = %v, want %v", err, ErrNotAiffFile)
			}
		})
	}
}

func BenchmarkDecodeAll(b *testing.B) {
	samples := make([]int, 44100)
	for i := range samples {
		samples[i] = i % 10000
	}
	format := &goaudio.Format{NumChannels: 1, SampleRate: 44100}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		fake := &fakeReader{format: format, samples: samples}
		if _, err := decodeAll(fake, 16); err != nil {
			b.Fatal(err)
		}
	}
}
