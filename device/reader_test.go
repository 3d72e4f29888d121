// SPDX-License-Identifier: EPL-2.0

package device

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/SeedyROM/stabby/audio"
)

func newEngineWithTone(t *testing.T, value float32) *audio.Engine {
	t.Helper()

	e, err := audio.New(audio.DefaultConfig())
	if err != nil {
		t.Fatalf("audio.New() error = %v", err)
	}

	samples := make([]float32, 44100*10)
	for i := range samples {
		samples[i] = value
	}
	clip, err := audio.NewClip(samples, 1, 44100)
	if err != nil {
		t.Fatalf("audio.NewClip() error = %v", err)
	}
	if _, ok := e.PlaySound(clip, 1.0); !ok {
		t.Fatal("PlaySound() failed on a fresh engine")
	}
	return e
}

func TestReader_LittleEndianFloat32(t *testing.T) {
	t.Parallel()

	e := newEngineWithTone(t, 0.5)
	r := NewReader(e)

	p := make([]byte, 64*2*bytesPerSample)
	n, err := r.Read(p)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != len(p) {
		t.Fatalf("Read() n = %d, want %d", n, len(p))
	}

	want := math.Float32bits(0.5)
	for i := 0; i < n/bytesPerSample; i++ {
		got := binary.LittleEndian.Uint32(p[i*bytesPerSample:])
		if got != want {
			t.Fatalf("sample %d bits = %#x, want %#x", i, got, want)
		}
	}
}

func TestReader_CapsAtScratchSize(t *testing.T) {
	t.Parallel()

	cfg := audio.DefaultConfig()
	cfg.BufferFrames = 64
	e, err := audio.New(cfg)
	if err != nil {
		t.Fatalf("audio.New() error = %v", err)
	}
	r := NewReader(e)

	// Request four periods worth; the reader serves one per call
	p := make([]byte, 256*2*bytesPerSample)
	n, err := r.Read(p)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if want := 64 * 2 * bytesPerSample; n != want {
		t.Errorf("Read() n = %d, want %d (one callback period)", n, want)
	}
}

func TestReader_ShortBuffer(t *testing.T) {
	t.Parallel()

	e, err := audio.New(audio.DefaultConfig())
	if err != nil {
		t.Fatalf("audio.New() error = %v", err)
	}
	r := NewReader(e)

	// Less than one stereo frame
	n, err := r.Read(make([]byte, 7))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Read() n = %d for sub-frame buffer, want 0", n)
	}
}

func TestReader_EOFAfterShutdown(t *testing.T) {
	t.Parallel()

	e, err := audio.New(audio.DefaultConfig())
	if err != nil {
		t.Fatalf("audio.New() error = %v", err)
	}
	r := NewReader(e)

	e.BeginShutdown()
	p := make([]byte, 1024*2*bytesPerSample)
	for i := 0; i < 20; i++ {
		if _, err := r.Read(p); err == io.EOF {
			return
		}
	}
	t.Fatal("Read() never returned io.EOF after the shutdown ramp")
}

func TestReader_ReadIsAllocationFree(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	e := newEngineWithTone(t, 0.25)
	r := NewReader(e)

	p := make([]byte, 1024*2*bytesPerSample)
	if _, err := r.Read(p); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = r.Read(p)
	})
	if allocs > 0 {
		t.Errorf("Read allocated %v times per call, want 0", allocs)
	}
}

func BenchmarkReader_Read(b *testing.B) {
	e, err := audio.New(audio.DefaultConfig())
	if err != nil {
		b.Fatalf("audio.New() error = %v", err)
	}

	samples := make([]float32, 44100)
	for i := range samples {
		samples[i] = float32(math.Sin(2 * math.Pi * 440 * float64(i) / 44100))
	}
	clip, err := audio.NewClip(samples, 1, 44100)
	if err != nil {
		b.Fatalf("audio.NewClip() error = %v", err)
	}
	clip.SetLooping(true)
	e.PlaySound(clip, 0.5)

	r := NewReader(e)
	p := make([]byte, 1024*2*bytesPerSample)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := r.Read(p); err != nil {
			b.Fatal(err)
		}
	}
}
