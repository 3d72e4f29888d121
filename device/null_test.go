// SPDX-License-Identifier: EPL-2.0

package device

import (
	"io"
	"testing"
	"time"

	"github.com/SeedyROM/stabby/audio"
)

func TestNullOutput_StepDrivesEngine(t *testing.T) {
	t.Parallel()

	e, err := audio.New(audio.DefaultConfig())
	if err != nil {
		t.Fatalf("audio.New() error = %v", err)
	}
	out := NewNullOutput(e)

	clip, err := audio.NewClip(make([]float32, 44100*10), 1, 44100)
	if err != nil {
		t.Fatalf("audio.NewClip() error = %v", err)
	}
	ch, ok := e.PlaySound(clip, 1.0)
	if !ok {
		t.Fatal("PlaySound() failed on a fresh engine")
	}

	// Commands only apply when something mixes
	if err := out.Step(); err != nil {
		t.Fatalf("Step() error = %v", err)
	}
	if !e.IsChannelActive(ch) {
		t.Error("channel inactive after Step(), command queue not drained")
	}
}

func TestNullOutput_StepEOFAfterShutdown(t *testing.T) {
	t.Parallel()

	e, err := audio.New(audio.DefaultConfig())
	if err != nil {
		t.Fatalf("audio.New() error = %v", err)
	}
	out := NewNullOutput(e)

	e.BeginShutdown()
	for i := 0; i < 20; i++ {
		if err := out.Step(); err == io.EOF {
			return
		}
	}
	t.Fatal("Step() never returned io.EOF after the shutdown ramp")
}

func TestNullOutput_StartStop(t *testing.T) {
	t.Parallel()

	cfg := audio.DefaultConfig()
	cfg.BufferFrames = 64 // short period so the pump ticks quickly
	e, err := audio.New(cfg)
	if err != nil {
		t.Fatalf("audio.New() error = %v", err)
	}
	out := NewNullOutput(e)

	if err := out.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := out.Start(); err != nil {
		t.Fatalf("second Start() error = %v", err)
	}

	clip, err := audio.NewClip(make([]float32, 44100*10), 1, 44100)
	if err != nil {
		t.Fatalf("audio.NewClip() error = %v", err)
	}
	ch, _ := e.PlaySound(clip, 1.0)

	deadline := time.After(2 * time.Second)
	for !e.IsChannelActive(ch) {
		select {
		case <-deadline:
			t.Fatal("pump never applied the queued play command")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if err := out.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}
