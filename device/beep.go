// SPDX-License-Identifier: EPL-2.0

package device

import (
	"github.com/gopxl/beep"

	"github.com/SeedyROM/stabby/audio"
)

// Streamer adapts an engine to the gopxl/beep Streamer interface, for
// programs that already run a beep speaker and want the engine mixed into
// it:
//
//	speaker.Play(device.NewStreamer(engine))
//
// Streaming stops (ok=false) once the engine's shutdown ramp completes.
type Streamer struct {
	engine  *audio.Engine
	scratch []float32
}

var _ beep.Streamer = (*Streamer)(nil)

// Format returns the beep format matching the engine's configuration, for
// initializing the speaker:
//
//	f := device.Format(engine.Config())
//	speaker.Init(f.SampleRate, f.SampleRate.N(time.Second/20))
func Format(cfg audio.Config) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(cfg.SampleRate),
		NumChannels: cfg.OutputChannels,
		Precision:   2,
	}
}

// NewStreamer creates a beep streamer pulling from e.
func NewStreamer(e *audio.Engine) *Streamer {
	cfg := e.Config()
	return &Streamer{
		engine:  e,
		scratch: make([]float32, cfg.BufferFrames*cfg.OutputChannels),
	}
}

// Stream mixes len(samples) frames into samples.
func (s *Streamer) Stream(samples [][2]float64) (int, bool) {
	if s.engine.ShutdownComplete() {
		return 0, false
	}

	total := 0
	for total < len(samples) {
		frames := len(samples) - total
		if max := len(s.scratch) / 2; frames > max {
			frames = max
		}

		buf := s.scratch[:frames*2]
		s.engine.Mix(buf, frames)

		for i := 0; i < frames; i++ {
			samples[total+i][0] = float64(buf[i*2])
			samples[total+i][1] = float64(buf[i*2+1])
		}
		total += frames
	}
	return total, true
}

// Err always returns nil: the mix itself cannot fail.
func (s *Streamer) Err() error { return nil }
