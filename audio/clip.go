// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"sync/atomic"

	"github.com/SeedyROM/stabby/pcm"
)

// Clip is decoded audio shared between the game thread and the audio
// thread: interleaved float32 samples in [-1, 1], a channel count, and a
// sample rate. The sample data is immutable once constructed; the loop flag
// is the only mutable field and may be flipped from either thread.
//
// Clip lifetime is the caller's responsibility. The mixer holds a plain
// reference while a channel plays the clip and never frees anything itself.
type Clip struct {
	samples    []float32
	channels   int
	sampleRate int
	looping    atomic.Bool
}

// NewClip wraps samples in a Clip without copying. channels must be 1
// (mono) or 2 (stereo).
func NewClip(samples []float32, channels, sampleRate int) (*Clip, error) {
	if channels != 1 && channels != 2 {
		return nil, ErrInvalidClipChannels
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidClipSampleRate
	}
	if len(samples)%channels != 0 {
		return nil, ErrInvalidClipData
	}
	return &Clip{
		samples:    samples,
		channels:   channels,
		sampleRate: sampleRate,
	}, nil
}

// FromBuffer wraps a decoded pcm.Buffer in a Clip without copying.
func FromBuffer(b *pcm.Buffer) (*Clip, error) {
	return NewClip(b.Data, b.Channels, b.SampleRate)
}

// Samples returns the interleaved sample data. Callers must treat it as
// read-only.
func (c *Clip) Samples() []float32 { return c.samples }

// Channels returns 1 for mono or 2 for stereo.
func (c *Clip) Channels() int { return c.channels }

// SampleRate returns the clip's sample rate in Hz.
func (c *Clip) SampleRate() int { return c.sampleRate }

// Frames returns the number of frames (samples per channel).
func (c *Clip) Frames() int { return len(c.samples) / c.channels }

// Duration returns the playback length in seconds at the clip's own rate.
func (c *Clip) Duration() float64 {
	return float64(c.Frames()) / float64(c.sampleRate)
}

// Looping reports whether playback wraps at the end of the clip.
func (c *Clip) Looping() bool { return c.looping.Load() }

// SetLooping sets the loop flag. Safe to call from any thread.
func (c *Clip) SetLooping(loop bool) { c.looping.Store(loop) }
