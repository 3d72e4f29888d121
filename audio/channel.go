// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"sync/atomic"

	"github.com/SeedyROM/stabby/utils"
)

// Pitch and playback speed share the same clamp range: extreme ratios would
// either stall the cursor or overrun the source within one callback.
const (
	minPitch = 0.1
	maxPitch = 3.0

	// speedSmoothRate is the exponential-approach rate (per second) used to
	// ease the playback speed toward its target, avoiding audible pitch
	// jumps when the global time scale changes.
	speedSmoothRate = 8.0
)

// channel is one playback voice. All fields except the active flag are
// owned by the audio thread; the flag is atomic so the producer can scan
// for a free voice without a data race.
type channel struct {
	clip          *Clip
	cursor        float64 // fractional position, in source frames
	volume        float32
	targetVolume  float32
	fadeRemaining float32
	fadeDuration  float32
	pitch         float32
	posX, posY    float32
	speed         float32
	targetSpeed   float32
	active        atomic.Bool
}

func (c *channel) reset() {
	c.clip = nil
	c.cursor = 0
	c.volume = 1
	c.targetVolume = 1
	c.fadeRemaining = 0
	c.fadeDuration = 0
	c.pitch = 1
	c.posX, c.posY = 0, 0
	c.speed = 1
	c.targetSpeed = 1
	c.active.Store(false)
}

// isActive reports whether the voice should be mixed. Audio thread only;
// the producer side must consult the atomic flag alone.
func (c *channel) isActive() bool {
	return c.active.Load() && c.clip != nil
}

// play replaces the current clip and restarts playback. No fade-in is
// implied; callers wanting one issue a fade command right after.
func (c *channel) play(clip *Clip, volume float32) {
	c.clip = clip
	c.cursor = 0
	c.volume = clamp01(volume)
	c.targetVolume = c.volume
	c.fadeRemaining = 0
	c.active.Store(true)
}

// stop silences the voice and releases the clip reference. Idempotent.
func (c *channel) stop() {
	c.active.Store(false)
	c.clip = nil
	c.cursor = 0
}

// setVolume sets the volume immediately, cancelling any fade in progress.
func (c *channel) setVolume(volume float32) {
	c.volume = clamp01(volume)
	c.targetVolume = c.volume
	c.fadeRemaining = 0
}

func (c *channel) setPitch(pitch float32) {
	c.pitch = clampPitch(pitch)
}

// setPosition stores raw world coordinates; the spatialization model
// interprets their magnitude as distance.
func (c *channel) setPosition(x, y float32) {
	c.posX = x
	c.posY = y
}

// fadeVolume eases the volume toward target over duration seconds. A
// non-positive duration behaves as an instantaneous setVolume. A fade that
// completes at zero volume stops the voice.
func (c *channel) fadeVolume(target, duration float32) {
	target = clamp01(target)
	if duration <= 0 {
		c.setVolume(target)
		return
	}
	c.targetVolume = target
	c.fadeDuration = duration
	c.fadeRemaining = duration
}

// setPlaybackSpeed sets the target playback speed; update eases the current
// speed toward it. Distinct from pitch: speed follows the engine's global
// time scale, pitch is per-sound.
func (c *channel) setPlaybackSpeed(speed float32) {
	c.targetSpeed = clampPitch(speed)
}

// update advances fade and speed-smoothing state by deltaTime seconds. The
// playback cursor is not touched here - it advances only during mix, where
// the step depends on the effective pitch.
func (c *channel) update(deltaTime float32) {
	if !c.isActive() {
		return
	}

	if c.fadeRemaining > 0 {
		c.fadeRemaining -= deltaTime
		if c.fadeRemaining <= 0 {
			c.fadeRemaining = 0
			c.volume = c.targetVolume
			if c.volume <= 0 {
				c.stop()
				return
			}
		} else {
			t := 1 - c.fadeRemaining/c.fadeDuration
			c.volume += (c.targetVolume - c.volume) * t
		}
	}

	if c.speed != c.targetSpeed {
		k := speedSmoothRate * deltaTime
		if k > 1 {
			k = 1
		}
		c.speed += (c.targetSpeed - c.speed) * k
	}
}

// mix accumulates frames of this voice into the interleaved stereo buffer.
// Inactive or silent voices cost nothing. Playback resamples the clip by
// the effective pitch (pitch * speed) with cubic interpolation; stereo
// sources are averaged to mono before panning.
func (c *channel) mix(buf []float32, frames int) {
	if !c.isActive() || c.volume <= 0 {
		return
	}

	data := c.clip.samples
	srcFrames := float64(c.clip.Frames())
	step := float64(c.pitch * c.speed)

	left, right := spatialGains(c.posX, c.posY)
	left *= c.volume
	right *= c.volume

	for f := 0; f < frames; f++ {
		var sample float32
		if c.clip.channels == 1 {
			sample = utils.SampleAt(data, c.cursor)
		} else {
			l := utils.SampleAt(data, c.cursor*2)
			r := utils.SampleAt(data, c.cursor*2+1)
			sample = (l + r) * 0.5
		}

		buf[f*2] += sample * left
		buf[f*2+1] += sample * right

		c.cursor += step
		if c.cursor >= srcFrames {
			if c.clip.Looping() {
				c.cursor = 0
			} else {
				c.stop()
				break
			}
		}
	}
}

func clampPitch(v float32) float32 {
	if v < minPitch {
		return minPitch
	}
	if v > maxPitch {
		return maxPitch
	}
	return v
}
