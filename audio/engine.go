// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"sync/atomic"
)

const (
	// NumChannels is the fixed voice bank size.
	NumChannels = 16
	// MusicChannel is reserved for background music by convention.
	MusicChannel = 0

	// shutdownRampDuration is the fade-to-silence applied on teardown so
	// stopping the device doesn't click.
	shutdownRampDuration = 0.05
)

// atomicFloat32 is a float published between the producer and the audio
// thread without locks.
type atomicFloat32 struct {
	bits atomic.Uint32
}

func (a *atomicFloat32) Store(v float32) { a.bits.Store(math.Float32bits(v)) }
func (a *atomicFloat32) Load() float32   { return math.Float32frombits(a.bits.Load()) }

// Engine owns the voice bank and the command queue. The control methods are
// the producer side: non-blocking, fire-and-forget, callable from one game
// thread. Mix is the consumer side, invoked by the audio driver.
type Engine struct {
	cfg      Config
	channels [NumChannels]channel
	queue    *commandQueue

	masterVolume atomicFloat32
	timeScale    atomicFloat32

	shutdownRequested atomic.Bool
	shutdownDone      atomic.Bool

	// Ramp state, audio thread only
	rampArmed     bool
	rampRemaining float32
}

// New creates an engine for the given configuration.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		queue: newCommandQueue(cfg.QueueCapacity),
	}
	e.masterVolume.Store(clamp01(cfg.MasterVolume))
	e.timeScale.Store(1)
	for i := range e.channels {
		e.channels[i].reset()
	}
	return e, nil
}

// Config returns the construction-time configuration.
func (e *Engine) Config() Config { return e.cfg }

// PlaySound allocates a free effect channel and queues clip on it. Returns
// the channel id, or ok=false when the clip is nil or every effect channel
// is busy (requests are dropped rather than stealing a playing voice).
func (e *Engine) PlaySound(clip *Clip, volume float32) (ch int, ok bool) {
	if clip == nil {
		return 0, false
	}
	ch = e.findFreeChannel()
	if ch < 0 {
		return 0, false
	}
	e.queue.pushPlay(clip, clamp01(volume), ch)
	return ch, true
}

// PlayMusic queues clip on the reserved music channel, stopping whatever
// currently occupies it.
func (e *Engine) PlayMusic(clip *Clip, loop bool) {
	if clip == nil {
		return
	}
	clip.SetLooping(loop)
	e.queue.pushStop(MusicChannel)
	e.queue.pushPlay(clip, 1.0, MusicChannel)
}

// StopChannel queues a stop for the given channel.
func (e *Engine) StopChannel(ch int) {
	if !validChannel(ch) {
		return
	}
	e.queue.pushStop(ch)
}

// StopAll queues a stop for every channel, music included.
func (e *Engine) StopAll() {
	for ch := 0; ch < NumChannels; ch++ {
		e.queue.pushStop(ch)
	}
}

// SetChannelVolume queues an instantaneous volume change, cancelling any
// fade in progress on the channel.
func (e *Engine) SetChannelVolume(ch int, volume float32) {
	if !validChannel(ch) {
		return
	}
	e.queue.pushVolume(ch, clamp01(volume))
}

// SetChannelPitch queues a pitch change. Pitch is clamped to [0.1, 3.0].
func (e *Engine) SetChannelPitch(ch int, pitch float32) {
	if !validChannel(ch) {
		return
	}
	e.queue.pushPitch(ch, clampPitch(pitch))
}

// SetChannelPosition queues a 2D position change for spatialization.
func (e *Engine) SetChannelPosition(ch int, x, y float32) {
	if !validChannel(ch) {
		return
	}
	e.queue.pushPosition(ch, x, y)
}

// SetChannelLoop queues a loop-flag change for the clip currently playing
// on the channel.
func (e *Engine) SetChannelLoop(ch int, loop bool) {
	if !validChannel(ch) {
		return
	}
	e.queue.pushLoop(ch, loop)
}

// FadeChannel queues a linear fade toward targetVolume over duration
// seconds. A fade that completes at zero volume frees the channel.
func (e *Engine) FadeChannel(ch int, targetVolume, duration float32) {
	if !validChannel(ch) {
		return
	}
	if duration < 0 {
		duration = 0
	}
	e.queue.pushFade(ch, clamp01(targetVolume), duration)
}

// SetMasterVolume sets the master gain, clamped to [0, 1]. Takes effect on
// the next Mix call.
func (e *Engine) SetMasterVolume(volume float32) {
	e.masterVolume.Store(clamp01(volume))
}

// MasterVolume returns the current master gain.
func (e *Engine) MasterVolume() float32 { return e.masterVolume.Load() }

// SetGlobalTimeScale sets the engine-wide playback speed in [0.1, 3.0],
// for bullet-time style effects. Each channel eases toward it to avoid
// audible pitch jumps.
func (e *Engine) SetGlobalTimeScale(scale float32) {
	e.timeScale.Store(clampPitch(scale))
}

// GlobalTimeScale returns the current engine-wide playback speed.
func (e *Engine) GlobalTimeScale() float32 { return e.timeScale.Load() }

// BeginShutdown starts a short fade-to-silence. Once ShutdownComplete
// reports true the owner is expected to stop the device.
func (e *Engine) BeginShutdown() {
	e.shutdownRequested.Store(true)
}

// ShutdownComplete reports whether the shutdown ramp has reached silence.
func (e *Engine) ShutdownComplete() bool { return e.shutdownDone.Load() }

// IsChannelActive reports whether a channel is currently in use. Safe to
// call from the producer thread; the answer may be stale by one callback.
func (e *Engine) IsChannelActive(ch int) bool {
	return validChannel(ch) && e.channels[ch].active.Load()
}

// Mix fills buf with the next frames of output: interleaved stereo float32
// in [-1, 1]. This is the audio callback body - it drains pending commands,
// advances and accumulates every active voice, then applies peak limiting,
// master volume, and the shutdown ramp. It never blocks and never
// allocates. Audio thread only.
func (e *Engine) Mix(buf []float32, frames int) {
	e.queue.drain(e.apply)

	buf = buf[:frames*e.cfg.OutputChannels]
	for i := range buf {
		buf[i] = 0
	}

	deltaTime := float32(frames) / float32(e.cfg.SampleRate)
	rampGain := e.advanceShutdownRamp(deltaTime)
	scale := e.timeScale.Load()

	mixed := 0
	for i := range e.channels {
		ch := &e.channels[i]
		if !ch.isActive() {
			continue
		}
		ch.update(deltaTime * scale)
		ch.setPlaybackSpeed(scale)
		if !ch.isActive() {
			// A completed fade-out may have freed the voice
			continue
		}
		ch.mix(buf, frames)
		mixed++
	}

	if mixed == 0 {
		return
	}

	// Peak-based soft limiting: one pass to find the peak, one to scale.
	// Scaling the whole buffer by a single factor preserves the relative
	// levels that per-sample clipping would destroy.
	var peak float32
	for _, v := range buf {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}

	normalization := float32(1.0)
	if peak > 1 {
		normalization = 1 / peak
	}

	finalGain := normalization * e.masterVolume.Load() * rampGain
	for i, v := range buf {
		v *= finalGain
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		buf[i] = v
	}
}

// apply dispatches one drained command. Commands addressing an invalid
// channel or carrying a nil clip are discarded: the producer and consumer
// race harmlessly on validity here.
func (e *Engine) apply(cmd command) {
	if !validChannel(cmd.channel) {
		return
	}
	ch := &e.channels[cmd.channel]

	switch cmd.kind {
	case cmdPlay:
		if cmd.clip != nil {
			ch.play(cmd.clip, cmd.v1)
		}
	case cmdStop:
		ch.stop()
	case cmdSetVolume:
		ch.setVolume(cmd.v1)
	case cmdFadeIn, cmdFadeOut:
		ch.fadeVolume(cmd.v1, cmd.v2)
	case cmdSetPitch:
		ch.setPitch(cmd.v1)
	case cmdSetPosition:
		ch.setPosition(cmd.v1, cmd.v2)
	case cmdSetLoop:
		if ch.clip != nil {
			ch.clip.SetLooping(cmd.flag)
		}
	}
}

// advanceShutdownRamp returns the gain for this callback and steps the ramp
// state. Audio thread only.
func (e *Engine) advanceShutdownRamp(deltaTime float32) float32 {
	if !e.shutdownRequested.Load() {
		return 1
	}
	if !e.rampArmed {
		e.rampArmed = true
		e.rampRemaining = shutdownRampDuration
	}
	if e.rampRemaining <= 0 {
		e.shutdownDone.Store(true)
		return 0
	}

	gain := e.rampRemaining / shutdownRampDuration
	e.rampRemaining -= deltaTime
	if e.rampRemaining <= 0 {
		e.rampRemaining = 0
		e.shutdownDone.Store(true)
	}
	return gain
}

// findFreeChannel scans the effect channels (music channel excluded) for
// the first one not in use. Returns -1 when every voice is busy.
func (e *Engine) findFreeChannel() int {
	for i := MusicChannel + 1; i < NumChannels; i++ {
		if !e.channels[i].active.Load() {
			return i
		}
	}
	return -1
}

func validChannel(ch int) bool {
	return ch >= 0 && ch < NumChannels
}
