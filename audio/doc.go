// SPDX-License-Identifier: EPL-2.0

// Package audio implements the real-time mixing core: a fixed bank of
// playback channels driven by a lock-free command queue and mixed into an
// interleaved stereo float32 buffer.
//
// # Threading Model
//
// Exactly two logical threads touch an Engine: the producer (game logic
// calling the control API) and the consumer (the audio driver invoking Mix
// once per output period). Control calls are fire-and-forget: they enqueue
// a command and return immediately, and the command takes effect on the
// next Mix call or later. When the queue is full, commands are dropped,
// never blocked on.
//
// The consumer path - draining commands, updating channels, mixing, gain
// staging - performs no locking, no allocation, and no system calls, so it
// is safe to run from a real-time audio callback.
//
//	cfg := audio.DefaultConfig()
//	engine, err := audio.New(cfg)
//	if err != nil {
//	    // handle
//	}
//
//	// producer side
//	ch, ok := engine.PlaySound(clip, 0.8)
//	engine.SetChannelPosition(ch, 1.5, 0.0)
//
//	// consumer side, once per driver period
//	engine.Mix(buf, frames)
//
// # Channels
//
// The bank holds 16 voices. Channel 0 is reserved for music by convention:
// PlaySound allocates from channels 1-15 and PlayMusic always targets
// channel 0. When every channel is busy, PlaySound reports failure instead
// of stealing a playing voice.
//
// # Clips
//
// A Clip is immutable decoded audio shared between the game thread and the
// audio thread; only its loop flag may change after construction. Clip
// memory must outlive any channel playing it.
package audio
