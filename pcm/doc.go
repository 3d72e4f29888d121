// SPDX-License-Identifier: EPL-2.0

// Package pcm provides offline sample-buffer utilities.
//
// The mixing core plays fully decoded, in-memory clips, so everything here
// operates on whole buffers rather than streams: decoding produces a Buffer,
// and any rate conversion or channel downmix happens once at load time, off
// the real-time path.
//
// # Buffer
//
// A Buffer holds interleaved float32 samples in [-1.0, 1.0] together with
// the channel count and sample rate:
//
//	buf, err := pcm.NewBuffer(samples, 2, 44100)
//	mono := buf.Downmix()
//	out, err := mono.Resample(48000)
//
// # Decoders
//
// File formats plug in through the Decoder interface and can be registered
// by format key for extension-based lookup:
//
//	reg := pcm.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Get("wav")
//
// # Sample Format
//
// Samples are float32 in the range [-1.0, 1.0]: 0.0 is silence, ±1.0 is
// full scale. Resampling uses cubic interpolation with a simple one-pole
// low-pass when downsampling.
package pcm
