// SPDX-License-Identifier: EPL-2.0

// Package stabby is a real-time audio mixer for games.
//
// The engine mixes up to sixteen simultaneous voices with per-channel
// volume, pitch, fades, and 2D positional audio, applying peak limiting to
// the final mix. Game code talks to it through a lock-free command queue,
// so playback calls are safe from the game loop while the audio device
// drains the mix on its own thread.
//
// # Quick Start
//
//	cfg := audio.LoadConfig()
//	engine, err := audio.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := device.NewOtoOutput(engine)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out.Start()
//
//	clip, err := stabby.LoadClip("assets/explosion.wav", cfg)
//	engine.PlaySound(clip, 1.0)
//
// # Loading Audio
//
// LoadClip and DecodeClip handle format detection, decoding, and
// conversion to the engine's sample rate. WAV, MP3, Ogg Vorbis, and AIFF
// are supported out of the box; additional formats can be registered on a
// custom registry via the formats subpackages' Decoder types.
//
// # Layout
//
//   - audio: the mixing engine, channels, clips, and command queue
//   - device: output bindings (oto, beep, headless)
//   - pcm: decoded sample buffers, resampling, and the decoder registry
//   - formats/...: one package per container format
package stabby
