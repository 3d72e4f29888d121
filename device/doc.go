// SPDX-License-Identifier: EPL-2.0

// Package device binds an audio.Engine to an output backend.
//
// The engine itself never touches the sound card: it exposes a pull-style
// Mix method and this package adapts it to whatever is driving playback.
// Three bindings are provided:
//
//   - OtoOutput streams to the platform audio device via ebitengine/oto.
//     This is the binding games ship with.
//   - Streamer adapts the engine to a gopxl/beep Streamer, for programs
//     already running a beep speaker.
//   - NullOutput pumps the engine on a wall-clock ticker without any
//     device, for servers, tests, and CI.
//
// All bindings consume the engine through Reader, which renders mixed
// float32 frames as little-endian bytes and reports EOF once the engine's
// shutdown ramp has completed.
package device
