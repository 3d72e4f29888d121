// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE audio.
//
// Decoding is backed by github.com/go-audio/wav and accepts 8, 16, 24, and
// 32-bit integer PCM in mono or stereo at any sample rate. The whole file
// is decoded into a pcm.Buffer; game clips are kept resident in memory, so
// there is no streaming path.
//
//	dec := wav.Decoder{}
//	f, _ := os.Open("explosion.wav")
//	buf, err := dec.Decode(f)
//
// Encoding is limited to mono 16-bit PCM. Encode16 renders a decoded
// buffer (downmixing stereo first); WriteWAV16 takes raw int16 samples and
// exists mainly for tests and tooling that synthesize fixture files:
//
//	samples := []int16{100, -100, 200, -200}
//	err := wav.WriteWAV16(w, 8000, samples)
//
// Decode errors distinguish a non-WAV input (ErrNotWavFile) from a WAV
// whose layout or bit depth is not handled (ErrUnsupportedWavLayout,
// ErrUnsupportedBitDepth).
package wav
