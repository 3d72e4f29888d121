// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) audio.
//
// Decoding is backed by github.com/go-audio/aiff and accepts 8, 16, 24,
// and 32-bit signed integer PCM in mono or stereo. The whole file is
// decoded into a pcm.Buffer at its native rate.
//
//	dec := aiff.Decoder{}
//	f, _ := os.Open("chime.aiff")
//	buf, err := dec.Decode(f)
//
// AIFF stores samples big-endian, which go-audio handles transparently.
// Unlike WAV, 8-bit AIFF is signed.
package aiff
