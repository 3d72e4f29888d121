// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio.
//
// Decoding is backed by github.com/jfreymuth/oggvorbis, a pure Go decoder
// that yields interleaved float32 samples directly, so no integer
// conversion pass is needed. The whole stream is decoded into a pcm.Buffer
// at the file's native rate and channel layout.
//
//	dec := vorbis.Decoder{}
//	f, _ := os.Open("ambience.ogg")
//	buf, err := dec.Decode(f)
//
// Vorbis is sample-exact after decode, which makes it the preferred
// compressed format for seamlessly looping music.
package vorbis
