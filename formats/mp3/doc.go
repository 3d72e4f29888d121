// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III audio.
//
// Decoding is backed by github.com/hajimehoshi/go-mp3, which outputs 16-bit
// little-endian stereo PCM regardless of the source channel layout. The
// whole stream is decoded into a pcm.Buffer at the file's native rate.
//
//	dec := mp3.Decoder{}
//	f, _ := os.Open("music.mp3")
//	buf, err := dec.Decode(f)
//
// MP3 is lossy and frame-based: the decoded sample count may include a few
// frames of encoder padding beyond the original material. Callers that
// need sample-exact loops should prefer WAV or Vorbis sources.
package mp3
