// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/SeedyROM/stabby/pcm"
)

// oggReader is the slice of oggvorbis.Reader we use, split out so tests
// can substitute a fake.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder decodes Ogg Vorbis data into a PCM buffer.
type Decoder struct{}

// Decode reads the whole stream and returns the decoded samples at the
// file's native rate and channel layout.
func (Decoder) Decode(r io.Reader) (*pcm.Buffer, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening vorbis stream: %w", err)
	}
	return decodeAll(dec)
}

func decodeAll(dec oggReader) (*pcm.Buffer, error) {
	var samples []float32
	chunk := make([]float32, 4096)

	for {
		n, err := dec.Read(chunk)
		samples = append(samples, chunk[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding vorbis data: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return pcm.NewBuffer(samples, dec.Channels(), dec.SampleRate())
}
