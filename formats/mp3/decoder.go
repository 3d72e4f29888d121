// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/SeedyROM/stabby/pcm"
	"github.com/SeedyROM/stabby/utils"
)

// pcmReader is the slice of gomp3.Decoder we use, split out so tests can
// substitute a fake.
type pcmReader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder decodes MPEG-1 Layer III data into a PCM buffer.
type Decoder struct{}

// Decode reads the whole stream and returns the decoded samples. go-mp3
// always emits 16-bit little-endian stereo, whatever the source layout.
func (Decoder) Decode(r io.Reader) (*pcm.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}
	return decodeAll(dec)
}

func decodeAll(dec pcmReader) (*pcm.Buffer, error) {
	raw, err := io.ReadAll(readerFunc(dec.Read))
	if err != nil {
		return nil, fmt.Errorf("decoding mp3 data: %w", err)
	}

	samples := make([]float32, len(raw)/2)
	for i := range samples {
		v := int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8)
		samples[i] = utils.Int16ToFloat32(v)
	}

	return pcm.NewBuffer(samples, 2, dec.SampleRate())
}

type readerFunc func([]byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }
