// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/SeedyROM/stabby/pcm"
)

// aiffReader is the slice of go-audio's aiff.Decoder we use, split out so
// tests can substitute a fake.
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(*goaudio.IntBuffer) (int, error)
}

// Decoder decodes AIFF data into a PCM buffer. It accepts 8, 16, 24, and
// 32-bit integer PCM.
type Decoder struct{}

// Decode reads the whole stream and returns the decoded samples. AIFF
// parsing needs random access, so a non-seeking reader is buffered in
// memory first.
func (Decoder) Decode(r io.Reader) (*pcm.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()
	if dec.Format() == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return decodeAll(dec, int(dec.BitDepth))
}

func decodeAll(dec aiffReader, bitDepth int) (*pcm.Buffer, error) {
	// AIFF integer PCM is signed at every depth, 8-bit included
	var scale float32
	switch bitDepth {
	case 8:
		scale = 1.0 / 128.0
	case 16:
		scale = 1.0 / 32768.0
	case 24:
		scale = 1.0 / 8388608.0
	case 32:
		scale = 1.0 / 2147483648.0
	default:
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, bitDepth)
	}

	format := dec.Format()
	ib := &goaudio.IntBuffer{Data: make([]int, 4096), Format: format}

	var samples []float32
	for {
		n, err := dec.PCMBuffer(ib)
		for _, v := range ib.Data[:n] {
			samples = append(samples, float32(v)*scale)
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding aiff data: %w", err)
		}
		if err == io.EOF || n == 0 {
			break
		}
	}

	return pcm.NewBuffer(samples, format.NumChannels, format.SampleRate)
}
