// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/SeedyROM/stabby/pcm"
)

// Decoder decodes RIFF/WAVE data into a PCM buffer. It accepts 8, 16, 24,
// and 32-bit integer PCM.
type Decoder struct{}

// Decode reads the whole stream and returns the decoded samples. WAV
// parsing needs random access, so a non-seeking reader is buffered in
// memory first; clips are fully resident anyway.
func (Decoder) Decode(r io.Reader) (*pcm.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav data: %w", err)
	}
	if ib == nil || ib.Format == nil {
		return nil, ErrUnsupportedWavLayout
	}

	samples, err := intToFloat32(ib, int(dec.BitDepth))
	if err != nil {
		return nil, err
	}

	return pcm.NewBuffer(samples, ib.Format.NumChannels, ib.Format.SampleRate)
}

// intToFloat32 normalizes integer PCM into [-1, 1] by the source bit depth.
// 8-bit WAV is unsigned and re-centered before scaling.
func intToFloat32(ib *goaudio.IntBuffer, bitDepth int) ([]float32, error) {
	if bitDepth == 8 {
		out := make([]float32, len(ib.Data))
		for i, v := range ib.Data {
			out[i] = float32(v-128) / 128.0
		}
		return out, nil
	}

	var scale float32
	switch bitDepth {
	case 16:
		scale = 1.0 / 32768.0
	case 24:
		scale = 1.0 / 8388608.0
	case 32:
		scale = 1.0 / 2147483648.0
	default:
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, bitDepth)
	}

	out := make([]float32, len(ib.Data))
	for i, v := range ib.Data {
		out[i] = float32(v) * scale
	}
	return out, nil
}
