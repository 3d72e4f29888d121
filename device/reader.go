// SPDX-License-Identifier: EPL-2.0

package device

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/SeedyROM/stabby/audio"
)

// bytesPerSample is the wire size of one float32 sample.
const bytesPerSample = 4

// Reader renders engine output as little-endian float32 bytes. It
// implements io.Reader so any byte-oriented backend can drive the mix.
// Read reports io.EOF once the engine's shutdown ramp has completed.
//
// The scratch buffer is sized from the engine's configured callback period
// at construction; larger requests are satisfied across multiple Read
// calls rather than by reallocating on the audio path.
type Reader struct {
	engine  *audio.Engine
	scratch []float32
}

// NewReader creates a Reader pulling from e.
func NewReader(e *audio.Engine) *Reader {
	cfg := e.Config()
	return &Reader{
		engine:  e,
		scratch: make([]float32, cfg.BufferFrames*cfg.OutputChannels),
	}
}

// Read mixes up to len(p) bytes of interleaved stereo output into p.
func (r *Reader) Read(p []byte) (int, error) {
	if r.engine.ShutdownComplete() {
		return 0, io.EOF
	}

	channels := r.engine.Config().OutputChannels
	bytesPerFrame := channels * bytesPerSample

	frames := len(p) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if max := len(r.scratch) / channels; frames > max {
		frames = max
	}

	buf := r.scratch[:frames*channels]
	r.engine.Mix(buf, frames)

	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(v))
	}
	return frames * bytesPerFrame, nil
}
