// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"github.com/SeedyROM/stabby/utils"
)

// lowPassAlpha is the coefficient of the one-pole filter applied before
// downsampling. This is a simplified anti-aliasing filter - for production
// quality at large ratios, use a proper FIR filter.
const lowPassAlpha = 0.5

// Resample converts the buffer to dstRate using cubic interpolation,
// preserving the channel count. When downsampling, a one-pole low-pass is
// applied first to reduce aliasing. The receiver is returned unchanged if
// the rate already matches.
func (b *Buffer) Resample(dstRate int) (*Buffer, error) {
	if dstRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if dstRate == b.SampleRate || b.Frames() == 0 {
		return b, nil
	}

	src := b.Data
	if dstRate < b.SampleRate {
		src = lowPass(b.Data, b.Channels)
	}

	srcFrames := b.Frames()
	ratio := float64(b.SampleRate) / float64(dstRate)
	outFrames := int(float64(srcFrames) * float64(dstRate) / float64(b.SampleRate))
	if outFrames < 1 {
		outFrames = 1
	}

	out := make([]float32, outFrames*b.Channels)

	for f := 0; f < outFrames; f++ {
		pos := float64(f) * ratio
		for c := 0; c < b.Channels; c++ {
			out[f*b.Channels+c] = sampleChannelAt(src, b.Channels, c, srcFrames, pos)
		}
	}

	return &Buffer{Data: out, Channels: b.Channels, SampleRate: dstRate}, nil
}

// lowPass runs a per-channel one-pole filter over a copy of data:
// y[n] = alpha*x[n] + (1-alpha)*y[n-1].
func lowPass(data []float32, channels int) []float32 {
	out := make([]float32, len(data))
	state := make([]float32, channels)

	// Seed with the first frame to avoid a warm-up transient
	for c := 0; c < channels && c < len(data); c++ {
		state[c] = data[c]
	}

	for i, v := range data {
		c := i % channels
		y := lowPassAlpha*v + (1-lowPassAlpha)*state[c]
		state[c] = y
		out[i] = y
	}
	return out
}

// sampleChannelAt reads channel c of interleaved data at a fractional frame
// position using cubic interpolation. Tap frames are clamped to the valid
// range so the read never goes out of bounds.
func sampleChannelAt(data []float32, channels, c, frames int, pos float64) float32 {
	if frames == 0 {
		return 0
	}

	i := int(pos)
	if pos < 0 {
		i = 0
		pos = 0
	}
	frac := float32(pos - float64(i))

	tap := func(f int) float32 {
		if f < 0 {
			f = 0
		} else if f >= frames {
			f = frames - 1
		}
		return data[f*channels+c]
	}

	return utils.CubicInterpolate(tap(i-1), tap(i), tap(i+1), tap(i+2), frac)
}
