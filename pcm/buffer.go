// SPDX-License-Identifier: EPL-2.0

package pcm

// Buffer holds fully decoded PCM audio: interleaved float32 samples in
// [-1.0, 1.0], a channel count, and a sample rate.
type Buffer struct {
	Data       []float32
	Channels   int
	SampleRate int
}

// NewBuffer validates the shape of data and wraps it in a Buffer. The data
// slice is not copied.
func NewBuffer(data []float32, channels, sampleRate int) (*Buffer, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(data)%channels != 0 {
		return nil, ErrRaggedData
	}
	return &Buffer{Data: data, Channels: channels, SampleRate: sampleRate}, nil
}

// Frames returns the number of frames (samples per channel).
func (b *Buffer) Frames() int {
	if b.Channels == 0 {
		return 0
	}
	return len(b.Data) / b.Channels
}

// Duration returns the playback length in seconds.
func (b *Buffer) Duration() float64 {
	if b.SampleRate == 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Downmix averages all channels into a new mono buffer. A buffer that is
// already mono is returned unchanged.
func (b *Buffer) Downmix() *Buffer {
	if b.Channels == 1 {
		return b
	}

	frames := b.Frames()
	out := make([]float32, frames)
	scale := 1.0 / float32(b.Channels)

	for f := 0; f < frames; f++ {
		var sum float32
		base := f * b.Channels
		for c := 0; c < b.Channels; c++ {
			sum += b.Data[base+c]
		}
		out[f] = sum * scale
	}

	return &Buffer{Data: out, Channels: 1, SampleRate: b.SampleRate}
}
