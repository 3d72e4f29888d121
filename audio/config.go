// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"os"
	"strconv"
)

// Config holds the engine's fixed construction-time parameters.
type Config struct {
	// SampleRate of the output device in Hz.
	SampleRate int
	// OutputChannels is the number of interleaved output channels. Only
	// stereo (2) is supported.
	OutputChannels int
	// BufferFrames is the expected callback period, used by the device
	// layer to size its scratch buffers.
	BufferFrames int
	// QueueCapacity is the command ring size. Must be large enough that
	// the queue cannot fill between two consecutive callbacks under the
	// game's worst command-issue rate.
	QueueCapacity int
	// MasterVolume is the initial master gain in [0, 1].
	MasterVolume float32
}

// DefaultConfig returns the standard configuration: 44.1kHz stereo, 1024
// frame periods, a 256-slot command queue, and unity master volume.
func DefaultConfig() Config {
	return Config{
		SampleRate:     44100,
		OutputChannels: 2,
		BufferFrames:   1024,
		QueueCapacity:  256,
		MasterVolume:   1.0,
	}
}

// LoadConfig builds a Config from environment variables, falling back to
// defaults for anything unset or unparsable.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if rate := os.Getenv("STABBY_SAMPLE_RATE"); rate != "" {
		if val, err := strconv.Atoi(rate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if frames := os.Getenv("STABBY_BUFFER_FRAMES"); frames != "" {
		if val, err := strconv.Atoi(frames); err == nil && val > 0 {
			cfg.BufferFrames = val
		}
	}

	if capacity := os.Getenv("STABBY_QUEUE_CAPACITY"); capacity != "" {
		if val, err := strconv.Atoi(capacity); err == nil && val >= 2 {
			cfg.QueueCapacity = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("STABBY_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float32(val) / 100.0)
		}
	}

	return cfg
}

// Validate reports the first invalid field, or nil.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	if c.OutputChannels != 2 {
		return ErrUnsupportedOutput
	}
	if c.BufferFrames <= 0 {
		return ErrInvalidBufferFrames
	}
	if c.QueueCapacity < 2 {
		return ErrQueueTooSmall
	}
	return nil
}
