// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic sample data for tests.
package audiotest

import "math"

// Constant returns frames of interleaved samples where every channel holds
// value.
func Constant(channels, frames int, value float32) []float32 {
	data := make([]float32, channels*frames)
	for i := range data {
		data[i] = value
	}
	return data
}

// Silence returns frames of interleaved zero samples.
func Silence(channels, frames int) []float32 {
	return make([]float32, channels*frames)
}

// Sine returns frames of an interleaved sine wave at the given frequency,
// identical on every channel.
func Sine(sampleRate, channels, frames int, frequency float64) []float32 {
	data := make([]float32, channels*frames)
	for f := 0; f < frames; f++ {
		t := float64(f) / float64(sampleRate)
		v := float32(math.Sin(2 * math.Pi * frequency * t))
		for c := 0; c < channels; c++ {
			data[f*channels+c] = v
		}
	}
	return data
}

// Ramp returns mono frames rising linearly from 0 toward 1 (exclusive).
func Ramp(frames int) []float32 {
	data := make([]float32, frames)
	for i := range data {
		data[i] = float32(i) / float32(frames)
	}
	return data
}
