// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/SeedyROM/stabby/pcm"
	"github.com/SeedyROM/stabby/utils"
)

// Encode16 writes a decoded buffer as a mono 16-bit PCM WAV file at the
// buffer's sample rate, downmixing multi-channel sources first. Samples
// outside [-1, 1] are clamped.
func Encode16(w io.Writer, b *pcm.Buffer) error {
	m := b.Downmix()
	samples := make([]int16, len(m.Data))
	for i, s := range m.Data {
		samples[i] = utils.Float32ToInt16(s)
	}
	return WriteWAV16(w, m.SampleRate, samples)
}

// WriteWAV16 writes samples as a mono 16-bit PCM WAV file at sampleRate.
// Used by tests and tooling to synthesize fixture files.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	const (
		numChannels   = 1
		bitsPerSample = 16
	)
	byteRate := uint32(sampleRate) * numChannels * bitsPerSample / 8
	dataSize := uint32(len(samples) * 2)

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], numChannels*bitsPerSample/8)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}
	if len(samples) == 0 {
		return nil
	}

	// Chunked so large fixtures don't need one giant scratch buffer
	const chunkSamples = 8192
	buf := make([]byte, min(len(samples), chunkSamples)*2)

	for i := 0; i < len(samples); i += chunkSamples {
		chunk := samples[i:min(i+chunkSamples, len(samples))]
		buf = buf[:len(chunk)*2]
		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:], uint16(s))
		}
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}
	return nil
}
