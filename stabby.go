// SPDX-License-Identifier: EPL-2.0

package stabby

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/SeedyROM/stabby/audio"
	"github.com/SeedyROM/stabby/formats/aiff"
	"github.com/SeedyROM/stabby/formats/mp3"
	"github.com/SeedyROM/stabby/formats/vorbis"
	"github.com/SeedyROM/stabby/formats/wav"
	"github.com/SeedyROM/stabby/pcm"
)

// ErrUnknownFormat reports a format key with no registered decoder.
var ErrUnknownFormat = errors.New("unknown audio format")

// NewRegistry returns a decoder registry with every built-in format
// registered. Keys match the usual file extensions.
func NewRegistry() *pcm.Registry {
	r := pcm.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	return r
}

var defaultRegistry = NewRegistry()

// DecodeClip decodes r as the given format and prepares the result for
// playback under cfg: sources with more than two channels are downmixed
// to mono, and everything is resampled to the engine rate so the mixer's
// pitch math stays 1:1.
func DecodeClip(r io.Reader, format string, cfg audio.Config) (*audio.Clip, error) {
	dec, ok := defaultRegistry.Get(strings.ToLower(format))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	buf, err := dec.Decode(r)
	if err != nil {
		return nil, err
	}

	if buf.Channels > 2 {
		buf = buf.Downmix()
	}
	buf, err = buf.Resample(cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	return audio.FromBuffer(buf)
}

// LoadClip opens path and decodes it, selecting the decoder by file
// extension.
func LoadClip(path string, cfg audio.Config) (*audio.Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening clip: %w", err)
	}
	defer f.Close()

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return DecodeClip(f, ext, cfg)
}
