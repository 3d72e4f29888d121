// SPDX-License-Identifier: EPL-2.0

package device

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/SeedyROM/stabby/audio"
)

// OtoOutput plays an engine through the platform audio device using
// ebitengine/oto. The oto player pulls bytes from a Reader on its own
// thread; this type only handles lifecycle.
type OtoOutput struct {
	mu      sync.Mutex
	ctx     *oto.Context
	player  *oto.Player
	started bool
}

// NewOtoOutput opens the platform audio device for e's configuration.
// It blocks until the device is ready.
func NewOtoOutput(e *audio.Engine) (*OtoOutput, error) {
	cfg := e.Config()

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: cfg.OutputChannels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	return &OtoOutput{
		ctx:    ctx,
		player: ctx.NewPlayer(NewReader(e)),
	}, nil
}

// Start begins playback. Idempotent.
func (o *OtoOutput) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.started {
		o.player.Play()
		o.started = true
	}
	return nil
}

// Stop pauses playback without releasing the device.
func (o *OtoOutput) Stop() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.started {
		o.player.Pause()
		o.started = false
	}
	return nil
}

// Close stops playback and releases the player. The engine should have
// finished its shutdown ramp first; see audio.Engine.BeginShutdown.
func (o *OtoOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.started = false
	if o.player != nil {
		if err := o.player.Close(); err != nil {
			return fmt.Errorf("closing audio device: %w", err)
		}
		o.player = nil
	}
	return nil
}
