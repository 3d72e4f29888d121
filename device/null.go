// SPDX-License-Identifier: EPL-2.0

package device

import (
	"sync"
	"time"

	"github.com/SeedyROM/stabby/audio"
)

// NullOutput pumps an engine at wall-clock rate without a sound device.
// It keeps command queues draining and playback state advancing on
// headless hosts. Step is also exposed for tests that want to drive the
// mix deterministically.
type NullOutput struct {
	reader *Reader
	period time.Duration
	buf    []byte

	mu      sync.Mutex
	done    chan struct{}
	stopped sync.WaitGroup
}

// NewNullOutput creates a device-less binding for e.
func NewNullOutput(e *audio.Engine) *NullOutput {
	cfg := e.Config()
	return &NullOutput{
		reader: NewReader(e),
		period: time.Duration(cfg.BufferFrames) * time.Second / time.Duration(cfg.SampleRate),
		buf:    make([]byte, cfg.BufferFrames*cfg.OutputChannels*bytesPerSample),
	}
}

// Start launches the pump goroutine. Idempotent.
func (o *NullOutput) Start() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.done != nil {
		return nil
	}
	o.done = make(chan struct{})
	o.stopped.Add(1)

	go o.run(o.done)
	return nil
}

func (o *NullOutput) run(done chan struct{}) {
	defer o.stopped.Done()

	ticker := time.NewTicker(o.period)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := o.Step(); err != nil {
				return
			}
		}
	}
}

// Step mixes one callback period and discards the output. Returns io.EOF
// once the engine's shutdown ramp has completed.
func (o *NullOutput) Step() error {
	_, err := o.reader.Read(o.buf)
	return err
}

// Stop halts the pump goroutine and waits for it to exit.
func (o *NullOutput) Stop() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.done == nil {
		return nil
	}
	close(o.done)
	o.done = nil
	o.stopped.Wait()
	return nil
}

// Close is Stop; there is no device to release.
func (o *NullOutput) Close() error { return o.Stop() }
