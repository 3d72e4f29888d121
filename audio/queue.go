// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/SeedyROM/stabby/internal/spsc"

// commandQueue is the typed facade over the SPSC ring carrying commands
// from the game thread to the audio thread. Every push is fire-and-forget:
// when the ring is full the command is dropped and the push reports false.
type commandQueue struct {
	q *spsc.Queue[command]
}

func newCommandQueue(capacity int) *commandQueue {
	return &commandQueue{q: spsc.New[command](capacity)}
}

func (c *commandQueue) pushPlay(clip *Clip, volume float32, channel int) bool {
	return c.q.TryPush(command{
		kind:    cmdPlay,
		clip:    clip,
		v1:      volume,
		channel: channel,
	})
}

func (c *commandQueue) pushStop(channel int) bool {
	return c.q.TryPush(command{kind: cmdStop, channel: channel})
}

func (c *commandQueue) pushVolume(channel int, volume float32) bool {
	return c.q.TryPush(command{kind: cmdSetVolume, v1: volume, channel: channel})
}

func (c *commandQueue) pushFade(channel int, targetVolume, duration float32) bool {
	kind := cmdFadeOut
	if targetVolume > 0 {
		kind = cmdFadeIn
	}
	return c.q.TryPush(command{
		kind:    kind,
		v1:      targetVolume,
		v2:      duration,
		channel: channel,
	})
}

func (c *commandQueue) pushPitch(channel int, pitch float32) bool {
	return c.q.TryPush(command{kind: cmdSetPitch, v1: pitch, channel: channel})
}

func (c *commandQueue) pushPosition(channel int, x, y float32) bool {
	return c.q.TryPush(command{kind: cmdSetPosition, v1: x, v2: y, channel: channel})
}

func (c *commandQueue) pushLoop(channel int, loop bool) bool {
	return c.q.TryPush(command{kind: cmdSetLoop, flag: loop, channel: channel})
}

// drain consumes every queued command in push order. Audio thread only.
func (c *commandQueue) drain(fn func(command)) {
	c.q.Drain(fn)
}

func (c *commandQueue) empty() bool { return c.q.Empty() }
func (c *commandQueue) full() bool  { return c.q.Full() }
