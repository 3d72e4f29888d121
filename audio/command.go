// SPDX-License-Identifier: EPL-2.0

package audio

// commandKind tags the command union.
type commandKind uint8

const (
	cmdPlay commandKind = iota
	cmdStop
	cmdSetVolume
	cmdFadeIn
	cmdFadeOut
	cmdSetPitch
	cmdSetPosition
	cmdSetLoop
)

// command is one control message from the game thread to the audio thread.
// It is a fixed-size value with overloaded payload fields so it can travel
// through the ring buffer without allocation:
//
//	v1 - volume, pitch, or x position
//	v2 - fade duration or y position
type command struct {
	kind    commandKind
	clip    *Clip
	v1, v2  float32
	channel int
	flag    bool
}
