// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidSampleRate     = errors.New("sample rate must be positive")
	ErrUnsupportedOutput     = errors.New("only stereo output is supported")
	ErrInvalidBufferFrames   = errors.New("buffer frames must be positive")
	ErrQueueTooSmall         = errors.New("queue capacity must be at least 2")
	ErrInvalidClipChannels   = errors.New("clip must be mono or stereo")
	ErrInvalidClipData       = errors.New("clip data length must be a multiple of channels")
	ErrInvalidClipSampleRate = errors.New("clip sample rate must be positive")
)
