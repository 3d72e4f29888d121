// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrInvalidChannels   = errors.New("channel count must be at least 1")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrRaggedData        = errors.New("data length must be a multiple of channels")
)
