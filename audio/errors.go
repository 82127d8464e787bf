// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrEmptyInput               = errors.New("no audio buffers to concatenate")
	ErrUnsupportedChannelLayout = errors.New("unsupported channel layout")
	ErrSampleRateMismatch       = errors.New("sample rate mismatch")
	ErrInvalidBuffer            = errors.New("invalid audio buffer")
	ErrUnknownFormat            = errors.New("no decoder registered for format")
	ErrContextClosed            = errors.New("decode context is closed")
)
