package vorbis

import "errors"

// ErrUnsupportedVorbisLayout indicates a stream header with no channels
var ErrUnsupportedVorbisLayout = errors.New("unsupported Vorbis channel layout")
