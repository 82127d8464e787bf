package flac

import "errors"

var (
	// ErrNotFlacFile indicates the stream has no valid fLaC signature or STREAMINFO
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedFlacLayout indicates a channel count or bit depth the decoder cannot map
	ErrUnsupportedFlacLayout = errors.New("unsupported FLAC layout")
)
