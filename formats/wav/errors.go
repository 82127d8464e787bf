package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrOnlyPCMSupported     = errors.New("only integer PCM WAV supported")
	ErrInvalidHeader        = errors.New("invalid WAV header")
	ErrInvalidSampleRate    = errors.New("sample rate must be positive")
)
