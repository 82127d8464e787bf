package mp3

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedChannels   = errors.New("mp3 encoder supports mono only")
	ErrUnsupportedBitrate    = errors.New("unsupported mp3 bitrate")
	ErrUnsupportedSampleRate = errors.New("unsupported mp3 sample rate")
)

// CodecError reports a failure inside the block codec. Block is the zero
// based block index, or -1 when Op is "flush" or "init".
type CodecError struct {
	Op    string
	Block int
	Err   error
}

func (e *CodecError) Error() string {
	if e.Block < 0 {
		return fmt.Sprintf("mp3 codec %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("mp3 codec %s block %d: %v", e.Op, e.Block, e.Err)
}

func (e *CodecError) Unwrap() error { return e.Err }
