package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrMainClipNotFound    = errors.New("main clip not found")
	ErrUnknownOutputFormat = errors.New("unknown output format")
	ErrInvalidConfig       = errors.New("invalid pipeline config")
	ErrNilSink             = errors.New("no sink to save to")
)

// DecodeError reports a clip that could not be fetched or decoded.
// Op is "fetch", "detect" or "decode".
type DecodeError struct {
	Ref string
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Ref, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
