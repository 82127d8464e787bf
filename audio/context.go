// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"fmt"
	"sync/atomic"
)

// Context is a decoding handle scoped to one assembly run.
//
// It is acquired with NewContext and must be released with Close once the
// run is over, usually with defer. After Close every Decode call fails with
// ErrContextClosed. A Context is safe for concurrent use.
type Context struct {
	reg     *Registry
	closed  atomic.Bool
	decoded atomic.Int64
}

func NewContext(reg *Registry) *Context {
	return &Context{reg: reg}
}

// Decode decodes data with the decoder registered for format.
func (c *Context) Decode(format string, data []byte) (*Buffer, error) {
	if c.closed.Load() {
		return nil, ErrContextClosed
	}

	dec, ok := c.reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	buf, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}

	if err := buf.Validate(); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}

	c.decoded.Add(1)

	return buf, nil
}

// Decoded returns how many buffers this context has produced.
func (c *Context) Decoded() int { return int(c.decoded.Load()) }

// Close releases the context. It is safe to call more than once.
func (c *Context) Close() error {
	c.closed.Store(true)
	return nil
}
