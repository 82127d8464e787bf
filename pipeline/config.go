// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"fmt"
	"io"
	"log"

	"github.com/ik5/audcat/formats/mp3"
)

// Format selects the output container.
type Format string

const (
	FormatMP3 Format = "mp3"
	FormatWAV Format = "wav"
)

// Ext returns the file extension for f, with the dot.
func (f Format) Ext() string { return "." + string(f) }

const (
	// DefaultParallelism bounds concurrent fetch+decode per run.
	DefaultParallelism = 4

	// DefaultFixedName is the base name used by NamingFixed when no name is set.
	DefaultFixedName = "lingopolo"
)

// Config configures a Pipeline.
type Config struct {
	// Format of the assembled file (default: FormatMP3).
	Format Format

	// Naming picks the suggested filename. The zero value means derived
	// names for MP3 and the fixed name "lingopolo.wav" for WAV.
	Naming Naming

	// StrictSampleRate rejects clips whose rate differs from the main clip
	// with audio.ErrSampleRateMismatch. Off by default: such clips are
	// joined as is and play back at the wrong speed.
	StrictSampleRate bool

	// Parallelism is the number of clips fetched and decoded at once
	// (default: DefaultParallelism).
	Parallelism int

	// NewCodec overrides the MP3 block codec (default: mp3.NewShineCodec).
	NewCodec mp3.CodecFactory

	// Logger receives progress lines; nil discards them.
	Logger *log.Logger

	// Verbose adds per-clip lines to Logger.
	Verbose bool
}

// Validate returns an error if the config is invalid.
func (c Config) Validate() error {
	switch c.Format {
	case FormatMP3, FormatWAV:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOutputFormat, c.Format)
	}

	if err := c.Naming.Validate(); err != nil {
		return err
	}

	if c.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism %d", ErrInvalidConfig, c.Parallelism)
	}

	return nil
}

// WithDefaults returns a config with default values applied to zero fields.
func (c Config) WithDefaults() Config {
	if c.Format == "" {
		c.Format = FormatMP3
	}

	if c.Naming.Strategy == "" {
		if c.Format == FormatWAV {
			c.Naming = Naming{Strategy: NamingFixed, FixedName: DefaultFixedName + FormatWAV.Ext()}
		} else {
			c.Naming = Naming{Strategy: NamingDerived}
		}
	}

	if c.Parallelism == 0 {
		c.Parallelism = DefaultParallelism
	}

	if c.NewCodec == nil {
		c.NewCodec = mp3.NewShineCodec
	}

	if c.Logger == nil {
		c.Logger = log.New(io.Discard, "", 0)
	}

	return c
}
