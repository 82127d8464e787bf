// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ik5/audcat"
	"github.com/ik5/audcat/audio"
	"github.com/ik5/audcat/fetch"
	"github.com/ik5/audcat/formats/mp3"
	"github.com/ik5/audcat/formats/wav"
	"golang.org/x/sync/errgroup"
)

// Pipeline fetches, decodes, joins and encodes drills.
// A Pipeline is safe for concurrent use; each call is an independent run.
type Pipeline struct {
	fetcher  fetch.Fetcher
	registry *audio.Registry
	cfg      Config
}

// New creates a Pipeline. A nil registry means audcat.DefaultRegistry.
func New(fetcher fetch.Fetcher, registry *audio.Registry, cfg Config) (*Pipeline, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if fetcher == nil {
		return nil, fmt.Errorf("%w: nil fetcher", ErrInvalidConfig)
	}

	if registry == nil {
		registry = audcat.DefaultRegistry
	}

	return &Pipeline{
		fetcher:  fetcher,
		registry: registry,
		cfg:      cfg,
	}, nil
}

// Config returns the effective configuration, defaults applied.
func (p *Pipeline) Config() Config { return p.cfg }

// Assemble builds one drill: main, each breakdown in order, main again.
//
// The main clip is fetched and decoded once. Clips are fetched and decoded
// concurrently, up to Config.Parallelism at a time; the first failure
// cancels the rest and is returned as a *DecodeError. Nothing is returned
// unless every step succeeds.
func (p *Pipeline) Assemble(ctx context.Context, clips ClipSet) (*Blob, error) {
	if strings.TrimSpace(clips.Main) == "" {
		return nil, ErrMainClipNotFound
	}

	start := time.Now()
	logger := p.runLogger()

	logger.Printf("assembling %q with %d breakdowns", clips.Main, len(clips.Breakdowns))

	decoded, err := p.decodeAll(ctx, logger, clips.Refs())
	if err != nil {
		logger.Printf("failed: %v", err)
		return nil, err
	}

	// main, breakdowns..., main
	order := append(decoded, decoded[0])

	track, err := audio.Concatenator{StrictSampleRate: p.cfg.StrictSampleRate}.Concat(order...)
	if err != nil {
		logger.Printf("failed: %v", err)
		return nil, fmt.Errorf("joining clips: %w", err)
	}

	blob, err := p.encode(track)
	if err != nil {
		logger.Printf("failed: %v", err)
		return nil, err
	}

	blob.Filename = p.cfg.Naming.Filename(clips.Main, p.cfg.Format)

	logger.Printf("assembled %s: %d samples at %d Hz (%s), %d bytes in %s",
		blob.Filename, blob.Samples, blob.SampleRate, blob.Duration(),
		len(blob.Data), time.Since(start).Round(time.Millisecond))

	return blob, nil
}

// Run assembles clips and hands the result to sink.
func (p *Pipeline) Run(ctx context.Context, clips ClipSet, sink Sink) (*Blob, error) {
	if sink == nil {
		return nil, ErrNilSink
	}

	blob, err := p.Assemble(ctx, clips)
	if err != nil {
		return nil, err
	}

	if err := sink.Save(ctx, blob); err != nil {
		return nil, fmt.Errorf("saving %s: %w", blob.Filename, err)
	}

	return blob, nil
}

func (p *Pipeline) decodeAll(ctx context.Context, logger *log.Logger, refs []string) ([]*audio.Buffer, error) {
	dctx := audio.NewContext(p.registry)
	defer dctx.Close()

	decoded := make([]*audio.Buffer, len(refs), len(refs)+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Parallelism)

	for i, ref := range refs {
		g.Go(func() error {
			buf, err := p.decodeOne(gctx, dctx, ref)
			if err != nil {
				return err
			}

			if p.cfg.Verbose {
				logger.Printf("decoded %q: %d ch, %d Hz, %d samples",
					ref, buf.NumChannels(), buf.SampleRate, buf.Len())
			}

			decoded[i] = buf
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return decoded, nil
}

func (p *Pipeline) decodeOne(ctx context.Context, dctx *audio.Context, ref string) (*audio.Buffer, error) {
	data, err := p.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, &DecodeError{Ref: ref, Op: "fetch", Err: err}
	}

	format, err := audcat.DetectFormat(ref, data)
	if err != nil {
		return nil, &DecodeError{Ref: ref, Op: "detect", Err: err}
	}

	buf, err := dctx.Decode(format, data)
	if err != nil {
		return nil, &DecodeError{Ref: ref, Op: "decode", Err: err}
	}

	return buf, nil
}

func (p *Pipeline) encode(track *audio.Track) (*Blob, error) {
	blob := &Blob{
		SampleRate: track.SampleRate,
		Samples:    track.Len(),
	}

	var err error

	switch p.cfg.Format {
	case FormatWAV:
		blob.MIMEType = wav.MIMEType
		blob.Data, err = wav.EncodeTrack(track)
	case FormatMP3:
		blob.MIMEType = mp3.MIMEType
		blob.Data, err = mp3.Encoder{NewCodec: p.cfg.NewCodec}.EncodeTrack(track)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownOutputFormat, p.cfg.Format)
	}

	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", p.cfg.Format, err)
	}

	return blob, nil
}

// runLogger tags every line of one run with a short run id.
func (p *Pipeline) runLogger() *log.Logger {
	base := p.cfg.Logger
	id := uuid.NewString()[:8]

	return log.New(base.Writer(), base.Prefix()+"run="+id+" ", base.Flags())
}
