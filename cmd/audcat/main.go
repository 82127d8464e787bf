// SPDX-License-Identifier: EPL-2.0

// Command audcat builds a drill file from a main clip and its breakdowns:
// main, each breakdown, main again, mixed down to mono.
//
//	audcat -main "/audio/Bonjour%20tout%20le%20monde.mp3" \
//	    -breakdown /audio/bonjour.mp3 -breakdown "/audio/tout%20le%20monde.mp3"
//
// Site-relative references are fetched from -base-url. Local files are
// given as relative paths or file:// URLs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ik5/audcat/fetch"
	"github.com/ik5/audcat/internal/config"
	"github.com/ik5/audcat/pipeline"
)

type stringSlice []string

func (s *stringSlice) String() string { return strings.Join(*s, ",") }

func (s *stringSlice) Set(v string) error {
	if v == "" {
		return nil
	}
	*s = append(*s, v)
	return nil
}

func main() {
	cfg := config.Load()

	var (
		mainRef    string
		breakdowns stringSlice
		offline    bool
	)

	flag.StringVar(&mainRef, "main", "", "Main clip reference (URL, site path or file)")
	flag.Var(&breakdowns, "breakdown", "Breakdown clip reference (repeatable, played in order)")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "Output format: mp3|wav")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Output directory")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Base URL for site-relative references")
	flag.BoolVar(&offline, "offline", false, "Never fetch over HTTP; site paths are read from disk")
	flag.StringVar(&cfg.Naming, "naming", cfg.Naming, "Filename strategy: derived|fixed (default depends on format)")
	flag.StringVar(&cfg.FixedName, "name", cfg.FixedName, "Filename used with -naming fixed")
	flag.BoolVar(&cfg.StrictSampleRate, "strict-rate", cfg.StrictSampleRate, "Reject clips whose sample rate differs from the main clip")
	flag.IntVar(&cfg.Parallelism, "parallel", cfg.Parallelism, "Clips fetched and decoded at once")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Log every decoded clip")
	flag.Parse()

	logger := log.New(os.Stderr, "audcat: ", log.LstdFlags)

	if mainRef == "" {
		fmt.Fprintln(os.Stderr, "audcat: missing -main clip")
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, offline, logger, pipeline.ClipSet{Main: mainRef, Breakdowns: breakdowns}); err != nil {
		logger.Printf("error: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, offline bool, logger *log.Logger, clips pipeline.ClipSet) error {
	router := fetch.Router{Local: fetch.FileFetcher{}}
	if !offline {
		remote := fetch.NewHTTPFetcher(cfg.BaseURL)
		if cfg.Verbose {
			remote.Logger = logger
		}
		router.Remote = remote
	}

	pcfg := pipeline.Config{
		Format:           pipeline.Format(strings.ToLower(cfg.Format)),
		StrictSampleRate: cfg.StrictSampleRate,
		Parallelism:      cfg.Parallelism,
		Logger:           logger,
		Verbose:          cfg.Verbose,
	}

	if cfg.Naming != "" {
		pcfg.Naming = pipeline.Naming{
			Strategy:  pipeline.NamingStrategy(cfg.Naming),
			FixedName: cfg.FixedName,
		}
	} else if cfg.FixedName != "" {
		pcfg.Naming = pipeline.Naming{Strategy: pipeline.NamingFixed, FixedName: cfg.FixedName}
	}

	p, err := pipeline.New(router, nil, pcfg)
	if err != nil {
		return err
	}

	sink := pipeline.DirSink{Dir: cfg.OutDir}

	blob, err := p.Run(ctx, clips, sink)
	if err != nil {
		var derr *pipeline.DecodeError
		if errors.As(err, &derr) {
			return fmt.Errorf("clip %s: %w", derr.Ref, derr.Err)
		}
		return err
	}

	fmt.Println(sink.Path(blob))

	return nil
}
