// SPDX-License-Identifier: EPL-2.0

// Package pipeline turns a ClipSet into a finished drill file.
//
// A run goes through these steps:
//
//  1. check that the ClipSet names a main clip (ErrMainClipNotFound)
//  2. fetch and decode the main clip and every breakdown, concurrently
//  3. join them as main, breakdowns..., main, mixed down to mono
//  4. encode as MP3 or WAV
//  5. name the file and, with Run, hand it to a Sink
//
// Any failure ends the run with no output. Fetch and decode failures are
// reported as *DecodeError naming the clip.
//
//	p, err := pipeline.New(fetch.NewHTTPFetcher(""), nil, pipeline.Config{
//	    Format: pipeline.FormatMP3,
//	})
//	blob, err := p.Run(ctx, pipeline.ClipSet{
//	    Main:       "/audio/Bonjour%20tout%20le%20monde.mp3",
//	    Breakdowns: []string{"/audio/bonjour.mp3"},
//	}, pipeline.DirSink{Dir: "out"})
//	// out/Bonjour tout le monde.mp3
//
// # Naming
//
// Derived names come from the main clip reference (see DeriveFilename).
// Fixed names ignore it. By default MP3 output is derived and WAV output is
// always "lingopolo.wav".
package pipeline
