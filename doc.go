// SPDX-License-Identifier: EPL-2.0

// Package audcat assembles language drill recordings.
//
// A drill is one main clip followed by zero or more breakdown clips and the
// main clip again. Clips are decoded, reduced to mono, joined end to end and
// written as WAV or MP3.
//
// # Supported Formats
//
// Decoding (see NewRegistry):
//   - WAV (integer PCM, 8 to 32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//   - FLAC via formats/flac
//
// Encoding:
//   - WAV, mono 16-bit PCM with a canonical 44-byte header (formats/wav)
//   - MP3, mono 128 kbps in 1152-sample blocks (formats/mp3)
//
// # Quick Start
//
// The pipeline package runs the whole thing, from fetching clips to saving
// the result:
//
//	p, err := pipeline.New(fetch.NewHTTPFetcher(""), audcat.DefaultRegistry, pipeline.Config{
//	    Format: pipeline.FormatMP3,
//	})
//	if err != nil {
//	    return err
//	}
//	blob, err := p.Assemble(ctx, pipeline.ClipSet{
//	    Main:       "/audio/Bonjour%20tout%20le%20monde.mp3",
//	    Breakdowns: []string{"/audio/bonjour.mp3", "/audio/tout%20le%20monde.mp3"},
//	})
//
// For already decoded clips, ConcatToMono16 does the join and quantization:
//
//	pcm16, rate, err := audcat.ConcatToMono16(main, breakdown, main)
//	wav.WriteWAV16(out, rate, pcm16)
//
// # Sample Rates
//
// Clips are not resampled. The output rate is the rate of the first clip;
// set pipeline.Config.StrictSampleRate to reject clips that differ.
package audcat
