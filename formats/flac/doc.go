// Package flac decodes FLAC clips with github.com/mewkiz/flac.
//
// Every frame is parsed and its subframes appended to the matching channel
// of an audio.Buffer. Samples are scaled by 2^(bits-1) from STREAMINFO.
//
//	buf, err := flac.Decoder{}.Decode(file)
package flac
