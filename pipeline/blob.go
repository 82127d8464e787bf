// SPDX-License-Identifier: EPL-2.0

package pipeline

import "time"

// ClipSet lists the clips of one drill. Breakdowns are played in order
// between two copies of Main.
type ClipSet struct {
	Main       string
	Breakdowns []string
}

// Refs returns the distinct fetch order: Main first, then the breakdowns.
func (c ClipSet) Refs() []string {
	refs := make([]string, 0, len(c.Breakdowns)+1)
	refs = append(refs, c.Main)
	refs = append(refs, c.Breakdowns...)

	return refs
}

// Blob is an encoded drill ready to be saved.
type Blob struct {
	Data       []byte
	MIMEType   string
	Filename   string
	SampleRate int
	Samples    int
}

// Duration is the play time of the encoded track.
func (b *Blob) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(int64(b.Samples) * int64(time.Second) / int64(b.SampleRate))
}
