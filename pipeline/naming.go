// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"fmt"
	"net/url"
	"path/filepath"
	"slices"
	"strings"
)

// NamingStrategy selects how the suggested filename is built.
type NamingStrategy string

const (
	// NamingDerived names the file after the main clip.
	NamingDerived NamingStrategy = "derived"

	// NamingFixed always uses Naming.FixedName.
	NamingFixed NamingStrategy = "fixed"
)

// Naming is the filename policy of a run.
type Naming struct {
	Strategy  NamingStrategy
	FixedName string
}

func (n Naming) Validate() error {
	switch n.Strategy {
	case NamingDerived, NamingFixed:
		return nil
	}

	return fmt.Errorf("%w: naming strategy %q", ErrInvalidConfig, n.Strategy)
}

// audioExts are extensions replaced on a fixed name so it matches the
// encoded format.
var audioExts = []string{".mp3", ".wav", ".ogg", ".oga", ".flac", ".aiff", ".aif"}

// Filename returns the suggested name for a file assembled from mainRef.
// A fixed name always ends with the extension of format: a known audio
// extension is replaced, any other suffix is kept and the extension appended.
func (n Naming) Filename(mainRef string, format Format) string {
	if n.Strategy == NamingFixed {
		name := filepath.Base(n.FixedName)
		if name == "." || name == string(filepath.Separator) {
			name = DefaultFixedName
		}

		ext := filepath.Ext(name)
		if strings.EqualFold(ext, format.Ext()) {
			return name
		}
		if slices.Contains(audioExts, strings.ToLower(ext)) {
			name = strings.TrimSuffix(name, ext)
		}

		return name + format.Ext()
	}

	return DeriveFilename(mainRef, format)
}

// DeriveFilename names the output after the last path segment of ref.
//
// The segment is percent-decoded (left as is when the escapes are
// malformed), a trailing ".mp3" is removed in any letter case and the
// extension of format is appended:
//
//	/audio/Bonjour%20tout%20le%20monde.mp3 -> Bonjour tout le monde.mp3
//
// A query or fragment on ref is ignored. An empty segment yields "audio".
func DeriveFilename(ref string, format Format) string {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}

	segment := ref[strings.LastIndex(ref, "/")+1:]

	if decoded, err := url.PathUnescape(segment); err == nil {
		segment = decoded
	}

	// A decoded "%2F" must not become a directory.
	segment = strings.NewReplacer("/", "_", "\\", "_").Replace(segment)

	if len(segment) >= 4 && strings.EqualFold(segment[len(segment)-4:], ".mp3") {
		segment = segment[:len(segment)-4]
	}

	if segment == "" {
		segment = "audio"
	}

	return segment + format.Ext()
}
