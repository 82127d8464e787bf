// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Sink stores a finished Blob.
type Sink interface {
	Save(ctx context.Context, blob *Blob) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, blob *Blob) error

func (f SinkFunc) Save(ctx context.Context, blob *Blob) error { return f(ctx, blob) }

// DirSink writes blobs into Dir under their suggested name. The file is
// written to a temporary name and renamed, so a failed save leaves nothing
// behind. An existing file with the same name is replaced.
type DirSink struct {
	Dir string
}

// Path returns where blob would be written.
func (s DirSink) Path(blob *Blob) string {
	return filepath.Join(s.Dir, filepath.Base(blob.Filename))
}

func (s DirSink) Save(ctx context.Context, blob *Blob) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := s.Dir
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".audcat-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	// CreateTemp uses 0600
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}

	if _, err := tmp.Write(blob.Data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", blob.Filename, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing %s: %w", blob.Filename, err)
	}

	if err := os.Rename(tmp.Name(), s.Path(blob)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("renaming %s: %w", blob.Filename, err)
	}

	return nil
}
