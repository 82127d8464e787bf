// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDirSink_Save(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	sink := DirSink{Dir: dir}

	blob := &Blob{Data: []byte("drill"), Filename: "Bonjour tout le monde.mp3"}

	if err := sink.Save(context.Background(), blob); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "Bonjour tout le monde.mp3"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "drill" {
		t.Errorf("file = %q, want %q", got, "drill")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want 1 (no temp files left)", len(entries))
	}
}

func TestDirSink_Overwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink := DirSink{Dir: dir}

	for _, data := range []string{"first", "second"} {
		if err := sink.Save(context.Background(), &Blob{Data: []byte(data), Filename: "lingopolo.wav"}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	got, _ := os.ReadFile(filepath.Join(dir, "lingopolo.wav"))
	if string(got) != "second" {
		t.Errorf("file = %q, want %q", got, "second")
	}
}

func TestDirSink_StaysInDir(t *testing.T) {
	t.Parallel()

	sink := DirSink{Dir: "/srv/out"}

	got := sink.Path(&Blob{Filename: "../../etc/passwd"})
	if got != filepath.Join("/srv/out", "passwd") {
		t.Errorf("Path() = %q, want inside /srv/out", got)
	}
}

func TestDirSink_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := DirSink{Dir: t.TempDir()}.Save(ctx, &Blob{Filename: "x.wav"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Save() error = %v, want context.Canceled", err)
	}
}
