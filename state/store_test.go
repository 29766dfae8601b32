package state

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saves")
	in := transform(4.0, 3.5, -2.0, -0.1, 0.7, 0.4, 0.6, 12.6, -1.0, 2.4)

	// Save creates the directory on demand.
	if err := Save(dir, "player", in); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(Path(dir, "player")); err != nil {
		t.Fatalf("expected save file to exist: %v", err)
	}

	got, err := Load(dir, "player")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != in {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, in)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), "nobody")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()

	if err := Save(dir, "camera", transform(1, 2, 3, 0, 0, 0, 1, 1, 1, 1)); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	second := transform(-9, 8, -7, 0, 0, 0, 1, 2, 2, 2)
	if err := Save(dir, "camera", second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := Load(dir, "camera")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got != second {
		t.Fatalf("expected second save to win, got %+v", got)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir, "broken"), []byte("v0\n\ntranslation:\noops\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir, "broken")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}
