package state

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/milk9111/wherewasi/ecs/component"
)

// Ext is the save file extension.
const Ext = ".state"

// Path returns the save file path for name under dir.
func Path(dir, name string) string {
	return filepath.Join(dir, name+Ext)
}

// Save writes t to <dir>/<name>.state, creating dir first if needed. The
// file is truncated in place; a failed write can leave a partial file
// behind. Callers that need atomicity must arrange it themselves.
func Save(dir, name string, t component.Transform) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("state: create dir %s: %w", dir, err)
	}

	path := Path(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("state: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, t); err != nil {
		f.Close()
		return fmt.Errorf("state: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("state: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("state: close %s: %w", path, err)
	}
	return nil
}

// Load reads the transform saved for name under dir. A missing file is
// returned wrapped, so callers can test it with errors.Is(err,
// fs.ErrNotExist) and fall back to the entity's current transform.
func Load(dir, name string) (component.Transform, error) {
	path := Path(dir, name)
	f, err := os.Open(path)
	if err != nil {
		return component.Transform{}, fmt.Errorf("state: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(Lines(f))
}
