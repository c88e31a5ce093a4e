package imagestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Disk stores images as files in a single directory. The directory is
// served under /images/ by the HTTP router.
type Disk struct {
	dir string
}

// NewDisk creates dir if needed and returns a store rooted there.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("imagestore: create dir %s: %w", dir, err)
	}
	return &Disk{dir: dir}, nil
}

// Dir returns the root directory.
func (d *Disk) Dir() string { return d.dir }

// Save writes data to <dir>/<name>, replacing any previous file atomically.
func (d *Disk) Save(ctx context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(d.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("imagestore: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("imagestore: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("imagestore: close %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("imagestore: chmod %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(d.dir, name)); err != nil {
		return fmt.Errorf("imagestore: rename %s: %w", name, err)
	}
	return nil
}
