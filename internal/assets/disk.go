package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Disk stores blobs as files in a local directory. URLs are rooted at the
// server's own origin and resolve back through Resolve.
type Disk struct {
	dir     string
	baseURL string
}

// NewDisk creates the upload directory if needed and returns a disk backend.
// baseURL is the server's public base URL, e.g. "http://localhost:8080".
func NewDisk(dir, baseURL string) (*Disk, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &Disk{dir: abs, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Store writes the blob under a generated filename. The handle is the filename.
func (d *Disk) Store(ctx context.Context, ownerID int64, data []byte, mime, originalName string) (*StoredAsset, error) {
	if err := validate(data, mime); err != nil {
		return nil, err
	}

	name := newFilename(originalName)
	path, err := d.Resolve(name)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing upload: %w", err)
	}

	return &StoredAsset{
		URL:    d.baseURL + "/uploads/" + name,
		Handle: name,
	}, nil
}

// Remove unlinks a stored file. A missing file is not an error, and a handle
// that escapes the upload directory is refused.
func (d *Disk) Remove(ctx context.Context, handle string) error {
	path, err := d.Resolve(handle)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing upload: %w", err)
	}
	return nil
}

// Resolve maps a filename to its path inside the upload directory, rejecting
// any name whose resolved path would escape it.
func (d *Disk) Resolve(name string) (string, error) {
	path := filepath.Join(d.dir, name)
	if path != d.dir && !strings.HasPrefix(path, d.dir+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: invalid filename %q", ErrInvalidAsset, name)
	}
	if path == d.dir {
		return "", fmt.Errorf("%w: empty filename", ErrInvalidAsset)
	}
	return path, nil
}
