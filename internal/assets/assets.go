// Package assets stores uploaded image blobs and serves or deletes them later.
// Two interchangeable backends exist: local disk and S3-compatible object
// storage. The backend is chosen once at startup from configuration, never
// per-request.
package assets

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxSize is the maximum accepted upload size.
const MaxSize = 5 << 20 // 5 MiB

// ErrInvalidAsset is returned when an upload is not an image or exceeds MaxSize.
var ErrInvalidAsset = errors.New("invalid asset")

// StoredAsset is the result of storing a blob: a publicly fetchable URL and an
// opaque handle that Remove accepts to delete the blob again.
type StoredAsset struct {
	URL    string
	Handle string
}

// Backend is the storage contract both implementations satisfy.
type Backend interface {
	// Store persists the blob under the owner's namespace and returns its
	// public URL and deletion handle.
	Store(ctx context.Context, ownerID int64, data []byte, mime, originalName string) (*StoredAsset, error)

	// Remove deletes a previously stored blob. Removing an absent blob is not
	// an error.
	Remove(ctx context.Context, handle string) error
}

// validate rejects non-image MIME types and oversized payloads before any
// bytes are persisted.
func validate(data []byte, mime string) error {
	if !strings.HasPrefix(mime, "image/") {
		return fmt.Errorf("%w: content type %q is not an image", ErrInvalidAsset, mime)
	}
	if len(data) > MaxSize {
		return fmt.Errorf("%w: %d bytes exceeds %d byte limit", ErrInvalidAsset, len(data), MaxSize)
	}
	return nil
}

// newFilename generates a collision-resistant filename, keeping the original
// extension and defaulting to .jpg when there is none.
func newFilename(originalName string) string {
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}
