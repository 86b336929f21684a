package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestDisk(t *testing.T) *Disk {
	t.Helper()
	disk, err := NewDisk(t.TempDir(), "http://localhost:8080")
	if err != nil {
		t.Fatalf("NewDisk: %v", err)
	}
	return disk
}

func TestDiskStoreAndRemove(t *testing.T) {
	disk := newTestDisk(t)
	ctx := context.Background()

	stored, err := disk.Store(ctx, 1, []byte("fake image bytes"), "image/jpeg", "photo.jpeg")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !strings.HasPrefix(stored.URL, "http://localhost:8080/uploads/") {
		t.Errorf("unexpected URL: %s", stored.URL)
	}
	if !strings.HasSuffix(stored.Handle, ".jpeg") {
		t.Errorf("expected original extension kept, got %s", stored.Handle)
	}

	path, err := disk.Resolve(stored.Handle)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}

	if err := disk.Remove(ctx, stored.Handle); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected file removed")
	}

	// Removing again is not an error.
	if err := disk.Remove(ctx, stored.Handle); err != nil {
		t.Errorf("Remove absent file: %v", err)
	}
}

func TestDiskStoreDefaultExtension(t *testing.T) {
	disk := newTestDisk(t)

	stored, err := disk.Store(context.Background(), 1, []byte("bytes"), "image/jpeg", "noext")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !strings.HasSuffix(stored.Handle, ".jpg") {
		t.Errorf("expected .jpg fallback extension, got %s", stored.Handle)
	}
}

func TestDiskStoreRejectsNonImage(t *testing.T) {
	disk := newTestDisk(t)

	_, err := disk.Store(context.Background(), 1, []byte("plain text"), "text/plain", "notes.txt")
	if !errors.Is(err, ErrInvalidAsset) {
		t.Errorf("expected ErrInvalidAsset, got %v", err)
	}
}

func TestDiskStoreRejectsOversized(t *testing.T) {
	disk := newTestDisk(t)

	big := make([]byte, MaxSize+1)
	_, err := disk.Store(context.Background(), 1, big, "image/jpeg", "big.jpg")
	if !errors.Is(err, ErrInvalidAsset) {
		t.Errorf("expected ErrInvalidAsset, got %v", err)
	}
}

func TestDiskRemoveRefusesTraversal(t *testing.T) {
	disk := newTestDisk(t)

	// Plant a file outside the upload dir and try to unlink it via traversal.
	outside := filepath.Join(filepath.Dir(disk.dir), "victim.txt")
	if err := os.WriteFile(outside, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("writing victim file: %v", err)
	}

	err := disk.Remove(context.Background(), "../victim.txt")
	if err == nil {
		t.Error("expected error for traversal handle")
	}
	if _, err := os.Stat(outside); err != nil {
		t.Error("victim file should still exist")
	}
}

func TestUniqueFilenames(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		name := newFilename("a.jpg")
		if seen[name] {
			t.Fatalf("duplicate filename: %s", name)
		}
		seen[name] = true
	}
}
