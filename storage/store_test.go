package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir(), "/media")
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	return store
}

func TestUploadAndRemove(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Upload(context.Background(), "images/a.png", bytes.NewReader([]byte("png-bytes")), "image/png")
	if err != nil {
		t.Fatalf("Upload returned error: %v", err)
	}
	if url != "/media/images/a.png" {
		t.Fatalf("unexpected public URL %s", url)
	}

	abs := filepath.Join(store.basePath, "images", "a.png")
	data, err := os.ReadFile(abs)
	if err != nil {
		t.Fatalf("stored object unreadable: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("stored object corrupted: %q", data)
	}

	if err := store.Remove(context.Background(), "images/a.png"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if _, err := os.Stat(abs); !os.IsNotExist(err) {
		t.Fatalf("object still present after Remove: %v", err)
	}
}

func TestUploadNeverOverwrites(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Upload(context.Background(), "images/a.png", bytes.NewReader([]byte("first")), ""); err != nil {
		t.Fatalf("first upload: %v", err)
	}
	if _, err := store.Upload(context.Background(), "images/a.png", bytes.NewReader([]byte("second")), ""); err == nil {
		t.Fatal("expected second upload to the same path to fail")
	}

	data, err := os.ReadFile(filepath.Join(store.basePath, "images", "a.png"))
	if err != nil {
		t.Fatalf("read object: %v", err)
	}
	if string(data) != "first" {
		t.Fatalf("original object overwritten: %q", data)
	}
}

func TestPathEscapeRejected(t *testing.T) {
	store := newTestStore(t)

	for _, path := range []string{"../outside.txt", "images/../../outside.txt", "/etc/passwd", "."} {
		if _, err := store.Upload(context.Background(), path, bytes.NewReader(nil), ""); !errors.Is(err, ErrInvalidPath) {
			t.Fatalf("Upload(%q) did not reject path, err=%v", path, err)
		}
		if err := store.Remove(context.Background(), path); !errors.Is(err, ErrInvalidPath) {
			t.Fatalf("Remove(%q) did not reject path, err=%v", path, err)
		}
	}
}

func TestPublicURLJoining(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "https://cdn.skizen.in/media/")
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	if got := store.PublicURL("videos/a.mp4"); got != "https://cdn.skizen.in/media/videos/a.mp4" {
		t.Fatalf("unexpected URL %s", got)
	}
	if got := store.PublicURL("/videos/a.mp4"); got != "https://cdn.skizen.in/media/videos/a.mp4" {
		t.Fatalf("unexpected URL %s", got)
	}
}
