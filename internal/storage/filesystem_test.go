package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"postergen/internal/domain"
)

func TestFileStoreWriteAndRead(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "http://localhost:8080/static")
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}

	key, err := store.Write(context.Background(), "posters/poster_abc.png", []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if key != "posters/poster_abc.png" {
		t.Fatalf("key = %q", key)
	}

	data, err := store.Read(context.Background(), key)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("data = %q", data)
	}

	if _, err := os.Stat(filepath.Join(store.BasePath(), "posters", "poster_abc.png")); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
}

func TestFileStoreReadMissing(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "http://localhost:8080/static")
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	if _, err := store.Read(context.Background(), "posters/nope.png"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFileStoreURL(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "http://localhost:8080/static/")
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	got := store.URL("posters/p.png")
	want := "http://localhost:8080/static/posters/p.png"
	if got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
}

func TestSanitizeKeyRejectsTraversal(t *testing.T) {
	tests := []struct {
		key string
		ok  bool
	}{
		{key: "posters/p.png", ok: true},
		{key: "/posters/p.png", ok: true},
		{key: "./posters/p.png", ok: true},
		{key: "../escape.png", ok: false},
		{key: "posters/../../escape.png", ok: false},
		{key: "", ok: false},
		{key: ".", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			_, err := sanitizeKey(tc.key)
			if tc.ok && err != nil {
				t.Fatalf("sanitizeKey(%q) returned error: %v", tc.key, err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("sanitizeKey(%q) expected error", tc.key)
			}
		})
	}
}
