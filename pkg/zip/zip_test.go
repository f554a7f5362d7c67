package zip

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

func TestArchiveRoundtrip(t *testing.T) {
	entries := []Entry{
		{Filename: "poster_1.png", Data: []byte("first")},
		{Filename: "poster_2.png", Data: []byte("second")},
	}

	data, err := Archive(entries)
	if err != nil {
		t.Fatalf("Archive returned error: %v", err)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(reader.File) != len(entries) {
		t.Fatalf("archive has %d files, want %d", len(reader.File), len(entries))
	}
	for i, f := range reader.File {
		if f.Name != entries[i].Filename {
			t.Fatalf("entry %d name = %q, want %q", i, f.Name, entries[i].Filename)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %q: %v", f.Name, err)
		}
		got, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read entry %q: %v", f.Name, err)
		}
		if !bytes.Equal(got, entries[i].Data) {
			t.Fatalf("entry %q = %q, want %q", f.Name, got, entries[i].Data)
		}
	}
}

func TestArchiveEmpty(t *testing.T) {
	data, err := Archive(nil)
	if err != nil {
		t.Fatalf("Archive returned error: %v", err)
	}
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(reader.File) != 0 {
		t.Fatalf("archive has %d files, want 0", len(reader.File))
	}
}
