package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Entry is one file placed into an archive.
type Entry struct {
	Filename string
	Data     []byte
}

// Archive bundles the entries into an in-memory zip. Poster archives are a
// handful of PNGs at most, so buffering the whole file is fine.
func Archive(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, entry := range entries {
		w, err := zw.Create(entry.Filename)
		if err != nil {
			return nil, fmt.Errorf("zip create %s: %w", entry.Filename, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("zip write %s: %w", entry.Filename, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip close: %w", err)
	}
	return buf.Bytes(), nil
}
