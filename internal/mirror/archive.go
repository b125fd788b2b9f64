package mirror

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

// dataFileRE matches the fixed-width data file names the downstream
// publisher consumes.
var dataFileRE = regexp.MustCompile(`^cordata\d*\.txt$`)

// maxEntryBytes bounds a single archive entry to keep a malformed archive
// from exhausting memory.
const maxEntryBytes = 512 << 20

// extractArchive unpacks every entry matching the data file pattern into the
// data directory and reports how many were written.
func (d *Downloader) extractArchive(payload []byte) (int, error) {
	reader, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return 0, fmt.Errorf("open archive: %w", err)
	}

	if err := os.MkdirAll(d.dataDir, 0o755); err != nil {
		return 0, fmt.Errorf("create data directory: %w", err)
	}

	extracted := 0
	for _, entry := range reader.File {
		name := filepath.Base(entry.Name)
		if !dataFileRE.MatchString(name) {
			continue
		}
		if err := d.extractEntry(entry, filepath.Join(d.dataDir, name)); err != nil {
			return extracted, fmt.Errorf("extract %s: %w", name, err)
		}
		extracted++
	}
	return extracted, nil
}

func (d *Downloader) extractEntry(entry *zip.File, target string) error {
	source, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open entry: %w", err)
	}
	defer source.Close()

	dest, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create target: %w", err)
	}
	if _, err := io.Copy(dest, io.LimitReader(source, maxEntryBytes)); err != nil {
		dest.Close()
		return fmt.Errorf("copy data: %w", err)
	}
	if err := dest.Close(); err != nil {
		return fmt.Errorf("close target: %w", err)
	}
	return nil
}
