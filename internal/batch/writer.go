// Package batch partitions encoded records into bounded-size data files.
package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"corfetch/internal/fixedwidth"
	"corfetch/internal/logging"
	"corfetch/internal/records"
)

const (
	// ChunkSize caps the number of encoded lines per output file.
	ChunkSize = 100

	filePrefix = "cordata"
	fileExt    = ".txt"
)

// FileName returns the data file name for a chunk index.
func FileName(index int) string {
	return fmt.Sprintf("%s%d%s", filePrefix, index, fileExt)
}

// Writer splits record sequences into cordata<N>.txt files.
type Writer struct {
	dir    string
	logger *slog.Logger
}

// NewWriter constructs a writer targeting the given output directory.
func NewWriter(dir string, logger *slog.Logger) *Writer {
	return &Writer{dir: dir, logger: logging.NewComponentLogger(logger, "batch")}
}

// Write encodes the records in order and writes one file per chunk of at
// most ChunkSize, starting at index 0. Existing files from a previous run
// are overwritten only at the indexes written here; trailing files from a
// larger prior run are left in place.
func (w *Writer) Write(recs []records.Record) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	var paths []string
	for index := 0; index*ChunkSize < len(recs); index++ {
		start := index * ChunkSize
		end := start + ChunkSize
		if end > len(recs) {
			end = len(recs)
		}

		var content strings.Builder
		content.Grow((fixedwidth.LineLength + 1) * (end - start))
		for _, rec := range recs[start:end] {
			content.WriteString(fixedwidth.Encode(rec))
			content.WriteByte('\n')
		}

		path := filepath.Join(w.dir, FileName(index))
		if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
			return nil, fmt.Errorf("write data file %s: %w", path, err)
		}
		w.logger.Info("wrote data file",
			logging.String("path", path),
			logging.Int("lines", end-start),
		)
		paths = append(paths, path)
	}
	return paths, nil
}
