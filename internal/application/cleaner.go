package application

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

// CleanFile validates a file and writes a corrected copy containing only
// its valid lines, in original order with original terminators, to
// outputDir under the source file's base name. The output directory is
// created if missing. The copy is written to a temporary file and renamed
// into place so a partially written file is never left behind.
//
// A file with zero valid lines still produces an (empty) cleaned file: the
// contract is total. Cleaning never suppresses error reporting — the
// returned entries are exactly what ValidateFile would have produced.
func (s *ValidateService) CleanFile(path, outputDir string) (string, []domain.ErrorEntry, error) {
	var buf bytes.Buffer
	entries, err := s.scanFile(path, func(raw []byte) {
		buf.Write(raw)
	})
	if err != nil {
		return "", nil, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", nil, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	base := filepath.Base(path)
	outPath := filepath.Join(outputDir, base)

	tmp, err := os.CreateTemp(outputDir, base+".tmp-*")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file in %s: %w", outputDir, err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("writing cleaned copy of %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("closing cleaned copy of %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), outPath); err != nil {
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("finalizing cleaned copy of %s: %w", path, err)
	}

	return outPath, entries, nil
}
