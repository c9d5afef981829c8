package application

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

// ValidateService is the NDJSON validation and cleaning engine. Every line
// of a file is dispatched to the configured parse backend; failing lines
// are accumulated as ErrorEntry records, never raised as fatal errors.
type ValidateService struct {
	backend  domain.ParseBackend
	progress domain.ProgressSink

	mu sync.Mutex // serializes progress callbacks under parallelism
}

// NewValidateService creates a ValidateService. The progress sink is
// optional and may be nil; it is invoked after each file completes.
func NewValidateService(backend domain.ParseBackend, progress domain.ProgressSink) *ValidateService {
	return &ValidateService{backend: backend, progress: progress}
}

// Backend returns the parse backend the service was built with.
func (s *ValidateService) Backend() domain.ParseBackend { return s.backend }

// ValidateFile validates a single NDJSON file and returns one ErrorEntry
// per failing line, ordered by ascending line number. It never stops at the
// first error: a single pass yields the complete error set. A file that
// cannot be read returns a non-nil error, distinct from "zero errors".
func (s *ValidateService) ValidateFile(path string) ([]domain.ErrorEntry, error) {
	return s.scanFile(path, nil)
}

// scanFile is the single shared pass over a file. Lines that parse
// successfully are handed to keep (when non-nil) verbatim, including their
// original terminator, so cleaning reproduces valid input byte for byte.
func (s *ValidateService) scanFile(path string, keep func(raw []byte)) ([]domain.ErrorEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var entries []domain.ErrorEntry
	lineNumber := 0

	for offset := 0; offset < len(data); {
		lineNumber++

		var raw []byte
		if end := bytes.IndexByte(data[offset:], '\n'); end < 0 {
			raw = data[offset:]
			offset = len(data)
		} else {
			raw = data[offset : offset+end+1]
			offset += end + 1
		}

		content := trimTerminator(raw)
		if err := s.checkLine(content); err != nil {
			entries = append(entries, domain.ErrorEntry{
				FilePath:    path,
				LineNumber:  lineNumber,
				LineContent: string(content),
				Error:       err.Error(),
			})
			continue
		}

		if keep != nil {
			keep(raw)
		}
	}

	return entries, nil
}

// checkLine classifies one terminator-stripped line. Blank lines are an
// explicit validation failure, not something to skip: NDJSON requires one
// JSON value per line.
func (s *ValidateService) checkLine(content []byte) error {
	if len(content) == 0 {
		return domain.ErrEmptyLine
	}
	return s.backend.ParseLine(content)
}

func trimTerminator(raw []byte) []byte {
	raw = bytes.TrimSuffix(raw, []byte("\n"))
	return bytes.TrimSuffix(raw, []byte("\r"))
}
