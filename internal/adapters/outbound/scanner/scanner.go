package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"bin":          true,
}

// FileScanner implements domain.FileDiscoverer by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Discover walks dirPath and returns every file whose name matches one of
// the NDJSON extensions, in deterministic lexical order. Matching no files
// at all is reported as domain.ErrNoFilesFound so callers can distinguish
// "nothing to do" from a deliberately empty file list.
func (s *FileScanner) Discover(dirPath string, extensions []string) ([]string, error) {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return nil, err
	}
	if len(extensions) == 0 {
		extensions = domain.DefaultRunConfig().Extensions
	}

	var files []string
	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if matches(d.Name(), extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dirPath, err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", domain.ErrNoFilesFound, dirPath)
	}
	return files, nil
}

func matches(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	// Double extensions used by some exporters, e.g. events.nd.json.
	return strings.Contains(name, ".nd.json")
}
