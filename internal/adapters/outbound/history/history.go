package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

const historyFile = ".ndjsonkit/history/runs.json"

// FileHistory implements domain.RunHistory using JSON file storage under
// the validated directory, so repeated runs over the same data set build a
// local record of how dirty it has been over time.
type FileHistory struct{}

func New() *FileHistory {
	return &FileHistory{}
}

func (h *FileHistory) Save(dirPath string, entry domain.RunEntry) error {
	entries, err := h.Load(dirPath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	fp := filepath.Join(dirPath, historyFile)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(dirPath string) ([]domain.RunEntry, error) {
	fp := filepath.Join(dirPath, historyFile)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
