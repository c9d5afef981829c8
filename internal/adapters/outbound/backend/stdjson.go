package backend

import (
	"encoding/json"

	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

// StdJSON implements domain.ParseBackend using encoding/json.
type StdJSON struct{}

func (StdJSON) Name() string { return domain.BackendStdJSON }

// ParseLine accepts any complete JSON value and rejects trailing data after
// it, matching the NDJSON rule of exactly one value per line.
func (StdJSON) ParseLine(line []byte) error {
	var v any
	return json.Unmarshal(line, &v)
}
