package backend

import (
	gojson "github.com/goccy/go-json"

	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

// GoJSON implements domain.ParseBackend using goccy/go-json, the faster of
// the two backends. Known divergence from StdJSON: go-json is more lenient
// with some malformed UTF-8 byte sequences inside strings, which
// encoding/json replaces or rejects. Classification of structurally valid
// and invalid JSON is identical.
type GoJSON struct{}

func (GoJSON) Name() string { return domain.BackendGoJSON }

// ParseLine accepts any complete JSON value and rejects trailing data after
// it, matching the NDJSON rule of exactly one value per line.
func (GoJSON) ParseLine(line []byte) error {
	var v any
	return gojson.Unmarshal(line, &v)
}
