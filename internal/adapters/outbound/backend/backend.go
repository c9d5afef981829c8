// Package backend provides interchangeable implementations of
// domain.ParseBackend. Both backends must classify canonically valid and
// canonically invalid JSON identically; they are allowed to differ only in
// parser-specific leniency for malformed UTF-8 and duplicate object keys.
package backend

import (
	"fmt"

	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

// Default returns the backend used when no name is configured.
func Default() domain.ParseBackend { return GoJSON{} }

// Names lists the recognized backend names.
func Names() []string {
	return append([]string(nil), domain.ValidBackends...)
}

// ForName resolves a backend by its configured name. An empty name selects
// the default; an unrecognized name is a configuration error.
func ForName(name string) (domain.ParseBackend, error) {
	switch name {
	case "", domain.BackendGoJSON:
		return GoJSON{}, nil
	case domain.BackendStdJSON:
		return StdJSON{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (valid: %v)", domain.ErrUnknownBackend, name, Names())
	}
}
