package domain

// ParseBackend classifies one line of text as a valid or invalid JSON value.
// Input is a single line with its trailing terminator already stripped.
// A nil error means the line is a complete JSON value of any type: object,
// array, string, number, boolean or null.
//
// Implementations must agree on canonically valid and canonically invalid
// input; they may diverge only on parser-specific leniency for malformed
// UTF-8 and duplicate object keys.
type ParseBackend interface {
	Name() string
	ParseLine(line []byte) error
}

// FileDiscoverer expands a directory into the list of NDJSON files to
// process. Discovery is a collaborator of the CLI, not of the core: the
// processor only ever sees a resolved file list.
type FileDiscoverer interface {
	Discover(dirPath string, extensions []string) ([]string, error)
}

// ConfigLoader reads project-level settings for a directory.
type ConfigLoader interface {
	Load(dirPath string) (RunConfig, error)
}

// RepoInspector reports version-control provenance for a directory.
type RepoInspector interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

// RunHistory persists summaries of past directory runs.
type RunHistory interface {
	Save(dirPath string, entry RunEntry) error
	Load(dirPath string) ([]RunEntry, error)
}

// ProgressSink is an optional callback invoked by the processor after each
// file completes. It exists so console progress reporting never leaks into
// the core; correctness must not depend on it being set.
type ProgressSink func(result FileResult)
