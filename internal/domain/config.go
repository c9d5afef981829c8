package domain

import "fmt"

// Backend names accepted by configuration and the --backend flag.
const (
	BackendGoJSON  = "go-json"
	BackendStdJSON = "encoding/json"
)

// ValidBackends enumerates all recognized parse backend names.
var ValidBackends = []string{BackendGoJSON, BackendStdJSON}

// ValidatorConfig configures a single processing run. It is a pure value
// with no lifecycle beyond the call it configures.
type ValidatorConfig struct {
	// CleanFiles enables writing corrected copies containing only valid lines.
	CleanFiles bool

	// OutputDir is the target directory for cleaned files.
	// Required when CleanFiles is set.
	OutputDir string

	// Parallel allows file-level work to run concurrently.
	Parallel bool

	// Workers bounds the worker pool in parallel mode. Zero means one
	// worker per available CPU.
	Workers int
}

// Validate rejects invalid option combinations before any file is touched.
func (c ValidatorConfig) Validate() error {
	if c.CleanFiles && c.OutputDir == "" {
		return ErrOutputDirRequired
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

// RunConfig holds project-level settings read from .ndjsonkit.yaml.
type RunConfig struct {
	// Backend selects the parse backend by name.
	Backend string `yaml:"backend"`

	// Parallel toggles concurrent file processing.
	Parallel bool `yaml:"parallel"`

	// Workers bounds the worker pool; zero means one per CPU.
	Workers int `yaml:"workers"`

	// Extensions lists file suffixes treated as NDJSON during directory scans.
	Extensions []string `yaml:"extensions"`

	// OutputDir is the default directory for cleaned files.
	OutputDir string `yaml:"output_dir"`

	// MaxErrorsShown caps how many error details the console renderer prints.
	MaxErrorsShown int `yaml:"max_errors_shown"`
}

// DefaultRunConfig returns the settings used when no .ndjsonkit.yaml exists.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Backend:        BackendGoJSON,
		Parallel:       true,
		Extensions:     []string{".ndjson", ".jsonl"},
		OutputDir:      "cleaned",
		MaxErrorsShown: 10,
	}
}

// Validate catches typos in user-supplied configuration.
func (c RunConfig) Validate() error {
	if c.Backend != "" && !isValidBackend(c.Backend) {
		return fmt.Errorf("%w: %q (valid: %v)", ErrUnknownBackend, c.Backend, ValidBackends)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.MaxErrorsShown < 0 {
		return fmt.Errorf("max_errors_shown must be >= 0, got %d", c.MaxErrorsShown)
	}
	return nil
}

func isValidBackend(name string) bool {
	for _, b := range ValidBackends {
		if b == name {
			return true
		}
	}
	return false
}
