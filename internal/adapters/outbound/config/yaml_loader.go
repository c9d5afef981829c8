package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

const fileName = ".ndjsonkit.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .ndjsonkit.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// fileConfig mirrors RunConfig with pointer fields where the zero value is
// meaningful, so an explicit `parallel: false` survives the defaults merge.
type fileConfig struct {
	Backend        string   `yaml:"backend"`
	Parallel       *bool    `yaml:"parallel"`
	Workers        int      `yaml:"workers"`
	Extensions     []string `yaml:"extensions"`
	OutputDir      string   `yaml:"output_dir"`
	MaxErrorsShown *int     `yaml:"max_errors_shown"`
}

// Load reads .ndjsonkit.yaml from dirPath. Returns DefaultRunConfig if the
// file does not exist; explicit values overlay the defaults.
func (l *YAMLLoader) Load(dirPath string) (domain.RunConfig, error) {
	data, err := os.ReadFile(filepath.Join(dirPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultRunConfig(), nil
		}
		return domain.RunConfig{}, err
	}

	var raw fileConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.RunConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	cfg := mergeConfig(domain.DefaultRunConfig(), raw)

	// Validate after merging — catches typos in the user's raw input.
	if err := cfg.Validate(); err != nil {
		return domain.RunConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}

// mergeConfig overlays explicit overrides on top of the defaults.
func mergeConfig(base domain.RunConfig, override fileConfig) domain.RunConfig {
	result := base

	if override.Backend != "" {
		result.Backend = override.Backend
	}
	if override.Parallel != nil {
		result.Parallel = *override.Parallel
	}
	if override.Workers != 0 {
		result.Workers = override.Workers
	}
	if len(override.Extensions) > 0 {
		result.Extensions = override.Extensions
	}
	if override.OutputDir != "" {
		result.OutputDir = override.OutputDir
	}
	if override.MaxErrorsShown != nil {
		result.MaxErrorsShown = *override.MaxErrorsShown
	}

	return result
}
