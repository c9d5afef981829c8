package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/config"
	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/gitinfo"
	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/history"
	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/scanner"
	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

func newDirCmd() *cobra.Command {
	var (
		flags     runFlags
		clean     bool
		outputDir string
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "dir <path>",
		Short: "Validate every NDJSON file in a directory",
		Long:  "Discover NDJSON files under a directory (by the configured extensions), validate them, and optionally write cleaned copies. Each run is recorded in the directory's run history.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dirPath := args[0]

			cfg, err := config.New().Load(dirPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			files, err := scanner.New().Discover(dirPath, cfg.Extensions)
			if err != nil {
				return err
			}

			if clean && outputDir == "" {
				outputDir = cfg.OutputDir
			}

			svc, err := newService(cmd, flags, cfg)
			if err != nil {
				return err
			}

			report, err := svc.Process(files, validatorConfig(flags, clean, outputDir))
			if err != nil {
				return fmt.Errorf("processing %s: %w", dirPath, err)
			}

			if !noHistory {
				entry := domain.RunEntry{
					Timestamp: time.Now().UTC(),
					Path:      dirPath,
					Summary:   report.Summary,
					Cleaned:   clean,
				}
				if gi := gitinfo.New(); gi.IsGitRepo(dirPath) {
					if hash, hashErr := gi.CommitHash(dirPath); hashErr == nil {
						entry.Commit = hash
					}
				}
				// History is best effort; a read-only data directory
				// must not fail the run.
				_ = history.New().Save(dirPath, entry)
			}

			return renderReport(cmd, report, flags, cfg)
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().BoolVar(&clean, "clean", false, "Also write cleaned copies of each file")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory to write cleaned files to")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this run in the history")
	return cmd
}
