package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/config"
)

func newCleanCmd() *cobra.Command {
	var (
		flags     runFlags
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "clean <file1> [file2] ...",
		Short: "Write cleaned copies containing only valid lines",
		Long:  "Validate the given files and write a corrected copy of each into the output directory, keeping only lines that parse as JSON, in their original order. Errors are still reported in full.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if outputDir == "" {
				outputDir = cfg.OutputDir
			}

			svc, err := newService(cmd, flags, cfg)
			if err != nil {
				return err
			}

			report, err := svc.Process(args, validatorConfig(flags, true, outputDir))
			if err != nil {
				return fmt.Errorf("clean failed: %w", err)
			}

			return renderReport(cmd, report, flags, cfg)
		},
	}

	addRunFlags(cmd, &flags)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory to write cleaned files to")
	return cmd
}
