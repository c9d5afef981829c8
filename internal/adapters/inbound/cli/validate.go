package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/config"
)

func newValidateCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "validate <file1> [file2] ...",
		Short: "Validate NDJSON files line by line",
		Long:  "Check that every line of the given files is an independently valid JSON value. Reports each invalid line with its file, line number, content and parse error.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			svc, err := newService(cmd, flags, cfg)
			if err != nil {
				return err
			}

			report, err := svc.Process(args, validatorConfig(flags, false, ""))
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			return renderReport(cmd, report, flags, cfg)
		},
	}

	addRunFlags(cmd, &flags)
	return cmd
}
