package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/backend"
	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/tui"
	"github.com/ndjsonkit/ndjsonkit/internal/application"
	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

// runFlags are the options shared by validate, clean and dir.
type runFlags struct {
	backendName string
	parallel    bool
	workers     int
	jsonOutput  bool
	strict      bool
}

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().StringVar(&f.backendName, "backend", "",
		fmt.Sprintf("Parse backend (%s)", strings.Join(backend.Names(), " or ")))
	cmd.Flags().BoolVar(&f.parallel, "parallel", true, "Process files concurrently")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Worker pool size in parallel mode (0 = one per CPU)")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Exit non-zero when invalid lines are found")
}

// newService builds the validation engine from flags and project config.
// Flags win over config; the progress sink is suppressed in JSON mode so
// machine output stays parseable.
func newService(cmd *cobra.Command, f runFlags, cfg domain.RunConfig) (*application.ValidateService, error) {
	name := f.backendName
	if name == "" {
		name = cfg.Backend
	}
	b, err := backend.ForName(name)
	if err != nil {
		return nil, err
	}

	var sink domain.ProgressSink
	if !f.jsonOutput {
		out := cmd.OutOrStdout()
		sink = func(r domain.FileResult) {
			fmt.Fprintln(out, tui.RenderFileProgress(r))
		}
	}

	return application.NewValidateService(b, sink), nil
}

func validatorConfig(f runFlags, clean bool, outputDir string) domain.ValidatorConfig {
	return domain.ValidatorConfig{
		CleanFiles: clean,
		OutputDir:  outputDir,
		Parallel:   f.parallel,
		Workers:    f.workers,
	}
}

// renderReport writes the report and translates its content into an exit
// status. Invalid lines alone exit zero (finding problems is this tool's
// job, not a failure to run) unless --strict; unprocessable files always
// exit non-zero.
func renderReport(cmd *cobra.Command, report *domain.RunReport, f runFlags, cfg domain.RunConfig) error {
	if f.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report, cfg.MaxErrorsShown))
	}

	if n := len(report.Failures); n > 0 {
		return fmt.Errorf("%d file(s) could not be processed", n)
	}
	if f.strict && report.Summary.TotalErrors > 0 {
		return fmt.Errorf("found %d invalid line(s) in %d file(s)",
			report.Summary.TotalErrors, report.Summary.FilesWithErrors)
	}
	return nil
}
