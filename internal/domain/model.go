package domain

import "time"

// ErrorEntry describes a single line that failed JSON validation.
// Entries are produced only by per-file validation and never mutated.
type ErrorEntry struct {
	FilePath    string `json:"file_path"`
	LineNumber  int    `json:"line_number"`
	LineContent string `json:"line_content"`
	Error       string `json:"error"`
}

// ValidationSummary aggregates the outcome of one processing run.
type ValidationSummary struct {
	TotalFiles      int `json:"total_files"`
	FilesWithErrors int `json:"files_with_errors"`
	TotalErrors     int `json:"total_errors"`
}

// FileFailure records a file that could not be read or written at all.
// It is data, not a fatal error: the rest of the batch proceeds.
type FileFailure struct {
	FilePath string `json:"file_path"`
	Error    string `json:"error"`
}

// FileResult is the per-file outcome folded into a RunReport.
type FileResult struct {
	FilePath    string       `json:"file_path"`
	CleanedPath string       `json:"cleaned_path,omitempty"`
	Errors      []ErrorEntry `json:"errors,omitempty"`
	Failure     string       `json:"failure,omitempty"`
}

// RunReport is the full result of processing a batch of files.
type RunReport struct {
	Summary      ValidationSummary `json:"summary"`
	Errors       []ErrorEntry      `json:"errors"`
	CleanedFiles []string          `json:"cleaned_files,omitempty"`
	Failures     []FileFailure     `json:"failures,omitempty"`
	Duration     time.Duration     `json:"duration_ns"`
}

// FoldResults reduces per-file results into a RunReport, preserving input
// order: errors are concatenated file by file, each file's entries already
// sorted by ascending line number. The fold is the single aggregation point
// shared by sequential and parallel runs, so both produce identical output.
func FoldResults(results []FileResult) *RunReport {
	report := &RunReport{
		Summary: ValidationSummary{TotalFiles: len(results)},
		Errors:  []ErrorEntry{},
	}

	for _, r := range results {
		if r.Failure != "" {
			report.Failures = append(report.Failures, FileFailure{
				FilePath: r.FilePath,
				Error:    r.Failure,
			})
			continue
		}
		if len(r.Errors) > 0 {
			report.Summary.FilesWithErrors++
			report.Summary.TotalErrors += len(r.Errors)
			report.Errors = append(report.Errors, r.Errors...)
		}
		if r.CleanedPath != "" {
			report.CleanedFiles = append(report.CleanedFiles, r.CleanedPath)
		}
	}

	return report
}

// RunEntry is one persisted history record for a directory run.
type RunEntry struct {
	Timestamp time.Time         `json:"timestamp"`
	Path      string            `json:"path"`
	Commit    string            `json:"commit,omitempty"`
	Summary   ValidationSummary `json:"summary"`
	Cleaned   bool              `json:"cleaned"`
}
