package tui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/tui"
	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

func sampleReport() *domain.RunReport {
	return &domain.RunReport{
		Summary: domain.ValidationSummary{TotalFiles: 3, FilesWithErrors: 2, TotalErrors: 9},
		Errors: []domain.ErrorEntry{
			{FilePath: "data/a.ndjson", LineNumber: 2, LineContent: "{bad}", Error: "invalid character 'b'"},
			{FilePath: "data/b.ndjson", LineNumber: 1, LineContent: "", Error: "empty line"},
		},
		Duration: 12 * time.Millisecond,
	}
}

func TestRenderReport_ContainsSummaryCounts(t *testing.T) {
	output := tui.RenderReport(sampleReport(), 10)
	assert.Contains(t, output, "files processed")
	assert.Contains(t, output, "files with errors")
	assert.Contains(t, output, "total errors")
	assert.Contains(t, output, "9")
}

func TestRenderReport_ContainsErrorDetails(t *testing.T) {
	output := tui.RenderReport(sampleReport(), 10)
	assert.Contains(t, output, "data/a.ndjson:2")
	assert.Contains(t, output, "{bad}")
	assert.Contains(t, output, "empty line")
}

func TestRenderReport_CapsErrorDetails(t *testing.T) {
	report := sampleReport()
	output := tui.RenderReport(report, 1)
	assert.Contains(t, output, "showing 1/2")
	assert.Contains(t, output, "and 1 more errors")
	assert.NotContains(t, output, "data/b.ndjson:1")
}

func TestRenderReport_AllValid(t *testing.T) {
	report := &domain.RunReport{
		Summary: domain.ValidationSummary{TotalFiles: 2},
		Errors:  []domain.ErrorEntry{},
	}
	output := tui.RenderReport(report, 10)
	assert.Contains(t, output, "all files valid")
	assert.NotContains(t, output, "Error Details")
}

func TestRenderReport_ListsFailures(t *testing.T) {
	report := sampleReport()
	report.Failures = []domain.FileFailure{
		{FilePath: "gone.ndjson", Error: "open gone.ndjson: no such file or directory"},
	}
	output := tui.RenderReport(report, 10)
	assert.Contains(t, output, "unprocessed files")
	assert.Contains(t, output, "gone.ndjson")
}

func TestRenderReport_ListsCleanedFiles(t *testing.T) {
	report := sampleReport()
	report.CleanedFiles = []string{"out/a.ndjson", "out/b.ndjson"}
	output := tui.RenderReport(report, 10)
	assert.Contains(t, output, "cleaned files")
	assert.Contains(t, output, "out/a.ndjson")
}

func TestRenderFileProgress(t *testing.T) {
	ok := tui.RenderFileProgress(domain.FileResult{FilePath: "a.ndjson"})
	assert.Contains(t, ok, "a.ndjson")

	bad := tui.RenderFileProgress(domain.FileResult{
		FilePath: "b.ndjson",
		Errors:   []domain.ErrorEntry{{LineNumber: 1}},
	})
	assert.Contains(t, bad, "1 invalid lines")

	failed := tui.RenderFileProgress(domain.FileResult{FilePath: "c.ndjson", Failure: "boom"})
	assert.Contains(t, failed, "unreadable")
}

func TestRenderHistory(t *testing.T) {
	entries := []domain.RunEntry{
		{
			Timestamp: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
			Summary:   domain.ValidationSummary{TotalFiles: 3, TotalErrors: 9},
			Commit:    "abc1234def5678",
		},
		{
			Timestamp: time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC),
			Summary:   domain.ValidationSummary{TotalFiles: 3},
			Cleaned:   true,
		},
	}

	output := tui.RenderHistory(entries)
	assert.Contains(t, output, "2 runs")
	assert.Contains(t, output, "9 errors")
	assert.Contains(t, output, "abc1234")
	assert.Contains(t, output, "cleaned")
}

func TestRenderHistory_Empty(t *testing.T) {
	output := tui.RenderHistory(nil)
	assert.Contains(t, output, "No recorded runs")
}
