package application

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/backend"
	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

var fixtureFiles = []string{
	"../../testdata/valid.ndjson",
	"../../testdata/invalid1.ndjson",
	"../../testdata/invalid2.ndjson",
}

func TestProcess_EmptyFileListIsZeroSummary(t *testing.T) {
	svc := newService()

	report, err := svc.Process(nil, domain.ValidatorConfig{})
	require.NoError(t, err)

	assert.Equal(t, domain.ValidationSummary{}, report.Summary)
	assert.Empty(t, report.Errors)
}

func TestProcess_ConfigErrorFailsBeforeAnyFileIsTouched(t *testing.T) {
	svc := newService()

	_, err := svc.Process(fixtureFiles, domain.ValidatorConfig{CleanFiles: true})
	assert.ErrorIs(t, err, domain.ErrOutputDirRequired)
}

func TestProcess_SummaryInvariants(t *testing.T) {
	svc := newService()

	report, err := svc.Process(fixtureFiles, domain.ValidatorConfig{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.TotalFiles)
	assert.Equal(t, 2, report.Summary.FilesWithErrors)
	assert.Equal(t, 9, report.Summary.TotalErrors) // 1 + 8
	assert.Len(t, report.Errors, report.Summary.TotalErrors)
}

func TestProcess_ParallelMatchesSequential(t *testing.T) {
	svc := newService()

	sequential, err := svc.Process(fixtureFiles, domain.ValidatorConfig{})
	require.NoError(t, err)

	parallel, err := svc.Process(fixtureFiles, domain.ValidatorConfig{Parallel: true})
	require.NoError(t, err)

	assert.Equal(t, sequential.Summary, parallel.Summary)
	assert.Equal(t, sequential.Errors, parallel.Errors,
		"error list must follow input file order regardless of scheduling")
}

func TestProcess_ParallelIsDeterministic(t *testing.T) {
	svc := newService()
	cfg := domain.ValidatorConfig{Parallel: true, Workers: 2}

	first, err := svc.Process(fixtureFiles, cfg)
	require.NoError(t, err)
	second, err := svc.Process(fixtureFiles, cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Errors, second.Errors)
}

func TestProcess_ParallelManyFiles(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i := 0; i < 40; i++ {
		name := fmt.Sprintf("f%02d.ndjson", i)
		content := fmt.Sprintf("{\"i\":%d}\n{bad %d}\n", i, i)
		files = append(files, writeFile(t, dir, name, content))
	}

	svc := newService()
	report, err := svc.Process(files, domain.ValidatorConfig{Parallel: true, Workers: 4})
	require.NoError(t, err)

	require.Equal(t, 40, report.Summary.FilesWithErrors)
	require.Len(t, report.Errors, 40)
	for i, e := range report.Errors {
		assert.Equal(t, files[i], e.FilePath, "concatenation must follow input order")
		assert.Equal(t, 2, e.LineNumber)
	}
}

func TestProcess_UnreadableFileDoesNotAbortBatch(t *testing.T) {
	files := []string{
		"../../testdata/valid.ndjson",
		"../../testdata/does-not-exist.ndjson",
		"../../testdata/invalid1.ndjson",
	}

	svc := newService()
	report, err := svc.Process(files, domain.ValidatorConfig{})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.TotalFiles)
	assert.Equal(t, 1, report.Summary.FilesWithErrors)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "../../testdata/does-not-exist.ndjson", report.Failures[0].FilePath)
}

func TestProcess_CleaningProducesOnePathPerFile(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	a := writeFile(t, dir, "a.ndjson", "{\"a\":1}\n{bad}\n{\"b\":2}\n")
	b := writeFile(t, dir, "b.ndjson", "{bad}\n")

	svc := newService()
	report, err := svc.Process([]string{a, b}, domain.ValidatorConfig{
		CleanFiles: true,
		OutputDir:  outDir,
	})
	require.NoError(t, err)

	require.Equal(t, []string{
		filepath.Join(outDir, "a.ndjson"),
		filepath.Join(outDir, "b.ndjson"),
	}, report.CleanedFiles)

	content, readErr := os.ReadFile(report.CleanedFiles[0])
	require.NoError(t, readErr)
	assert.Equal(t, "{\"a\":1}\n{\"b\":2}\n", string(content))
}

func TestProcess_ParallelCleaningIsByteIdentical(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("f%d.ndjson", i)
		files = append(files, writeFile(t, dir, name, fmt.Sprintf("{\"i\":%d}\n{bad}\n{\"j\":%d}\n", i, i)))
	}

	svc := newService()
	runClean := func(outDir string) map[string]string {
		report, err := svc.Process(files, domain.ValidatorConfig{
			CleanFiles: true,
			OutputDir:  outDir,
			Parallel:   true,
		})
		require.NoError(t, err)
		contents := make(map[string]string)
		for _, p := range report.CleanedFiles {
			data, readErr := os.ReadFile(p)
			require.NoError(t, readErr)
			contents[filepath.Base(p)] = string(data)
		}
		return contents
	}

	first := runClean(filepath.Join(dir, "out1"))
	second := runClean(filepath.Join(dir, "out2"))
	assert.Equal(t, first, second)
}

func TestProcess_ProgressSinkInvokedPerFile(t *testing.T) {
	var seen []domain.FileResult
	svc := NewValidateService(backend.Default(), func(r domain.FileResult) {
		seen = append(seen, r)
	})

	_, err := svc.Process(fixtureFiles, domain.ValidatorConfig{Parallel: true})
	require.NoError(t, err)
	assert.Len(t, seen, len(fixtureFiles))
}

func TestValidate_SpecExample(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.ndjson", "{\"a\":1}\n{bad}\n{\"b\":2}\n")

	svc := newService()
	summary, errors, err := svc.Validate([]string{path}, false)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalErrors)
	require.Len(t, errors, 1)
	assert.Equal(t, 2, errors[0].LineNumber)
	assert.Equal(t, "{bad}", errors[0].LineContent)
}

func TestValidate_ParallelAndSequentialAgree(t *testing.T) {
	svc := newService()

	seqSummary, seqErrors, err := svc.Validate(fixtureFiles, false)
	require.NoError(t, err)
	parSummary, parErrors, err := svc.Validate(fixtureFiles, true)
	require.NoError(t, err)

	assert.Equal(t, seqSummary, parSummary)
	assert.Equal(t, seqErrors, parErrors)
}

func TestClean_Boundary(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	path := writeFile(t, dir, "a.ndjson", "{\"a\":1}\n{bad}\n{\"b\":2}\n")

	svc := newService()
	cleaned, errors, err := svc.Clean([]string{path}, outDir, false)
	require.NoError(t, err)

	require.Len(t, cleaned, 1)
	require.Len(t, errors, 1)

	content, readErr := os.ReadFile(cleaned[0])
	require.NoError(t, readErr)
	assert.Equal(t, "{\"a\":1}\n{\"b\":2}\n", string(content))
}

func TestClean_MissingOutputDirIsConfigError(t *testing.T) {
	svc := newService()

	_, _, err := svc.Clean(fixtureFiles, "", false)
	assert.ErrorIs(t, err, domain.ErrOutputDirRequired)
}
