package application

import (
	"runtime"
	"sync"
	"time"

	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

// Process fans validation (or cleaning, per cfg) out over a list of files
// and folds per-file results into one RunReport. Configuration errors fail
// the whole call before any file is touched; per-file I/O failures are
// recorded as FileFailure data and the batch continues. An empty file list
// is not an error: it yields a zero-valued summary.
//
// In parallel mode files are processed by a bounded worker pool, but
// results are stored by input index and folded in input order, so the
// report is deterministic and identical to a sequential run.
func (s *ValidateService) Process(files []string, cfg domain.ValidatorConfig) (*domain.RunReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]domain.FileResult, len(files))

	if cfg.Parallel && len(files) > 1 {
		workers := cfg.Workers
		if workers <= 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		if workers > len(files) {
			workers = len(files)
		}

		sem := make(chan struct{}, workers)
		var wg sync.WaitGroup
		for i, f := range files {
			wg.Add(1)
			go func(i int, f string) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				results[i] = s.processOne(f, cfg)
			}(i, f)
		}
		wg.Wait()
	} else {
		for i, f := range files {
			results[i] = s.processOne(f, cfg)
		}
	}

	report := domain.FoldResults(results)
	report.Duration = time.Since(start)
	return report, nil
}

// Validate is the read-only boundary call: no filesystem writes beyond
// reading inputs.
func (s *ValidateService) Validate(files []string, parallel bool) (domain.ValidationSummary, []domain.ErrorEntry, error) {
	report, err := s.Process(files, domain.ValidatorConfig{Parallel: parallel})
	if err != nil {
		return domain.ValidationSummary{}, nil, err
	}
	return report.Summary, report.Errors, nil
}

// Clean validates and cleans: every readable file yields a cleaned path,
// even when it had zero valid lines.
func (s *ValidateService) Clean(files []string, outputDir string, parallel bool) ([]string, []domain.ErrorEntry, error) {
	report, err := s.Process(files, domain.ValidatorConfig{
		CleanFiles: true,
		OutputDir:  outputDir,
		Parallel:   parallel,
	})
	if err != nil {
		return nil, nil, err
	}
	return report.CleanedFiles, report.Errors, nil
}

func (s *ValidateService) processOne(path string, cfg domain.ValidatorConfig) domain.FileResult {
	result := domain.FileResult{FilePath: path}

	if cfg.CleanFiles {
		cleaned, entries, err := s.CleanFile(path, cfg.OutputDir)
		if err != nil {
			result.Failure = err.Error()
		} else {
			result.CleanedPath = cleaned
			result.Errors = entries
		}
	} else {
		entries, err := s.ValidateFile(path)
		if err != nil {
			result.Failure = err.Error()
		} else {
			result.Errors = entries
		}
	}

	s.reportProgress(result)
	return result
}

func (s *ValidateService) reportProgress(result domain.FileResult) {
	if s.progress == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress(result)
}
