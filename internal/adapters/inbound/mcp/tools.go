package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/backend"
	configloader "github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/config"
	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/scanner"
	"github.com/ndjsonkit/ndjsonkit/internal/application"
	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

// registerTools registers all ndjsonkit MCP tools on the given server.
func registerTools(s *server.MCPServer, workDir string) {
	// 1. ndjson_validate
	s.AddTool(
		mcplib.NewTool("ndjson_validate",
			mcplib.WithDescription("Validate NDJSON files line by line. Returns a summary and one error entry per invalid line."),
			mcplib.WithString("files",
				mcplib.Required(),
				mcplib.Description("Comma-separated file paths, relative to the working directory"),
			),
			mcplib.WithString("backend", mcplib.Description("Parse backend: go-json (default) or encoding/json")),
			mcplib.WithBoolean("parallel", mcplib.Description("Process files concurrently (default true)")),
		),
		handleValidate(workDir),
	)

	// 2. ndjson_clean
	s.AddTool(
		mcplib.NewTool("ndjson_clean",
			mcplib.WithDescription("Validate NDJSON files and write cleaned copies containing only valid lines. Returns cleaned file paths and the error entries."),
			mcplib.WithString("files",
				mcplib.Required(),
				mcplib.Description("Comma-separated file paths, relative to the working directory"),
			),
			mcplib.WithString("output_dir",
				mcplib.Required(),
				mcplib.Description("Directory to write cleaned files to"),
			),
			mcplib.WithString("backend", mcplib.Description("Parse backend: go-json (default) or encoding/json")),
			mcplib.WithBoolean("parallel", mcplib.Description("Process files concurrently (default true)")),
		),
		handleClean(workDir),
	)

	// 3. ndjson_validate_dir
	s.AddTool(
		mcplib.NewTool("ndjson_validate_dir",
			mcplib.WithDescription("Discover and validate every NDJSON file under a directory"),
			mcplib.WithString("path", mcplib.Description("Directory to scan (defaults to the working directory)")),
			mcplib.WithBoolean("clean", mcplib.Description("Also write cleaned copies")),
			mcplib.WithString("output_dir", mcplib.Description("Directory for cleaned files (required with clean)")),
		),
		handleValidateDir(workDir),
	)
}

// validateResult is the wire shape of a validate call, mirroring the
// engine's (summary, errors) boundary.
type validateResult struct {
	Summary  domain.ValidationSummary `json:"summary"`
	Errors   []domain.ErrorEntry      `json:"errors"`
	Failures []domain.FileFailure     `json:"failures,omitempty"`
}

// cleanResult is the wire shape of a clean call, mirroring the engine's
// (cleaned_paths, errors) boundary.
type cleanResult struct {
	CleanedFiles []string             `json:"cleaned_files"`
	Errors       []domain.ErrorEntry  `json:"errors"`
	Failures     []domain.FileFailure `json:"failures,omitempty"`
}

func handleValidate(workDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		files, err := request.RequireString("files")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc, err := newService(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.Process(splitFiles(workDir, files), domain.ValidatorConfig{
			Parallel: parallelArg(request),
		})
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}

		return jsonResult(validateResult{
			Summary:  report.Summary,
			Errors:   report.Errors,
			Failures: report.Failures,
		})
	}
}

func handleClean(workDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		files, err := request.RequireString("files")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		outputDir, err := request.RequireString("output_dir")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc, err := newService(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := svc.Process(splitFiles(workDir, files), domain.ValidatorConfig{
			CleanFiles: true,
			OutputDir:  resolvePath(workDir, outputDir),
			Parallel:   parallelArg(request),
		})
		if err != nil {
			return errorResult(fmt.Sprintf("clean failed: %v", err)), nil
		}

		return jsonResult(cleanResult{
			CleanedFiles: report.CleanedFiles,
			Errors:       report.Errors,
			Failures:     report.Failures,
		})
	}
}

func handleValidateDir(workDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		dirPath := workDir
		if p, _ := request.GetArguments()["path"].(string); p != "" {
			dirPath = resolvePath(workDir, p)
		}

		cfg, err := configloader.New().Load(dirPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config: %v", err)), nil
		}

		files, err := scanner.New().Discover(dirPath, cfg.Extensions)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		b, err := backend.ForName(cfg.Backend)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		clean, _ := request.GetArguments()["clean"].(bool)
		outputDir, _ := request.GetArguments()["output_dir"].(string)
		if clean && outputDir == "" {
			outputDir = cfg.OutputDir
		}

		svc := application.NewValidateService(b, nil)
		report, err := svc.Process(files, domain.ValidatorConfig{
			CleanFiles: clean,
			OutputDir:  resolvePath(dirPath, outputDir),
			Parallel:   cfg.Parallel,
			Workers:    cfg.Workers,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("processing %s: %v", dirPath, err)), nil
		}

		return jsonResult(report)
	}
}

// newService builds the engine for one tool call. No progress sink: MCP
// responses are a single payload.
func newService(request mcplib.CallToolRequest) (*application.ValidateService, error) {
	name, _ := request.GetArguments()["backend"].(string)
	b, err := backend.ForName(name)
	if err != nil {
		return nil, err
	}
	return application.NewValidateService(b, nil), nil
}

// parallelArg reads the parallel flag, defaulting to true when absent.
func parallelArg(request mcplib.CallToolRequest) bool {
	if v, ok := request.GetArguments()["parallel"].(bool); ok {
		return v
	}
	return true
}

func splitFiles(workDir, csv string) []string {
	var files []string
	for _, f := range strings.Split(csv, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		files = append(files, resolvePath(workDir, f))
	}
	return files
}

func resolvePath(workDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
