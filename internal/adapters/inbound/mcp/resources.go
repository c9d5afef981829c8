package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configloader "github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/config"
	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/history"
	"github.com/ndjsonkit/ndjsonkit/internal/adapters/outbound/scanner"
	"github.com/ndjsonkit/ndjsonkit/internal/domain"
)

// registerResources registers all ndjsonkit MCP resources on the given server.
func registerResources(s *server.MCPServer, workDir string) {
	// 1. ndjsonkit://config - effective run configuration
	s.AddResource(
		mcplib.NewResource(
			"ndjsonkit://config",
			"Run Configuration",
			mcplib.WithResourceDescription("Effective configuration for the working directory, defaults merged with .ndjsonkit.yaml"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(workDir),
	)

	// 2. ndjsonkit://files - discoverable NDJSON files
	s.AddResource(
		mcplib.NewResource(
			"ndjsonkit://files",
			"NDJSON Files",
			mcplib.WithResourceDescription("NDJSON files discovered under the working directory"),
			mcplib.WithMIMEType("application/json"),
		),
		handleFilesResource(workDir),
	)

	// 3. ndjsonkit://history - recorded validation runs
	s.AddResource(
		mcplib.NewResource(
			"ndjsonkit://history",
			"Run History",
			mcplib.WithResourceDescription("Validation runs recorded for the working directory"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(workDir),
	)
}

func handleConfigResource(workDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := configloader.New().Load(workDir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "ndjsonkit://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleFilesResource(workDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := configloader.New().Load(workDir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		files, err := scanner.New().Discover(workDir, cfg.Extensions)
		if err != nil {
			return nil, fmt.Errorf("discovering files: %w", err)
		}

		data, err := json.MarshalIndent(files, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling file list: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "ndjsonkit://files",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleHistoryResource(workDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(workDir)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		if entries == nil {
			entries = []domain.RunEntry{}
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling history: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "ndjsonkit://history",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
