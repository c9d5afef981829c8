package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewNDJSONKitMCPServer creates a new MCP server with all ndjsonkit tools
// and resources registered. The adapter owns no validation logic: it only
// marshals between MCP call shapes and the validation engine's two entry
// points. workDir is the directory relative file arguments resolve against.
func NewNDJSONKitMCPServer(workDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"ndjsonkit",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, workDir)
	registerResources(s, workDir)

	return s
}
