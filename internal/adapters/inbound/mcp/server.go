package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewServer creates an MCP server exposing the schema check as a tool. The
// projectPath is the root directory of the project to check.
func NewServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"schemaguard",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
