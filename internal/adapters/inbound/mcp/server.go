package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/commitkraft/internal/application"
)

// NewCommitKraftMCPServer creates an MCP server with all commitkraft tools
// and resources registered. svc holds the loaded rules; projectPath is the
// repository the range tool reads commits from.
func NewCommitKraftMCPServer(svc *application.LintService, projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"commitkraft",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc, projectPath)
	registerResources(s, svc)

	return s
}
