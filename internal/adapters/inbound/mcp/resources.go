package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/commitkraft/internal/application"
)

const (
	configURI = "commitkraft://config"
	typesURI  = "commitkraft://types"
)

// registerResources registers all commitkraft MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.LintService) {
	// 1. commitkraft://config - effective configuration
	s.AddResource(
		mcplib.NewResource(
			configURI,
			"Config",
			mcplib.WithResourceDescription("Effective commitkraft configuration: rules as [severity, when, value] tuples and ignore patterns"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(svc),
	)

	// 2. commitkraft://types - commit types and scopes
	s.AddResource(
		mcplib.NewResource(
			typesURI,
			"Types",
			mcplib.WithResourceDescription("Commit types and scopes with titles, emoji and descriptions"),
			mcplib.WithMIMEType("application/json"),
		),
		handleTypesResource(svc),
	)
}

func handleConfigResource(svc *application.LintService) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonResource(request.Params.URI, svc.Config())
	}
}

func handleTypesResource(svc *application.LintService) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonResource(request.Params.URI, svc.Presentation())
	}
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
