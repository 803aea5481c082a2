package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/commitkraft/internal/application"
	"github.com/openkraft/commitkraft/internal/domain"
	"github.com/openkraft/commitkraft/internal/logger"
)

// registerTools registers all commitkraft MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.LintService, projectPath string) {
	// 1. commitkraft_lint
	s.AddTool(
		mcplib.NewTool("commitkraft_lint",
			mcplib.WithDescription("Lint a commit message and return the validation report as JSON"),
			mcplib.WithString("message",
				mcplib.Required(),
				mcplib.Description("Full commit message: header, optional body and footer"),
			),
			mcplib.WithBoolean("strict", mcplib.Description("Treat warnings as failures")),
		),
		handleLint(svc),
	)

	// 2. commitkraft_lint_range
	s.AddTool(
		mcplib.NewTool("commitkraft_lint_range",
			mcplib.WithDescription("Lint every commit in a git range of the project and return one report per commit, newest first"),
			mcplib.WithString("from", mcplib.Description("Exclusive start revision; empty lints only the 'to' commit")),
			mcplib.WithString("to", mcplib.Description("Inclusive end revision (default HEAD)")),
		),
		handleLintRange(svc, projectPath),
	)

	// 3. commitkraft_rules
	s.AddTool(
		mcplib.NewTool("commitkraft_rules",
			mcplib.WithDescription("Returns the configured rules in evaluation order"),
			mcplib.WithBoolean("all", mcplib.Description("Include rules that are off")),
		),
		handleRules(svc),
	)

	// 4. commitkraft_parse
	s.AddTool(
		mcplib.NewTool("commitkraft_parse",
			mcplib.WithDescription("Returns the parsed structure of a commit message: type, scope, subject, body, footer and trailers, plus the configured title and description of its type and scope"),
			mcplib.WithString("message", mcplib.Required(), mcplib.Description("Full commit message")),
		),
		handleParse(svc),
	)
}

// lintResult is the payload of commitkraft_lint.
type lintResult struct {
	Passed bool                    `json:"passed"`
	Report domain.ValidationReport `json:"report"`
}

func handleLint(svc *application.LintService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		message, err := request.RequireString("message")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		strict, _ := request.GetArguments()["strict"].(bool)

		report, err := svc.Lint(ctx, message)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(lintResult{Passed: report.Passed(strict), Report: report})
	}
}

func handleLintRange(svc *application.LintService, projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		from, _ := args["from"].(string)
		to, _ := args["to"].(string)

		reports, err := svc.LintCommits(ctx, projectPath, from, to)
		if err != nil {
			logger.Error(ctx, "lint range failed", err, "from", from, "to", to)
			return errorResult(fmt.Sprintf("lint range failed: %v", err)), nil
		}
		return jsonResult(reports)
	}
}

func handleRules(svc *application.LintService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		all, _ := request.GetArguments()["all"].(bool)
		if all {
			return jsonResult(svc.Rules())
		}
		return jsonResult(svc.EnabledRules())
	}
}

// parseResult is the payload of commitkraft_parse.
type parseResult struct {
	*domain.ParsedMessage
	TypeChoice  *domain.Choice `json:"type_choice,omitempty"`
	ScopeChoice *domain.Choice `json:"scope_choice,omitempty"`
}

func handleParse(svc *application.LintService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		message, err := request.RequireString("message")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		msg, err := svc.Parse(message)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result := parseResult{ParsedMessage: msg}
		p := svc.Presentation()
		if c, ok := p.TypeChoice(msg.TypeValue()); ok {
			result.TypeChoice = &c
		}
		if c, ok := p.ScopeChoice(msg.ScopeValue()); ok {
			result.ScopeChoice = &c
		}
		return jsonResult(result)
	}
}

// jsonResult marshals v to indented JSON and wraps it in a text content result.
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
