package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/openkraft/commitkraft/internal/application"
	"github.com/openkraft/commitkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readResource(t *testing.T, handler func(context.Context, mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error), uri string) string {
	t.Helper()
	req := mcplib.ReadResourceRequest{}
	req.Params.URI = uri
	contents, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, uri, text.URI)
	assert.Equal(t, "application/json", text.MIMEType)
	return text.Text
}

func TestConfigResource(t *testing.T) {
	svc, err := application.NewLintService(domain.DefaultConfig(), nil)
	require.NoError(t, err)

	text := readResource(t, handleConfigResource(svc), configURI)

	var cfg domain.ProjectConfig
	require.NoError(t, json.Unmarshal([]byte(text), &cfg))
	got, err := cfg.RuleConfigs()
	require.NoError(t, err)
	want, err := domain.DefaultConfig().RuleConfigs()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTypesResource(t *testing.T) {
	svc, err := application.NewLintService(domain.DefaultConfig(), nil)
	require.NoError(t, err)

	text := readResource(t, handleTypesResource(svc), typesURI)
	assert.Contains(t, text, `"name": "feat"`)
	assert.Contains(t, text, "Bug Fixes")
}
