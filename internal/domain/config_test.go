package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/openkraft/commitkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_RuleConfigsInCatalogOrder(t *testing.T) {
	configs, err := domain.DefaultConfig().RuleConfigs()
	require.NoError(t, err)
	require.NotEmpty(t, configs)

	// Every configured rule appears in the order the catalog declares.
	last := -1
	for _, c := range configs {
		idx := -1
		for i, spec := range domain.Catalog {
			if spec.Name == c.Name {
				idx = i
			}
		}
		require.NotEqual(t, -1, idx, "rule %s not in catalog", c.Name)
		assert.Greater(t, idx, last, "rule %s out of order", c.Name)
		last = idx
	}
	assert.Equal(t, domain.RuleHeaderMaxLength, configs[0].Name)
}

func TestDefaultConfig_TypeEnum(t *testing.T) {
	configs, err := domain.DefaultConfig().RuleConfigs()
	require.NoError(t, err)

	for _, c := range configs {
		if c.Name != domain.RuleTypeEnum {
			continue
		}
		assert.Equal(t, domain.SeverityError, c.Severity)
		assert.Equal(t, domain.Always, c.Condition)
		p, ok := c.Params.(domain.EnumParams)
		require.True(t, ok)
		assert.Equal(t, []string{"feat", "fix", "docs", "style", "refactor", "perf", "test", "build", "ci", "chore"}, p.Values)
		return
	}
	t.Fatal("type-enum not configured")
}

func TestDefaultConfig_ScopeEnumAllowsEmpty(t *testing.T) {
	configs, err := domain.DefaultConfig().RuleConfigs()
	require.NoError(t, err)

	for _, c := range configs {
		if c.Name == domain.RuleScopeEnum {
			assert.True(t, c.Params.(domain.EnumParams).Contains(""))
			assert.True(t, c.Params.(domain.EnumParams).Contains("core"))
			return
		}
	}
	t.Fatal("scope-enum not configured")
}

func TestDefaultConfig_SubjectCaseIsOff(t *testing.T) {
	configs, err := domain.DefaultConfig().RuleConfigs()
	require.NoError(t, err)
	for _, c := range configs {
		if c.Name == domain.RuleSubjectCase {
			assert.False(t, c.Enabled())
			return
		}
	}
	t.Fatal("subject-case not configured")
}

func TestDefaultConfig_Validates(t *testing.T) {
	assert.NoError(t, domain.DefaultConfig().Validate())
	assert.True(t, domain.DefaultConfig().UsesDefaultIgnores())
}

func TestProjectConfig_UnknownRule(t *testing.T) {
	cfg := domain.ProjectConfig{Rules: map[string]domain.RuleSetting{
		"no-such-rule": {Severity: domain.SeverityError, Condition: domain.Always},
	}}
	_, err := cfg.RuleConfigs()

	var ruleErr *domain.InvalidRuleConfigError
	require.True(t, errors.As(err, &ruleErr))
	assert.Equal(t, "no-such-rule", ruleErr.Rule)
	assert.Contains(t, err.Error(), "unknown rule")
}

func TestProjectConfig_ValidateExtends(t *testing.T) {
	assert.NoError(t, domain.ProjectConfig{Extends: domain.ExtendsNone}.Validate())
	assert.NoError(t, domain.ProjectConfig{}.Validate())
	assert.Error(t, domain.ProjectConfig{Extends: "angular"}.Validate())
}

func TestProjectConfig_ValidatePromptChoices(t *testing.T) {
	cfg := domain.ProjectConfig{Prompt: &domain.PresentationMetadata{
		Types: []domain.Choice{{Title: "Features"}},
	}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt.types[0].name")
}

func TestProjectConfig_IgnorePatterns(t *testing.T) {
	cfg := domain.ProjectConfig{Ignores: []string{`^WIP`, `\[skip lint\]`}}
	patterns, err := cfg.IgnorePatterns()
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.True(t, patterns[0].MatchString("WIP: stuff"))

	_, err = domain.ProjectConfig{Ignores: []string{"("}}.IgnorePatterns()
	assert.Error(t, err)
}

func TestProjectConfig_DefaultIgnoresDisabled(t *testing.T) {
	off := false
	cfg := domain.ProjectConfig{DefaultIgnores: &off}
	assert.False(t, cfg.UsesDefaultIgnores())
}

func TestProjectConfig_PresentationFallsBackToDefaults(t *testing.T) {
	p := domain.ProjectConfig{}.Presentation()
	assert.Equal(t, *domain.DefaultPresentation(), p)

	choice, ok := p.TypeChoice("fix")
	require.True(t, ok)
	assert.Equal(t, "Bug Fixes", choice.Title)

	scope, ok := p.ScopeChoice("runtime")
	require.True(t, ok)
	assert.Equal(t, "Runtime library", scope.Description)

	_, ok = p.ScopeChoice("nope")
	assert.False(t, ok)
}

func TestProjectConfig_JSONRoundTripKeepsRules(t *testing.T) {
	data, err := json.Marshal(domain.DefaultConfig())
	require.NoError(t, err)

	var decoded domain.ProjectConfig
	require.NoError(t, json.Unmarshal(data, &decoded))

	want, err := domain.DefaultConfig().RuleConfigs()
	require.NoError(t, err)
	got, err := decoded.RuleConfigs()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
