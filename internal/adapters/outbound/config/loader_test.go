package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/openkraft/commitkraft/internal/adapters/outbound/config"
	"github.com/openkraft/commitkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func ruleConfig(t *testing.T, cfg domain.ProjectConfig, name string) domain.RuleConfig {
	t.Helper()
	configs, err := cfg.RuleConfigs()
	require.NoError(t, err)
	for _, c := range configs {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("rule %s not configured", name)
	return domain.RuleConfig{}
}

func TestLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_TupleForm(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".commitkraft.yaml", `
rules:
  header-max-length: [1, always, 72]
`)
	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)

	rc := ruleConfig(t, cfg, domain.RuleHeaderMaxLength)
	assert.Equal(t, domain.SeverityWarning, rc.Severity)
	assert.Equal(t, domain.Always, rc.Condition)
	assert.Equal(t, domain.LengthParams{Max: 72}, rc.Params)
}

func TestLoader_MappingFormMatchesTupleForm(t *testing.T) {
	tupleDir := t.TempDir()
	writeConfig(t, tupleDir, ".commitkraft.yaml", `
rules:
  scope-enum: [2, always, [core, api]]
`)
	mapDir := t.TempDir()
	writeConfig(t, mapDir, ".commitkraft.yaml", `
rules:
  scope-enum:
    severity: error
    when: always
    value: [core, api]
`)

	tupleCfg, err := appconfig.New().Load(tupleDir)
	require.NoError(t, err)
	mapCfg, err := appconfig.New().Load(mapDir)
	require.NoError(t, err)

	assert.Equal(t,
		ruleConfig(t, tupleCfg, domain.RuleScopeEnum),
		ruleConfig(t, mapCfg, domain.RuleScopeEnum),
	)
}

func TestLoader_TOMLMatchesYAML(t *testing.T) {
	yamlDir := t.TempDir()
	writeConfig(t, yamlDir, ".commitkraft.yaml", `
default_ignores: false
rules:
  type-enum: [2, always, [feat, fix]]
  body-max-line-length: [2, always, 80]
  subject-full-stop: [1, never, "!"]
`)
	tomlDir := t.TempDir()
	writeConfig(t, tomlDir, ".commitkraft.toml", `
default_ignores = false

[rules]
type-enum = [2, "always", ["feat", "fix"]]
body-max-line-length = [2, "always", 80]
subject-full-stop = [1, "never", "!"]
`)

	yamlCfg, err := appconfig.New().Load(yamlDir)
	require.NoError(t, err)
	tomlCfg, err := appconfig.New().Load(tomlDir)
	require.NoError(t, err)

	yamlRules, err := yamlCfg.RuleConfigs()
	require.NoError(t, err)
	tomlRules, err := tomlCfg.RuleConfigs()
	require.NoError(t, err)
	assert.Equal(t, yamlRules, tomlRules)
	assert.False(t, tomlCfg.UsesDefaultIgnores())
}

func TestLoader_ExtendsDefaultKeepsOtherRules(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".commitkraft.yaml", `
rules:
  header-max-length: [2, always, 72]
`)
	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)

	assert.Contains(t, cfg.Rules, domain.RuleTypeEnum)
	assert.Contains(t, cfg.Rules, domain.RuleBodyLeadingBlank)
	assert.Equal(t, domain.LengthParams{Max: 72}, ruleConfig(t, cfg, domain.RuleHeaderMaxLength).Params)
}

func TestLoader_ExtendsNone(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".commitkraft.yaml", `
extends: none
rules:
  type-empty: [2, never]
`)
	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)

	configs, err := cfg.RuleConfigs()
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, domain.RuleTypeEmpty, configs[0].Name)
}

func TestLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".commitkraft.yaml", `{{{invalid yaml`)

	_, err := appconfig.New().Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .commitkraft.yaml")
}

func TestLoader_UnknownExtends(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".commitkraft.yaml", `extends: angular`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .commitkraft.yaml")
}

func TestLoader_BadIgnorePattern(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".commitkraft.yaml", `ignores: ["(unclosed"]`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ignores[0]")
}

func TestLoader_MalformedRuleEntryIsRuleConfigError(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".commitkraft.yaml", `
rules:
  type-enum: [2, always, [feat], extra]
`)
	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err, "shape errors surface when rules are resolved")

	_, err = cfg.RuleConfigs()
	var ruleErr *domain.InvalidRuleConfigError
	require.True(t, errors.As(err, &ruleErr))
	assert.Equal(t, domain.RuleTypeEnum, ruleErr.Rule)
}

func TestLoader_LoadFileExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "lint.toml", `
extends = "none"

[rules]
header-trim = [2, "always"]

[[prompt.types]]
name = "feat"
title = "Features"
`)
	cfg, err := appconfig.New().LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, domain.ExtendsNone, cfg.Extends)
	assert.Contains(t, cfg.Rules, domain.RuleHeaderTrim)
	choice, ok := cfg.Presentation().TypeChoice("feat")
	require.True(t, ok)
	assert.Equal(t, "Features", choice.Title)
}

func TestLoader_PromptOverrideKeepsDefaultQuestions(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".commitkraft.yml", `
prompt:
  scopes:
    - name: api
      description: Public API
`)
	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)

	p := cfg.Presentation()
	require.Len(t, p.Scopes, 1)
	assert.Equal(t, "api", p.Scopes[0].Name)
	assert.Len(t, p.Types, len(domain.DefaultPresentation().Types))
	assert.NotEmpty(t, p.Questions["subject"])
}

func TestLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".commitkraft.yaml", "")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig().Rules, cfg.Rules)
}
