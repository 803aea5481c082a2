package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
)

// Extends values select the base rule set a project config builds on.
const (
	ExtendsDefault = "default"
	ExtendsNone    = "none"
)

// ProjectConfig holds project-level configuration loaded from .commitkraft.yaml
// or .commitkraft.toml.
type ProjectConfig struct {
	Extends        string                 `yaml:"extends"         toml:"extends"         json:"extends,omitempty"`
	DefaultIgnores *bool                  `yaml:"default_ignores" toml:"default_ignores" json:"default_ignores,omitempty"`
	Ignores        []string               `yaml:"ignores"         toml:"ignores"         json:"ignores,omitempty"`
	Rules          map[string]RuleSetting `yaml:"rules"           toml:"rules"           json:"rules,omitempty"`
	Prompt         *PresentationMetadata  `yaml:"prompt"          toml:"prompt"          json:"prompt,omitempty"`
}

// DefaultConfig returns the built-in rule set: conventional commit types,
// the project scope taxonomy and 100-column limits.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Extends: ExtendsDefault,
		Rules: map[string]RuleSetting{
			RuleBodyLeadingBlank:    {Severity: SeverityWarning, Condition: Always},
			RuleBodyMaxLineLength:   {Severity: SeverityError, Condition: Always, Value: 100, HasValue: true},
			RuleFooterLeadingBlank:  {Severity: SeverityWarning, Condition: Always},
			RuleFooterMaxLineLength: {Severity: SeverityError, Condition: Always, Value: 100, HasValue: true},
			RuleHeaderMaxLength:     {Severity: SeverityError, Condition: Always, Value: 100, HasValue: true},
			RuleHeaderTrim:          {Severity: SeverityError, Condition: Always},
			RuleSubjectCase:         {Severity: SeverityOff, Condition: Never},
			RuleSubjectEmpty:        {Severity: SeverityError, Condition: Never},
			RuleSubjectFullStop:     {Severity: SeverityError, Condition: Never, Value: ".", HasValue: true},
			RuleTypeCase:            {Severity: SeverityError, Condition: Always, Value: "lower-case", HasValue: true},
			RuleTypeEmpty:           {Severity: SeverityError, Condition: Never},
			RuleTypeEnum: {Severity: SeverityError, Condition: Always, HasValue: true, Value: []any{
				"feat", "fix", "docs", "style", "refactor", "perf", "test", "build", "ci", "chore",
			}},
			RuleScopeEnum: {Severity: SeverityError, Condition: Always, HasValue: true, Value: []any{
				"core", "runtime", "compiler", "examples", "docs", "tools", "deps", "ci", "test", "other", "",
			}},
		},
		Prompt: DefaultPresentation(),
	}
}

// UsesDefaultIgnores reports whether the built-in ignore patterns apply.
// Unset means true.
func (c ProjectConfig) UsesDefaultIgnores() bool {
	return c.DefaultIgnores == nil || *c.DefaultIgnores
}

// Validate checks the config for invalid values that do not belong to a
// single rule. Rule entries are checked by RuleConfigs.
func (c ProjectConfig) Validate() error {
	switch c.Extends {
	case "", ExtendsDefault, ExtendsNone:
	default:
		return fmt.Errorf("unknown extends %q (valid: default, none)", c.Extends)
	}

	for i, pattern := range c.Ignores {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("ignores[%d]: %w", i, err)
		}
	}

	if c.Prompt != nil {
		if err := c.Prompt.validate(); err != nil {
			return err
		}
	}

	return nil
}

// IgnorePatterns compiles the user-supplied ignore expressions.
func (c ProjectConfig) IgnorePatterns() ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(c.Ignores))
	for i, p := range c.Ignores {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("ignores[%d]: %w", i, err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}

// RuleConfigs converts the configured rule settings into typed RuleConfigs,
// ordered by Catalog. Unknown rule names and parameters of the wrong shape
// are reported as *InvalidRuleConfigError.
func (c ProjectConfig) RuleConfigs() ([]RuleConfig, error) {
	names := make([]string, 0, len(c.Rules))
	for name := range c.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := LookupRule(name); !ok {
			return nil, &InvalidRuleConfigError{Rule: name, Reason: "unknown rule"}
		}
	}

	sort.SliceStable(names, func(i, j int) bool {
		return catalogIndex(names[i]) < catalogIndex(names[j])
	})

	configs := make([]RuleConfig, 0, len(names))
	for _, name := range names {
		cfg, err := c.Rules[name].toRuleConfig(name)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// Presentation returns the display metadata, falling back to the defaults.
func (c ProjectConfig) Presentation() PresentationMetadata {
	if c.Prompt == nil {
		return *DefaultPresentation()
	}
	return *c.Prompt
}

// Hash fingerprints the settings that affect verdicts. Prompt text is left
// out since it never changes a result.
func (c ProjectConfig) Hash() (string, error) {
	data, err := json.Marshal(struct {
		Extends        string                 `json:"extends"`
		DefaultIgnores bool                   `json:"default_ignores"`
		Ignores        []string               `json:"ignores"`
		Rules          map[string]RuleSetting `json:"rules"`
	}{c.Extends, c.UsesDefaultIgnores(), c.Ignores, c.Rules})
	if err != nil {
		return "", fmt.Errorf("hashing config: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
