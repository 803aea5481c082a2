package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/openkraft/commitkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, name, raw string) (domain.RuleConfig, error) {
	t.Helper()
	var s domain.RuleSetting
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	configs, err := domain.ProjectConfig{Rules: map[string]domain.RuleSetting{name: s}}.RuleConfigs()
	if err != nil {
		return domain.RuleConfig{}, err
	}
	require.Len(t, configs, 1)
	return configs[0], nil
}

func TestRuleSetting_Tuple(t *testing.T) {
	cfg, err := resolve(t, domain.RuleTypeEnum, `[2, "always", ["feat", "fix"]]`)
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityError, cfg.Severity)
	assert.Equal(t, domain.Always, cfg.Condition)
	assert.Equal(t, domain.EnumParams{Values: []string{"feat", "fix"}}, cfg.Params)
}

func TestRuleSetting_TupleWithoutValueUsesDefaults(t *testing.T) {
	cfg, err := resolve(t, domain.RuleHeaderMaxLength, `[1, "always"]`)
	require.NoError(t, err)
	assert.Equal(t, domain.LengthParams{Max: 100}, cfg.Params)
}

func TestRuleSetting_OffTuple(t *testing.T) {
	cfg, err := resolve(t, domain.RuleBodyEmpty, `[0, "never"]`)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled())
	assert.Equal(t, domain.Never, cfg.Condition)
}

func TestRuleSetting_LengthFromNumericString(t *testing.T) {
	cfg, err := resolve(t, domain.RuleHeaderMaxLength, `[2, "always", " 72 "]`)
	require.NoError(t, err)
	assert.Equal(t, domain.LengthParams{Max: 72}, cfg.Params)
}

func TestRuleSetting_Mapping(t *testing.T) {
	cfg, err := resolve(t, domain.RuleSubjectFullStop, `{"level": 1, "when": "never", "value": "!"}`)
	require.NoError(t, err)
	assert.Equal(t, domain.SeverityWarning, cfg.Severity)
	assert.Equal(t, domain.Never, cfg.Condition)
	assert.Equal(t, domain.CharParams{Char: "!"}, cfg.Params)
}

func TestRuleSetting_CaseAcceptsSingleString(t *testing.T) {
	cfg, err := resolve(t, domain.RuleScopeCase, `[2, "always", "kebab-case"]`)
	require.NoError(t, err)
	assert.Equal(t, domain.CaseParams{Cases: []string{"kebab-case"}}, cfg.Params)
}

func TestRuleSetting_PlainRuleIgnoresValue(t *testing.T) {
	cfg, err := resolve(t, domain.RuleTypeEmpty, `[2, "never", "ignored"]`)
	require.NoError(t, err)
	assert.Equal(t, domain.NoParams{}, cfg.Params)
}

func TestRuleSetting_Malformed(t *testing.T) {
	tests := []struct {
		name string
		rule string
		raw  string
	}{
		{"too many elements", domain.RuleTypeEnum, `[2, "always", [], "x"]`},
		{"empty tuple", domain.RuleTypeEnum, `[]`},
		{"severity only", domain.RuleBodyEmpty, `[0]`},
		{"bare severity", domain.RuleHeaderTrim, `2`},
		{"bare severity name", domain.RuleHeaderTrim, `"warning"`},
		{"length with trailing garbage", domain.RuleHeaderMaxLength, `[2, "always", "100abc"]`},
		{"null", domain.RuleTypeEnum, `null`},
		{"bad severity", domain.RuleTypeEnum, `["fatal", "always", []]`},
		{"non-string when", domain.RuleTypeEnum, `[2, true]`},
		{"enum of numbers", domain.RuleTypeEnum, `[2, "always", [1, 2]]`},
		{"length not a number", domain.RuleHeaderMaxLength, `[2, "always", "long"]`},
		{"char not a string", domain.RuleSubjectFullStop, `[2, "never", 1]`},
		{"mapping without severity", domain.RuleTypeEnum, `{"when": "always"}`},
		{"mapping unknown key", domain.RuleTypeEnum, `{"severity": 2, "max": 3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolve(t, tt.rule, tt.raw)
			var ruleErr *domain.InvalidRuleConfigError
			require.True(t, errors.As(err, &ruleErr), "got %v", err)
			assert.Equal(t, tt.rule, ruleErr.Rule)
		})
	}
}

func TestRuleSetting_MarshalJSONAsTuple(t *testing.T) {
	s := domain.RuleSetting{Severity: domain.SeverityError, Condition: domain.Always, Value: 72, HasValue: true}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[2, "always", 72]`, string(data))

	data, err = json.Marshal(domain.RuleSetting{Severity: domain.SeverityWarning})
	require.NoError(t, err)
	assert.JSONEq(t, `[1, "always"]`, string(data))
}
