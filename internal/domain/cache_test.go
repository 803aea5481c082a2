package domain_test

import (
	"testing"

	"github.com/openkraft/commitkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLintCache_IsInvalidated(t *testing.T) {
	c := domain.NewLintCache("abc")
	assert.False(t, c.IsInvalidated("abc"))
	assert.True(t, c.IsInvalidated("def"))
}

func TestLintCache_GetPut(t *testing.T) {
	c := &domain.LintCache{ConfigHash: "abc"}
	_, ok := c.Get("1234567")
	assert.False(t, ok)

	c.Put("1234567", domain.BuildReport(nil))
	r, ok := c.Get("1234567")
	require.True(t, ok)
	assert.Equal(t, domain.StatusPass, r.Status)
}

func TestProjectConfig_Hash(t *testing.T) {
	a, err := domain.DefaultConfig().Hash()
	require.NoError(t, err)
	b, err := domain.DefaultConfig().Hash()
	require.NoError(t, err)
	assert.Equal(t, a, b, "hash should be stable")
	assert.Len(t, a, 64)

	cfg := domain.DefaultConfig()
	cfg.Rules[domain.RuleHeaderMaxLength] = domain.RuleSetting{Severity: domain.SeverityError, Condition: domain.Always, Value: 72, HasValue: true}
	c, err := cfg.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}
