package casing_test

import (
	"testing"

	"github.com/openkraft/commitkraft/internal/domain/casing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	tests := []struct {
		value string
		style string
		want  bool
	}{
		{"feat", casing.Lower, true},
		{"Feat", casing.Lower, false},
		{"FEAT", casing.Upper, true},
		{"Feat", casing.Upper, false},
		{"my-scope", casing.Kebab, true},
		{"myScope", casing.Kebab, false},
		{"my_scope", casing.Snake, true},
		{"my-scope", casing.Snake, false},
		{"myScope", casing.Camel, true},
		{"MyScope", casing.Camel, false},
		{"MyScope", casing.Pascal, true},
		{"myScope", casing.Pascal, false},
		{"Add cache", casing.Sentence, true},
		{"add cache", casing.Sentence, false},
		{"FOO BAR", casing.Sentence, false},
		{"Add Cache", casing.Sentence, false},
		{"My Scope", casing.Start, true},
		{"My scope", casing.Start, false},
		{"", casing.Lower, true},
	}
	for _, tt := range tests {
		got, err := casing.Is(tt.value, tt.style)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%q as %s", tt.value, tt.style)
	}
}

func TestIs_UnknownStyle(t *testing.T) {
	_, err := casing.Is("feat", "shouting-case")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown case style")
}

func TestIsAny(t *testing.T) {
	ok, err := casing.IsAny("my-scope", []string{casing.Camel, casing.Kebab})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = casing.IsAny("My-Scope", []string{casing.Camel, casing.Kebab})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTo(t *testing.T) {
	got, err := casing.To("fooBar-baz", casing.Kebab)
	require.NoError(t, err)
	assert.Equal(t, "foo-bar-baz", got)

	got, err = casing.To("foo bar", casing.Pascal)
	require.NoError(t, err)
	assert.Equal(t, "FooBar", got)
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"foo", "Bar", "baz"}, casing.Words("fooBar-baz"))
	assert.Empty(t, casing.Words("--"))
}

func TestStylesAreAllKnown(t *testing.T) {
	for _, style := range casing.Styles {
		_, err := casing.To("x", style)
		assert.NoError(t, err, style)
	}
}
