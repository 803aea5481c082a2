package domain

import "fmt"

// PresentationMetadata holds the human-facing text of the commit taxonomy:
// titles, emoji and prompt questions. The rule engine never reads it.
type PresentationMetadata struct {
	Types     []Choice          `yaml:"types"     toml:"types"     json:"types,omitempty"`
	Scopes    []Choice          `yaml:"scopes"    toml:"scopes"    json:"scopes,omitempty"`
	Questions map[string]string `yaml:"questions" toml:"questions" json:"questions,omitempty"`
}

// Choice describes one selectable commit type or scope.
type Choice struct {
	Name        string `yaml:"name"                  toml:"name"                  json:"name"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Title       string `yaml:"title,omitempty"       toml:"title,omitempty"       json:"title,omitempty"`
	Emoji       string `yaml:"emoji,omitempty"       toml:"emoji,omitempty"       json:"emoji,omitempty"`
}

// DefaultPresentation returns the display metadata matching DefaultConfig.
func DefaultPresentation() *PresentationMetadata {
	return &PresentationMetadata{
		Types: []Choice{
			{Name: "feat", Description: "A new feature", Title: "Features", Emoji: "✨"},
			{Name: "fix", Description: "A bugfix", Title: "Bug Fixes", Emoji: "🐛"},
			{Name: "docs", Description: "Documentation only changes", Title: "Documentation", Emoji: "📚"},
			{Name: "style", Description: "Changes that do not affect the meaning of the code (white-space, formatting, missing semi-colons, etc)", Title: "Styles", Emoji: "💎"},
			{Name: "refactor", Description: "A code change that neither fixes a bug nor adds a feature", Title: "Code Refactoring", Emoji: "📦"},
			{Name: "perf", Description: "A code change that improves performance", Title: "Performance Improvements", Emoji: "🚀"},
			{Name: "test", Description: "Adding missing tests or correcting existing tests", Title: "Tests", Emoji: "🚨"},
			{Name: "build", Description: "Changes that affect the build system or external dependencies (example: cmake, bazel)", Title: "Builds", Emoji: "🛠"},
			{Name: "ci", Description: "Changes to CI configuration files and scripts", Title: "Continuous Integrations", Emoji: "⚙️"},
			{Name: "chore", Description: "Other changes that don't modify src or test files", Title: "Chores", Emoji: "♻️"},
		},
		Scopes: []Choice{
			{Name: "core", Description: "Core engine code"},
			{Name: "runtime", Description: "Runtime library"},
			{Name: "compiler", Description: "Compiler related"},
			{Name: "examples", Description: "Example code"},
			{Name: "docs", Description: "Documentation related"},
			{Name: "tools", Description: "Tool related"},
			{Name: "deps", Description: "Dependency related"},
			{Name: "ci", Description: "CI related"},
			{Name: "test", Description: "Test related"},
			{Name: "other", Description: "Other changes"},
		},
		Questions: map[string]string{
			"type":            "Select the type of change that you're committing",
			"scope":           "What is the scope of this change (e.g. core, runtime, compiler)",
			"subject":         "Write a short, imperative tense description of the change",
			"body":            "Provide a longer description of the change",
			"isBreaking":      "Are there any breaking changes?",
			"breaking":        "Describe the breaking changes",
			"isIssueAffected": "Does this change affect any open issues?",
			"issues":          `Add issue references (e.g. "Closes #123, #456")`,
		},
	}
}

// TypeChoice returns the display entry for a commit type.
func (p PresentationMetadata) TypeChoice(name string) (Choice, bool) {
	return findChoice(p.Types, name)
}

// ScopeChoice returns the display entry for a scope.
func (p PresentationMetadata) ScopeChoice(name string) (Choice, bool) {
	return findChoice(p.Scopes, name)
}

func findChoice(choices []Choice, name string) (Choice, bool) {
	for _, c := range choices {
		if c.Name == name {
			return c, true
		}
	}
	return Choice{}, false
}

func (p PresentationMetadata) validate() error {
	for i, c := range p.Types {
		if c.Name == "" {
			return fmt.Errorf("prompt.types[%d].name must not be empty", i)
		}
	}
	for i, c := range p.Scopes {
		if c.Name == "" {
			return fmt.Errorf("prompt.scopes[%d].name must not be empty", i)
		}
	}
	return nil
}
