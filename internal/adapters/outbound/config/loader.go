package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/openkraft/commitkraft/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileNames lists the config files Load looks for, in order.
var FileNames = []string{".commitkraft.yaml", ".commitkraft.yml", ".commitkraft.toml"}

// Loader implements domain.ConfigLoader by reading .commitkraft.yaml or
// .commitkraft.toml.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads the first config file found in projectPath.
// Returns DefaultConfig if none exists.
func (l *Loader) Load(projectPath string) (domain.ProjectConfig, error) {
	for _, name := range FileNames {
		path := filepath.Join(projectPath, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return domain.ProjectConfig{}, err
		}
		return l.LoadFile(path)
	}
	return domain.DefaultConfig(), nil
}

// LoadFile reads an explicit config file. The format follows the extension:
// .toml is TOML, anything else is YAML.
func (l *Loader) LoadFile(path string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ProjectConfig{}, err
	}
	name := filepath.Base(path)

	var cfg domain.ProjectConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", name, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", name, err)
		}
	}

	// Validate before merging so errors point at the user's own input.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	if cfg.Extends == "" || cfg.Extends == domain.ExtendsDefault {
		cfg = mergeConfig(domain.DefaultConfig(), cfg)
	}

	return cfg, nil
}

// mergeConfig overlays explicit overrides on top of the defaults.
// Rules merge per rule name; everything else set in override wins.
func mergeConfig(base, override domain.ProjectConfig) domain.ProjectConfig {
	result := base
	result.Extends = domain.ExtendsDefault

	rules := make(map[string]domain.RuleSetting, len(base.Rules)+len(override.Rules))
	for name, s := range base.Rules {
		rules[name] = s
	}
	for name, s := range override.Rules {
		rules[name] = s
	}
	result.Rules = rules

	if override.DefaultIgnores != nil {
		result.DefaultIgnores = override.DefaultIgnores
	}
	if len(override.Ignores) > 0 {
		result.Ignores = override.Ignores
	}
	if override.Prompt != nil {
		result.Prompt = mergePresentation(base.Prompt, override.Prompt)
	}

	return result
}

func mergePresentation(base, override *domain.PresentationMetadata) *domain.PresentationMetadata {
	if base == nil {
		return override
	}
	merged := *base
	if len(override.Types) > 0 {
		merged.Types = override.Types
	}
	if len(override.Scopes) > 0 {
		merged.Scopes = override.Scopes
	}
	if len(override.Questions) > 0 {
		questions := make(map[string]string, len(base.Questions)+len(override.Questions))
		for k, v := range base.Questions {
			questions[k] = v
		}
		for k, v := range override.Questions {
			questions[k] = v
		}
		merged.Questions = questions
	}
	return &merged
}
