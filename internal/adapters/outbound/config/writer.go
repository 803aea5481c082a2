package config

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/openkraft/commitkraft/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format is a config file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FileName returns the file Load picks up for f.
func (f Format) FileName() string {
	if f == FormatTOML {
		return ".commitkraft.toml"
	}
	return ".commitkraft.yaml"
}

// ParseFormat accepts yaml, yml and toml.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "yaml", "yml", "":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: yaml, toml)", s)
	}
}

const fileHeader = "# commitkraft configuration\n# Rules are [severity, when, value]; severity 0 = off, 1 = warning, 2 = error.\n\n"

// document is the on-disk shape written by Marshal. Rules use the tuple form.
type document struct {
	Extends        string                       `yaml:"extends"                  toml:"extends"`
	DefaultIgnores bool                         `yaml:"default_ignores"          toml:"default_ignores"`
	Ignores        []string                     `yaml:"ignores,omitempty"        toml:"ignores,omitempty"`
	Rules          map[string]flowTuple         `yaml:"rules"                    toml:"rules"`
	Prompt         *domain.PresentationMetadata `yaml:"prompt,omitempty"         toml:"prompt,omitempty"`
}

// flowTuple renders as [2, always, 100] in YAML instead of a block list.
type flowTuple []any

func (t flowTuple) MarshalYAML() (any, error) {
	var node yaml.Node
	if err := node.Encode([]any(t)); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return &node, nil
}

// Marshal encodes cfg so that loading the result yields the same rules.
func Marshal(cfg domain.ProjectConfig, format Format) ([]byte, error) {
	doc := document{
		Extends:        cfg.Extends,
		DefaultIgnores: cfg.UsesDefaultIgnores(),
		Ignores:        cfg.Ignores,
		Rules:          make(map[string]flowTuple, len(cfg.Rules)),
		Prompt:         cfg.Prompt,
	}
	if doc.Extends == "" {
		doc.Extends = domain.ExtendsDefault
	}
	for name, s := range cfg.Rules {
		doc.Rules[name] = flowTuple(s.Tuple())
	}

	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
	}
	return buf.Bytes(), nil
}
