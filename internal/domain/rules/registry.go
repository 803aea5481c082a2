// Package rules holds the rule registry, the built-in rule implementations
// and the evaluator that applies them to parsed commit messages.
package rules

import (
	"fmt"

	"github.com/openkraft/commitkraft/internal/domain"
	"github.com/openkraft/commitkraft/internal/domain/casing"
)

// Registry is an ordered set of configured rules. It is populated once at
// startup and only read afterwards, so it is safe for concurrent Evaluate
// calls once loading is done.
type Registry struct {
	entries []entry
	index   map[string]int
}

type entry struct {
	config domain.RuleConfig
	rule   Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Load builds a registry from configs in the order given.
func Load(configs []domain.RuleConfig) (*Registry, error) {
	r := NewRegistry()
	for _, cfg := range configs {
		if err := r.Register(cfg); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a built-in rule. Registering a name twice replaces the
// earlier config and keeps its position.
func (r *Registry) Register(cfg domain.RuleConfig) error {
	rule, ok := builtins[cfg.Name]
	if !ok {
		return &domain.InvalidRuleConfigError{Rule: cfg.Name, Reason: "unknown rule"}
	}
	spec, _ := domain.LookupRule(cfg.Name)

	if cfg.Params == nil {
		cfg.Params = spec.Defaults
	}
	if cfg.Params.Family() != spec.Family {
		return &domain.InvalidRuleConfigError{
			Rule:   cfg.Name,
			Reason: fmt.Sprintf("expects %s parameters, got %s", spec.Family, cfg.Params.Family()),
		}
	}
	if err := validate(cfg); err != nil {
		return err
	}

	r.put(cfg, rule)
	return nil
}

func (r *Registry) put(cfg domain.RuleConfig, rule Rule) {
	rule.Name = cfg.Name
	if i, ok := r.index[cfg.Name]; ok {
		r.entries[i] = entry{config: cfg, rule: rule}
		return
	}
	r.index[cfg.Name] = len(r.entries)
	r.entries = append(r.entries, entry{config: cfg, rule: rule})
}

// Get returns the config registered under name.
func (r *Registry) Get(name string) (domain.RuleConfig, bool) {
	i, ok := r.index[name]
	if !ok {
		return domain.RuleConfig{}, false
	}
	return r.entries[i].config, true
}

// All returns every registered config in registration order, including
// rules that are off.
func (r *Registry) All() []domain.RuleConfig {
	out := make([]domain.RuleConfig, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.config)
	}
	return out
}

// AllEnabled returns the configs with severity other than off, in
// registration order.
func (r *Registry) AllEnabled() []domain.RuleConfig {
	var out []domain.RuleConfig
	for _, e := range r.entries {
		if e.config.Enabled() {
			out = append(out, e.config)
		}
	}
	return out
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.entries)
}

func (r *Registry) enabled() []entry {
	var out []entry
	for _, e := range r.entries {
		if e.config.Enabled() {
			out = append(out, e)
		}
	}
	return out
}

func validateLevels(cfg domain.RuleConfig) error {
	if !cfg.Severity.Valid() {
		return &domain.InvalidRuleConfigError{
			Rule:   cfg.Name,
			Reason: fmt.Sprintf("severity must be 0 (off), 1 (warning) or 2 (error), got %d", int(cfg.Severity)),
		}
	}
	if !cfg.Condition.Valid() {
		return &domain.InvalidRuleConfigError{
			Rule:   cfg.Name,
			Reason: fmt.Sprintf("when must be %q or %q, got %q", domain.Always, domain.Never, cfg.Condition),
		}
	}
	return nil
}

func validate(cfg domain.RuleConfig) error {
	if err := validateLevels(cfg); err != nil {
		return err
	}

	invalid := func(format string, args ...any) error {
		return &domain.InvalidRuleConfigError{Rule: cfg.Name, Reason: fmt.Sprintf(format, args...)}
	}

	if cfg.Name == domain.RuleSubjectCase && cfg.Enabled() {
		return invalid("not implemented, severity must be 0 (off)")
	}

	switch p := cfg.Params.(type) {
	case domain.EnumParams:
		if cfg.Enabled() && len(p.Values) == 0 {
			return invalid("allowed values must not be empty while the rule is enabled")
		}
	case domain.LengthParams:
		if p.Max < 0 || (cfg.Enabled() && p.Max == 0) {
			return invalid("length must be positive, got %d", p.Max)
		}
	case domain.CaseParams:
		if cfg.Enabled() && len(p.Cases) == 0 {
			return invalid("at least one case style is required")
		}
		for _, style := range p.Cases {
			if _, err := casing.To("", style); err != nil {
				return invalid("%v", err)
			}
		}
	case domain.CharParams:
		if cfg.Enabled() && p.Char == "" {
			return invalid("character must not be empty")
		}
	}
	return nil
}
