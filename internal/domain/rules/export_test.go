package rules

import "github.com/openkraft/commitkraft/internal/domain"

// RegisterRule adds a rule that is not part of the built-in set. Only the
// severity and condition of cfg are validated.
func (r *Registry) RegisterRule(cfg domain.RuleConfig, rule Rule) error {
	if cfg.Name == "" {
		return &domain.InvalidRuleConfigError{Reason: "rule name must not be empty"}
	}
	if rule.Check == nil {
		return &domain.InvalidRuleConfigError{Rule: cfg.Name, Reason: "rule has no check function"}
	}
	if cfg.Params == nil {
		cfg.Params = domain.NoParams{}
	}
	if err := validateLevels(cfg); err != nil {
		return err
	}
	r.put(cfg, rule)
	return nil
}
