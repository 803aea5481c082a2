package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RuleSetting is one entry of the rules mapping as written in a config file.
// It accepts the tuple form [severity, when, value] and the mapping form
// {severity, when, value}. Shape errors are kept and reported with the rule
// name by ProjectConfig.RuleConfigs.
type RuleSetting struct {
	Severity  Severity
	Condition Condition
	Value     any
	HasValue  bool

	invalid string
}

// UnmarshalYAML decodes either supported form.
func (s *RuleSetting) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*s = settingFromValue(raw)
	return nil
}

// UnmarshalTOML decodes either supported form.
func (s *RuleSetting) UnmarshalTOML(raw any) error {
	*s = settingFromValue(raw)
	return nil
}

// UnmarshalJSON decodes either supported form.
func (s *RuleSetting) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = settingFromValue(raw)
	return nil
}

// MarshalJSON encodes the setting as a tuple.
func (s RuleSetting) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Tuple())
}

// Tuple returns the setting in [severity, when, value] form.
func (s RuleSetting) Tuple() []any {
	when := s.Condition
	if when == "" {
		when = Always
	}
	tuple := []any{int(s.Severity), string(when)}
	if s.HasValue {
		tuple = append(tuple, s.Value)
	}
	return tuple
}

func settingFromValue(raw any) RuleSetting {
	switch v := raw.(type) {
	case []any:
		return settingFromTuple(v)
	case map[string]any:
		return settingFromMap(v)
	case nil:
		return RuleSetting{invalid: "empty rule entry"}
	default:
		return RuleSetting{invalid: fmt.Sprintf("expected [severity, when, value?] or a mapping, got %T", v)}
	}
}

func settingFromTuple(tuple []any) RuleSetting {
	if len(tuple) < 2 || len(tuple) > 3 {
		return RuleSetting{invalid: fmt.Sprintf("expected [severity, when, value?], got %d elements", len(tuple))}
	}

	sev, err := ParseSeverity(tuple[0])
	if err != nil {
		return RuleSetting{invalid: err.Error()}
	}
	when, ok := tuple[1].(string)
	if !ok {
		return RuleSetting{invalid: fmt.Sprintf("when must be a string, got %T", tuple[1])}
	}
	s := RuleSetting{Severity: sev, Condition: Condition(when)}
	if len(tuple) == 3 {
		s.Value = tuple[2]
		s.HasValue = true
	}
	return s
}

func settingFromMap(m map[string]any) RuleSetting {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := RuleSetting{Condition: Always}
	hasSeverity := false
	for _, k := range keys {
		switch k {
		case "severity", "level":
			sev, err := ParseSeverity(m[k])
			if err != nil {
				return RuleSetting{invalid: err.Error()}
			}
			s.Severity = sev
			hasSeverity = true
		case "when":
			when, ok := m[k].(string)
			if !ok {
				return RuleSetting{invalid: fmt.Sprintf("when must be a string, got %T", m[k])}
			}
			s.Condition = Condition(when)
		case "value":
			s.Value = m[k]
			s.HasValue = true
		default:
			return RuleSetting{invalid: fmt.Sprintf("unknown key %q (valid: severity, when, value)", k)}
		}
	}
	if !hasSeverity {
		return RuleSetting{invalid: "severity is required"}
	}
	return s
}

// toRuleConfig resolves the raw value into the params variant of the rule's
// family. Range checks (severity, lengths, empty enums) belong to the
// registry.
func (s RuleSetting) toRuleConfig(name string) (RuleConfig, error) {
	if s.invalid != "" {
		return RuleConfig{}, &InvalidRuleConfigError{Rule: name, Reason: s.invalid}
	}

	spec, ok := LookupRule(name)
	if !ok {
		return RuleConfig{}, &InvalidRuleConfigError{Rule: name, Reason: "unknown rule"}
	}

	cfg := RuleConfig{
		Name:      name,
		Severity:  s.Severity,
		Condition: s.Condition,
		Params:    spec.Defaults,
	}
	if cfg.Condition == "" {
		cfg.Condition = Always
	}
	if !s.HasValue || s.Value == nil {
		return cfg, nil
	}

	params, err := paramsFor(spec.Family, s.Value)
	if err != nil {
		return RuleConfig{}, &InvalidRuleConfigError{Rule: name, Reason: err.Error()}
	}
	if params != nil {
		cfg.Params = params
	}
	return cfg, nil
}

func paramsFor(family RuleFamily, value any) (RuleParams, error) {
	switch family {
	case FamilyEnum:
		values, err := toStrings(value)
		if err != nil {
			return nil, fmt.Errorf("allowed values: %w", err)
		}
		return EnumParams{Values: values}, nil
	case FamilyLength:
		n, err := toInt(value)
		if err != nil {
			return nil, fmt.Errorf("length: %w", err)
		}
		return LengthParams{Max: n}, nil
	case FamilyCase:
		cases, err := toStrings(value)
		if err != nil {
			return nil, fmt.Errorf("case: %w", err)
		}
		return CaseParams{Cases: cases}, nil
	case FamilyChar:
		c, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("character must be a string, got %T", value)
		}
		return CharParams{Char: c}, nil
	default:
		// Rules without parameters ignore a trailing value.
		return nil, nil
	}
}

func toStrings(value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return append([]string(nil), v...), nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d is %T, not a string", i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list of strings, got %T", value)
	}
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", value)
	}
}
