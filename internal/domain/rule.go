package domain

import (
	"fmt"
	"strings"
)

// Severity controls whether a failing rule affects the overall outcome.
type Severity int

const (
	SeverityOff     Severity = 0
	SeverityWarning Severity = 1
	SeverityError   Severity = 2
)

// Valid reports whether s is one of off, warning or error.
func (s Severity) Valid() bool {
	return s >= SeverityOff && s <= SeverityError
}

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText encodes the severity by name so reports read "warning", not 1.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts the names written by MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSeverity accepts the numeric levels 0, 1, 2 and their names.
// Out-of-range numbers are returned as-is so the registry can reject them
// with the rule name attached.
func ParseSeverity(v any) (Severity, error) {
	switch n := v.(type) {
	case int:
		return Severity(n), nil
	case int64:
		return Severity(n), nil
	case uint64:
		return Severity(n), nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("severity %v is not an integer", n)
		}
		return Severity(int(n)), nil
	case string:
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "0", "off":
			return SeverityOff, nil
		case "1", "warn", "warning":
			return SeverityWarning, nil
		case "2", "error":
			return SeverityError, nil
		}
		return 0, fmt.Errorf("unknown severity %q (valid: off, warning, error)", n)
	default:
		return 0, fmt.Errorf("severity must be a number or name, got %T", v)
	}
}

// Condition is the always/never modifier of a rule.
type Condition string

const (
	Always Condition = "always"
	Never  Condition = "never"
)

// Valid reports whether c is always or never.
func (c Condition) Valid() bool {
	return c == Always || c == Never
}

// Apply turns the outcome of a rule's positive predicate into a verdict.
func (c Condition) Apply(matched bool) bool {
	if c == Never {
		return !matched
	}
	return matched
}

// Must returns "must" or "must not" for diagnostics.
func (c Condition) Must() string {
	if c == Never {
		return "must not"
	}
	return "must"
}

// RuleFamily groups rules by the shape of their parameters.
type RuleFamily string

const (
	FamilyPlain  RuleFamily = "plain"
	FamilyEnum   RuleFamily = "enum"
	FamilyLength RuleFamily = "length"
	FamilyCase   RuleFamily = "case"
	FamilyChar   RuleFamily = "char"
)

// RuleParams is the family-specific payload of a RuleConfig.
type RuleParams interface {
	Family() RuleFamily
}

// NoParams is carried by rules that take no parameters.
type NoParams struct{}

// EnumParams lists the allowed values of an enum rule.
type EnumParams struct {
	Values []string `json:"values"`
}

// LengthParams sets the limit of a length rule.
type LengthParams struct {
	Max int `json:"max"`
}

// CaseParams lists the case styles a value may be written in.
type CaseParams struct {
	Cases []string `json:"cases"`
}

// CharParams names the character a char rule looks for.
type CharParams struct {
	Char string `json:"char"`
}

func (NoParams) Family() RuleFamily     { return FamilyPlain }
func (EnumParams) Family() RuleFamily   { return FamilyEnum }
func (LengthParams) Family() RuleFamily { return FamilyLength }
func (CaseParams) Family() RuleFamily   { return FamilyCase }
func (CharParams) Family() RuleFamily   { return FamilyChar }

// Contains reports whether v is one of the allowed values.
func (p EnumParams) Contains(v string) bool {
	for _, allowed := range p.Values {
		if allowed == v {
			return true
		}
	}
	return false
}

// RuleConfig is the normative configuration of one rule.
type RuleConfig struct {
	Name      string     `json:"name"`
	Severity  Severity   `json:"severity"`
	Condition Condition  `json:"when"`
	Params    RuleParams `json:"params,omitempty"`
}

// Enabled reports whether the rule is evaluated at all.
func (c RuleConfig) Enabled() bool {
	return c.Severity != SeverityOff
}

// InvalidRuleConfigError is returned when rule configuration cannot be loaded.
type InvalidRuleConfigError struct {
	Rule   string
	Reason string
}

func (e *InvalidRuleConfigError) Error() string {
	if e.Rule == "" {
		return "invalid rule config: " + e.Reason
	}
	return fmt.Sprintf("invalid rule config %q: %s", e.Rule, e.Reason)
}
