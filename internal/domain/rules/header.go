package rules

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/openkraft/commitkraft/internal/domain"
	"github.com/openkraft/commitkraft/internal/domain/casing"
)

var errSubjectCaseNotImplemented = errors.New("subject-case has no defined case policy")

func checkHeaderMaxLength(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	limit, err := lengthParam(cfg)
	if err != nil {
		return false, "", err
	}
	n := utf8.RuneCountInString(msg.RawHeader)
	if n <= limit {
		return true, "", nil
	}
	return false, fmt.Sprintf("header must not be longer than %d characters, current length is %d", limit, n), nil
}

func checkHeaderTrim(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	header := msg.RawHeader
	leading := strings.TrimLeftFunc(header, unicode.IsSpace) != header
	trailing := strings.TrimRightFunc(header, unicode.IsSpace) != header
	trimmed := !leading && !trailing

	if cfg.Condition.Apply(trimmed) {
		return true, "", nil
	}
	switch {
	case cfg.Condition == domain.Never:
		return false, "header must not be trimmed", nil
	case leading && trailing:
		return false, "header must not be surrounded by whitespace", nil
	case leading:
		return false, "header must not start with whitespace", nil
	default:
		return false, "header must not end with whitespace", nil
	}
}

func checkTypeEmpty(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	return emptyVerdict("type", msg.TypeValue() == "", cfg)
}

func checkTypeEnum(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	p, err := enumParam(cfg)
	if err != nil {
		return false, "", err
	}
	if cfg.Condition.Apply(p.Contains(msg.TypeValue())) {
		return true, "", nil
	}
	return false, fmt.Sprintf("type %s be one of [%s]", cfg.Condition.Must(), strings.Join(p.Values, ", ")), nil
}

func checkTypeCase(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	return caseVerdict("type", []string{msg.TypeValue()}, cfg)
}

func checkTypeMaxLength(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	return maxLengthVerdict("type", msg.TypeValue(), cfg)
}

func checkScopeEmpty(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	return emptyVerdict("scope", msg.ScopeValue() == "", cfg)
}

func checkScopeEnum(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	p, err := enumParam(cfg)
	if err != nil {
		return false, "", err
	}

	segments := scopeSegments(msg.ScopeValue())
	valid := true
	for _, s := range segments {
		if !cfg.Condition.Apply(p.Contains(s)) {
			valid = false
			break
		}
	}
	if valid {
		return true, "", nil
	}
	return false, fmt.Sprintf("scope %s be one of [%s]", cfg.Condition.Must(), strings.Join(p.Values, ", ")), nil
}

func checkScopeCase(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	return caseVerdict("scope", scopeSegments(msg.ScopeValue()), cfg)
}

func checkSubjectEmpty(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	return emptyVerdict("subject", strings.TrimSpace(msg.Subject) == "", cfg)
}

func checkSubjectCase(_ *domain.ParsedMessage, _ domain.RuleConfig) (bool, string, error) {
	return false, "", errSubjectCaseNotImplemented
}

func checkSubjectFullStop(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	p, ok := cfg.Params.(domain.CharParams)
	if !ok {
		return false, "", paramsError(cfg, domain.FamilyChar)
	}
	subject := strings.TrimRightFunc(msg.Subject, unicode.IsSpace)
	if cfg.Condition.Apply(strings.HasSuffix(subject, p.Char)) {
		return true, "", nil
	}
	return false, fmt.Sprintf("subject %s end with %q", cfg.Condition.Must(), p.Char), nil
}

func checkSubjectMaxLength(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	return maxLengthVerdict("subject", msg.Subject, cfg)
}

// scopeSegments splits multi-scope values such as "core,runtime" or
// "api/auth".
func scopeSegments(scope string) []string {
	return strings.FieldsFunc(scope, func(r rune) bool {
		return r == ',' || r == '/' || r == '\\'
	})
}

func hasType(msg *domain.ParsedMessage) bool    { return msg.TypeValue() != "" }
func hasScope(msg *domain.ParsedMessage) bool   { return msg.ScopeValue() != "" }
func hasSubject(msg *domain.ParsedMessage) bool { return msg.Subject != "" }

func emptyVerdict(field string, empty bool, cfg domain.RuleConfig) (bool, string, error) {
	if cfg.Condition.Apply(empty) {
		return true, "", nil
	}
	return false, fmt.Sprintf("%s %s be empty", field, cfg.Condition.Must()), nil
}

func caseVerdict(field string, values []string, cfg domain.RuleConfig) (bool, string, error) {
	p, ok := cfg.Params.(domain.CaseParams)
	if !ok {
		return false, "", paramsError(cfg, domain.FamilyCase)
	}

	for _, v := range values {
		matched, err := casing.IsAny(v, p.Cases)
		if err != nil {
			return false, "", err
		}
		if !cfg.Condition.Apply(matched) {
			if len(p.Cases) == 1 {
				return false, fmt.Sprintf("%s %s be %s", field, cfg.Condition.Must(), p.Cases[0]), nil
			}
			return false, fmt.Sprintf("%s %s be one of the case styles [%s]", field, cfg.Condition.Must(), strings.Join(p.Cases, ", ")), nil
		}
	}
	return true, "", nil
}

func maxLengthVerdict(field, value string, cfg domain.RuleConfig) (bool, string, error) {
	limit, err := lengthParam(cfg)
	if err != nil {
		return false, "", err
	}
	n := utf8.RuneCountInString(value)
	if n <= limit {
		return true, "", nil
	}
	return false, fmt.Sprintf("%s must not be longer than %d characters, current length is %d", field, limit, n), nil
}

func lengthParam(cfg domain.RuleConfig) (int, error) {
	p, ok := cfg.Params.(domain.LengthParams)
	if !ok {
		return 0, paramsError(cfg, domain.FamilyLength)
	}
	return p.Max, nil
}

func enumParam(cfg domain.RuleConfig) (domain.EnumParams, error) {
	p, ok := cfg.Params.(domain.EnumParams)
	if !ok {
		return domain.EnumParams{}, paramsError(cfg, domain.FamilyEnum)
	}
	return p, nil
}

func paramsError(cfg domain.RuleConfig, want domain.RuleFamily) error {
	return fmt.Errorf("expected %s parameters, got %T", want, cfg.Params)
}
