package rules

import (
	"fmt"

	"github.com/openkraft/commitkraft/internal/domain"
)

// CheckFunc evaluates one rule against a message. A non-nil error means the
// rule itself is broken, not that the message failed it.
type CheckFunc func(msg *domain.ParsedMessage, cfg domain.RuleConfig) (valid bool, message string, err error)

// Rule is the implementation behind a rule name.
type Rule struct {
	Name string
	// Applies reports whether the rule has anything to check. A rule that
	// does not apply passes. Nil means always.
	Applies func(msg *domain.ParsedMessage) bool
	Check   CheckFunc
}

// Evaluate applies every enabled rule of reg to msg and returns one result
// per rule in registration order. It never stops early: a rule that errors
// or panics yields an error-severity result and the rest still run.
func Evaluate(msg *domain.ParsedMessage, reg *Registry) []domain.RuleResult {
	enabled := reg.enabled()
	results := make([]domain.RuleResult, 0, len(enabled))
	for _, e := range enabled {
		results = append(results, evaluateOne(msg, e))
	}
	return results
}

func evaluateOne(msg *domain.ParsedMessage, e entry) (res domain.RuleResult) {
	name := e.config.Name
	defer func() {
		if r := recover(); r != nil {
			res = faultResult(name, fmt.Errorf("panic: %v", r))
		}
	}()

	res = domain.RuleResult{Name: name, Severity: e.config.Severity, Valid: true}
	if e.rule.Applies != nil && !e.rule.Applies(msg) {
		return res
	}

	valid, message, err := e.rule.Check(msg, e.config)
	if err != nil {
		return faultResult(name, err)
	}
	if !valid {
		res.Valid = false
		res.Message = message
	}
	return res
}

func faultResult(name string, err error) domain.RuleResult {
	return domain.RuleResult{
		Name:     name,
		Severity: domain.SeverityError,
		Valid:    false,
		Message:  fmt.Sprintf("rule %s could not be evaluated: %v", name, err),
	}
}
