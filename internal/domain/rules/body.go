package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/openkraft/commitkraft/internal/domain"
)

func checkBodyLeadingBlank(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	return leadingBlankVerdict("body", msg.BodyLeadingBlank, cfg)
}

func checkBodyEmpty(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	return emptyVerdict("body", msg.Body == nil, cfg)
}

func checkBodyMaxLineLength(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	return maxLineLengthVerdict("body", msg.BodyValue(), cfg)
}

func checkFooterLeadingBlank(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	return leadingBlankVerdict("footer", msg.FooterLeadingBlank, cfg)
}

func checkFooterEmpty(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	return emptyVerdict("footer", msg.Footer == nil, cfg)
}

func checkFooterMaxLineLength(msg *domain.ParsedMessage, cfg domain.RuleConfig) (bool, string, error) {
	return maxLineLengthVerdict("footer", msg.FooterValue(), cfg)
}

func hasBody(msg *domain.ParsedMessage) bool   { return msg.Body != nil }
func hasFooter(msg *domain.ParsedMessage) bool { return msg.Footer != nil }

func leadingBlankVerdict(section string, blank bool, cfg domain.RuleConfig) (bool, string, error) {
	if cfg.Condition.Apply(blank) {
		return true, "", nil
	}
	return false, fmt.Sprintf("%s %s have leading blank line", section, cfg.Condition.Must()), nil
}

func maxLineLengthVerdict(section, text string, cfg domain.RuleConfig) (bool, string, error) {
	limit, err := lengthParam(cfg)
	if err != nil {
		return false, "", err
	}
	for i, line := range strings.Split(text, "\n") {
		if n := utf8.RuneCountInString(line); n > limit {
			return false, fmt.Sprintf("%s's lines must not be longer than %d characters, line %d has %d", section, limit, i+1, n), nil
		}
	}
	return true, "", nil
}
