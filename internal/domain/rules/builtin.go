package rules

import "github.com/openkraft/commitkraft/internal/domain"

// builtins maps each catalog rule name to its implementation.
var builtins = map[string]Rule{
	domain.RuleHeaderMaxLength:     {Check: checkHeaderMaxLength},
	domain.RuleHeaderTrim:          {Check: checkHeaderTrim},
	domain.RuleTypeEmpty:           {Check: checkTypeEmpty},
	domain.RuleTypeEnum:            {Applies: hasType, Check: checkTypeEnum},
	domain.RuleTypeCase:            {Applies: hasType, Check: checkTypeCase},
	domain.RuleTypeMaxLength:       {Applies: hasType, Check: checkTypeMaxLength},
	domain.RuleScopeEmpty:          {Check: checkScopeEmpty},
	domain.RuleScopeEnum:           {Applies: hasScope, Check: checkScopeEnum},
	domain.RuleScopeCase:           {Applies: hasScope, Check: checkScopeCase},
	domain.RuleSubjectEmpty:        {Check: checkSubjectEmpty},
	domain.RuleSubjectCase:         {Check: checkSubjectCase},
	domain.RuleSubjectFullStop:     {Applies: hasSubject, Check: checkSubjectFullStop},
	domain.RuleSubjectMaxLength:    {Applies: hasSubject, Check: checkSubjectMaxLength},
	domain.RuleBodyLeadingBlank:    {Applies: hasBody, Check: checkBodyLeadingBlank},
	domain.RuleBodyEmpty:           {Check: checkBodyEmpty},
	domain.RuleBodyMaxLineLength:   {Applies: hasBody, Check: checkBodyMaxLineLength},
	domain.RuleFooterLeadingBlank:  {Applies: hasFooter, Check: checkFooterLeadingBlank},
	domain.RuleFooterEmpty:         {Check: checkFooterEmpty},
	domain.RuleFooterMaxLineLength: {Applies: hasFooter, Check: checkFooterMaxLineLength},
}
