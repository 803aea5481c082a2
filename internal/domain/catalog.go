package domain

// Rule names known to the engine.
const (
	RuleHeaderMaxLength     = "header-max-length"
	RuleHeaderTrim          = "header-trim"
	RuleTypeEmpty           = "type-empty"
	RuleTypeEnum            = "type-enum"
	RuleTypeCase            = "type-case"
	RuleTypeMaxLength       = "type-max-length"
	RuleScopeEmpty          = "scope-empty"
	RuleScopeEnum           = "scope-enum"
	RuleScopeCase           = "scope-case"
	RuleSubjectEmpty        = "subject-empty"
	RuleSubjectCase         = "subject-case"
	RuleSubjectFullStop     = "subject-full-stop"
	RuleSubjectMaxLength    = "subject-max-length"
	RuleBodyLeadingBlank    = "body-leading-blank"
	RuleBodyEmpty           = "body-empty"
	RuleBodyMaxLineLength   = "body-max-line-length"
	RuleFooterLeadingBlank  = "footer-leading-blank"
	RuleFooterEmpty         = "footer-empty"
	RuleFooterMaxLineLength = "footer-max-line-length"
)

// RuleSpec describes a known rule: its family and the parameters used when a
// configuration entry omits them.
type RuleSpec struct {
	Name     string
	Family   RuleFamily
	Defaults RuleParams
}

// Catalog lists every known rule in registration order. Header rules come
// first, then body rules, then footer rules; reports follow this order.
var Catalog = []RuleSpec{
	{Name: RuleHeaderMaxLength, Family: FamilyLength, Defaults: LengthParams{Max: 100}},
	{Name: RuleHeaderTrim, Family: FamilyPlain, Defaults: NoParams{}},
	{Name: RuleTypeEmpty, Family: FamilyPlain, Defaults: NoParams{}},
	{Name: RuleTypeEnum, Family: FamilyEnum, Defaults: EnumParams{}},
	{Name: RuleTypeCase, Family: FamilyCase, Defaults: CaseParams{Cases: []string{"lower-case"}}},
	{Name: RuleTypeMaxLength, Family: FamilyLength, Defaults: LengthParams{}},
	{Name: RuleScopeEmpty, Family: FamilyPlain, Defaults: NoParams{}},
	{Name: RuleScopeEnum, Family: FamilyEnum, Defaults: EnumParams{}},
	{Name: RuleScopeCase, Family: FamilyCase, Defaults: CaseParams{Cases: []string{"lower-case"}}},
	{Name: RuleSubjectEmpty, Family: FamilyPlain, Defaults: NoParams{}},
	{Name: RuleSubjectCase, Family: FamilyCase, Defaults: CaseParams{}},
	{Name: RuleSubjectFullStop, Family: FamilyChar, Defaults: CharParams{Char: "."}},
	{Name: RuleSubjectMaxLength, Family: FamilyLength, Defaults: LengthParams{}},
	{Name: RuleBodyLeadingBlank, Family: FamilyPlain, Defaults: NoParams{}},
	{Name: RuleBodyEmpty, Family: FamilyPlain, Defaults: NoParams{}},
	{Name: RuleBodyMaxLineLength, Family: FamilyLength, Defaults: LengthParams{Max: 100}},
	{Name: RuleFooterLeadingBlank, Family: FamilyPlain, Defaults: NoParams{}},
	{Name: RuleFooterEmpty, Family: FamilyPlain, Defaults: NoParams{}},
	{Name: RuleFooterMaxLineLength, Family: FamilyLength, Defaults: LengthParams{Max: 100}},
}

// LookupRule returns the catalog entry for name.
func LookupRule(name string) (RuleSpec, bool) {
	for _, spec := range Catalog {
		if spec.Name == name {
			return spec, true
		}
	}
	return RuleSpec{}, false
}

// catalogIndex returns the position of name in Catalog, or -1.
func catalogIndex(name string) int {
	for i, spec := range Catalog {
		if spec.Name == name {
			return i
		}
	}
	return -1
}
