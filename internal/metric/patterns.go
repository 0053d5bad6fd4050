package metric

import "regexp"

// Family groups the patterns scored together as one dimension.
type Family string

const (
	FamilyRTL       Family = "rtl"
	FamilyErrors    Family = "error_handling"
	FamilyStructure Family = "code_structure"
)

// Pattern is one named matcher in the catalog.
type Pattern struct {
	Name   string
	Family Family
	re     *regexp.Regexp
}

// Match reports whether the pattern occurs anywhere in code.
func (p Pattern) Match(code string) bool {
	return p.re.MatchString(code)
}

// Expr returns the pattern's source expression.
func (p Pattern) Expr() string {
	return p.re.String()
}

// catalog is compiled once at load and never mutated. try_catch and jsdoc
// span lines; input_validation deliberately does not.
var catalog = []Pattern{
	{Name: "dir_attribute", Family: FamilyRTL, re: regexp.MustCompile(`(?i)dir\s*=\s*["']rtl["']`)},
	{Name: "unicode_bidi", Family: FamilyRTL, re: regexp.MustCompile(`(?i)unicode-bidi\s*:\s*plaintext`)},
	{Name: "text_align_right", Family: FamilyRTL, re: regexp.MustCompile(`(?i)text-align\s*:\s*right`)},
	{Name: "rtl_css_class", Family: FamilyRTL, re: regexp.MustCompile(`(?i)\.rtl\s*\{|className.*rtl`)},
	{Name: "direction_rtl", Family: FamilyRTL, re: regexp.MustCompile(`(?i)direction\s*:\s*rtl`)},

	{Name: "try_catch", Family: FamilyErrors, re: regexp.MustCompile(`(?s)try\s*\{.*?catch\s*\(`)},
	{Name: "error_type", Family: FamilyErrors, re: regexp.MustCompile(`(?i):\s*Error\b|throw\s+new\s+Error`)},
	{Name: "input_validation", Family: FamilyErrors, re: regexp.MustCompile(`(?i)if\s*\(.*?(!|==|===).*?(null|undefined|empty|length)`)},
	{Name: "apollo_error", Family: FamilyErrors, re: regexp.MustCompile(`(?i)ApolloError|GraphQLError`)},

	{Name: "typescript_interface", Family: FamilyStructure, re: regexp.MustCompile(`(?i)interface\s+\w+\s*\{`)},
	{Name: "typescript_type", Family: FamilyStructure, re: regexp.MustCompile(`(?i)type\s+\w+\s*=`)},
	{Name: "exports", Family: FamilyStructure, re: regexp.MustCompile(`(?i)export\s+(default\s+)?(function|const|class|interface|type)`)},
	{Name: "async_await", Family: FamilyStructure, re: regexp.MustCompile(`(?i)async\s+\w+|await\s+\w+`)},
	{Name: "jsdoc", Family: FamilyStructure, re: regexp.MustCompile(`(?s)/\*\*.*?\*/`)},
}

var patternsByName = func() map[string]Pattern {
	m := make(map[string]Pattern, len(catalog))
	for _, p := range catalog {
		m[p.Name] = p
	}
	return m
}()

// Patterns returns a copy of the catalog in declaration order.
func Patterns() []Pattern {
	out := make([]Pattern, len(catalog))
	copy(out, catalog)
	return out
}

// LookupPattern returns the catalog entry with the given name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patternsByName[name]
	return p, ok
}
