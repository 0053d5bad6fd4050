package metric

// Dimension names one weighted axis of the total score.
type Dimension string

const (
	DimTestPassage   Dimension = "test_passage"
	DimRTLQuality    Dimension = "rtl_quality"
	DimErrorHandling Dimension = "error_handling"
	DimCodeStructure Dimension = "code_structure"
)

// Dimensions lists the four axes in report order.
var Dimensions = []Dimension{DimTestPassage, DimRTLQuality, DimErrorHandling, DimCodeStructure}

var familyDimension = map[Family]Dimension{
	FamilyRTL:       DimRTLQuality,
	FamilyErrors:    DimErrorHandling,
	FamilyStructure: DimCodeStructure,
}

// Check is one partial-credit item of a family. It is satisfied when any of
// its patterns matches, earning 1.0; otherwise it earns Absent.
type Check struct {
	ID       string
	Label    string
	Family   Family
	Patterns []string
	Absent   float64
}

var checks = []Check{
	{ID: "dir_attribute", Label: `dir="rtl"`, Family: FamilyRTL, Patterns: []string{"dir_attribute"}, Absent: 0.0},
	{ID: "unicode_bidi", Label: "unicode-bidi", Family: FamilyRTL, Patterns: []string{"unicode_bidi"}, Absent: 0.5},
	{ID: "text_direction", Label: "text-align/direction", Family: FamilyRTL, Patterns: []string{"text_align_right", "direction_rtl"}, Absent: 0.3},
	{ID: "rtl_css_class", Label: "RTL CSS", Family: FamilyRTL, Patterns: []string{"rtl_css_class"}, Absent: 0.5},

	{ID: "try_catch", Label: "try/catch", Family: FamilyErrors, Patterns: []string{"try_catch"}, Absent: 0.0},
	{ID: "error_type", Label: "Error types", Family: FamilyErrors, Patterns: []string{"error_type"}, Absent: 0.5},
	{ID: "input_validation", Label: "Input validation", Family: FamilyErrors, Patterns: []string{"input_validation"}, Absent: 0.5},
	{ID: "client_error", Label: "Apollo errors", Family: FamilyErrors, Patterns: []string{"apollo_error"}, Absent: 0.7},

	{ID: "type_declaration", Label: "TypeScript types", Family: FamilyStructure, Patterns: []string{"typescript_interface", "typescript_type"}, Absent: 0.3},
	{ID: "exports", Label: "Exports", Family: FamilyStructure, Patterns: []string{"exports"}, Absent: 0.0},
	{ID: "async_await", Label: "Async/await", Family: FamilyStructure, Patterns: []string{"async_await"}, Absent: 0.6},
	{ID: "jsdoc", Label: "JSDoc", Family: FamilyStructure, Patterns: []string{"jsdoc"}, Absent: 0.5},
}

// Checks returns a copy of the check table in declaration order.
func Checks() []Check {
	out := make([]Check, len(checks))
	copy(out, checks)
	return out
}

// DefaultCredits maps each check ID to its built-in absent credit.
func DefaultCredits() map[string]float64 {
	m := make(map[string]float64, len(checks))
	for _, c := range checks {
		m[c.ID] = c.Absent
	}
	return m
}

func (c Check) matches(code string) bool {
	for _, name := range c.Patterns {
		if patternsByName[name].Match(code) {
			return true
		}
	}
	return false
}

// CheckResult records how one check fared against a piece of code.
type CheckResult struct {
	ID      string  `json:"id"`
	Matched bool    `json:"matched"`
	Credit  float64 `json:"credit"`
}

// DimensionScore is one axis of an evaluation, in [0,1], with its weight.
type DimensionScore struct {
	Dimension Dimension     `json:"dimension"`
	Score     float64       `json:"score"`
	Weight    float64       `json:"weight"`
	Checks    []CheckResult `json:"checks,omitempty"`
}

// Weighted returns the dimension's contribution to the total.
func (d DimensionScore) Weighted() float64 {
	return d.Score * d.Weight
}

// scoreFamily averages the partial credits of every check in family.
func scoreFamily(code string, family Family, credits map[string]float64) (float64, []CheckResult) {
	var (
		sum     float64
		results []CheckResult
	)
	for _, c := range checks {
		if c.Family != family {
			continue
		}
		r := CheckResult{ID: c.ID, Credit: credits[c.ID]}
		if c.matches(code) {
			r.Matched = true
			r.Credit = 1.0
		}
		sum += r.Credit
		results = append(results, r)
	}
	if len(results) == 0 {
		return 0.0, nil
	}
	return sum / float64(len(results)), results
}
