// Package metric scores generated front-end code for RTL handling, error
// handling and structure, combined with the outcome of its tests.
package metric

import (
	"fmt"
	"strings"

	"github.com/signalnine/codescore/internal/config"
)

// NoCodeFeedback is returned for empty or whitespace-only code.
const NoCodeFeedback = "ERROR: No code generated"

func DefaultWeights() config.Weights {
	return config.Weights{
		TestPassage:   0.40,
		RTLQuality:    0.30,
		ErrorHandling: 0.15,
		CodeStructure: 0.15,
	}
}

func DefaultThresholds() config.Thresholds {
	return config.Thresholds{
		RecommendBelow: 0.75,
		HintBelow:      0.7,
		Pass:           0.8,
		Warn:           0.5,
	}
}

// Candidate is anything carrying generated code and its test result.
type Candidate interface {
	CodeText() string
	TestPayload() string
}

// Metric evaluates candidates. It is immutable after New and safe for
// concurrent use.
type Metric struct {
	weights    config.Weights
	credits    map[string]float64
	thresholds config.Thresholds
}

// New builds a metric from cfg, falling back to the defaults for zero fields.
func New(cfg config.Scoring) (*Metric, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}
	weights := cfg.Weights
	if weights.IsZero() {
		weights = DefaultWeights()
	}
	credits := DefaultCredits()
	for id, v := range cfg.Credits {
		if _, ok := credits[id]; !ok {
			return nil, fmt.Errorf("unknown check %q in credits", id)
		}
		credits[id] = v
	}
	t, def := cfg.Thresholds, DefaultThresholds()
	if t.RecommendBelow == 0 {
		t.RecommendBelow = def.RecommendBelow
	}
	if t.HintBelow == 0 {
		t.HintBelow = def.HintBelow
	}
	if t.Pass == 0 {
		t.Pass = def.Pass
	}
	if t.Warn == 0 {
		t.Warn = def.Warn
	}
	if t.Warn > t.Pass {
		return nil, fmt.Errorf("invalid scoring config: warn threshold %v is above pass %v", t.Warn, t.Pass)
	}
	return &Metric{weights: weights, credits: credits, thresholds: t}, nil
}

// Default returns a metric with the built-in weights, credits and thresholds.
func Default() *Metric {
	return &Metric{
		weights:    DefaultWeights(),
		credits:    DefaultCredits(),
		thresholds: DefaultThresholds(),
	}
}

func (m *Metric) Weights() config.Weights {
	return m.weights
}

// Credit returns the absent credit in effect for a check ID.
func (m *Metric) Credit(id string) float64 {
	return m.credits[id]
}

func (m *Metric) EvaluateCandidate(c Candidate) Score {
	return m.Evaluate(c.CodeText(), c.TestPayload())
}

// Evaluate scores code against the pattern catalog and testResult, a
// serialized test-result payload. It never fails: unreadable payloads count
// as failed tests and empty code scores 0.
func (m *Metric) Evaluate(code, testResult string) Score {
	if strings.TrimSpace(code) == "" {
		return Score{Value: 0.0, Feedback: NoCodeFeedback}
	}

	dims := []DimensionScore{
		{Dimension: DimTestPassage, Score: TestPassageScore(testResult), Weight: m.weights.TestPassage},
		m.familyScore(code, FamilyRTL, m.weights.RTLQuality),
		m.familyScore(code, FamilyErrors, m.weights.ErrorHandling),
		m.familyScore(code, FamilyStructure, m.weights.CodeStructure),
	}
	total := aggregate(dims)
	return Score{
		Value:      total,
		Feedback:   m.renderFeedback(dims, total),
		Dimensions: dims,
	}
}

func (m *Metric) RTLQuality(code string) float64 {
	score, _ := scoreFamily(code, FamilyRTL, m.credits)
	return score
}

func (m *Metric) ErrorHandling(code string) float64 {
	score, _ := scoreFamily(code, FamilyErrors, m.credits)
	return score
}

func (m *Metric) CodeStructure(code string) float64 {
	score, _ := scoreFamily(code, FamilyStructure, m.credits)
	return score
}

func (m *Metric) familyScore(code string, family Family, weight float64) DimensionScore {
	score, results := scoreFamily(code, family, m.credits)
	return DimensionScore{
		Dimension: familyDimension[family],
		Score:     score,
		Weight:    weight,
		Checks:    results,
	}
}

func aggregate(dims []DimensionScore) float64 {
	var total float64
	for _, d := range dims {
		total += d.Weighted()
	}
	// float rounding can land a perfect score one ulp above 1
	if total > 1.0 {
		total = 1.0
	}
	return total
}
