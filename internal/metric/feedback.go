package metric

import (
	"fmt"
	"strings"
)

var hints = map[Dimension]string{
	DimRTLQuality:    `Add dir="rtl" and unicode-bidi: plaintext for Arabic text`,
	DimErrorHandling: "Add try/catch blocks and input validation",
	DimCodeStructure: "Define TypeScript interfaces and add JSDoc comments",
}

func (m *Metric) glyph(score float64) string {
	switch {
	case score >= m.thresholds.Pass:
		return "✓"
	case score >= m.thresholds.Warn:
		return "△"
	default:
		return "✗"
	}
}

func (m *Metric) renderFeedback(dims []DimensionScore, total float64) string {
	lines := []string{"Code Quality Breakdown:"}
	for _, d := range dims {
		lines = append(lines, fmt.Sprintf("  %s %-20s: %5.1f%% (weighted: %5.1f%%)",
			m.glyph(d.Score), d.Dimension, d.Score*100, d.Weighted()*100))
	}
	lines = append(lines, fmt.Sprintf("\n  TOTAL SCORE: %.1f%%", total*100))

	if total < m.thresholds.RecommendBelow {
		lines = append(lines, "\nRecommendations:")
		lines = append(lines, m.recommendations(dims)...)
	}
	return strings.Join(lines, "\n")
}

// recommendations emits one hint per weak dimension. When none qualifies the
// section still names the lowest dimension, so it is never empty.
func (m *Metric) recommendations(dims []DimensionScore) []string {
	var out []string
	for _, d := range dims {
		hint, ok := hints[d.Dimension]
		if ok && d.Score < m.thresholds.HintBelow {
			out = append(out, "  → "+hint)
		}
	}
	if len(out) > 0 || len(dims) == 0 {
		return out
	}
	lowest := dims[0]
	for _, d := range dims[1:] {
		if d.Score < lowest.Score {
			lowest = d
		}
	}
	return []string{fmt.Sprintf("  → Improve %s (currently %.1f%%)", lowest.Dimension, lowest.Score*100)}
}
