package metric

import (
	"cmp"
	"strconv"
)

// Score is the result of one evaluation: the weighted total in [0,1] with
// its feedback attached. Callers composing scores numerically go through
// Float64, Compare, Sum and friends.
type Score struct {
	Value      float64          `json:"score"`
	Feedback   string           `json:"feedback"`
	Dimensions []DimensionScore `json:"dimensions,omitempty"`
}

func (s Score) Float64() float64 {
	return s.Value
}

func (s Score) String() string {
	return strconv.FormatFloat(s.Value, 'f', 4, 64)
}

func (s Score) Less(other Score) bool {
	return s.Value < other.Value
}

// Dimension returns the breakdown for d. Short-circuited evaluations of empty
// code carry no breakdown.
func (s Score) Dimension(d Dimension) (DimensionScore, bool) {
	for _, ds := range s.Dimensions {
		if ds.Dimension == d {
			return ds, true
		}
	}
	return DimensionScore{}, false
}

// Compare orders scores by value, for use with slices.SortFunc.
func Compare(a, b Score) int {
	return cmp.Compare(a.Value, b.Value)
}

func Sum(scores []Score) float64 {
	var total float64
	for _, s := range scores {
		total += s.Value
	}
	return total
}

func Mean(scores []Score) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	return Sum(scores) / float64(len(scores))
}

// Max returns the highest score, or false for an empty slice.
func Max(scores []Score) (Score, bool) {
	if len(scores) == 0 {
		return Score{}, false
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if best.Less(s) {
			best = s
		}
	}
	return best, true
}

// Dominates reports whether a is at least as good as b on every dimension
// and strictly better on one. A missing dimension counts as 0.
func Dominates(a, b Score) bool {
	better := false
	for _, d := range Dimensions {
		x, _ := a.Dimension(d)
		y, _ := b.Dimension(d)
		if x.Score < y.Score {
			return false
		}
		if x.Score > y.Score {
			better = true
		}
	}
	return better
}
