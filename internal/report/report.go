package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/signalnine/codescore/internal/metric"
	"github.com/signalnine/codescore/internal/result"
)

type CandidateRow struct {
	Candidate     string  `json:"candidate"`
	Score         float64 `json:"score"`
	TestPassage   float64 `json:"test_passage"`
	RTLQuality    float64 `json:"rtl_quality"`
	ErrorHandling float64 `json:"error_handling"`
	CodeStructure float64 `json:"code_structure"`
	Pareto        bool    `json:"pareto"`
}

type Summary struct {
	Candidates int            `json:"candidates"`
	PassRate   float64        `json:"pass_rate"`
	MeanScore  float64        `json:"mean_score"`
	Best       string         `json:"best,omitempty"`
	BestScore  float64        `json:"best_score"`
	Frontier   int            `json:"pareto_frontier"`
	Rows       []CandidateRow `json:"rows"`
}

// Generate reads the stored scores under runDir and writes a summary.
func Generate(runDir, format string, w io.Writer) error {
	records, err := collectScores(runDir)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no %s files found in %s", result.ScoreFile, runDir)
	}
	return Write(Summarize(records), format, w)
}

// Write renders s as a table, markdown or json.
func Write(s Summary, format string, w io.Writer) error {
	switch format {
	case "markdown":
		return writeMarkdown(s, w)
	case "json":
		return writeJSON(s, w)
	default:
		return writeTable(s, w)
	}
}

func collectScores(runDir string) ([]*result.ScoreRecord, error) {
	var records []*result.ScoreRecord
	err := filepath.Walk(runDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Name() == result.ScoreFile {
			rec, err := result.ReadScore(path)
			if err != nil {
				return nil
			}
			records = append(records, rec)
		}
		return nil
	})
	return records, err
}

// Summarize ranks records by total score, best first, and marks the
// candidates no other candidate dominates.
func Summarize(records []*result.ScoreRecord) Summary {
	scores := make([]metric.Score, len(records))
	for i, r := range records {
		scores[i] = r.Score
	}

	s := Summary{Candidates: len(records), MeanScore: metric.Mean(scores)}
	if best, ok := metric.Max(scores); ok {
		s.BestScore = best.Value
	}

	passed := 0
	for i, r := range records {
		row := CandidateRow{Candidate: r.Candidate, Score: r.Score.Value, Pareto: true}
		for _, d := range r.Score.Dimensions {
			switch d.Dimension {
			case metric.DimTestPassage:
				row.TestPassage = d.Score
			case metric.DimRTLQuality:
				row.RTLQuality = d.Score
			case metric.DimErrorHandling:
				row.ErrorHandling = d.Score
			case metric.DimCodeStructure:
				row.CodeStructure = d.Score
			}
		}
		if row.TestPassage == 1.0 {
			passed++
		}
		for j := range scores {
			if j != i && metric.Dominates(scores[j], scores[i]) {
				row.Pareto = false
				break
			}
		}
		if row.Pareto {
			s.Frontier++
		}
		s.Rows = append(s.Rows, row)
	}
	if s.Candidates > 0 {
		s.PassRate = float64(passed) / float64(s.Candidates)
	}

	slices.SortStableFunc(s.Rows, func(a, b CandidateRow) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Candidate, b.Candidate)
	})
	if len(s.Rows) > 0 {
		s.Best = s.Rows[0].Candidate
	}
	return s
}

func frontierMark(r CandidateRow) string {
	if r.Pareto {
		return "*"
	}
	return ""
}

func writeTable(s Summary, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CANDIDATE\tSCORE\tTESTS\tRTL\tERRORS\tSTRUCTURE\tPARETO")
	fmt.Fprintln(tw, strings.Repeat("-", 80))
	for _, r := range s.Rows {
		fmt.Fprintf(tw, "%s\t%.3f\t%.0f%%\t%.0f%%\t%.0f%%\t%.0f%%\t%s\n",
			r.Candidate, r.Score, r.TestPassage*100, r.RTLQuality*100,
			r.ErrorHandling*100, r.CodeStructure*100, frontierMark(r))
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "candidates: %d\tpass rate: %.0f%%\tmean: %.3f\tbest: %s (%.3f)\tfrontier: %d\n",
		s.Candidates, s.PassRate*100, s.MeanScore, s.Best, s.BestScore, s.Frontier)
	return tw.Flush()
}

func writeMarkdown(s Summary, w io.Writer) error {
	fmt.Fprintln(w, "| Candidate | Score | Tests | RTL | Errors | Structure | Pareto |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|")
	for _, r := range s.Rows {
		fmt.Fprintf(w, "| %s | %.3f | %.0f%% | %.0f%% | %.0f%% | %.0f%% | %s |\n",
			r.Candidate, r.Score, r.TestPassage*100, r.RTLQuality*100,
			r.ErrorHandling*100, r.CodeStructure*100, frontierMark(r))
	}
	fmt.Fprintf(w, "\n**Candidates:** %d, **pass rate:** %.0f%%, **mean score:** %.3f, **best:** %s (%.3f), **Pareto frontier:** %d\n",
		s.Candidates, s.PassRate*100, s.MeanScore, s.Best, s.BestScore, s.Frontier)
	return nil
}

func writeJSON(s Summary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
