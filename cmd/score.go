package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signalnine/codescore/internal/result"
	"github.com/spf13/cobra"
)

var (
	flagTestResult string
	flagCandidate  string
	flagJSON       bool
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [file]",
		Short: "Score one piece of generated code",
		Long:  "Score a code file (or stdin with '-') against the quality metric and print the feedback. Use --candidate to score a candidate JSON file instead.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := loadMetric(cmd)
			if err != nil {
				return err
			}

			var c *result.Candidate
			switch {
			case flagCandidate != "":
				c, err = result.ReadCandidate(flagCandidate)
				if err != nil {
					return err
				}
			case len(args) == 1:
				code, err := readCode(args[0], cmd.InOrStdin())
				if err != nil {
					return err
				}
				c = &result.Candidate{ID: result.CandidateID(args[0]), Code: code, TestResult: flagTestResult}
			default:
				return fmt.Errorf("need a code file, '-' for stdin, or --candidate")
			}

			score := m.EvaluateCandidate(c)
			out := cmd.OutOrStdout()
			if flagJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result.ScoreRecord{Candidate: c.ID, Score: score})
			}
			fmt.Fprintln(out, score.Feedback)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagTestResult, "test-result", "", "serialized test result, e.g. '{\"success\": true}'")
	cmd.Flags().StringVar(&flagCandidate, "candidate", "", "candidate JSON file with code and test_result")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "print the score record as JSON")
	return cmd
}

func readCode(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading code: %w", err)
	}
	return string(data), nil
}
