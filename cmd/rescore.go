package cmd

import (
	"fmt"

	"github.com/signalnine/codescore/internal/runner"
	"github.com/spf13/cobra"
)

func newRescoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rescore [run-dir]",
		Short: "Re-score stored candidates with the current config",
		Long:  "Walk a run directory and re-evaluate each stored candidate.json, rewriting score.json with the current weights and credits.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := loadMetric(cmd)
			if err != nil {
				return err
			}
			changes, err := runner.Rescore(m, args[0], logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range changes {
				fmt.Fprintf(out, "  %s: %.3f → %.3f\n", c.Candidate, c.Old, c.New)
			}
			fmt.Fprintf(out, "Rescored %d candidates\n", len(changes))
			return nil
		},
	}
}
