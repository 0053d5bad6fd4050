package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/signalnine/codescore/internal/metric"
	"github.com/spf13/cobra"
)

func newPatternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the pattern catalog, checks and weights in effect",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, m, err := loadMetric(cmd)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(tw, "FAMILY\tPATTERN\tEXPRESSION")
			for _, p := range metric.Patterns() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Family, p.Name, p.Expr())
			}

			fmt.Fprintln(tw, "\nFAMILY\tCHECK\tPATTERNS\tIF ABSENT")
			for _, c := range metric.Checks() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\n", c.Family, c.ID, strings.Join(c.Patterns, " | "), m.Credit(c.ID))
			}

			w := m.Weights()
			fmt.Fprintln(tw, "\nDIMENSION\tWEIGHT")
			fmt.Fprintf(tw, "%s\t%.2f\n", metric.DimTestPassage, w.TestPassage)
			fmt.Fprintf(tw, "%s\t%.2f\n", metric.DimRTLQuality, w.RTLQuality)
			fmt.Fprintf(tw, "%s\t%.2f\n", metric.DimErrorHandling, w.ErrorHandling)
			fmt.Fprintf(tw, "%s\t%.2f\n", metric.DimCodeStructure, w.CodeStructure)
			return tw.Flush()
		},
	}
}
