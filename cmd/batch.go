package cmd

import (
	"fmt"
	"time"

	"github.com/signalnine/codescore/internal/report"
	"github.com/signalnine/codescore/internal/result"
	"github.com/signalnine/codescore/internal/runner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagParallel int
	flagNoStore  bool
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [dir]",
		Short: "Score every candidate JSON file under a directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	cmd.Flags().IntVar(&flagParallel, "parallel", 0, "max concurrent evaluations (default from config)")
	cmd.Flags().BoolVar(&flagNoStore, "no-store", false, "print the summary without writing a run directory")
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, m, err := loadMetric(cmd)
	if err != nil {
		return err
	}
	files, err := result.FindCandidateFiles(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no candidate files found in %s", args[0])
	}

	out := cmd.OutOrStdout()
	runDir := ""
	if !flagNoStore {
		runDir, err = result.CreateRunDir(cfg.Results.Dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Run directory: %s\n", runDir)
	}

	parallel := cfg.Parallel
	if flagParallel > 0 {
		parallel = flagParallel
	}

	start := time.Now()
	records, err := runner.ScoreFiles(runner.BatchOpts{
		Metric:   m,
		Files:    files,
		RunDir:   runDir,
		Parallel: parallel,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	logger.Info("batch scored",
		zap.Int("files", len(files)),
		zap.Int("candidates", len(records)),
		zap.Duration("elapsed", time.Since(start)))
	if len(records) == 0 {
		return fmt.Errorf("none of the %d files in %s held a readable candidate", len(files), args[0])
	}
	return report.Write(report.Summarize(records), flagFormat, out)
}
