package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/signalnine/codescore/internal/config"
	"github.com/signalnine/codescore/internal/metric"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "codescore",
		Short:        "Weighted quality scorer for generated front-end code",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zc := zap.NewProductionConfig()
			if verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := zc.Build()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "codescore.yaml", "config file path")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.AddCommand(newScoreCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newRescoreCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newPatternsCmd())
	return root
}

// loadConfig reads --config. A missing file at the default path means the
// built-in defaults; an explicitly named file must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if f := cmd.Flag("config"); f == nil || !f.Changed {
		if _, err := os.Stat(cfgFile); errors.Is(err, fs.ErrNotExist) {
			logger.Debug("no config file, using defaults", zap.String("path", cfgFile))
			return config.Default(), nil
		}
	}
	return config.Load(cfgFile)
}

func loadMetric(cmd *cobra.Command) (*config.Config, *metric.Metric, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	m, err := metric.New(cfg.Scoring)
	if err != nil {
		return nil, nil, fmt.Errorf("building metric: %w", err)
	}
	return cfg, m, nil
}
