package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/signalnine/codescore/internal/config"
)

func TestLoadMinimal(t *testing.T) {
	cfg, err := config.Load("../../testdata/minimal.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Results.Dir != "out" {
		t.Errorf("expected results dir 'out', got %q", cfg.Results.Dir)
	}
	if cfg.Parallel != config.DefaultParallel {
		t.Errorf("expected default parallel %d, got %d", config.DefaultParallel, cfg.Parallel)
	}
	if !cfg.Scoring.Weights.IsZero() {
		t.Errorf("expected zero weights, got %+v", cfg.Scoring.Weights)
	}
}

func TestLoadFull(t *testing.T) {
	cfg, err := config.Load("../../testdata/full.yaml")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Parallel != 8 {
		t.Errorf("expected parallel 8, got %d", cfg.Parallel)
	}
	if cfg.Scoring.Weights.TestPassage != 0.5 {
		t.Errorf("expected test_passage weight 0.5, got %f", cfg.Scoring.Weights.TestPassage)
	}
	if cfg.Scoring.Credits["client_error"] != 1.0 {
		t.Errorf("expected client_error credit 1.0, got %f", cfg.Scoring.Credits["client_error"])
	}
	if cfg.Scoring.Thresholds.RecommendBelow != 0.8 {
		t.Errorf("expected recommend_below 0.8, got %f", cfg.Scoring.Thresholds.RecommendBelow)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := config.Load("nonexistent.yaml")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalid(t *testing.T) {
	_, err := config.Load("../../testdata/invalid.yaml")
	if err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadWeightsMustSumToOne(t *testing.T) {
	_, err := config.Load("../../testdata/bad-weights.yaml")
	if err == nil {
		t.Error("expected error for weights summing to 1.3")
	}
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative credit", "scoring:\n  credits:\n    jsdoc: -0.1\n"},
		{"credit above one", "scoring:\n  credits:\n    jsdoc: 1.5\n"},
		{"threshold above one", "scoring:\n  thresholds:\n    pass: 2\n"},
		{"warn above pass", "scoring:\n  thresholds:\n    pass: 0.5\n    warn: 0.6\n"},
		{"negative parallel", "parallel: -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "codescore.yaml")
			os.WriteFile(path, []byte(tt.body), 0o644)
			if _, err := config.Load(path); err == nil {
				t.Errorf("expected error for %q", tt.body)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Results.Dir != config.DefaultResultsDir {
		t.Errorf("results dir: got %q, want %q", cfg.Results.Dir, config.DefaultResultsDir)
	}
	if cfg.Parallel != config.DefaultParallel {
		t.Errorf("parallel: got %d, want %d", cfg.Parallel, config.DefaultParallel)
	}
}
