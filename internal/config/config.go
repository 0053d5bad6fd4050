package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultResultsDir = "results"
	DefaultParallel   = 4
)

type Config struct {
	Scoring  Scoring `yaml:"scoring"`
	Parallel int     `yaml:"parallel"`
	Results  Results `yaml:"results"`
}

// Scoring holds the tunable constants of the quality metric. Zero values
// mean "use the built-in default" for that field, so a threshold cannot be
// set to 0; use a value just above it instead.
type Scoring struct {
	Weights    Weights            `yaml:"weights"`
	Credits    map[string]float64 `yaml:"credits"`
	Thresholds Thresholds         `yaml:"thresholds"`
}

// Weights are the per-dimension multipliers. When any is set they must sum to 1.
type Weights struct {
	TestPassage   float64 `yaml:"test_passage"`
	RTLQuality    float64 `yaml:"rtl_quality"`
	ErrorHandling float64 `yaml:"error_handling"`
	CodeStructure float64 `yaml:"code_structure"`
}

type Thresholds struct {
	RecommendBelow float64 `yaml:"recommend_below"`
	HintBelow      float64 `yaml:"hint_below"`
	Pass           float64 `yaml:"pass"`
	Warn           float64 `yaml:"warn"`
}

type Results struct {
	Dir string `yaml:"dir"`
}

func (w Weights) IsZero() bool {
	return w == Weights{}
}

func (w Weights) Sum() float64 {
	return w.TestPassage + w.RTLQuality + w.ErrorHandling + w.CodeStructure
}

// Default returns a config with every field at its built-in value.
func Default() *Config {
	cfg := &Config{}
	// validate only fills defaults on an empty config
	_ = validate(cfg)
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if err := cfg.Scoring.Validate(); err != nil {
		return err
	}
	if cfg.Parallel < 0 {
		return fmt.Errorf("parallel must not be negative")
	}
	if cfg.Parallel == 0 {
		cfg.Parallel = DefaultParallel
	}
	if cfg.Results.Dir == "" {
		cfg.Results.Dir = DefaultResultsDir
	}
	return nil
}

// Validate checks that every weight, credit and threshold lies in [0,1] and
// that set weights sum to 1.
func (s Scoring) Validate() error {
	w := s.Weights
	for name, v := range map[string]float64{
		"test_passage":   w.TestPassage,
		"rtl_quality":    w.RTLQuality,
		"error_handling": w.ErrorHandling,
		"code_structure": w.CodeStructure,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("weight %s: %v is outside [0,1]", name, v)
		}
	}
	if !w.IsZero() && math.Abs(w.Sum()-1.0) > 1e-9 {
		return fmt.Errorf("weights must sum to 1.0, got %v", w.Sum())
	}
	for id, v := range s.Credits {
		if v < 0 || v > 1 {
			return fmt.Errorf("credit %s: %v is outside [0,1]", id, v)
		}
	}
	t := s.Thresholds
	for name, v := range map[string]float64{
		"recommend_below": t.RecommendBelow,
		"hint_below":      t.HintBelow,
		"pass":            t.Pass,
		"warn":            t.Warn,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("threshold %s: %v is outside [0,1]", name, v)
		}
	}
	if t.Pass != 0 && t.Warn != 0 && t.Warn > t.Pass {
		return fmt.Errorf("threshold warn (%v) is above pass (%v)", t.Warn, t.Pass)
	}
	return nil
}
