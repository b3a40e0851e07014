package config

import (
	"fmt"
	"os"

	"github.com/subcue/subcue/internal/subtitle"
	"gopkg.in/yaml.v3"
)

// Config holds the tunable pipeline settings. The dedup thresholds are
// heuristics, not protocol, so they are exposed here rather than baked
// in.
type Config struct {
	// Language tag propagated onto every cue (constant, never inferred)
	Language string `yaml:"language"`

	Dedupe struct {
		OverlapRatio        float64 `yaml:"overlap_ratio"`
		TimeTolerance       float64 `yaml:"time_tolerance"`
		SimilarityThreshold float64 `yaml:"similarity_threshold"`
		LengthRatioFloor    float64 `yaml:"length_ratio_floor"`
	} `yaml:"dedupe"`
}

// Default returns the production thresholds.
func Default() *Config {
	c := &Config{Language: "en"}

	d := subtitle.DefaultDedupeConfig()
	c.Dedupe.OverlapRatio = d.OverlapRatio
	c.Dedupe.TimeTolerance = d.TimeTolerance
	c.Dedupe.SimilarityThreshold = d.SimilarityThreshold
	c.Dedupe.LengthRatioFloor = d.LengthRatioFloor

	return c
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Dedupe.OverlapRatio < 0 || c.Dedupe.OverlapRatio > 1 {
		return fmt.Errorf("overlap_ratio must be in [0,1], got %v", c.Dedupe.OverlapRatio)
	}
	if c.Dedupe.SimilarityThreshold < 0 || c.Dedupe.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity_threshold must be in [0,1], got %v", c.Dedupe.SimilarityThreshold)
	}
	if c.Dedupe.TimeTolerance < 0 {
		return fmt.Errorf("time_tolerance must be >= 0, got %v", c.Dedupe.TimeTolerance)
	}
	return nil
}

// DedupeConfig converts the YAML view into the pipeline's threshold
// struct.
func (c *Config) DedupeConfig() subtitle.DedupeConfig {
	return subtitle.DedupeConfig{
		OverlapRatio:        c.Dedupe.OverlapRatio,
		TimeTolerance:       c.Dedupe.TimeTolerance,
		SimilarityThreshold: c.Dedupe.SimilarityThreshold,
		LengthRatioFloor:    c.Dedupe.LengthRatioFloor,
	}
}
