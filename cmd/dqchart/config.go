package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/quorum"
)

// Config is the complete dqchart configuration.
type Config struct {
	Curve    CurveConfig    `yaml:"curve"`
	Chart    ChartConfig    `yaml:"chart"`
	Sampling SamplingConfig `yaml:"sampling"`
}

// CurveConfig holds the dynamic quorum coefficients, as configured in the DAO
// contract.
type CurveConfig struct {
	MinQuorumBPS         int     `yaml:"min_quorum_bps"`
	MaxQuorumBPS         int     `yaml:"max_quorum_bps"`
	LinearCoefficient    float64 `yaml:"linear_coefficient"`
	QuadraticCoefficient float64 `yaml:"quadratic_coefficient"`
	OffsetBPS            int     `yaml:"offset_bps"`
}

// ChartConfig configures the rendered chart.
type ChartConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Samples   int     `yaml:"samples"`
	Smoothing float64 `yaml:"smoothing"`
	Fill      bool    `yaml:"fill"`
	// Precision is the maximum number of decimals in path data (0 = exact).
	Precision int `yaml:"precision"`
}

// SamplingConfig configures the samples taken past the saturation point.
type SamplingConfig struct {
	Tail        int       `yaml:"tail"`
	TailStep    float64   `yaml:"tail_step"`
	Multipliers []float64 `yaml:"multipliers"`
}

// DefaultConfig returns a Config matching quorum.DefaultParams and the
// package's default sampling and smoothing.
func DefaultConfig() *Config {
	p := quorum.DefaultParams()
	s := quorum.DefaultSampling()
	return &Config{
		Curve: CurveConfig{
			MinQuorumBPS:         p.MinQuorumBPS,
			MaxQuorumBPS:         p.MaxQuorumBPS,
			LinearCoefficient:    p.LinearCoefficient,
			QuadraticCoefficient: p.QuadraticCoefficient,
			OffsetBPS:            p.OffsetBPS,
		},
		Chart: ChartConfig{
			Width:     p.ChartWidth,
			Height:    p.ChartHeight,
			Samples:   p.NumSamplePoints,
			Smoothing: quorum.DefaultSmoothing,
			Fill:      true,
			Precision: 2,
		},
		Sampling: SamplingConfig{
			Tail:        s.Tail,
			TailStep:    s.TailStep,
			Multipliers: s.Multipliers,
		},
	}
}

// LoadFromFile loads configuration from a YAML file. Fields missing from the
// file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Params returns the curve parameters described by c.
func (c *Config) Params() quorum.Params {
	return quorum.Params{
		MinQuorumBPS:         c.Curve.MinQuorumBPS,
		MaxQuorumBPS:         c.Curve.MaxQuorumBPS,
		LinearCoefficient:    c.Curve.LinearCoefficient,
		QuadraticCoefficient: c.Curve.QuadraticCoefficient,
		OffsetBPS:            c.Curve.OffsetBPS,
		NumSamplePoints:      c.Chart.Samples,
		ChartWidth:           c.Chart.Width,
		ChartHeight:          c.Chart.Height,
	}
}

// Generator returns a chart generator configured by c.
func (c *Config) Generator(logger *slog.Logger) *quorum.Generator {
	return &quorum.Generator{
		Sampling: quorum.Sampling{
			Tail:        c.Sampling.Tail,
			TailStep:    c.Sampling.TailStep,
			Multipliers: c.Sampling.Multipliers,
		},
		Framing: quorum.DefaultFraming(),
		Smooth: quorum.SmoothOptions{
			Smoothing: c.Chart.Smoothing,
			Fill:      c.Chart.Fill,
		},
		Logger: logger,
	}
}

// SVGOptions returns the path serialization options described by c.
func (c *Config) SVGOptions() quorum.SVGOptions {
	return quorum.SVGOptions{MaxPrecision: c.Chart.Precision}
}

// Validate checks that the configuration is valid. It doesn't solve for the
// saturation point; coefficients without a positive root are reported when
// the chart is generated.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Chart.Precision < 0 {
		return fmt.Errorf("chart.precision must not be negative")
	}
	if c.Chart.Smoothing < 0 || c.Chart.Smoothing > 1 {
		return fmt.Errorf("chart.smoothing must be between 0 and 1")
	}
	s := quorum.Sampling{
		Tail:        c.Sampling.Tail,
		TailStep:    c.Sampling.TailStep,
		Multipliers: c.Sampling.Multipliers,
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("sampling: %w", err)
	}
	return nil
}
