// Package main provides the dqchart binary, which renders the dynamic quorum
// curve of a governance configuration as SVG.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"honnef.co/go/quorum"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "dqchart"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the global flags shared by all subcommands.
type options struct {
	configPath string
	logLevel   string
	overrides  *Config
}

func rootCmd() *cobra.Command {
	opts := &options{overrides: DefaultConfig()}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Render dynamic quorum curves",
		Long: `dqchart computes the dynamic quorum curve of a DAO configuration:
the number of For votes a proposal needs as a function of the number of
Against votes it received.

Parameters come from a YAML config file (--config) and can be overridden
with flags. All quorum values are in basis points (10000 bps = 100%).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	f.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	f.IntVar(&opts.overrides.Curve.MinQuorumBPS, "min-quorum-bps", opts.overrides.Curve.MinQuorumBPS, "Minimum quorum in bps")
	f.IntVar(&opts.overrides.Curve.MaxQuorumBPS, "max-quorum-bps", opts.overrides.Curve.MaxQuorumBPS, "Maximum quorum in bps")
	f.Float64Var(&opts.overrides.Curve.LinearCoefficient, "linear", opts.overrides.Curve.LinearCoefficient, "Linear coefficient")
	f.Float64Var(&opts.overrides.Curve.QuadraticCoefficient, "quadratic", opts.overrides.Curve.QuadraticCoefficient, "Quadratic coefficient")
	f.IntVar(&opts.overrides.Curve.OffsetBPS, "offset-bps", opts.overrides.Curve.OffsetBPS, "Against votes in bps that don't raise the quorum")
	f.IntVar(&opts.overrides.Chart.Samples, "samples", opts.overrides.Chart.Samples, "Number of samples up to the saturation point")
	f.Float64Var(&opts.overrides.Chart.Width, "width", opts.overrides.Chart.Width, "Chart width")
	f.Float64Var(&opts.overrides.Chart.Height, "height", opts.overrides.Chart.Height, "Chart height")
	f.Float64Var(&opts.overrides.Chart.Smoothing, "smoothing", opts.overrides.Chart.Smoothing, "Curve smoothing (0 to 1)")
	f.BoolVar(&opts.overrides.Chart.Fill, "fill", opts.overrides.Chart.Fill, "Close the path so it can be filled")
	f.IntVar(&opts.overrides.Chart.Precision, "precision", opts.overrides.Chart.Precision, "Maximum decimals in path data (0 = exact)")

	cmd.AddCommand(
		pathCmd(opts),
		pointsCmd(opts),
		svgCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

func pathCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the SVG path data of the curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, chart, err := generate(cmd, opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if err := chart.Path.WriteSVG(w, cfg.SVGOptions()); err != nil {
				return err
			}
			_, err = io.WriteString(w, "\n")
			return err
		},
	}
}

// point is the YAML representation of a sample.
type point struct {
	Against float64 `yaml:"against_bps"`
	Quorum  float64 `yaml:"quorum_bps"`
}

func pointsCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Print the sampled points of the curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, chart, err := generate(cmd, opts)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch format {
			case "text":
				for _, pt := range chart.Points {
					if _, err := fmt.Fprintf(w, "%g %g\n", pt.X, pt.Y); err != nil {
						return err
					}
				}
				return nil
			case "yaml":
				pts := make([]point, len(chart.Points))
				for i, pt := range chart.Points {
					pts[i] = point{Against: pt.X, Quorum: pt.Y}
				}
				enc := yaml.NewEncoder(w)
				defer enc.Close()
				return enc.Encode(pts)
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, yaml)")
	return cmd
}

func svgCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "svg",
		Short: "Print a standalone SVG document of the curve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, chart, err := generate(cmd, opts)
			if err != nil {
				return err
			}
			return writeDocument(cmd.OutOrStdout(), chart, cfg.SVGOptions())
		},
	}
}

// generate loads the configuration, applies flag overrides and computes the
// chart.
func generate(cmd *cobra.Command, opts *options) (*Config, quorum.Chart, error) {
	logger := newLogger(cmd.ErrOrStderr(), opts.logLevel)

	cfg := DefaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = LoadFromFile(opts.configPath)
		if err != nil {
			return nil, quorum.Chart{}, fmt.Errorf("load config: %w", err)
		}
		logger.Debug("loaded config", "path", opts.configPath)
	}
	applyOverrides(cmd, cfg, opts.overrides)

	if err := cfg.Validate(); err != nil {
		return nil, quorum.Chart{}, fmt.Errorf("invalid configuration: %w", err)
	}

	chart, err := cfg.Generator(logger).Generate(cfg.Params())
	if err != nil {
		return nil, quorum.Chart{}, fmt.Errorf("generate chart: %w", err)
	}
	logger.Info("generated quorum curve",
		"root_bps", chart.Root,
		"points", len(chart.Points),
		"bounds", chart.Bounds.String())
	return cfg, chart, nil
}

// applyOverrides copies the values of explicitly set flags from flags into cfg.
func applyOverrides(cmd *cobra.Command, cfg, flags *Config) {
	set := cmd.Flags().Changed
	if set("min-quorum-bps") {
		cfg.Curve.MinQuorumBPS = flags.Curve.MinQuorumBPS
	}
	if set("max-quorum-bps") {
		cfg.Curve.MaxQuorumBPS = flags.Curve.MaxQuorumBPS
	}
	if set("linear") {
		cfg.Curve.LinearCoefficient = flags.Curve.LinearCoefficient
	}
	if set("quadratic") {
		cfg.Curve.QuadraticCoefficient = flags.Curve.QuadraticCoefficient
	}
	if set("offset-bps") {
		cfg.Curve.OffsetBPS = flags.Curve.OffsetBPS
	}
	if set("samples") {
		cfg.Chart.Samples = flags.Chart.Samples
	}
	if set("width") {
		cfg.Chart.Width = flags.Chart.Width
	}
	if set("height") {
		cfg.Chart.Height = flags.Chart.Height
	}
	if set("smoothing") {
		cfg.Chart.Smoothing = flags.Chart.Smoothing
	}
	if set("fill") {
		cfg.Chart.Fill = flags.Chart.Fill
	}
	if set("precision") {
		cfg.Chart.Precision = flags.Chart.Precision
	}
}

func newLogger(w io.Writer, logLevel string) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
