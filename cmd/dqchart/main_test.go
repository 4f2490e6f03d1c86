package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"honnef.co/go/quorum"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := rootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dqchart version 0.1.0 (build: dev)\n", out)
}

func TestPathCommand(t *testing.T) {
	out, _, err := execute(t, "path")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "M0,286.72 C"), "unexpected start of %q", out[:min(len(out), 40)])
	assert.True(t, strings.HasSuffix(out, " L0,320 Z\n"), "path isn't closed")

	chart, err := quorum.GenerateChart(quorum.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, chart.D(quorum.SVGOptions{MaxPrecision: 2})+"\n", out)
}

func TestPathCommandNoFill(t *testing.T) {
	out, _, err := execute(t, "path", "--fill=false", "--precision", "0")
	require.NoError(t, err)
	assert.NotContains(t, out, "Z")
	assert.NotContains(t, out, "L")
	assert.Equal(t, 1+601, strings.Count(out, "M")+strings.Count(out, "C"))
}

func TestPointsCommand(t *testing.T) {
	out, _, err := execute(t, "points")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 602)
	assert.Equal(t, "0 1000", lines[0])
	assert.Equal(t, "14 1000", lines[1])
	assert.True(t, strings.HasSuffix(lines[601], " 2000"))
}

func TestPointsCommandYAML(t *testing.T) {
	out, _, err := execute(t, "points", "--format", "yaml", "--samples", "10")
	require.NoError(t, err)

	var pts []point
	require.NoError(t, yaml.Unmarshal([]byte(out), &pts))
	require.Len(t, pts, 10+500+2)
	assert.Equal(t, point{Against: 0, Quorum: 1000}, pts[0])
	for _, pt := range pts {
		assert.GreaterOrEqual(t, pt.Quorum, 1000.0)
		assert.LessOrEqual(t, pt.Quorum, 2000.0)
	}
}

func TestPointsCommandUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "points", "--format", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "csv"`)
}

func TestSVGCommand(t *testing.T) {
	out, _, err := execute(t, "svg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="1000" height="320" viewBox="0 0 1000 320">`))
	assert.Contains(t, out, `<line x1="0" y1="288" x2="1000" y2="288" stroke="#151C3B40" stroke-width="4" stroke-dasharray="5" />`)
	assert.Contains(t, out, `<line x1="0" y1="32" x2="1000" y2="32"`)
	assert.Contains(t, out, `<path d="M0,286.72 C`)
	assert.Contains(t, out, `<text x="20" y="24">Max quorum: 20%</text>`)
	assert.Contains(t, out, `<text x="20" y="280">Min quorum: 10%</text>`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero quadratic", []string{"path", "--quadratic", "0"}},
		{"negative discriminant", []string{"path", "--linear=0", "--quadratic=-1"}},
		{"static quorum", []string{"svg", "--max-quorum-bps", "1000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, tt.args...)
			require.ErrorIs(t, err, quorum.ErrInvalidCurveParameters)
			assert.Empty(t, out)
		})
	}
}

func TestConfigFlagAndOverrides(t *testing.T) {
	path := writeConfig(t, `
curve:
  min_quorum_bps: 500
  max_quorum_bps: 1500
`)
	out, _, err := execute(t, "svg", "--config", path, "--max-quorum-bps", "3000")
	require.NoError(t, err)
	assert.Contains(t, out, "Min quorum: 5%")
	assert.Contains(t, out, "Max quorum: 30%")

	_, _, err = execute(t, "path", "--config", path+".missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "path", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "solved saturation point")
	assert.Contains(t, stderr, "generated quorum curve")

	_, stderr, err = execute(t, "path")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
