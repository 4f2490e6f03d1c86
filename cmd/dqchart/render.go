package main

import (
	"fmt"
	"io"
	"strconv"

	"honnef.co/go/quorum"
)

const (
	guideColor = "#151C3B40"
	curveColor = "#4965F080"
)

// writeDocument writes a standalone SVG document containing the filled
// quorum curve, dashed guides at 10% and 90% of the height, and labels for
// the minimum and maximum quorum.
func writeDocument(w io.Writer, chart quorum.Chart, opts quorum.SVGOptions) error {
	width, height := chart.Size.Splat()
	num := func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	var err error
	printf := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %[1]s %[2]s">`+"\n",
		num(width), num(height))
	for _, y := range []float64{0.9 * height, 0.1 * height} {
		printf(`  <line x1="0" y1="%[2]s" x2="%[1]s" y2="%[2]s" stroke="%[3]s" stroke-width="4" stroke-dasharray="5" />`+"\n",
			num(width), num(y), guideColor)
	}
	printf(`  <g fill="%s" stroke="none">`+"\n", curveColor)
	printf(`    <path d="%s" />`+"\n", chart.D(opts))
	printf("  </g>\n")
	printf(`  <text x="20" y="%s">Max quorum: %s</text>`+"\n", num(0.075*height), percent(chart.Params.MaxQuorumBPS))
	printf(`  <text x="20" y="%s">Min quorum: %s</text>`+"\n", num(0.875*height), percent(chart.Params.MinQuorumBPS))
	printf("</svg>\n")
	return err
}

// percent formats basis points as a percentage.
func percent(bps int) string {
	return strconv.FormatFloat(float64(bps)/100, 'f', -1, 64) + "%"
}
