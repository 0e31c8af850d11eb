package automation

import (
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Plot charts the indicator heading and the live letter count over the run.
func Plot(t *Trace, width, height int) string {
	if len(t.Samples) < 2 {
		return ""
	}
	angle := t.Series(func(s Sample) float64 { return s.Angle * 180 / math.Pi })
	letters := t.Series(func(s Sample) float64 { return float64(s.Letters) })

	var b strings.Builder
	b.WriteString(asciigraph.Plot(angle,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption("indicator heading (deg)"),
	))
	b.WriteString("\n\n")
	b.WriteString(asciigraph.Plot(letters,
		asciigraph.Height(max(height/2, 2)),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.LowerBound(0),
		asciigraph.Caption("live letters"),
	))
	b.WriteByte('\n')
	return b.String()
}
