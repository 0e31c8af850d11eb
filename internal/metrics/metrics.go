// Package metrics observes the arena tick by tick and reduces what it sees
// to single numbers for scripted runs.
package metrics

import (
	"math"

	"github.com/san-kum/folio/internal/geom"
)

// Body is one live letter as a metric sees it. Velocity is in px/step.
type Body struct {
	Pos    geom.Vec
	Vel    geom.Vec
	Radius float64
}

// Snapshot is the arena after one tick.
type Snapshot struct {
	Time   float64
	Arena  geom.Rect
	Bodies []Body
}

type Metric interface {
	Name() string
	Observe(s Snapshot)
	Value() float64
	Reset()
}

// Standard is the metric set scripted runs record.
func Standard(density float64) []Metric {
	return []Metric{NewEnergy(density), NewPeakSpeed(), NewContainment()}
}

// KineticEnergy sums ½mv² over the bodies, with mass from density and the
// circle's area.
func KineticEnergy(bodies []Body, density float64) float64 {
	total := 0.0
	for _, b := range bodies {
		m := density * math.Pi * b.Radius * b.Radius
		total += 0.5 * m * b.Vel.Dot(b.Vel)
	}
	return total
}
