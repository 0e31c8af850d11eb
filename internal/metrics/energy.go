package metrics

// Energy is the mean kinetic energy of the letters over the observed ticks.
type Energy struct {
	name    string
	density float64
	samples int
	total   float64
}

func NewEnergy(density float64) *Energy {
	return &Energy{name: "energy", density: density}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(s Snapshot) {
	e.total += KineticEnergy(s.Bodies, e.density)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}

// PeakSpeed is the fastest any letter moved, in px/step.
type PeakSpeed struct {
	peak float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (p *PeakSpeed) Name() string { return "peak_speed" }

func (p *PeakSpeed) Observe(s Snapshot) {
	for _, b := range s.Bodies {
		p.peak = max(p.peak, b.Vel.Len())
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }
func (p *PeakSpeed) Reset()         { p.peak = 0 }
