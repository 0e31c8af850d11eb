package metrics

// Containment is the fraction of ticks on which every letter's centre was
// inside the arena. It reads 1 before anything is observed.
type Containment struct {
	violations int
	samples    int
}

func NewContainment() *Containment { return &Containment{} }

func (c *Containment) Name() string { return "containment" }

func (c *Containment) Observe(s Snapshot) {
	c.samples++
	for _, b := range s.Bodies {
		if !s.Arena.Contains(b.Pos) {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1
	}
	return 1 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
