package metrics

import "github.com/san-kum/ballpit/internal/arena"

// Crowding is the fraction of frames where the arena held more than
// threshold balls.
type Crowding struct {
	name       string
	threshold  int
	violations int
	samples    int
}

func NewCrowding(threshold int) *Crowding {
	return &Crowding{
		name:      "crowding",
		threshold: threshold,
	}
}

func (c *Crowding) Name() string {
	return c.name
}

func (c *Crowding) Observe(a *arena.Arena, t float64) {
	c.samples++
	if a.Len() > c.threshold {
		c.violations++
	}
}

func (c *Crowding) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.violations) / float64(c.samples)
}

func (c *Crowding) Reset() {
	c.violations = 0
	c.samples = 0
}

// PeakBalls tracks the largest population seen.
type PeakBalls struct {
	peak int
}

func NewPeakBalls() *PeakBalls { return &PeakBalls{} }

func (p *PeakBalls) Name() string { return "peak_balls" }

func (p *PeakBalls) Observe(a *arena.Arena, t float64) {
	if n := a.Len(); n > p.peak {
		p.peak = n
	}
}

func (p *PeakBalls) Value() float64 { return float64(p.peak) }
func (p *PeakBalls) Reset()         { p.peak = 0 }
