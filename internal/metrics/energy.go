package metrics

import (
	"math"

	"github.com/san-kum/ballpit/internal/arena"
)

// Energy averages the total kinetic energy of the arena over a run.
type Energy struct {
	name        string
	samples     int
	totalEnergy float64
}

func NewEnergy() *Energy {
	return &Energy{name: "mean_energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(a *arena.Arena, t float64) {
	e.totalEnergy += a.KineticEnergy()
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}

// MeanSpeed averages ball speed over every observed ball.
type MeanSpeed struct {
	name    string
	samples int
	total   float64
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(a *arena.Arena, t float64) {
	for _, v := range a.Balls() {
		m.total += math.Hypot(v.VX, v.VY) * a.SpeedScale()
		m.samples++
	}
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.total = 0
	m.samples = 0
}
