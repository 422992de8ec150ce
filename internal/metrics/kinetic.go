package metrics

import (
	"math"

	"github.com/san-kum/ballsim/internal/world"
)

// Kinetic tracks total kinetic energy, reporting the last observed value and
// keeping the peak for reference.
type Kinetic struct {
	current float64
	peak    float64
}

func NewKinetic() *Kinetic {
	return &Kinetic{}
}

func (m *Kinetic) Name() string { return "kinetic_energy" }

func (m *Kinetic) Observe(w *world.World, t float64) {
	m.current = w.KineticEnergy()
	if m.current > m.peak {
		m.peak = m.current
	}
}

func (m *Kinetic) Value() float64 { return m.current }
func (m *Kinetic) Peak() float64  { return m.peak }

func (m *Kinetic) Reset() {
	m.current = 0
	m.peak = 0
}

// Momentum tracks the magnitude of total linear momentum.
type Momentum struct {
	current float64
}

func NewMomentum() *Momentum {
	return &Momentum{}
}

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(w *world.World, t float64) {
	px, py := 0.0, 0.0
	for _, b := range w.Bodies() {
		px += b.Mass * b.Velocity.X
		py += b.Mass * b.Velocity.Y
	}
	m.current = math.Sqrt(px*px + py*py)
}

func (m *Momentum) Value() float64 { return m.current }
func (m *Momentum) Reset()         { m.current = 0 }
