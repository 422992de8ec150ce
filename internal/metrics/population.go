package metrics

import "github.com/san-kum/ballsim/internal/world"

// Population tracks the live body count.
type Population struct {
	current int
}

func NewPopulation() *Population {
	return &Population{}
}

func (m *Population) Name() string { return "population" }

func (m *Population) Observe(w *world.World, t float64) {
	m.current = w.Len()
}

func (m *Population) Value() float64 { return float64(m.current) }
func (m *Population) Reset()         { m.current = 0 }

// Settled tracks how many bodies have frozen in place.
type Settled struct {
	current int
}

func NewSettled() *Settled {
	return &Settled{}
}

func (m *Settled) Name() string { return "settled" }

func (m *Settled) Observe(w *world.World, t float64) {
	m.current = w.FixedCount()
}

func (m *Settled) Value() float64 { return float64(m.current) }
func (m *Settled) Reset()         { m.current = 0 }
