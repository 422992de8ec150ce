package sim

import (
	"fmt"

	"github.com/san-kum/ballsim/internal/world"
)

// Metric aggregates a scalar over the course of a run.
type Metric interface {
	Name() string
	Observe(w *world.World, t float64)
	Value() float64
	Reset()
}

// Observer is called once per completed tick.
type Observer interface {
	OnTick(w *world.World, t float64)
}

type Config struct {
	Dt       float64
	Duration float64
	Seed     int64

	// RecordFrames keeps a full per-body history in the Result. Off for
	// benchmarks, on when the run is going to be persisted or plotted.
	RecordFrames bool
}

func DefaultConfig() Config {
	return Config{
		Dt:           0.01,
		Duration:     10.0,
		RecordFrames: true,
	}
}

// BodyState is one body's observable state inside a recorded frame.
type BodyState struct {
	ID    int64   `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Fixed bool    `json:"fixed"`
}

type Frame struct {
	Time   float64     `json:"time"`
	Bodies []BodyState `json:"bodies"`
}

type Result struct {
	Frames     []Frame
	Times      []float64
	Population []int
	Kinetic    []float64
	Metrics    map[string]float64
	Despawned  int
	StepsTaken int
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
