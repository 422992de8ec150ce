package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/ballsim/internal/world"
)

// Runner drives a world through a fixed-duration headless run, feeding
// metrics and observers once per tick.
type Runner struct {
	w         *world.World
	metrics   []Metric
	observers []Observer
}

func NewRunner(w *world.World) *Runner {
	return &Runner{w: w}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:      make([]float64, 0, steps+1),
		Population: make([]int, 0, steps+1),
		Kinetic:    make([]float64, 0, steps+1),
		Metrics:    make(map[string]float64),
	}
	if cfg.RecordFrames {
		result.Frames = make([]Frame, 0, steps+1)
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	r.record(result, cfg, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range r.metrics {
			m.Observe(r.w, t)
		}
		for _, obs := range r.observers {
			obs.OnTick(r.w, t)
		}

		if _, err := r.w.Tick(cfg.Dt); err != nil {
			return result, SimError{Time: t, Step: i, Message: err.Error()}
		}

		t += cfg.Dt
		result.StepsTaken++
		r.record(result, cfg, t)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	result.Despawned = r.w.Dropped()

	return result, nil
}

func (r *Runner) record(result *Result, cfg Config, t float64) {
	result.Times = append(result.Times, t)
	result.Population = append(result.Population, r.w.Len())
	result.Kinetic = append(result.Kinetic, r.w.KineticEnergy())

	if !cfg.RecordFrames {
		return
	}
	frame := Frame{Time: t, Bodies: make([]BodyState, 0, r.w.Len())}
	for _, b := range r.w.Bodies() {
		frame.Bodies = append(frame.Bodies, BodyState{
			ID:    b.ID,
			X:     b.Position.X,
			Y:     b.Position.Y,
			VX:    b.Velocity.X,
			VY:    b.Velocity.Y,
			Fixed: b.Fixed,
		})
	}
	result.Frames = append(result.Frames, frame)
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
