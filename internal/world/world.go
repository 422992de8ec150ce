package world

import (
	"math/rand"

	"github.com/san-kum/ballsim/internal/phys"
)

// Spawn ranges matching the stock scene: bodies scattered over the universe
// box with a gentle random drift and masses between 0.5 and 2.0.
const (
	spawnSpeedSpread = 2.0
	spawnMassSpread  = 1.5
	spawnMassFloor   = 0.5
	spawnSize        = 10.0
)

// World owns body storage and identity. The phys core mutates bodies in
// place and reports despawns; the world drops them from the live set.
type World struct {
	params  phys.Params
	bodies  []*phys.Body
	nextID  int64
	rng     *rand.Rand
	dropped int
}

func New(params phys.Params, seed int64) *World {
	return &World{
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Add creates a body with host-assigned identity. Mass and size are
// validated here, at the one place bodies enter the simulation.
func (w *World) Add(pos, vel, acc phys.Vec3, mass, size float64) (*phys.Body, error) {
	w.nextID++
	b, err := phys.NewBody(w.nextID, pos, vel, acc, mass, size)
	if err != nil {
		w.nextID--
		return nil, err
	}
	w.bodies = append(w.bodies, b)
	return b, nil
}

// SpawnRandom fills the universe box with n randomly placed bodies.
func (w *World) SpawnRandom(n int) {
	for i := 0; i < n; i++ {
		pos := phys.Vec3{
			X: (w.rng.Float64() - 0.5) * w.params.UniverseWidth,
			Y: (w.rng.Float64() - 0.5) * w.params.UniverseHeight,
		}
		vel := phys.Vec3{
			X: (w.rng.Float64() - 0.5) * spawnSpeedSpread,
			Y: (w.rng.Float64() - 0.5) * spawnSpeedSpread,
		}
		mass := w.rng.Float64()*spawnMassSpread + spawnMassFloor

		// Ranges above guarantee positive mass and size.
		if _, err := w.Add(pos, vel, phys.Vec3{}, mass, spawnSize); err != nil {
			panic("world: invalid spawn parameters: " + err.Error())
		}
	}
}

// Tick advances the simulation by dt seconds and drops despawned bodies.
// It returns the IDs removed this tick.
func (w *World) Tick(dt float64) ([]int64, error) {
	removed, err := phys.Step(w.bodies, dt, w.params)
	if err != nil {
		return nil, err
	}
	if len(removed) > 0 {
		gone := make(map[int64]bool, len(removed))
		for _, id := range removed {
			gone[id] = true
		}
		kept := w.bodies[:0]
		for _, b := range w.bodies {
			if !gone[b.ID] {
				kept = append(kept, b)
			}
		}
		for i := len(kept); i < len(w.bodies); i++ {
			w.bodies[i] = nil
		}
		w.bodies = kept
		w.dropped += len(removed)
	}
	return removed, nil
}

// Reset clears all bodies and respawns n random ones. Identity keeps
// counting up so IDs are never reused within a process.
func (w *World) Reset(n int) {
	w.bodies = w.bodies[:0]
	w.dropped = 0
	w.SpawnRandom(n)
}

// Bodies exposes the live set in storage order. Callers must not reorder it.
func (w *World) Bodies() []*phys.Body { return w.bodies }

func (w *World) Params() phys.Params { return w.params }

func (w *World) Len() int { return len(w.bodies) }

// Dropped reports how many bodies have left the universe since the last
// reset.
func (w *World) Dropped() int { return w.dropped }

func (w *World) FixedCount() int {
	n := 0
	for _, b := range w.bodies {
		if b.Fixed {
			n++
		}
	}
	return n
}

func (w *World) KineticEnergy() float64 {
	e := 0.0
	for _, b := range w.bodies {
		e += b.KineticEnergy()
	}
	return e
}
