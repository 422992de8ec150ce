package world

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/ballsim/internal/phys"
)

func TestAddValidation(t *testing.T) {
	g := NewWithT(t)
	w := New(phys.DefaultParams(), 42)

	_, err := w.Add(phys.Vec3{}, phys.Vec3{}, phys.Vec3{}, 0, 10)
	g.Expect(err).To(MatchError(phys.ErrNonPositiveMass))
	g.Expect(w.Len()).To(Equal(0))

	_, err = w.Add(phys.Vec3{}, phys.Vec3{}, phys.Vec3{}, 1, -2)
	g.Expect(err).To(MatchError(phys.ErrNonPositiveSize))

	b, err := w.Add(phys.Vec3{Y: 10}, phys.Vec3{}, phys.Vec3{}, 1, 10)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(b.ID).To(Equal(int64(1)))
	g.Expect(w.Len()).To(Equal(1))
}

func TestSpawnRandom(t *testing.T) {
	g := NewWithT(t)
	p := phys.DefaultParams()
	w := New(p, 42)
	w.SpawnRandom(100)

	g.Expect(w.Len()).To(Equal(100))
	for _, b := range w.Bodies() {
		g.Expect(b.Mass).To(And(
			BeNumerically(">=", spawnMassFloor),
			BeNumerically("<", spawnMassFloor+spawnMassSpread)))
		g.Expect(b.Size).To(Equal(spawnSize))
		g.Expect(b.Position.X).To(And(
			BeNumerically(">=", -p.UniverseWidth/2),
			BeNumerically("<=", p.UniverseWidth/2)))
		g.Expect(b.Fixed).To(BeFalse())
	}
}

func TestSpawnDeterministic(t *testing.T) {
	g := NewWithT(t)

	a := New(phys.DefaultParams(), 7)
	b := New(phys.DefaultParams(), 7)
	a.SpawnRandom(10)
	b.SpawnRandom(10)

	for i := range a.Bodies() {
		g.Expect(a.Bodies()[i].Position).To(Equal(b.Bodies()[i].Position))
		g.Expect(a.Bodies()[i].Velocity).To(Equal(b.Bodies()[i].Velocity))
		g.Expect(a.Bodies()[i].Mass).To(Equal(b.Bodies()[i].Mass))
	}
}

func TestTickDropsDespawned(t *testing.T) {
	g := NewWithT(t)
	p := phys.DefaultParams()
	p.Gravity = 0
	p.Friction = 0
	p.Collisions = false
	w := New(p, 1)

	_, err := w.Add(phys.Vec3{X: p.UniverseWidth}, phys.Vec3{X: 2, Y: 2}, phys.Vec3{}, 1, 10)
	g.Expect(err).NotTo(HaveOccurred())
	inside, err := w.Add(phys.Vec3{Y: 10}, phys.Vec3{X: 2, Y: 2}, phys.Vec3{}, 1, 10)
	g.Expect(err).NotTo(HaveOccurred())

	removed, err := w.Tick(0)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(removed).To(Equal([]int64{1}))
	g.Expect(w.Len()).To(Equal(1))
	g.Expect(w.Bodies()[0]).To(BeIdenticalTo(inside))
	g.Expect(w.Dropped()).To(Equal(1))
}

func TestTickPropagatesError(t *testing.T) {
	g := NewWithT(t)
	w := New(phys.DefaultParams(), 1)
	w.SpawnRandom(2)

	_, err := w.Tick(-0.1)
	g.Expect(err).To(MatchError(phys.ErrNegativeDt))
}

func TestWorldAggregates(t *testing.T) {
	g := NewWithT(t)
	w := New(phys.DefaultParams(), 1)

	_, err := w.Add(phys.Vec3{Y: 10}, phys.Vec3{X: 3, Y: 4}, phys.Vec3{}, 2, 10)
	g.Expect(err).NotTo(HaveOccurred())
	b2, err := w.Add(phys.Vec3{Y: 20}, phys.Vec3{}, phys.Vec3{}, 1, 10)
	g.Expect(err).NotTo(HaveOccurred())
	b2.Fixed = true

	g.Expect(w.KineticEnergy()).To(BeNumerically("~", 25, 1e-12))
	g.Expect(w.FixedCount()).To(Equal(1))
}

func TestReset(t *testing.T) {
	g := NewWithT(t)
	w := New(phys.DefaultParams(), 1)
	w.SpawnRandom(5)
	firstMaxID := w.Bodies()[4].ID

	w.Reset(3)
	g.Expect(w.Len()).To(Equal(3))
	g.Expect(w.Dropped()).To(Equal(0))
	// IDs keep counting across resets.
	g.Expect(w.Bodies()[0].ID).To(BeNumerically(">", firstMaxID))
}

func TestControllerFSM(t *testing.T) {
	g := NewWithT(t)
	c := NewController()

	g.Expect(c.Phase()).To(Equal(PhaseRunning))
	g.Expect(c.ShouldTick()).To(BeTrue())

	c.Pause()
	g.Expect(c.Phase()).To(Equal(PhasePaused))
	g.Expect(c.ShouldTick()).To(BeFalse())

	c.StepForward(2)
	g.Expect(c.Phase()).To(Equal(PhaseStepping))
	g.Expect(c.ShouldTick()).To(BeTrue())
	g.Expect(c.ShouldTick()).To(BeTrue())
	// Queued frames consumed; back to paused.
	g.Expect(c.Phase()).To(Equal(PhasePaused))
	g.Expect(c.ShouldTick()).To(BeFalse())

	c.StepForward(0)
	g.Expect(c.Phase()).To(Equal(PhasePaused))

	c.Toggle()
	g.Expect(c.Phase()).To(Equal(PhaseRunning))
	c.Toggle()
	g.Expect(c.Phase()).To(Equal(PhasePaused))
	c.Resume()
	g.Expect(c.Phase()).To(Equal(PhaseRunning))
}
