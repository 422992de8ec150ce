package world

// Phase is the run state of the simulation loop. It lives entirely outside
// the physics core: the host consults ShouldTick before each frame and skips
// the integrator when it returns false.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseStepping
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseStepping:
		return "stepping"
	default:
		return "unknown"
	}
}

// Controller gates whether the integrator runs on a given frame.
// Transitions: Running <-> Paused via Pause/Resume/Toggle, Paused ->
// Stepping via StepForward, Stepping -> Paused when the requested frames
// are consumed.
type Controller struct {
	phase      Phase
	framesLeft int
}

func NewController() *Controller {
	return &Controller{phase: PhaseRunning}
}

func (c *Controller) Phase() Phase { return c.phase }

func (c *Controller) Pause() {
	c.phase = PhasePaused
	c.framesLeft = 0
}

func (c *Controller) Resume() {
	c.phase = PhaseRunning
	c.framesLeft = 0
}

func (c *Controller) Toggle() {
	if c.phase == PhaseRunning {
		c.Pause()
	} else {
		c.Resume()
	}
}

// StepForward queues n single frames. Calling it while running pauses
// first, so the queued frames are observable.
func (c *Controller) StepForward(n int) {
	if n <= 0 {
		return
	}
	c.phase = PhaseStepping
	c.framesLeft = n
}

// ShouldTick reports whether the current frame should run the integrator,
// consuming one queued frame in the stepping phase.
func (c *Controller) ShouldTick() bool {
	switch c.phase {
	case PhaseRunning:
		return true
	case PhaseStepping:
		c.framesLeft--
		if c.framesLeft <= 0 {
			c.phase = PhasePaused
		}
		return true
	default:
		return false
	}
}
