package phys

// Body is a single simulated particle. Position and Velocity are in world
// units ("meters"); Size is the collision radius and also drives the render
// scale. Acceleration is a caller-supplied constant term added to the
// per-tick computed acceleration, not the computed value itself.
//
// Fixed is one-way: once a body comes to rest near the floor it freezes and
// no force, collision or boundary handling applies to it again. It still
// attracts and collides with other bodies through the tick snapshot.
type Body struct {
	ID           int64
	Position     Vec3
	Velocity     Vec3
	Acceleration Vec3
	Mass         float64
	Size         float64
	Fixed        bool
}

// NewBody validates the geometric preconditions the integrator relies on.
func NewBody(id int64, pos, vel, acc Vec3, mass, size float64) (*Body, error) {
	if mass <= 0 {
		return nil, ErrNonPositiveMass
	}
	if size <= 0 {
		return nil, ErrNonPositiveSize
	}
	return &Body{
		ID:           id,
		Position:     pos,
		Velocity:     vel,
		Acceleration: acc,
		Mass:         mass,
		Size:         size,
	}, nil
}

// RenderPosition translates the body into render space.
func (b *Body) RenderPosition(scale float64) Vec3 {
	return b.Position.Scale(scale)
}

// KineticEnergy returns 1/2 m v².
func (b *Body) KineticEnergy() float64 {
	v := b.Velocity.Norm()
	return 0.5 * b.Mass * v * v
}
