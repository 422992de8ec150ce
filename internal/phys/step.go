package phys

// Step advances every body by one tick of dt seconds and returns the IDs of
// bodies that left the universe box. The caller owns body storage and drops
// despawned bodies itself; all other bodies are mutated in place.
//
// All pairwise reads go through a snapshot of tick-start state, so results do
// not depend on iteration order and no body sees another body's same-tick
// update. Per body the order is: rest detection, force accumulation and
// integration, collision resolution, despawn check, window bounce.
//
// Two numeric quirks are intentional and load-bearing for reproducibility:
// the gravity term is scaled by the body's mass, and the attraction magnitude
// divides by the body's own mass a second time. Attraction is unclamped, so
// very small separations produce very large accelerations; that instability
// is a known property of the model, not an error condition.
func Step(bodies []*Body, dt float64, p Params) ([]int64, error) {
	if dt < 0 {
		return nil, ErrNegativeDt
	}

	prev := make([]Body, len(bodies))
	for i, b := range bodies {
		prev[i] = *b
	}

	var removed []int64
	floor := -p.WindowHeight / 2

	for _, b := range bodies {
		if b.Fixed {
			continue
		}

		// Slow bodies sitting on the floor freeze for good.
		if b.Velocity.Norm() < p.RestSpeed && b.Position.Y-b.Size/2 < floor+p.RestMargin {
			b.Fixed = true
			b.Velocity = Vec3{}
			continue
		}

		accel := b.Acceleration

		// Pairwise attraction, read from the tick-start snapshot. Coincident
		// bodies have no defined normal and are skipped.
		for i := range prev {
			o := &prev[i]
			if o.ID == b.ID || o.Position == b.Position {
				continue
			}
			dist := b.Position.Distance(o.Position) / p.Scale
			normal := o.Position.Sub(b.Position).Normalize()
			force := normal.Scale(b.Mass * o.Mass / (dist * dist))
			accel = accel.Add(force.Scale(1 / b.Mass))
		}

		// Weight and linear drag go in after the attraction loop.
		accel = accel.Add(Vec3{0, p.Gravity, 0}.Scale(b.Mass))
		accel = accel.Add(b.Velocity.Scale(-p.Friction))

		// Semi-implicit Euler.
		b.Velocity = b.Velocity.Add(accel.Scale(dt))
		b.Position = b.Position.Add(b.Velocity.Scale(dt))

		if p.Collisions {
			collide(b, prev)
		}

		// The scaled position drives both the despawn box and the bounce.
		tr := b.Position.Scale(p.Scale)
		if tr.X-b.Size/2 > p.UniverseWidth/2 ||
			tr.X+b.Size/2 < -p.UniverseWidth/2 ||
			tr.Y-b.Size/2 > p.UniverseHeight/2 ||
			tr.Y+b.Size/2 < -p.UniverseHeight/2 {
			removed = append(removed, b.ID)
			continue
		}

		bounce(b, tr, p)
	}

	return removed, nil
}

// collide resolves overlaps between b (already integrated this tick) and the
// tick-start snapshot of every other body. Only b's side of each pair is
// updated here; the other body resolves its own side in its own iteration
// against the same snapshot, an approximation rather than a symmetric
// exchange.
func collide(b *Body, prev []Body) {
	for i := range prev {
		o := &prev[i]
		if o.ID == b.ID || o.Position == b.Position {
			continue
		}
		dist := b.Position.Distance(o.Position)
		if dist >= b.Size+o.Size {
			continue
		}
		normal := o.Position.Sub(b.Position).Normalize()
		rel := b.Velocity.Sub(o.Velocity)
		impulse := normal.Scale(2 * rel.Dot(normal) / (b.Mass + o.Mass))
		b.Velocity = b.Velocity.Sub(impulse.Scale(o.Mass))

		// Push b out of the overlap along the contact normal.
		b.Position = b.Position.Sub(normal.Scale((b.Size + o.Size - dist) / 2))
	}
}

// bounce reflects the velocity component of a body whose scaled edge crossed
// a window boundary while still moving outward, and clamps the position so
// the body cannot tunnel through on the next tick. Axes are independent;
// min and max sides are mutually exclusive per axis.
func bounce(b *Body, tr Vec3, p Params) {
	halfW := p.WindowWidth / 2
	halfH := p.WindowHeight / 2

	if tr.X-b.Size/2 < -halfW && b.Velocity.X < 0 {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = -halfW + b.Size/2
	} else if tr.X+b.Size/2 > halfW && b.Velocity.X > 0 {
		b.Velocity.X = -b.Velocity.X
		b.Position.X = halfW - b.Size/2
	}

	if tr.Y-b.Size/2 < -halfH && b.Velocity.Y < 0 {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = -halfH + b.Size/2
	} else if tr.Y+b.Size/2 > halfH && b.Velocity.Y > 0 {
		b.Velocity.Y = -b.Velocity.Y
		b.Position.Y = halfH - b.Size/2
	}
}
