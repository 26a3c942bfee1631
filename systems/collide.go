package systems

const penetrationEpsilon = 0.01

// resolveCollision applies the engine's boundary model to slot i. Fast,
// inward-moving contacts bounce with energy loss; slow or resting contacts
// retire the particle as settled debris.
func (ps *ParticleSystem) resolveCollision(i int, stats *StepStats) {
	switch ps.params.Mode {
	case CollideSphere:
		ps.resolveSphere(i, stats)
	case CollideFlat:
		ps.resolveFlat(i, stats)
	}
}

// resolveSphere handles contact with a spherical world of radius R centered
// at the origin. Particles live above the surface; contact means |pos| < R.
func (ps *ParticleSystem) resolveSphere(i int, stats *StepStats) {
	st := ps.store
	p := &ps.params

	pos := st.pos[i]
	dist := pos.Len()
	if dist >= p.WorldRadius {
		return
	}
	if dist == 0 {
		// No valid outward normal; treat as settled rather than divide.
		st.release(i)
		stats.Settled++
		return
	}

	n := pos.Mul(1 / dist)
	vn := st.vel[i].Dot(n)

	if vn < -p.ImpactThreshold {
		// Reflect the normal component, damp the whole vector, and push
		// the particle back above the surface.
		st.vel[i] = st.vel[i].Sub(n.Mul(p.ReflectFactor * vn))
		st.vel[i] = st.vel[i].Mul(p.BounceDamping)
		st.pos[i] = pos.Add(n.Mul((p.WorldRadius - dist) + penetrationEpsilon))
		stats.Bounced++
		return
	}

	// Slow or resting contact: settled debris is not rendered at rest.
	st.release(i)
	stats.Settled++
}

// resolveFlat handles the fallback ground plane at y=0.
func (ps *ParticleSystem) resolveFlat(i int, stats *StepStats) {
	st := ps.store
	p := &ps.params

	if st.pos[i][1] >= 0 {
		return
	}

	if st.vel[i][1] < -p.GroundBounceMin {
		st.vel[i][1] *= -p.GroundRestitution
		st.pos[i][1] = 0
		stats.Bounced++
		return
	}

	st.release(i)
	stats.Settled++
}
