package systems

// Update advances every active slot one time-step. The pass order per slot:
//
//  1. lifetime decrement; expired slots retire to the sentinel
//  2. position integration with the pre-step velocity (explicit Euler)
//  3. velocity update, branched on physics type
//  4. cosmetic decay: alpha, size, rotation, color
//  5. boundary collision
//
// Update is O(capacity): it scans every slot once and runs to completion.
// env is this frame's read-only wind snapshot.
func (ps *ParticleSystem) Update(dt float32, env Environment) StepStats {
	st := ps.store
	p := &ps.params

	windAX := env.WindDir[0] * env.WindStrength * p.WindCoupling
	windAZ := env.WindDir[2] * env.WindStrength * p.WindCoupling

	var stats StepStats
	anyActive := false

	for i := 0; i < st.capacity; i++ {
		if !st.active[i] {
			continue
		}
		anyActive = true

		st.life[i] -= dt
		if st.life[i] <= 0 {
			st.release(i)
			stats.Expired++
			continue
		}

		st.pos[i] = st.pos[i].Add(st.vel[i].Mul(dt))

		switch st.ptype[i] {
		case Weighted:
			st.vel[i][1] += p.Gravity * dt
		case Buoyant:
			st.vel[i] = st.vel[i].Mul(p.BuoyantDrag)
			st.vel[i][1] += p.RisingBias * dt
		case WindDriven:
			st.vel[i][0] += windAX * dt
			st.vel[i][2] += windAZ * dt
			st.vel[i][1] += p.Gravity * p.WindGravityFactor * dt
			st.vel[i][0] *= p.HorizontalDrag
			st.vel[i][2] *= p.HorizontalDrag
		}

		st.alpha[i] = clamp01(st.life[i] / st.lifeMax[i])
		if st.ptype[i] == Buoyant {
			st.size[i] *= p.SizeGrowBuoyant
		} else {
			st.size[i] *= p.SizeShrink
		}
		st.rot[i] += st.rotSpeed[i] * dt
		st.col[i] = st.col[i].Mul(p.ColorFade)

		ps.resolveCollision(i, &stats)
	}

	if anyActive {
		st.dirty = true
	}
	stats.Active = st.activeCount
	return stats
}
