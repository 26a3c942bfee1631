package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SpawnParams is the full field initialization for one particle. Color
// channels are expected in [0,1] by caller convention and are not clamped
// here.
type SpawnParams struct {
	Pos      mgl32.Vec3
	Vel      mgl32.Vec3
	Color    mgl32.Vec3
	Size     float32
	Lifetime float32 // seconds, clamped to Params.MinLifetime
	Type     PhysicsType
}

// Spawn activates one slot with the given fields and returns its index.
// Returns (-1, false) when the pool is exhausted or the parameters are not
// finite; failure never touches existing active slots. Pool exhaustion is
// expected degradation, not an error.
func (ps *ParticleSystem) Spawn(p SpawnParams) (int, bool) {
	// A NaN position or size would corrupt the render buffer, and a NaN
	// lifetime would never retire. Reject rather than propagate.
	if !isFinite(p.Pos) || !isFinite(p.Vel) || !isFinite(p.Color) ||
		!isFiniteScalar(p.Size) || !isFiniteScalar(p.Lifetime) {
		return -1, false
	}

	st := ps.store
	i := st.allocate()
	if i < 0 {
		return -1, false
	}

	size := p.Size
	if size < 0 {
		size = 0
	}
	life := p.Lifetime
	if life <= 0 {
		life = ps.params.MinLifetime
	}

	st.pos[i] = p.Pos
	st.vel[i] = p.Vel
	st.col[i] = p.Color
	st.size[i] = size
	st.life[i] = life
	st.lifeMax[i] = life
	st.alpha[i] = 1.0
	st.rot[i] = randRange(ps.rng, 0, 2*math.Pi)
	st.rotSpeed[i] = randRange(ps.rng, -ps.params.MaxRotationSpeed, ps.params.MaxRotationSpeed)
	st.ptype[i] = p.Type
	st.active[i] = true
	st.activeCount++

	return i, true
}
