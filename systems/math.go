package systems

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// clamp01 clamps a float32 value to the [0, 1] range.
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// randRange returns a uniform value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// randVec3 returns a component-wise uniform vector between lo and hi.
func randVec3(rng *rand.Rand, lo, hi mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		randRange(rng, lo[0], hi[0]),
		randRange(rng, lo[1], hi[1]),
		randRange(rng, lo[2], hi[2]),
	}
}

// sampleUnitSphere returns a uniformly distributed direction.
func sampleUnitSphere(rng *rand.Rand) mgl32.Vec3 {
	// Marsaglia: z uniform in [-1,1], azimuth uniform.
	z := randRange(rng, -1, 1)
	theta := randRange(rng, 0, 2*math.Pi)
	r := float32(math.Sqrt(float64(1 - z*z)))
	return mgl32.Vec3{
		r * float32(math.Cos(float64(theta))),
		z,
		r * float32(math.Sin(float64(theta))),
	}
}

// sampleCone returns a unit direction within halfAngle radians of axis,
// uniform over the spherical cap. axis must be unit length.
func sampleCone(rng *rand.Rand, axis mgl32.Vec3, halfAngle float32) mgl32.Vec3 {
	if halfAngle <= 0 {
		return axis
	}
	cosMax := float32(math.Cos(float64(halfAngle)))
	cosTheta := cosMax + rng.Float32()*(1-cosMax)
	sinTheta := float32(math.Sqrt(float64(1 - cosTheta*cosTheta)))
	phi := randRange(rng, 0, 2*math.Pi)

	local := mgl32.Vec3{
		sinTheta * float32(math.Cos(float64(phi))),
		cosTheta,
		sinTheta * float32(math.Sin(float64(phi))),
	}

	// Rotate local +Y onto the axis.
	up := mgl32.Vec3{0, 1, 0}
	d := up.Dot(axis)
	if d > 0.9999 {
		return local
	}
	if d < -0.9999 {
		return mgl32.Vec3{local[0], -local[1], -local[2]}
	}
	rot := mgl32.QuatBetweenVectors(up, axis)
	return rot.Rotate(local)
}

// sampleRing returns a point on a horizontal ring of the given radius in the
// plane orthogonal to up, centered at the origin.
func sampleRing(rng *rand.Rand, radius float32) mgl32.Vec3 {
	theta := randRange(rng, 0, 2*math.Pi)
	return mgl32.Vec3{
		radius * float32(math.Cos(float64(theta))),
		0,
		radius * float32(math.Sin(float64(theta))),
	}
}

// isFinite reports whether v has no NaN or Inf components.
func isFinite(v mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		f := float64(v[i])
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// isFiniteScalar reports whether f is neither NaN nor Inf.
func isFiniteScalar(f float32) bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
