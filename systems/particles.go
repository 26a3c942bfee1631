package systems

import "math/rand"

// CollisionMode selects the boundary model for the whole engine.
type CollisionMode uint8

const (
	// CollideSphere models the world as a sphere of Params.WorldRadius
	// centered at the origin; particles live above the surface.
	CollideSphere CollisionMode = iota
	// CollideFlat is the fallback ground plane at y=0.
	CollideFlat
)

// Params holds the physics constants for integration and collision. All
// values have working defaults from DefaultParams; the config layer overrides
// them at startup.
type Params struct {
	Gravity     float32 // vertical acceleration, negative (m/s^2)
	BuoyantDrag float32 // per-frame velocity multiplier for Buoyant
	RisingBias  float32 // upward acceleration for Buoyant (m/s^2)

	WindCoupling      float32 // horizontal wind acceleration multiplier
	WindGravityFactor float32 // fraction of Gravity applied to WindDriven
	HorizontalDrag    float32 // per-frame horizontal multiplier for WindDriven

	SizeGrowBuoyant float32 // per-frame size multiplier for Buoyant
	SizeShrink      float32 // per-frame size multiplier for other types
	ColorFade       float32 // per-frame color channel multiplier

	Mode        CollisionMode
	WorldRadius float32 // sphere radius for CollideSphere

	ImpactThreshold   float32 // inward normal speed below which contact retires
	ReflectFactor     float32 // reflection multiplier on the normal component
	BounceDamping     float32 // whole-velocity multiplier after a bounce
	GroundBounceMin   float32 // minimum downward speed for a flat-ground bounce
	GroundRestitution float32 // vertical velocity multiplier on flat bounce

	MinLifetime      float32 // spawn lifetime clamp floor (seconds)
	MaxRotationSpeed float32 // symmetric billboard spin range (rad/s)
}

// DefaultParams returns the stock physics constants.
func DefaultParams() Params {
	return Params{
		Gravity:     -9.8,
		BuoyantDrag: 0.98,
		RisingBias:  1.5,

		WindCoupling:      1.0,
		WindGravityFactor: 0.3,
		HorizontalDrag:    0.99,

		SizeGrowBuoyant: 1.002,
		SizeShrink:      0.99,
		ColorFade:       0.9995,

		Mode:        CollideSphere,
		WorldRadius: 60,

		ImpactThreshold:   0.5,
		ReflectFactor:     1.5,
		BounceDamping:     0.3,
		GroundBounceMin:   1.0,
		GroundRestitution: 0.3,

		MinLifetime:      0.001,
		MaxRotationSpeed: 2.0,
	}
}

// StepStats reports what a single Update pass did, for telemetry.
type StepStats struct {
	Active  int // live slots after the pass
	Expired int // retired by lifetime
	Settled int // retired by slow boundary contact (or degenerate normal)
	Bounced int // boundary bounces resolved
}

// ParticleSystem owns a Store and advances it one time-step per frame.
// Single-threaded: Spawn may be called any number of times between frames,
// and exactly one Update runs per frame.
type ParticleSystem struct {
	store  *Store
	params Params
	rng    *rand.Rand
}

// NewParticleSystem creates an engine over a fresh store.
// rng drives spawn jitter; pass a seeded source for reproducible runs.
func NewParticleSystem(capacity int, params Params, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		store:  NewStore(capacity),
		params: params,
		rng:    rng,
	}
}

// Store returns the backing store for render-buffer access.
func (ps *ParticleSystem) Store() *Store { return ps.store }

// Params returns the engine's physics constants.
func (ps *ParticleSystem) Params() Params { return ps.params }

// Count returns the number of live particles.
func (ps *ParticleSystem) Count() int { return ps.store.ActiveCount() }
