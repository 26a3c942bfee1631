package systems

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// SpawnShape is the spawn-volume shape of an effect preset.
type SpawnShape uint8

const (
	ShapePoint  SpawnShape = iota // exactly at the emit point
	ShapeSphere                   // uniform in a ball around the emit point
	ShapeRing                     // on a ring orthogonal to the local up axis
)

// VelocityShape is the velocity-distribution shape of an effect preset.
type VelocityShape uint8

const (
	VelRadial VelocityShape = iota // uniform directions (burst)
	VelCone                        // within ConeAngle of the local up axis
	VelDrift                       // near-stationary jitter
)

// Preset is a call-time parameter bundle describing one visual effect. All
// particle fields are drawn uniformly from the ranges below and forwarded to
// Spawn; presets own no long-lived state and add no invariants of their own.
type Preset struct {
	CountMin, CountMax int

	Shape       SpawnShape
	ShapeRadius float32

	VelShape  VelocityShape
	ConeAngle float32 // radians, VelCone only
	SpeedMin  float32
	SpeedMax  float32
	UpBias    float32 // extra speed along local up; negative falls inward

	ColorMin, ColorMax mgl32.Vec3
	SizeMin, SizeMax   float32
	LifeMin, LifeMax   float32

	Type PhysicsType
}

// Presets is the named effect table. Ranges approximate the classic effect
// zoo: impact bursts, combat sparks, smoke columns, water splashes, cooling
// embers, kicked-up dust, and drifting weather.
var Presets = map[string]Preset{
	"burst": {
		CountMin: 20, CountMax: 30,
		Shape:    ShapePoint,
		VelShape: VelRadial, SpeedMin: 4, SpeedMax: 9,
		ColorMin: mgl32.Vec3{1.0, 0.55, 0.1}, ColorMax: mgl32.Vec3{1.0, 0.9, 0.4},
		SizeMin: 0.3, SizeMax: 0.6,
		LifeMin: 0.5, LifeMax: 1.2,
		Type: Weighted,
	},
	"sparks": {
		CountMin: 10, CountMax: 18,
		Shape:    ShapePoint,
		VelShape: VelCone, ConeAngle: 0.5, SpeedMin: 6, SpeedMax: 12,
		ColorMin: mgl32.Vec3{1.0, 0.85, 0.3}, ColorMax: mgl32.Vec3{1.0, 1.0, 0.7},
		SizeMin: 0.1, SizeMax: 0.25,
		LifeMin: 0.3, LifeMax: 0.8,
		Type: Weighted,
	},
	"smoke": {
		CountMin: 6, CountMax: 10,
		Shape:    ShapeSphere, ShapeRadius: 0.5,
		VelShape: VelDrift, SpeedMin: 0.2, SpeedMax: 0.6, UpBias: 1.2,
		ColorMin: mgl32.Vec3{0.35, 0.35, 0.38}, ColorMax: mgl32.Vec3{0.6, 0.6, 0.62},
		SizeMin: 0.5, SizeMax: 0.9,
		LifeMin: 2, LifeMax: 4,
		Type: Buoyant,
	},
	"embers": {
		CountMin: 8, CountMax: 14,
		Shape:    ShapeSphere, ShapeRadius: 0.4,
		VelShape: VelCone, ConeAngle: 0.9, SpeedMin: 1, SpeedMax: 3, UpBias: 0.8,
		ColorMin: mgl32.Vec3{0.9, 0.3, 0.05}, ColorMax: mgl32.Vec3{1.0, 0.6, 0.15},
		SizeMin: 0.15, SizeMax: 0.3,
		LifeMin: 1.5, LifeMax: 3,
		Type: Buoyant,
	},
	"splash": {
		CountMin: 14, CountMax: 22,
		Shape:    ShapeRing, ShapeRadius: 0.6,
		VelShape: VelCone, ConeAngle: 0.6, SpeedMin: 2, SpeedMax: 5, UpBias: 2,
		ColorMin: mgl32.Vec3{0.5, 0.65, 0.95}, ColorMax: mgl32.Vec3{0.8, 0.9, 1.0},
		SizeMin: 0.2, SizeMax: 0.4,
		LifeMin: 0.6, LifeMax: 1.4,
		Type: Weighted,
	},
	"dust": {
		CountMin: 10, CountMax: 16,
		Shape:    ShapeSphere, ShapeRadius: 0.8,
		VelShape: VelDrift, SpeedMin: 0.1, SpeedMax: 0.5,
		ColorMin: mgl32.Vec3{0.6, 0.5, 0.35}, ColorMax: mgl32.Vec3{0.75, 0.65, 0.5},
		SizeMin: 0.3, SizeMax: 0.7,
		LifeMin: 1, LifeMax: 2.5,
		Type: WindDriven,
	},
	"rain": {
		CountMin: 2, CountMax: 4,
		Shape:    ShapeSphere, ShapeRadius: 6,
		VelShape: VelDrift, SpeedMin: 0.1, SpeedMax: 0.4, UpBias: -8,
		ColorMin: mgl32.Vec3{0.4, 0.55, 0.9}, ColorMax: mgl32.Vec3{0.55, 0.7, 1.0},
		SizeMin: 0.12, SizeMax: 0.2,
		LifeMin: 3, LifeMax: 5,
		Type: WindDriven,
	},
	"snow": {
		CountMin: 2, CountMax: 4,
		Shape:    ShapeSphere, ShapeRadius: 6,
		VelShape: VelDrift, SpeedMin: 0.1, SpeedMax: 0.4, UpBias: -1.5,
		ColorMin: mgl32.Vec3{0.85, 0.85, 0.9}, ColorMax: mgl32.Vec3{1.0, 1.0, 1.0},
		SizeMin: 0.15, SizeMax: 0.3,
		LifeMin: 4, LifeMax: 8,
		Type: WindDriven,
	},
}

// PresetNames returns the preset keys in sorted order, for UI listings.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Emit spawns one preset instance at the given point. Returns the number of
// particles actually spawned and the number requested; spawned < requested
// means the pool filled up mid-emit, which is silent degradation by design
// of the spawn contract.
func (ps *ParticleSystem) Emit(pr Preset, at mgl32.Vec3) (spawned, requested int) {
	requested = pr.CountMin
	if pr.CountMax > pr.CountMin {
		requested += ps.rng.Intn(pr.CountMax - pr.CountMin + 1)
	}

	up := localUp(at)
	for i := 0; i < requested; i++ {
		if _, ok := ps.emitOne(pr, at, up); ok {
			spawned++
		}
	}
	return spawned, requested
}

// EmitOne spawns a single particle from the preset's distributions, used by
// continuous emitters that meter particles out over time.
func (ps *ParticleSystem) EmitOne(pr Preset, at mgl32.Vec3) bool {
	_, ok := ps.emitOne(pr, at, localUp(at))
	return ok
}

func (ps *ParticleSystem) emitOne(pr Preset, at, up mgl32.Vec3) (int, bool) {
	pos := at
	switch pr.Shape {
	case ShapeSphere:
		// cbrt for uniform density over the ball, not the surface.
		r := pr.ShapeRadius * float32(math.Cbrt(float64(ps.rng.Float32())))
		pos = at.Add(sampleUnitSphere(ps.rng).Mul(r))
	case ShapeRing:
		ring := sampleRing(ps.rng, pr.ShapeRadius)
		if up[1] < 0.9999 {
			ring = mgl32.QuatBetweenVectors(mgl32.Vec3{0, 1, 0}, up).Rotate(ring)
		}
		pos = at.Add(ring)
	}

	speed := randRange(ps.rng, pr.SpeedMin, pr.SpeedMax)
	var vel mgl32.Vec3
	switch pr.VelShape {
	case VelRadial:
		vel = sampleUnitSphere(ps.rng).Mul(speed)
	case VelCone:
		vel = sampleCone(ps.rng, up, pr.ConeAngle).Mul(speed)
	case VelDrift:
		vel = sampleUnitSphere(ps.rng).Mul(speed)
	}
	if pr.UpBias != 0 {
		vel = vel.Add(up.Mul(pr.UpBias))
	}

	return ps.Spawn(SpawnParams{
		Pos:      pos,
		Vel:      vel,
		Color:    randVec3(ps.rng, pr.ColorMin, pr.ColorMax),
		Size:     randRange(ps.rng, pr.SizeMin, pr.SizeMax),
		Lifetime: randRange(ps.rng, pr.LifeMin, pr.LifeMax),
		Type:     pr.Type,
	})
}

// localUp is the outward surface normal at a point on the spherical world,
// falling back to +Y at the origin (and for the flat-ground mode).
func localUp(at mgl32.Vec3) mgl32.Vec3 {
	if at.Len() > 1e-6 {
		return at.Normalize()
	}
	return mgl32.Vec3{0, 1, 0}
}
